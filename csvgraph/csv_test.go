package csvgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/graphema/graphema/core"
	"github.com/graphema/graphema/csvgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRead_UndirectedMatrix verifies the canonical symmetric matrix:
// header row, mirrored values, zero diagonal filtered out.
func TestRead_UndirectedMatrix(t *testing.T) {
	input := strings.Join([]string{
		"a,b,c",
		"0,1,2",
		"1,0,3",
		"2,3,0",
	}, "\n")
	opts := csvgraph.DefaultOptions[int]()
	opts.Undirected = true

	g, err := csvgraph.Read(strings.NewReader(input), csvgraph.FirstRow(), csvgraph.Int, &opts)
	require.NoError(t, err)

	assert.True(t, g.Undirected())
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 1, g.ValueOr(core.E("a", "b"), -1))
	assert.Equal(t, 3, g.ValueOr(core.E("b", "c"), -1))
	assert.Equal(t, 2, g.ValueOr(core.E("c", "a"), -1), "matrix values are mirrored")

	_, err = g.Value(core.Loop("a"))
	assert.ErrorIs(t, err, core.ErrNoSuchEdge, "a zero cell denotes a missing edge")
}

// TestRead_TriangleRows verifies that shortened upper-triangle rows
// produce the same graph as the full symmetric matrix.
func TestRead_TriangleRows(t *testing.T) {
	input := strings.Join([]string{
		"a,b,c",
		"0,1,2",
		"0,3",
		"0",
	}, "\n")
	opts := csvgraph.DefaultOptions[int]()
	opts.Undirected = true

	g, err := csvgraph.Read(strings.NewReader(input), csvgraph.FirstRow(), csvgraph.Int, &opts)
	require.NoError(t, err)

	assert.Equal(t, 1, g.ValueOr(core.E("b", "a"), -1))
	assert.Equal(t, 3, g.ValueOr(core.E("c", "b"), -1))
	assert.Equal(t, 2, g.ValueOr(core.E("a", "c"), -1))
}

// TestRead_DirectedMatrix verifies asymmetric values, loops on the
// diagonal, and rows fewer than nodes.
func TestRead_DirectedMatrix(t *testing.T) {
	input := strings.Join([]string{
		"a,b,c,d",
		"0,2,1,0",
		"2,0,3,2",
		"1,4,1,0",
	}, "\n")

	g, err := csvgraph.Read(strings.NewReader(input), csvgraph.FirstRow(), csvgraph.Int, nil)
	require.NoError(t, err)

	assert.False(t, g.Undirected())
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 3, g.ValueOr(core.E("b", "c"), -1))
	assert.Equal(t, 4, g.ValueOr(core.E("c", "b"), -1), "opposite directions may differ")
	assert.Equal(t, 1, g.ValueOr(core.Loop("c"), -1), "the diagonal holds loops")
	assert.Equal(t, 2, g.ValueOr(core.E("b", "d"), -1))
	assert.False(t, g.HasEdge(core.E("d", "a")), "a node without a row has no outgoing edges")
}

// TestRead_IndexHeader verifies positional node numbering with the
// first row as content.
func TestRead_IndexHeader(t *testing.T) {
	input := "0,5\n5,0"

	g, err := csvgraph.Read(strings.NewReader(input), csvgraph.Index(), csvgraph.Int, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Len())
	assert.True(t, g.HasNode(0))
	assert.True(t, g.HasNode(1))
	assert.Equal(t, 5, g.ValueOr(core.E(0, 1), -1), "the first row is matrix content")
}

// TestRead_NodeListHeader verifies explicitly supplied nodes.
func TestRead_NodeListHeader(t *testing.T) {
	input := "0,7\n7,0"

	g, err := csvgraph.Read(strings.NewReader(input), csvgraph.NodeList("x", "y"), csvgraph.Int, nil)
	require.NoError(t, err)

	assert.Equal(t, 7, g.ValueOr(core.E("x", "y"), -1))
	assert.Equal(t, 7, g.ValueOr(core.E("y", "x"), -1))
}

// TestRead_MapRowHeader verifies per-cell interpretation of the header
// row.
func TestRead_MapRowHeader(t *testing.T) {
	input := "10,20\n0,1\n1,0"

	g, err := csvgraph.Read(strings.NewReader(input), csvgraph.MapRow(csvgraph.Int), csvgraph.Int, nil)
	require.NoError(t, err)

	assert.True(t, g.HasNode(10))
	assert.True(t, g.HasNode(20))
	assert.Equal(t, 1, g.ValueOr(core.E(10, 20), -1))
}

// TestRead_ValidEdgeFilter verifies a custom edge predicate.
func TestRead_ValidEdgeFilter(t *testing.T) {
	input := "a,b\n0,-1\n3,0"
	opts := csvgraph.DefaultOptions[int]()
	opts.ValidEdge = func(v int) bool { return v > 0 }

	g, err := csvgraph.Read(strings.NewReader(input), csvgraph.FirstRow(), csvgraph.Int, &opts)
	require.NoError(t, err)

	assert.False(t, g.HasEdge(core.E("a", "b")), "negative value filtered out")
	assert.Equal(t, 3, g.ValueOr(core.E("b", "a"), -1))
}

// TestRead_CustomComma verifies an alternative delimiter.
func TestRead_CustomComma(t *testing.T) {
	input := "a;b\n0;4\n4;0"
	opts := csvgraph.DefaultOptions[int]()
	opts.Comma = ';'

	g, err := csvgraph.Read(strings.NewReader(input), csvgraph.FirstRow(), csvgraph.Int, &opts)
	require.NoError(t, err)
	assert.Equal(t, 4, g.ValueOr(core.E("a", "b"), -1))
}

// TestRead_EmptyInput verifies the dedicated empty-input error.
func TestRead_EmptyInput(t *testing.T) {
	_, err := csvgraph.Read(strings.NewReader(""), csvgraph.FirstRow(), csvgraph.Int, nil)
	assert.ErrorIs(t, err, csvgraph.ErrEmptyInput)
}

// TestRead_NilParse verifies the argument check.
func TestRead_NilParse(t *testing.T) {
	_, err := csvgraph.Read[string, int](strings.NewReader("a\n0"), csvgraph.FirstRow(), nil, nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

// TestRead_ShapeErrors verifies positioned shape failures: wrong row
// width and too many rows.
func TestRead_ShapeErrors(t *testing.T) {
	_, err := csvgraph.Read(strings.NewReader("a,b\n0,1,2\n1,0"), csvgraph.FirstRow(), csvgraph.Int, nil)
	assert.ErrorIs(t, err, csvgraph.ErrMatrixShape)

	var pe *csvgraph.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 0, pe.Row, "failure sits on the first data row")
	assert.Equal(t, -1, pe.Col, "shape errors concern the whole row")

	_, err = csvgraph.Read(strings.NewReader("a\n0\n0"), csvgraph.FirstRow(), csvgraph.Int, nil)
	assert.ErrorIs(t, err, csvgraph.ErrMatrixShape, "more rows than nodes must fail")
}

// TestRead_CellParseError verifies that a bad cell is reported with its
// position and cause.
func TestRead_CellParseError(t *testing.T) {
	_, err := csvgraph.Read(strings.NewReader("a,b\n0,oops\n1,0"), csvgraph.FirstRow(), csvgraph.Int, nil)
	require.Error(t, err)

	var pe *csvgraph.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 0, pe.Row)
	assert.Equal(t, 1, pe.Col)
	assert.NotNil(t, errors.Unwrap(err), "the parse cause is preserved")
}

// TestRead_Float64 verifies the floating-point cell parser.
func TestRead_Float64(t *testing.T) {
	input := "a,b\n0,1.5\n1.5,0"

	g, err := csvgraph.Read(strings.NewReader(input), csvgraph.FirstRow(), csvgraph.Float64, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.5, g.ValueOr(core.E("a", "b"), -1))
}
