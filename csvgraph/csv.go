package csvgraph

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/graphema/graphema/core"
)

var (
	// ErrEmptyInput is returned when the input contains no rows.
	ErrEmptyInput = errors.New("csvgraph: input contains no rows")

	// ErrMatrixShape is returned when a row does not fit the matrix
	// dimensions implied by the node set.
	ErrMatrixShape = errors.New("csvgraph: row does not fit matrix shape")
)

// ParseError locates a failure within the matrix. Row and Col are
// zero-based positions in the data matrix; Col is -1 when the failure
// concerns the whole row. The underlying cause is available through
// errors.Is and errors.As.
type ParseError struct {
	Row int
	Col int
	Err error
}

func (e *ParseError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("csvgraph: row %d: %v", e.Row, e.Err)
	}

	return fmt.Sprintf("csvgraph: row %d, col %d: %v", e.Row, e.Col, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Header selects how the node set of the matrix is determined.
type Header[N comparable] struct {
	consumeFirst bool
	parseCell    func(string) (N, error)
	indexFn      func(int) N
	nodes        []N
}

// FirstRow takes the nodes from the first input row, as plain strings.
// The first row is consumed and carries no edges.
func FirstRow() Header[string] {
	return MapRow(func(cell string) (string, error) { return cell, nil })
}

// MapRow takes the nodes from the first input row, interpreting each
// cell with fn. The first row is consumed and carries no edges.
func MapRow[N comparable](fn func(string) (N, error)) Header[N] {
	return Header[N]{consumeFirst: true, parseCell: fn}
}

// Index numbers the nodes 0 to n-1, where n is the width of the first
// row. The first row is matrix content, not a header.
func Index() Header[int] {
	return Header[int]{indexFn: func(i int) int { return i }}
}

// NodeList supplies the nodes explicitly, in column order. The first
// input row is matrix content, not a header.
func NodeList[N comparable](nodes ...N) Header[N] {
	return Header[N]{nodes: nodes}
}

// resolve turns the header into the node list given the first row, and
// reports whether that row was consumed as the header.
func (h Header[N]) resolve(first []string) ([]N, bool, error) {
	switch {
	case h.nodes != nil:
		return h.nodes, false, nil
	case h.consumeFirst:
		nodes := make([]N, len(first))
		for i, cell := range first {
			node, err := h.parseCell(strings.TrimSpace(cell))
			if err != nil {
				return nil, false, &ParseError{Row: 0, Col: i, Err: err}
			}
			nodes[i] = node
		}

		return nodes, true, nil
	default:
		nodes := make([]N, len(first))
		for i := range first {
			nodes[i] = h.indexFn(i)
		}

		return nodes, false, nil
	}
}

// Options tunes how the matrix is read. The zero value is not useful;
// start from DefaultOptions.
type Options[V comparable] struct {
	// Undirected treats the matrix as symmetric: rows contribute their
	// upper-triangle tail and every entry is mirrored.
	Undirected bool

	// ValidEdge decides whether a parsed value denotes a present edge.
	// Values failing the test are skipped. Defaults to "not the zero
	// value of V".
	ValidEdge func(V) bool

	// Comma is the field delimiter.
	Comma rune
}

// DefaultOptions returns the canonical defaults: a directed,
// comma-separated matrix where the zero value marks a missing edge.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		ValidEdge: func(v V) bool {
			var zero V
			return v != zero
		},
		Comma: ',',
	}
}

// Read parses adjacency-matrix CSV from r into a graph. Node identity
// comes from header, cell text is interpreted by parse, and opts tunes
// delimiter, symmetry and edge filtering (nil means DefaultOptions).
// A nil parse function is core.ErrInvalidArgument; input without any
// rows is ErrEmptyInput.
// Complexity: O(rows × columns)
func Read[N, V comparable](r io.Reader, header Header[N], parse func(string) (V, error), opts *Options[V]) (core.Graph[N, V], error) {
	if parse == nil {
		return nil, fmt.Errorf("parse function is nil: %w", core.ErrInvalidArgument)
	}
	options := DefaultOptions[V]()
	if opts != nil {
		options.Undirected = opts.Undirected
		if opts.ValidEdge != nil {
			options.ValidEdge = opts.ValidEdge
		}
		if opts.Comma != 0 {
			options.Comma = opts.Comma
		}
	}

	reader := csv.NewReader(r)
	reader.Comma = options.Comma
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	first, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("csvgraph: %w", err)
	}
	nodes, consumed, err := header.resolve(first)
	if err != nil {
		return nil, err
	}

	var graphOpts []core.Option
	if options.Undirected {
		graphOpts = append(graphOpts, core.WithUndirected())
	}
	g := core.FromNodes[N, V](nodes, graphOpts...)

	row := first
	rowIdx := 0
	if consumed {
		row, err = reader.Read()
	}
	for !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("csvgraph: %w", err)
		}
		if err := readRow(g, nodes, row, rowIdx, &options, parse); err != nil {
			return nil, err
		}
		rowIdx++
		row, err = reader.Read()
	}

	return g, nil
}

// readRow installs one matrix row into g. For an undirected matrix the
// row holds its upper-triangle tail, full rows included; columns are
// aligned from the right.
func readRow[N, V comparable](g core.Graph[N, V], nodes []N, row []string, rowIdx int, options *Options[V], parse func(string) (V, error)) error {
	n := len(nodes)
	if rowIdx >= n {
		return &ParseError{Row: rowIdx, Col: -1, Err: ErrMatrixShape}
	}
	from := nodes[rowIdx]

	cells, colBase := row, 0
	if options.Undirected {
		want := n - rowIdx
		if len(row) < want || len(row) > n {
			return &ParseError{Row: rowIdx, Col: -1, Err: ErrMatrixShape}
		}
		cells, colBase = row[len(row)-want:], rowIdx
	} else if len(row) != n {
		return &ParseError{Row: rowIdx, Col: -1, Err: ErrMatrixShape}
	}

	for i, cell := range cells {
		value, err := parse(strings.TrimSpace(cell))
		if err != nil {
			return &ParseError{Row: rowIdx, Col: colBase + i, Err: err}
		}
		if !options.ValidEdge(value) {
			continue
		}
		if err := g.SetValue(core.E(from, nodes[colBase+i]), value); err != nil {
			return err
		}
	}

	return nil
}

// Int parses a cell as a decimal integer.
func Int(cell string) (int, error) {
	return strconv.Atoi(cell)
}

// Float64 parses a cell as a floating-point number.
func Float64(cell string) (float64, error) {
	return strconv.ParseFloat(cell, 64)
}

// String passes a cell through unchanged.
func String(cell string) (string, error) {
	return cell, nil
}
