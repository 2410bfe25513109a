package builder_test

import (
	"testing"

	"github.com/graphema/graphema/builder"
	"github.com/graphema/graphema/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPath verifies consecutive edges and nothing else, directed and
// undirected.
func TestPath(t *testing.T) {
	g, err := builder.Path([]string{"a", "b", "c"}, builder.Constant[string](1))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Len())
	assert.True(t, g.HasEdge(core.E("a", "b")))
	assert.True(t, g.HasEdge(core.E("b", "c")))
	assert.False(t, g.HasEdge(core.E("b", "a")), "directed path goes one way")
	assert.False(t, g.HasEdge(core.E("a", "c")), "no shortcut edges")

	u, err := builder.Path([]string{"a", "b"}, builder.Constant[string](1), core.WithUndirected())
	require.NoError(t, err)
	assert.True(t, u.HasEdge(core.E("b", "a")), "undirected path mirrors")
}

// TestPath_TooFew verifies the minimum of two nodes.
func TestPath_TooFew(t *testing.T) {
	_, err := builder.Path([]string{"only"}, builder.Constant[string](1))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

// TestCycle verifies the closing edge on top of the path.
func TestCycle(t *testing.T) {
	g, err := builder.Cycle([]int{1, 2, 3}, builder.Constant[int](1))
	require.NoError(t, err)

	assert.True(t, g.HasEdge(core.E(1, 2)))
	assert.True(t, g.HasEdge(core.E(2, 3)))
	assert.True(t, g.HasEdge(core.E(3, 1)), "cycle closes back to the first node")
	assert.Equal(t, 3, g.Edges().Len())

	_, err = builder.Cycle([]int{1, 2}, builder.Constant[int](1))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes, "a cycle needs three nodes")
}

// TestComplete verifies all-pairs edges without loops, with per-edge
// weights.
func TestComplete(t *testing.T) {
	weight := func(a, b int) int { return a*10 + b }

	g, err := builder.Complete([]int{1, 2, 3}, weight)
	require.NoError(t, err)

	assert.Equal(t, 6, g.Edges().Len(), "n(n-1) ordered pairs")
	assert.Equal(t, 12, g.ValueOr(core.E(1, 2), -1))
	assert.Equal(t, 21, g.ValueOr(core.E(2, 1), -1), "each direction weighted independently")
	assert.False(t, g.HasEdge(core.Loop(1)), "no loops")

	u, err := builder.Complete([]int{1, 2, 3}, weight, core.WithUndirected())
	require.NoError(t, err)
	assert.Equal(t, 3, u.Edges().Len(), "one edge per unordered pair")
	assert.Equal(t, u.ValueOr(core.E(1, 2), -1), u.ValueOr(core.E(2, 1), -1),
		"each pair weighted once and mirrored")
}

// TestStar verifies hub-to-leaf spokes and the center/leaf overlap
// check.
func TestStar(t *testing.T) {
	g, err := builder.Star("hub", []string{"a", "b", "c"}, builder.Constant[string](2))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 2, g.ValueOr(core.E("hub", "a"), -1))
	assert.False(t, g.HasEdge(core.E("a", "hub")), "directed spokes point outward")
	assert.False(t, g.HasEdge(core.E("a", "b")), "leaves are not interconnected")

	_, err = builder.Star("hub", nil, builder.Constant[string](1))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.Star("hub", []string{"a", "hub"}, builder.Constant[string](1))
	assert.ErrorIs(t, err, core.ErrInvalidArgument, "center among leaves must fail")
}

// TestNilWeight verifies the shared weight-function check.
func TestNilWeight(t *testing.T) {
	_, err := builder.Path[string, int]([]string{"a", "b"}, nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}
