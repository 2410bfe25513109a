package distance_test

import (
	"testing"

	"github.com/graphema/graphema/core"
	"github.com/graphema/graphema/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}

// TestNew_NilFunc verifies construction rejects a nil distance
// function.
func TestNew_NilFunc(t *testing.T) {
	_, err := distance.New[int, int]([]int{1}, nil)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

// TestGraph_ComputedValues verifies that edges between present nodes
// read as the function's result without any storage.
func TestGraph_ComputedValues(t *testing.T) {
	g, err := distance.New([]int{1, 2, 3}, distance.Func[int, int](absDiff))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Len())
	assert.True(t, g.Undirected(), "distances are symmetric by default")

	v, err := g.Value(core.E(1, 3))
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	assert.Equal(t, 0, g.ValueOr(core.Loop(2), -1), "self distance is computed like any pair")
	assert.True(t, g.HasEdge(core.E(2, 3)), "every pair of present nodes is an edge")
}

// TestGraph_AbsentEndpoint verifies that a pair with a missing node is
// no edge at all.
func TestGraph_AbsentEndpoint(t *testing.T) {
	g, err := distance.New([]int{1, 2}, distance.Func[int, int](absDiff))
	require.NoError(t, err)

	_, err = g.Value(core.E(1, 9))
	assert.ErrorIs(t, err, core.ErrNoSuchEdge, "missing endpoint reads as a missing edge")
	assert.False(t, g.HasEdge(core.E(9, 1)))
	assert.Equal(t, -1, g.ValueOr(core.E(1, 9), -1))
}

// TestGraph_Canonicalization verifies that an undirected graph feeds
// the function one fixed orientation per pair, so even an asymmetric
// function yields symmetric distances.
func TestGraph_Canonicalization(t *testing.T) {
	asymmetric := func(a, b int) int { return a - b }

	g, err := distance.New([]int{1, 5}, asymmetric)
	require.NoError(t, err)
	assert.Equal(t, g.ValueOr(core.E(1, 5), -99), g.ValueOr(core.E(5, 1), -99),
		"undirected reads must agree regardless of orientation")

	d, err := distance.New([]int{1, 5}, asymmetric, distance.WithDirected())
	require.NoError(t, err)
	assert.False(t, d.Undirected())
	assert.Equal(t, -4, d.ValueOr(core.E(1, 5), -99))
	assert.Equal(t, 4, d.ValueOr(core.E(5, 1), -99), "directed reads keep the given orientation")
}

// TestGraph_Adjacency verifies the synthesized snapshot: distances to
// every other node, excluding the node itself.
func TestGraph_Adjacency(t *testing.T) {
	g, err := distance.New([]int{1, 2, 3}, distance.Func[int, int](absDiff))
	require.NoError(t, err)

	adj, err := g.Adjacency(1)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2: 1, 3: 2}, adj, "snapshot covers all other nodes, never self")

	_, err = g.Adjacency(9)
	assert.ErrorIs(t, err, core.ErrNoSuchNode)
}

// TestGraph_ReadOnlyEdges verifies that every edge write reports
// ErrInvalidOperation.
func TestGraph_ReadOnlyEdges(t *testing.T) {
	g, err := distance.New([]int{1, 2}, distance.Func[int, int](absDiff))
	require.NoError(t, err)

	assert.ErrorIs(t, g.SetValue(core.E(1, 2), 9), core.ErrInvalidOperation)
	assert.ErrorIs(t, g.AddEdge(core.E(1, 2)), core.ErrInvalidOperation)
	assert.ErrorIs(t, g.SetAdjacency(1, map[int]int{2: 9}), core.ErrInvalidOperation)
	assert.ErrorIs(t, g.RemoveEdge(core.E(1, 2)), core.ErrInvalidOperation)

	g.DiscardEdge(core.E(1, 2)) // nothing stored, nothing removed
	assert.Equal(t, 1, g.ValueOr(core.E(1, 2), -1), "the computed value is untouched")
}

// TestGraph_NodeLifecycle verifies node insertion and removal; removing
// a node implicitly removes all its edges.
func TestGraph_NodeLifecycle(t *testing.T) {
	g, err := distance.New([]int{1, 2}, distance.Func[int, int](absDiff))
	require.NoError(t, err)

	g.Add(3)
	assert.Equal(t, 2, g.ValueOr(core.E(1, 3), -1), "a new node connects to everything at once")

	require.NoError(t, g.RemoveNode(3))
	assert.False(t, g.HasEdge(core.E(1, 3)))
	assert.ErrorIs(t, g.RemoveNode(3), core.ErrNoSuchNode)

	g.Discard(3)
	g.Discard(2)
	assert.Equal(t, 1, g.Len())
}

// TestGraph_Update verifies that merging consumes nodes and refuses
// explicit edge content.
func TestGraph_Update(t *testing.T) {
	g, err := distance.New([]int{1}, distance.Func[int, int](absDiff))
	require.NoError(t, err)

	require.NoError(t, g.Update(core.Nodes[int, int](2, 3)))
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 1, g.ValueOr(core.E(2, 3), -1))

	err = g.Update(core.Adjacency(map[int]map[int]int{7: {8: 5}}))
	assert.ErrorIs(t, err, core.ErrInvalidOperation, "stored edge values cannot enter a computed graph")
	assert.False(t, g.HasNode(7), "refused merge must not add nodes")

	require.NoError(t, g.Update(nil))
}

// TestGraph_CopyAndClear verifies copy independence and that Clear
// keeps the function usable.
func TestGraph_CopyAndClear(t *testing.T) {
	g, err := distance.New([]int{1, 2}, distance.Func[int, int](absDiff))
	require.NoError(t, err)

	dup := g.Copy()
	dup.Add(3)
	assert.False(t, g.HasNode(3), "copy is independent")
	assert.Equal(t, 2, dup.ValueOr(core.E(1, 3), -1), "copy shares the distance function")

	g.Clear()
	assert.True(t, g.IsEmpty())
	g.Add(4)
	g.Add(6)
	assert.Equal(t, 2, g.ValueOr(core.E(4, 6), -1), "function survives a clear")
}

// TestGraph_Views verifies that the standard views work over computed
// edges.
func TestGraph_Views(t *testing.T) {
	g, err := distance.New([]int{1, 2}, distance.Func[int, int](absDiff))
	require.NoError(t, err)

	assert.Equal(t, 2, g.Nodes().Len())
	assert.True(t, g.Values().Contains(1), "pair distance is visible through the value view")
	assert.True(t, g.Items().Contains(core.E(1, 2), 1))
}
