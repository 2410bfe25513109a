package core_test

import (
	"testing"

	"github.com/graphema/graphema/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBounded_NilInner verifies construction rejects a nil inner graph.
func TestBounded_NilInner(t *testing.T) {
	_, err := core.NewBounded[string, int](nil, 5)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

// TestBounded_ConstructionSweep verifies that wrapping removes every
// stored value exceeding the bound and keeps the rest.
func TestBounded_ConstructionSweep(t *testing.T) {
	inner, err := core.FromAdjacency(map[string]map[string]int{
		"a": {"b": 3, "c": 10},
		"b": {"a": 5},
	})
	require.NoError(t, err)

	b, err := core.NewBounded[string, int](inner, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, b.ValueBound())
	assert.Equal(t, 3, b.ValueOr(core.E("a", "b"), -1), "value within bound survives")
	assert.Equal(t, 5, b.ValueOr(core.E("b", "a"), -1), "value equal to bound survives")
	assert.False(t, b.HasEdge(core.E("a", "c")), "value beyond bound is swept away")
	assert.True(t, b.HasNode("c"), "sweeping removes edges, never nodes")
}

// TestBounded_ConstructionSweepUndirected verifies the sweep over a
// symmetric inner graph removes each offending pair cleanly.
func TestBounded_ConstructionSweepUndirected(t *testing.T) {
	inner, err := core.FromAdjacency(map[string]map[string]int{
		"a": {"b": 9, "c": 2},
	}, core.WithUndirected())
	require.NoError(t, err)

	b, err := core.NewBounded[string, int](inner, 5)
	require.NoError(t, err)

	assert.True(t, b.Undirected())
	assert.False(t, b.HasEdge(core.E("a", "b")), "offending pair vanishes")
	assert.False(t, b.HasEdge(core.E("b", "a")))
	assert.Equal(t, 2, b.ValueOr(core.E("c", "a"), -1), "compliant pair survives both ways")
}

// TestBounded_SetValueDrop verifies that assigning a value beyond the
// bound silently removes the edge instead of erroring.
func TestBounded_SetValueDrop(t *testing.T) {
	b, err := core.BuildBounded(core.Nodes[string, int]("a", "b"), 5)
	require.NoError(t, err)

	require.NoError(t, b.SetValue(core.E("a", "b"), 4))
	assert.Equal(t, 4, b.ValueOr(core.E("a", "b"), -1))

	require.NoError(t, b.SetValue(core.E("a", "b"), 6), "exceeding the bound is not an error")
	assert.False(t, b.HasEdge(core.E("a", "b")), "exceeding assignment removes the edge")

	require.NoError(t, b.SetValue(core.E("a", "b"), 6), "dropping an absent edge is still fine")

	assert.ErrorIs(t, b.SetValue(core.E("a", "zz"), 1), core.ErrNoSuchNode,
		"compliant writes still validate endpoints")
}

// TestBounded_AddEdge verifies zero-value insertion through the bound.
func TestBounded_AddEdge(t *testing.T) {
	b, err := core.BuildBounded(core.Nodes[string, int]("a", "b"), 5)
	require.NoError(t, err)

	require.NoError(t, b.AddEdge(core.E("a", "b")))
	assert.Equal(t, 0, b.ValueOr(core.E("a", "b"), -1))

	tight, err := core.BuildBounded(core.Nodes[string, int]("a", "b"), -1)
	require.NoError(t, err)
	require.NoError(t, tight.AddEdge(core.E("a", "b")))
	assert.False(t, tight.HasEdge(core.E("a", "b")), "a zero value beyond the bound stays absent")
}

// TestBounded_SetAdjacency verifies that replacement payloads are
// filtered before installation.
func TestBounded_SetAdjacency(t *testing.T) {
	b, err := core.BuildBounded(core.Nodes[string, int]("a", "b", "c"), 5)
	require.NoError(t, err)

	require.NoError(t, b.SetAdjacency("a", map[string]int{"b": 3, "c": 8}))
	assert.Equal(t, 3, b.ValueOr(core.E("a", "b"), -1), "compliant entry installed")
	assert.False(t, b.HasEdge(core.E("a", "c")), "exceeding entry filtered out")
}

// TestBounded_Update verifies that merged values pass through the
// bound.
func TestBounded_Update(t *testing.T) {
	b, err := core.BuildBounded(core.Nodes[string, int]("a"), 5)
	require.NoError(t, err)

	require.NoError(t, b.Update(core.Adjacency(map[string]map[string]int{
		"a": {"b": 2, "c": 7},
	})))
	assert.Equal(t, 2, b.ValueOr(core.E("a", "b"), -1))
	assert.False(t, b.HasEdge(core.E("a", "c")), "merged value beyond the bound ends up absent")
	assert.True(t, b.HasNode("c"), "merged nodes are kept regardless")
}

// TestBounded_CopyAndClear verifies that the bound survives both.
func TestBounded_CopyAndClear(t *testing.T) {
	b, err := core.BuildBounded(core.Nodes[string, int]("a", "b"), 5)
	require.NoError(t, err)
	require.NoError(t, b.SetValue(core.E("a", "b"), 1))

	dup := b.Copy()
	require.NoError(t, dup.SetValue(core.E("a", "b"), 7))
	assert.Equal(t, 1, b.ValueOr(core.E("a", "b"), -1), "copy is independent")
	assert.False(t, dup.HasEdge(core.E("a", "b")), "the copy still enforces the bound")

	b.Clear()
	assert.True(t, b.IsEmpty())
	b.Add("x")
	b.Add("y")
	require.NoError(t, b.SetValue(core.E("x", "y"), 9))
	assert.False(t, b.HasEdge(core.E("x", "y")), "the bound survives a clear")
}

// TestBuildBounded_Undirected verifies the combined factory: symmetric
// storage under a bound.
func TestBuildBounded_Undirected(t *testing.T) {
	b, err := core.BuildBounded(core.Adjacency(map[string]map[string]int{
		"a": {"b": 3},
	}), 5, core.WithUndirected())
	require.NoError(t, err)

	assert.True(t, b.Undirected())
	assert.Equal(t, 3, b.ValueOr(core.E("b", "a"), -1), "construction mirrors first")

	require.NoError(t, b.SetValue(core.E("a", "b"), 9))
	assert.False(t, b.HasEdge(core.E("b", "a")), "an exceeding write drops both orientations")
}
