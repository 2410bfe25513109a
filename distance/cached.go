package distance

import (
	"fmt"
	"maps"

	"github.com/graphema/graphema/core"
)

// Cached is a computed graph that memoizes every distance it computes:
// each pair is passed to the function at most once, then served from
// storage.
//
// Unlike the plain Graph, cached edges can be removed — removal
// overwrites the memo with the configured maximum distance, so the
// pair reads as maximally distant from then on while staying a valid
// edge.
//
// For n nodes, up to n×n computed values are stored.
type Cached[N, V comparable] struct {
	Graph[N, V]

	maxDistance V
	memo        map[core.Edge[N]]V
}

var _ core.Graph[int, int] = (*Cached[int, int])(nil)

// NewCached creates a memoizing computed graph over the given nodes.
// maxDistance is the value a removed edge reads as; pick the largest
// distance meaningful in the metric (math.Inf(1) for float64).
// A nil function is core.ErrInvalidArgument.
// Complexity: O(len(nodes))
func NewCached[N, V comparable](nodes []N, dist Func[N, V], maxDistance V, opts ...Option) (*Cached[N, V], error) {
	base, err := New[N, V](nodes, dist, opts...)
	if err != nil {
		return nil, err
	}

	return &Cached[N, V]{
		Graph:       *base,
		maxDistance: maxDistance,
		memo:        make(map[core.Edge[N]]V),
	}, nil
}

// MaxDistance returns the value removed edges read as.
func (c *Cached[N, V]) MaxDistance() V { return c.maxDistance }

// Value returns the memoized distance of e, computing and storing it on
// first access. An absent endpoint is core.ErrNoSuchEdge.
// Complexity: O(1) amortized.
func (c *Cached[N, V]) Value(e core.Edge[N]) (V, error) {
	var zero V
	if !c.HasNode(e.Tail) || !c.HasNode(e.Head) {
		return zero, fmt.Errorf("edge %v: %w", e, core.ErrNoSuchEdge)
	}
	key := c.canonical(e)
	if value, ok := c.memo[key]; ok {
		return value, nil
	}
	value := c.dist(key.Tail, key.Head)
	c.memo[key] = value

	return value, nil
}

// ValueOr returns the memoized distance of e, or fallback when an
// endpoint is absent.
func (c *Cached[N, V]) ValueOr(e core.Edge[N], fallback V) V {
	if value, err := c.Value(e); err == nil {
		return value
	}

	return fallback
}

// Adjacency returns node's distances to every other node through the
// memo, or core.ErrNoSuchNode.
// Complexity: O(n)
func (c *Cached[N, V]) Adjacency(node N) (map[N]V, error) {
	return c.adjacencyVia(node, c.Value)
}

// RemoveEdge masks e out: the memo entry for the pair is overwritten
// with the maximum distance. An absent endpoint is core.ErrNoSuchEdge.
// Complexity: O(1)
func (c *Cached[N, V]) RemoveEdge(e core.Edge[N]) error {
	if !c.HasNode(e.Tail) || !c.HasNode(e.Head) {
		return fmt.Errorf("edge %v: %w", e, core.ErrNoSuchEdge)
	}
	c.memo[c.canonical(e)] = c.maxDistance

	return nil
}

// DiscardEdge masks e out if both endpoints are present; otherwise it
// is a no-op.
func (c *Cached[N, V]) DiscardEdge(e core.Edge[N]) {
	if c.HasEdge(e) {
		c.memo[c.canonical(e)] = c.maxDistance
	}
}

// RemoveNode removes node and drops every memoized distance touching
// it, or reports core.ErrNoSuchNode. Masked-out pairs through the node
// are forgotten with the rest.
// Complexity: O(stored distances)
func (c *Cached[N, V]) RemoveNode(node N) error {
	if err := c.Graph.RemoveNode(node); err != nil {
		return err
	}
	for key := range c.memo {
		if key.Tail == node || key.Head == node {
			delete(c.memo, key)
		}
	}

	return nil
}

// Discard removes node and its memoized distances if present; absent
// is a no-op.
func (c *Cached[N, V]) Discard(node N) {
	if c.HasNode(node) {
		_ = c.RemoveNode(node)
	}
}

// Clear removes all nodes and forgets every memoized distance.
// Complexity: O(1)
func (c *Cached[N, V]) Clear() {
	c.Graph.Clear()
	c.memo = make(map[core.Edge[N]]V)
}

// Copy returns an independent duplicate sharing the same distance
// function, with its own memo.
// Complexity: O(n + stored distances)
func (c *Cached[N, V]) Copy() core.Graph[N, V] {
	return &Cached[N, V]{
		Graph: Graph[N, V]{
			directed: c.directed,
			dist:     c.dist,
			nodes:    maps.Clone(c.nodes),
		},
		maxDistance: c.maxDistance,
		memo:        maps.Clone(c.memo),
	}
}

// Nodes returns a live view of the graph's nodes.
func (c *Cached[N, V]) Nodes() core.NodeView[N, V] { return core.NewNodeView[N, V](c) }

// Edges returns a live view over all pairs of present nodes.
func (c *Cached[N, V]) Edges() core.EdgeView[N, V] { return core.NewEdgeView[N, V](c) }

// Values returns a live view of memoized distances.
func (c *Cached[N, V]) Values() core.ValueView[N, V] { return core.NewValueView[N, V](c) }

// Items returns a live view of (edge, distance) pairs.
func (c *Cached[N, V]) Items() core.ItemView[N, V] { return core.NewItemView[N, V](c) }
