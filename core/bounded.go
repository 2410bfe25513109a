package core

import (
	"cmp"
	"fmt"
	"iter"
)

// Bounded wraps an inner graph so that edge values exceeding a fixed
// bound are dropped instead of stored: for every present edge,
// value <= bound holds at every observation point.
//
// Exceeding the bound is a defined absence, not an error — assigning a
// value larger than the bound silently removes the edge. This is
// deliberately distinct from malformed input, which still errors.
//
// The wrapper owns its inner graph exclusively; constructing a Bounded
// from a pre-existing instance transfers ownership.
type Bounded[N comparable, V cmp.Ordered] struct {
	inner Graph[N, V]
	bound V
}

var _ Graph[int, int] = (*Bounded[int, int])(nil)

// NewBounded wraps inner, taking ownership, and runs the bound sweep:
// every stored value exceeding bound is removed. When the inner graph
// is undirected, its item view already yields each unordered pair only
// once, so symmetric pairs are never deleted twice. A nil inner graph
// is ErrInvalidArgument.
// Complexity: O(nodes²) worst case (item enumeration).
func NewBounded[N comparable, V cmp.Ordered](inner Graph[N, V], bound V) (*Bounded[N, V], error) {
	if inner == nil {
		return nil, fmt.Errorf("inner graph is nil: %w", ErrInvalidArgument)
	}
	b := &Bounded[N, V]{inner: inner, bound: bound}
	var victims []Edge[N]
	for e, value := range inner.Items().All() {
		if value > bound {
			victims = append(victims, e)
		}
	}
	for _, e := range victims {
		inner.DiscardEdge(e)
	}

	return b, nil
}

// ValueBound returns the bound every stored edge value satisfies.
func (b *Bounded[N, V]) ValueBound() V { return b.bound }

// Undirected reports the inner graph's symmetry policy.
func (b *Bounded[N, V]) Undirected() bool { return b.inner.Undirected() }

// Len returns the number of nodes.
func (b *Bounded[N, V]) Len() int { return b.inner.Len() }

// IsEmpty reports whether the graph has no nodes.
func (b *Bounded[N, V]) IsEmpty() bool { return b.inner.IsEmpty() }

// HasNode reports whether node is in the graph.
func (b *Bounded[N, V]) HasNode(node N) bool { return b.inner.HasNode(node) }

// HasEdge reports whether e is present.
func (b *Bounded[N, V]) HasEdge(e Edge[N]) bool { return b.inner.HasEdge(e) }

// Adjacency returns a snapshot of node's edges, or ErrNoSuchNode.
func (b *Bounded[N, V]) Adjacency(node N) (map[N]V, error) { return b.inner.Adjacency(node) }

// Value returns the value of e, or ErrNoSuchEdge.
func (b *Bounded[N, V]) Value(e Edge[N]) (V, error) { return b.inner.Value(e) }

// ValueOr returns the value of e, or fallback when absent.
func (b *Bounded[N, V]) ValueOr(e Edge[N], fallback V) V { return b.inner.ValueOr(e, fallback) }

// Add ensures node is present without touching existing edges.
func (b *Bounded[N, V]) Add(node N) { b.inner.Add(node) }

// AddEdge ensures e is present with the zero value of V — unless the
// zero value itself exceeds the bound, in which case the edge stays
// absent.
func (b *Bounded[N, V]) AddEdge(e Edge[N]) error {
	if b.HasEdge(e) {
		return nil
	}
	var zero V

	return b.SetValue(e, zero)
}

// SetValue stores value for e, or discards the edge when value exceeds
// the bound. Exceeding the bound is never an error.
func (b *Bounded[N, V]) SetValue(e Edge[N], value V) error {
	if value > b.bound {
		b.inner.DiscardEdge(e)

		return nil
	}

	return b.inner.SetValue(e, value)
}

// SetAdjacency replaces node's edges with adj, filtering out every
// value exceeding the bound before delegating.
func (b *Bounded[N, V]) SetAdjacency(node N, adj map[N]V) error {
	filtered := make(map[N]V, len(adj))
	for neighbour, value := range adj {
		if value <= b.bound {
			filtered[neighbour] = value
		}
	}

	return b.inner.SetAdjacency(node, filtered)
}

// RemoveNode removes node and its edges, or reports ErrNoSuchNode.
func (b *Bounded[N, V]) RemoveNode(node N) error { return b.inner.RemoveNode(node) }

// RemoveEdge removes e, or reports ErrNoSuchEdge.
func (b *Bounded[N, V]) RemoveEdge(e Edge[N]) error { return b.inner.RemoveEdge(e) }

// Discard removes node if present; absent is a no-op.
func (b *Bounded[N, V]) Discard(node N) { b.inner.Discard(node) }

// DiscardEdge removes e if present; absent is a no-op.
func (b *Bounded[N, V]) DiscardEdge(e Edge[N]) { b.inner.DiscardEdge(e) }

// Update merges src into the graph. Every incoming value passes
// through SetValue, so the effective bound of the merge is
// min(b.ValueBound(), any bound src already enforced) — values beyond
// either bound end up absent.
func (b *Bounded[N, V]) Update(src Source[N, V]) error {
	return mergeSource[N, V](b, src)
}

// Clear removes all nodes and edges. The bound is part of the
// instance's configuration and survives.
func (b *Bounded[N, V]) Clear() { b.inner.Clear() }

// Copy returns an independent duplicate wrapping a copy of the inner
// graph, with the same bound.
func (b *Bounded[N, V]) Copy() Graph[N, V] {
	return &Bounded[N, V]{inner: b.inner.Copy(), bound: b.bound}
}

// All yields the graph's nodes.
func (b *Bounded[N, V]) All() iter.Seq[N] { return b.inner.All() }

// Nodes returns a live view of the graph's nodes.
func (b *Bounded[N, V]) Nodes() NodeView[N, V] { return NewNodeView[N, V](b) }

// Edges returns a live view of the graph's edges.
func (b *Bounded[N, V]) Edges() EdgeView[N, V] { return NewEdgeView[N, V](b) }

// Values returns a live view of the values of the graph's edges.
func (b *Bounded[N, V]) Values() ValueView[N, V] { return NewValueView[N, V](b) }

// Items returns a live view of (edge, value) pairs.
func (b *Bounded[N, V]) Items() ItemView[N, V] { return NewItemView[N, V](b) }
