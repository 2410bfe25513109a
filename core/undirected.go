package core

import (
	"fmt"
	"iter"
)

// Undirected wraps an inner graph so that every write mirrors both
// directions and every read is symmetry-consistent, without
// re-implementing storage.
//
// The wrapper owns its inner graph exclusively: constructing an
// Undirected from a pre-existing instance transfers ownership, and no
// other code may mutate the inner graph afterwards. Mirrored writes go
// through the inner graph's own edge operations, so any policy active
// on the inner graph (such as a value bound) applies symmetrically.
//
// The forwarding surface is exactly the Graph contract — inner-graph
// internals are never exposed.
type Undirected[N, V comparable] struct {
	inner Graph[N, V]
}

var _ Graph[int, int] = (*Undirected[int, int])(nil)

// NewUndirected wraps inner, taking ownership, and runs the
// symmetry-repair pass: missing mirrored edges are synthesized from
// the present direction; two present directions that disagree are
// ErrInconsistentEdges. A nil inner graph is ErrInvalidArgument.
// Complexity: O(nodes + edges)
func NewUndirected[N, V comparable](inner Graph[N, V]) (*Undirected[N, V], error) {
	if inner == nil {
		return nil, fmt.Errorf("inner graph is nil: %w", ErrInvalidArgument)
	}
	u := &Undirected[N, V]{inner: inner}
	if err := u.ensureSymmetry(); err != nil {
		return nil, err
	}

	return u, nil
}

// ensureSymmetry repairs the inner graph through its public
// operations only.
func (u *Undirected[N, V]) ensureSymmetry() error {
	patch := make(map[Edge[N]]V)
	for tail := range u.inner.All() {
		adj, err := u.inner.Adjacency(tail)
		if err != nil {
			continue
		}
		for head, value := range adj {
			mirror, err := u.inner.Value(E(head, tail))
			switch {
			case err != nil:
				patch[E(head, tail)] = value
			case mirror != value:
				return fmt.Errorf("edge %v disagrees with its mirror: %w", E(tail, head), ErrInconsistentEdges)
			}
		}
	}
	for e, value := range patch {
		if err := u.inner.SetValue(e, value); err != nil {
			return err
		}
	}

	return nil
}

// Undirected always reports true.
func (u *Undirected[N, V]) Undirected() bool { return true }

// Len returns the number of nodes.
func (u *Undirected[N, V]) Len() int { return u.inner.Len() }

// IsEmpty reports whether the graph has no nodes.
func (u *Undirected[N, V]) IsEmpty() bool { return u.inner.IsEmpty() }

// HasNode reports whether node is in the graph.
func (u *Undirected[N, V]) HasNode(node N) bool { return u.inner.HasNode(node) }

// HasEdge reports whether either orientation of e is present. The
// symmetry invariant makes both equivalent.
func (u *Undirected[N, V]) HasEdge(e Edge[N]) bool { return u.inner.HasEdge(e) }

// Adjacency returns a snapshot of node's edges, or ErrNoSuchNode.
func (u *Undirected[N, V]) Adjacency(node N) (map[N]V, error) { return u.inner.Adjacency(node) }

// Value returns the value shared by both orientations of e, or
// ErrNoSuchEdge.
func (u *Undirected[N, V]) Value(e Edge[N]) (V, error) { return u.inner.Value(e) }

// ValueOr returns the value of e, or fallback when absent.
func (u *Undirected[N, V]) ValueOr(e Edge[N], fallback V) V { return u.inner.ValueOr(e, fallback) }

// Add ensures node is present without touching existing edges.
func (u *Undirected[N, V]) Add(node N) { u.inner.Add(node) }

// AddEdge ensures both orientations of e are present, storing the zero
// value of V when absent.
func (u *Undirected[N, V]) AddEdge(e Edge[N]) error {
	if u.HasEdge(e) {
		return nil
	}
	var zero V

	return u.SetValue(e, zero)
}

// SetValue writes value to both orientations of e through the inner
// graph's own edge-set operation.
func (u *Undirected[N, V]) SetValue(e Edge[N], value V) error {
	if err := u.inner.SetValue(e, value); err != nil {
		return err
	}
	if !e.IsLoop() {
		return u.inner.SetValue(e.Reversed(), value)
	}

	return nil
}

// SetAdjacency replaces node's edges with adj, bidirectionally: stale
// reverse edges pointing at node are removed first, then every new
// edge is installed in both directions. Unknown neighbours are
// ErrNoSuchNode before anything is mutated.
// Complexity: O(old degree + new degree)
func (u *Undirected[N, V]) SetAdjacency(node N, adj map[N]V) error {
	for neighbour := range adj {
		if neighbour != node && !u.inner.HasNode(neighbour) {
			return fmt.Errorf("neighbour %v: %w", neighbour, ErrNoSuchNode)
		}
	}
	u.inner.Add(node)
	if old, err := u.inner.Adjacency(node); err == nil {
		for neighbour := range old {
			if neighbour != node {
				u.inner.DiscardEdge(E(neighbour, node))
			}
		}
	}
	for neighbour, value := range adj {
		if neighbour != node {
			if err := u.inner.SetValue(E(neighbour, node), value); err != nil {
				return err
			}
		}
	}

	return u.inner.SetAdjacency(node, adj)
}

// RemoveNode delegates to the inner graph's own node deletion, which
// fully prunes edges in either direction.
func (u *Undirected[N, V]) RemoveNode(node N) error { return u.inner.RemoveNode(node) }

// RemoveEdge removes both orientations of e, or reports ErrNoSuchEdge.
func (u *Undirected[N, V]) RemoveEdge(e Edge[N]) error {
	if err := u.inner.RemoveEdge(e); err != nil {
		return err
	}
	if !e.IsLoop() {
		u.inner.DiscardEdge(e.Reversed())
	}

	return nil
}

// Discard removes node if present; absent is a no-op.
func (u *Undirected[N, V]) Discard(node N) { u.inner.Discard(node) }

// DiscardEdge removes both orientations of e if present.
func (u *Undirected[N, V]) DiscardEdge(e Edge[N]) {
	u.inner.DiscardEdge(e)
	if !e.IsLoop() {
		u.inner.DiscardEdge(e.Reversed())
	}
}

// Update merges src into the graph. The incoming content is first
// materialized and symmetry-repaired the same way as construction, so
// an asymmetric source fails with ErrInconsistentEdges before anything
// is merged.
// Complexity: O(nodes + edges) of src.
func (u *Undirected[N, V]) Update(src Source[N, V]) error {
	if src == nil {
		return nil
	}
	if g, ok := GraphOf(src); ok && g.Undirected() {
		return mergeSource[N, V](u, src)
	}
	staged, err := buildAdjacency(src, config{undirected: true})
	if err != nil {
		return err
	}

	return mergeSource[N, V](u, From[N, V](staged))
}

// Clear removes all nodes and edges.
func (u *Undirected[N, V]) Clear() { u.inner.Clear() }

// Copy returns an independent duplicate wrapping a copy of the inner
// graph. The copy is already symmetric; no repair pass runs.
func (u *Undirected[N, V]) Copy() Graph[N, V] {
	return &Undirected[N, V]{inner: u.inner.Copy()}
}

// All yields the graph's nodes.
func (u *Undirected[N, V]) All() iter.Seq[N] { return u.inner.All() }

// Nodes returns a live view of the graph's nodes.
func (u *Undirected[N, V]) Nodes() NodeView[N, V] { return NewNodeView[N, V](u) }

// Edges returns a live view yielding each unordered pair exactly once
// in canonical orientation.
func (u *Undirected[N, V]) Edges() EdgeView[N, V] { return NewEdgeView[N, V](u) }

// Values returns a live view of edge values, one per unordered pair.
func (u *Undirected[N, V]) Values() ValueView[N, V] { return NewValueView[N, V](u) }

// Items returns a live view of (edge, value) pairs, one per unordered
// pair.
func (u *Undirected[N, V]) Items() ItemView[N, V] { return NewItemView[N, V](u) }
