package core

import "iter"

// Views are dynamic, non-owning projections of a graph's content. A
// view holds only a back-reference to its parent graph and computes
// its contents lazily on every call: any change to the graph is
// reflected by the view. A view must never outlive its graph, and
// mutating the graph while iterating a view is undefined.
//
// Lengths are computed by full enumeration on every call — O(n) for
// nodes, O(n²) for edge-derived views — never cached.

// NodeView is a live view on the nodes of a graph.
type NodeView[N, V comparable] struct {
	g Graph[N, V]
}

// NewNodeView creates a node view over g.
func NewNodeView[N, V comparable](g Graph[N, V]) NodeView[N, V] {
	return NodeView[N, V]{g: g}
}

// Len returns the number of nodes.
func (v NodeView[N, V]) Len() int { return v.g.Len() }

// Contains reports whether node is in the graph.
func (v NodeView[N, V]) Contains(node N) bool { return v.g.HasNode(node) }

// All yields the graph's nodes.
func (v NodeView[N, V]) All() iter.Seq[N] { return v.g.All() }

// EdgeView is a live view on the edges of a graph.
//
// A directed graph yields every present ordered pair. An undirected
// graph yields each unordered pair exactly once, in its canonical
// orientation (see NewUndirectedEdge).
type EdgeView[N, V comparable] struct {
	g Graph[N, V]
}

// NewEdgeView creates an edge view over g.
func NewEdgeView[N, V comparable](g Graph[N, V]) EdgeView[N, V] {
	return EdgeView[N, V]{g: g}
}

// Contains reports whether e is an edge of the graph. On an undirected
// graph either orientation matches.
func (v EdgeView[N, V]) Contains(e Edge[N]) bool { return v.g.HasEdge(e) }

// Len counts the edges by full enumeration.
func (v EdgeView[N, V]) Len() int {
	n := 0
	for range v.All() {
		n++
	}

	return n
}

// All yields the graph's edges: the cartesian product of nodes filtered
// to present edges, each unordered pair once when undirected.
func (v EdgeView[N, V]) All() iter.Seq[Edge[N]] {
	if v.g.Undirected() {
		return v.allUndirected()
	}

	return func(yield func(Edge[N]) bool) {
		for tail := range v.g.All() {
			for head := range v.g.All() {
				e := E(tail, head)
				if v.g.HasEdge(e) && !yield(e) {
					return
				}
			}
		}
	}
}

func (v EdgeView[N, V]) allUndirected() iter.Seq[Edge[N]] {
	return func(yield func(Edge[N]) bool) {
		done := make(map[N]struct{}, v.g.Len())
		for tail := range v.g.All() {
			for head := range v.g.All() {
				if _, ok := done[head]; ok {
					continue
				}
				if v.g.HasEdge(E(tail, head)) {
					if !yield(NewUndirectedEdge(tail, head).Directed()) {
						return
					}
				}
			}
			done[tail] = struct{}{}
		}
	}
}

// ValueView is a live view on the values of a graph's edges.
type ValueView[N, V comparable] struct {
	g Graph[N, V]
}

// NewValueView creates a value view over g.
func NewValueView[N, V comparable](g Graph[N, V]) ValueView[N, V] {
	return ValueView[N, V]{g: g}
}

// Contains reports whether any edge carries the given value.
func (v ValueView[N, V]) Contains(value V) bool {
	for _, present := range v.g.Items().All() {
		if present == value {
			return true
		}
	}

	return false
}

// Len counts the edge values by full enumeration.
func (v ValueView[N, V]) Len() int { return v.g.Edges().Len() }

// All yields the value of every present edge, one per edge yielded by
// the edge view.
func (v ValueView[N, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range v.g.Items().All() {
			if !yield(value) {
				return
			}
		}
	}
}

// ItemView is a live view on a graph's edges and their values as
// (edge, value) pairs: the edge E(a, b) with value c corresponds to
// the item (E(a, b), c).
type ItemView[N, V comparable] struct {
	g Graph[N, V]
}

// NewItemView creates an item view over g.
func NewItemView[N, V comparable](g Graph[N, V]) ItemView[N, V] {
	return ItemView[N, V]{g: g}
}

// Contains reports whether edge e is present with exactly the given
// value.
func (v ItemView[N, V]) Contains(e Edge[N], value V) bool {
	present, err := v.g.Value(e)

	return err == nil && present == value
}

// Len counts the items by full enumeration.
func (v ItemView[N, V]) Len() int { return v.g.Edges().Len() }

// All yields every present edge together with its value.
func (v ItemView[N, V]) All() iter.Seq2[Edge[N], V] {
	return func(yield func(Edge[N], V) bool) {
		for e := range v.g.Edges().All() {
			value, err := v.g.Value(e)
			if err != nil {
				continue
			}
			if !yield(e, value) {
				return
			}
		}
	}
}
