package core

import (
	"fmt"
	"hash/maphash"
	"iter"
)

// Edge is a directed pair of nodes: Tail → Head. Its identity for
// containment and lookup is exactly the ordered endpoint pair; the edge
// carries no payload — values are stored separately per edge.
//
// Edge is a plain value type: E(a, b) == E(a, b) holds, and E(a, b) and
// E(b, a) are distinct in a directed graph. A loop is the degenerate
// case Tail == Head.
type Edge[N comparable] struct {
	// Tail is the origin of the edge.
	Tail N

	// Head is the destination of the edge.
	Head N
}

// E constructs the directed edge tail → head.
// Complexity: O(1)
func E[N comparable](tail, head N) Edge[N] {
	return Edge[N]{Tail: tail, Head: head}
}

// Loop constructs the edge from node to itself.
// Complexity: O(1)
func Loop[N comparable](node N) Edge[N] {
	return Edge[N]{Tail: node, Head: node}
}

// AsLoop validates that e is a loop and returns it unchanged.
// Returns ErrInvalidArgument if the endpoints differ.
// Complexity: O(1)
func AsLoop[N comparable](e Edge[N]) (Edge[N], error) {
	if e.Tail != e.Head {
		return e, fmt.Errorf("loop endpoints %v and %v differ: %w", e.Tail, e.Head, ErrInvalidArgument)
	}

	return e, nil
}

// At returns the endpoint at position i: 0 is the tail, 1 is the head.
// Any other index reports ErrInvalidArgument.
// Complexity: O(1)
func (e Edge[N]) At(i int) (N, error) {
	switch i {
	case 0:
		return e.Tail, nil
	case 1:
		return e.Head, nil
	default:
		var zero N
		return zero, fmt.Errorf("edge index %d out of range [0,1]: %w", i, ErrInvalidArgument)
	}
}

// All yields the tail, then the head — exactly two items. It allows an
// edge to be unpacked with range like any small sequence.
func (e Edge[N]) All() iter.Seq[N] {
	return func(yield func(N) bool) {
		if !yield(e.Tail) {
			return
		}
		yield(e.Head)
	}
}

// Reversed returns the edge with swapped endpoints.
// Complexity: O(1)
func (e Edge[N]) Reversed() Edge[N] {
	return Edge[N]{Tail: e.Head, Head: e.Tail}
}

// IsLoop reports whether both endpoints are the same node.
// Complexity: O(1)
func (e Edge[N]) IsLoop() bool {
	return e.Tail == e.Head
}

// String renders the edge in slice-like notation, "[tail:head]".
func (e Edge[N]) String() string {
	return fmt.Sprintf("[%v:%v]", e.Tail, e.Head)
}

// pairSeed fixes the hash order used to canonicalize unordered node
// pairs for the lifetime of the process.
var pairSeed = maphash.MakeSeed()

// canonicalPair orders two nodes by a stable total order over their
// hashes. Nodes need not be orderable themselves; they are comparable,
// which is exactly what maphash.Comparable requires. The endpoint with
// the larger hash comes first; equal hashes keep the given order.
func canonicalPair[N comparable](a, b N) (N, N) {
	if maphash.Comparable(pairSeed, b) > maphash.Comparable(pairSeed, a) {
		return b, a
	}

	return a, b
}

// UndirectedEdge is an unordered pair of nodes: the edges a:b and b:a
// are the same identity. Endpoints are canonicalized at construction by
// a stable total order over node hashes, so two UndirectedEdge values
// built from either orientation compare equal with ==.
type UndirectedEdge[N comparable] struct {
	Edge[N]
}

// NewUndirectedEdge constructs the unordered edge between a and b.
// NewUndirectedEdge(a, b) == NewUndirectedEdge(b, a) always holds.
// Complexity: O(1)
func NewUndirectedEdge[N comparable](a, b N) UndirectedEdge[N] {
	tail, head := canonicalPair(a, b)

	return UndirectedEdge[N]{Edge[N]{Tail: tail, Head: head}}
}

// Directed returns the canonical directed orientation of the pair.
// Complexity: O(1)
func (e UndirectedEdge[N]) Directed() Edge[N] {
	return e.Edge
}
