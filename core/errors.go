// Package core: sentinel error set.
//
// Only package-level sentinels are exposed; callers branch on semantics
// with errors.Is. Implementations attach context by wrapping with
// fmt.Errorf("...: %w", ErrX) — the sentinel stays matchable.
//
// get/discard style helpers (ValueOr, Discard, DiscardEdge) swallow
// ErrNoSuchNode and ErrNoSuchEdge by contract; every other error
// propagates to the caller unchanged.

package core

import "errors"

var (
	// ErrNoSuchNode indicates a node-keyed read or delete referenced a
	// node that is not in the graph.
	ErrNoSuchNode = errors.New("core: node not found")

	// ErrNoSuchEdge indicates an edge-keyed read or delete referenced an
	// edge that is not in the graph. Both endpoints may well exist; the
	// edge between them does not.
	ErrNoSuchEdge = errors.New("core: edge not found")

	// ErrInvalidArgument indicates malformed construction arguments:
	// a nil inner graph, a nil callback, an out-of-range index.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrInconsistentEdges indicates that the symmetry-repair pass of an
	// undirected construction or update found both directions of an edge
	// present with disagreeing values. This is never silently resolved.
	ErrInconsistentEdges = errors.New("core: asymmetric edge values in undirected graph")

	// ErrInvalidOperation indicates an operation that is structurally
	// disallowed for a graph variant, such as a direct edge write on a
	// computed-distance graph.
	ErrInvalidOperation = errors.New("core: operation not supported by this graph")
)
