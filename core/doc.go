// Package core defines the graph data model: the Graph contract, the
// Edge pair type, the adjacency-map backend and the composable policy
// wrappers (undirected symmetry, value bounds), plus live views over a
// graph's nodes, edges, values and items.
//
// What:
//
//   - Graph[N, V] is the capability contract every graph-like type
//     satisfies: a container of nodes, an indexer for nodes and edges,
//     a mutator, and a view factory.
//   - AdjacencyGraph is the default backend: node → (neighbour → value)
//     maps, optimal for random access on sparse graphs.
//   - Undirected wraps any graph so every write mirrors both directions
//     and every read is symmetry-consistent.
//   - Bounded wraps any graph so edge values exceeding a fixed bound are
//     dropped instead of stored.
//   - Views are live, non-owning projections; they recompute on every
//     call and reflect the current graph state.
//
// The three-layer model:
//
//  1. primitive nodes (any comparable type),
//  2. edges as ordered node pairs, and
//  3. primitive edge values (any comparable type).
//
// g.Adjacency(a) describes all edges originating at a, while
// g.Value(E(a, b)) is the single value of the directed edge a→b.
// Directed graphs keep E(a, b) and E(b, a) distinct; undirected graphs
// guarantee both resolve to the same value at every observation point.
//
// Construction:
//
//   - named constructors: NewAdjacencyGraph, FromNodes, FromAdjacency,
//     FromGraph;
//   - tagged sources (Nodes, Adjacency, From) with the Build and
//     BuildBounded factories, which compose the right wrapper from
//     options instead of dispatching on argument shape.
//
// Errors:
//
//   - ErrNoSuchNode: node-keyed read or delete on an absent node.
//   - ErrNoSuchEdge: edge-keyed read or delete on an absent edge.
//   - ErrInvalidArgument: malformed construction arguments.
//   - ErrInconsistentEdges: undirected construction found two directions
//     of one edge disagreeing.
//   - ErrInvalidOperation: operation structurally disallowed for a
//     graph variant.
//
// Concurrency: a graph instance is exclusively owned by its caller;
// there is no internal locking. A wrapper owns its inner graph
// exclusively — two wrappers must never share one inner instance.
package core
