// Package operators provides free-standing queries over any
// core.Graph: measures and traversal helpers that need only the
// public graph contract.
//
//   - Density — the ratio of present edges to the non-looping maximum.
//   - Neighbours — the nodes reachable over one outgoing edge.
//   - NeighboursWithin — the same, bounded by a maximum edge value.
//
// All operators treat the graph as read-only.
package operators
