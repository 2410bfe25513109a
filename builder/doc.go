// Package builder constructs common graph topologies over the
// caller's own node values: paths, cycles, complete graphs and stars.
//
// Every constructor takes the nodes in order, a WeightFunc assigning a
// value to each emitted edge, and the usual core options — pass
// core.WithUndirected for symmetric variants. Constructors only use
// the public graph contract, so the results behave exactly like
// hand-built graphs.
//
// Errors:
//
//   - ErrTooFewNodes — the node list is below the topology's minimum
//     (2 for Path and Complete, 3 for Cycle, 1 leaf for Star).
//   - core.ErrInvalidArgument — a nil weight function, or a star whose
//     center appears among its leaves.
package builder
