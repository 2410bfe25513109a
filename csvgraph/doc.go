// Package csvgraph reads adjacency-matrix CSV into a graph.
//
// The input is interpreted as a matrix: each row marks the origin of an
// edge, each column its destination. Loops sit on the diagonal; an
// asymmetric matrix yields different values for opposite directions.
// Rows may be fewer than nodes, leaving the trailing nodes without
// outgoing edges.
//
//	a,b,c
//	0,1,2
//	1,0,3
//	2,3,0
//
// Node identity comes from a Header: the first input row (FirstRow,
// MapRow), positional indices (Index) or an explicit list (NodeList).
// Cell text is turned into edge values by a caller-supplied parse
// function; cells whose parsed value fails the ValidEdge test are
// skipped, so a zero cell reads as "no edge" by default.
//
// With Options.Undirected the matrix is treated as symmetric: each row
// contributes only its upper-triangle tail (the diagonal must be
// present) and every entry is mirrored. Shortened triangle rows are
// accepted:
//
//	a,b,c      a,b,c
//	0,1,2      0,1,2
//	1,0,3        0,3
//	2,3,0          0
//
// Errors:
//
//   - ErrEmptyInput — the input has no rows at all.
//   - ErrMatrixShape — a row does not fit the matrix dimensions.
//   - ParseError — positioned wrapper for shape, cell-parse and header
//     failures; match the cause with errors.Is or errors.As.
package csvgraph
