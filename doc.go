// Package graphema is a generic graph abstraction: one uniform contract
// for nodes, directed or undirected edges and edge-attached values, with
// several interchangeable storage backends behind it.
//
// What you get:
//
//	core/      — the Graph contract, the adjacency-map backend, the
//	             undirected and bounded wrappers, and live views
//	             (nodes, edges, values, items)
//	distance/  — graphs whose edges are computed by a distance function,
//	             with an optional memoizing variant
//	csvgraph/  — read a graph from a delimited matrix of edge values
//	graphml/   — read graphs from GraphML documents
//	operators/ — density and (bounded) neighbourhood enumeration
//	builder/   — deterministic topology constructors (path, cycle,
//	             complete, star) built on the public contract
//
// Why graphema?
//
//   - One contract, many storages — wrappers compose policies (symmetry,
//     value bounds) around any backend without re-implementing storage.
//   - Typed throughout — nodes are any comparable type, edge values any
//     comparable type; no interface{} juggling at call sites.
//   - Pure Go, no hidden dependencies beyond the test suite.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square: four nodes, four undirected edges.
//
// Dive into each package's doc.go for contracts, errors and complexity
// notes.
package graphema
