// Package graphml reads GraphML XML documents into graphs.
//
// What:
//
//   - Read — decodes a GraphML document and returns one graph per
//     <graph> element.
//   - Node, Edge — the decoded elements handed to caller-supplied
//     functions that decide node identity and edge values.
//   - AttrType — the GraphML attribute types and their Go mapping:
//     boolean→bool, int→int, long→int64, float→float64, double→float64,
//     string→string.
//
// Declared <key> elements type the <data> payloads of nodes and edges;
// a declared default applies wherever an element carries no value. An
// attribute without data and without a default is simply absent, per
// the GraphML primer.
//
// Edge direction follows the graph's edgedefault, overridable per edge
// with the directed attribute. Undirected edges contribute both
// orientations to the resulting graph, so mixed-direction documents
// come out exactly as declared.
//
// Hyperedges, nested graphs and ports are not supported.
//
// Errors:
//
//   - ErrMalformed — structurally invalid documents (duplicate node
//     ids, missing edge endpoints).
//   - ErrUnknownAttrType — a key declares a type outside the GraphML
//     set.
//   - ErrUnknownEndpoint — an edge references an undeclared node.
//   - core.ErrInvalidArgument — nil node or value functions.
package graphml
