// Package distance provides graphs whose edges are computed by a
// distance function instead of being stored.
//
// What:
//
//   - Func — a distance function dist(a, b) over any comparable node
//     type.
//   - Graph — a node set plus a Func: every pair of present nodes is
//     implicitly connected, and reading an edge calls the function.
//   - Cached — a Graph that memoizes each computed edge, with a
//     configurable maximum distance standing in for "removed" edges.
//
// Why:
//
// Dense metric spaces make stored adjacency wasteful: for n nodes all
// n×n edges exist anyway, so only the nodes and the function need to
// live in memory. The trade-off is that edge enumeration and adjacency
// snapshots are O(n) per node and O(n²) overall.
//
// Both types satisfy the core.Graph contract. The structural parts —
// node membership, removal, views — behave exactly like any other
// graph. The computed parts are read-only: assigning or deleting an
// edge reports core.ErrInvalidOperation, since an edge's value is
// defined by the function, not by storage. Cached is the exception for
// deletion: removing a cached edge overwrites its memo with the
// configured maximum distance, so the pair reads as maximally distant
// from then on.
//
// By default distances are treated as symmetric (dist(a, b) equals
// dist(b, a)) and each unordered pair is canonicalized before the
// function is called, so the function body only ever sees one
// orientation. Use WithDirected for asymmetric metrics.
//
// Errors:
//
//   - core.ErrNoSuchEdge — an edge read with an absent endpoint.
//   - core.ErrNoSuchNode — a node operation on an absent node.
//   - core.ErrInvalidOperation — any attempt to write edge values.
//   - core.ErrInvalidArgument — construction with a nil function.
package distance
