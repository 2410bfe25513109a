package core

import (
	"fmt"
	"iter"
	"maps"
)

// AdjacencyGraph stores edge values in adjacency maps:
// node → (neighbour → value), no auxiliary indexes.
//
// It provides optimal performance for random, direct access to nodes
// and edges, and is optimal in space and time for sparse graphs.
// Ordering of node and edge enumeration is arbitrary.
//
// With WithUndirected, the backend maintains symmetry itself: every
// edge write mirrors the opposite direction in the same storage, and
// construction from asymmetric input either repairs missing mirrors or
// fails with ErrInconsistentEdges when both directions disagree.
type AdjacencyGraph[N, V comparable] struct {
	undirected bool
	adj        map[N]map[N]V
}

// Compile-time contract check.
var _ Graph[int, int] = (*AdjacencyGraph[int, int])(nil)

// NewAdjacencyGraph creates an empty adjacency-map graph.
// Complexity: O(1)
func NewAdjacencyGraph[N, V comparable](opts ...Option) *AdjacencyGraph[N, V] {
	return newAdjacency[N, V](gatherOptions(opts))
}

// FromNodes creates a graph containing the given nodes and no edges.
// Complexity: O(len(nodes))
func FromNodes[N, V comparable](nodes []N, opts ...Option) *AdjacencyGraph[N, V] {
	g := newAdjacency[N, V](gatherOptions(opts))
	for _, node := range nodes {
		g.Add(node)
	}

	return g
}

// FromAdjacency creates a graph from a nested mapping, node →
// neighbour → value. Neighbours referenced only as targets become
// nodes as well. With WithUndirected, a symmetry-repair pass
// synthesizes missing mirrors and reports ErrInconsistentEdges when
// both directions exist with different values.
// Complexity: O(nodes + edges)
func FromAdjacency[N, V comparable](adj map[N]map[N]V, opts ...Option) (*AdjacencyGraph[N, V], error) {
	return buildAdjacency(Adjacency[N, V](adj), gatherOptions(opts))
}

// FromGraph creates a structural copy of src: same node, edge and
// value identities, fresh containers. With WithUndirected, the copy is
// symmetry-repaired the same way as FromAdjacency.
// Complexity: O(nodes + edges)
func FromGraph[N, V comparable](src Graph[N, V], opts ...Option) (*AdjacencyGraph[N, V], error) {
	if src == nil {
		return nil, fmt.Errorf("source graph is nil: %w", ErrInvalidArgument)
	}

	return buildAdjacency(From(src), gatherOptions(opts))
}

func newAdjacency[N, V comparable](cfg config) *AdjacencyGraph[N, V] {
	return &AdjacencyGraph[N, V]{
		undirected: cfg.undirected,
		adj:        make(map[N]map[N]V),
	}
}

// buildAdjacency materializes a source into a fresh backend: nodes
// first, then raw edge installs, then the symmetry-repair pass when
// undirected.
func buildAdjacency[N, V comparable](src Source[N, V], cfg config) (*AdjacencyGraph[N, V], error) {
	g := newAdjacency[N, V](cfg)
	if src != nil {
		for node := range src.sourceNodes() {
			g.Add(node)
		}
		for e, value := range src.sourceItems() {
			g.install(e, value)
		}
	}
	if g.undirected {
		if err := g.ensureSymmetry(); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// install writes one directed value without endpoint checks or
// mirroring; construction only.
func (g *AdjacencyGraph[N, V]) install(e Edge[N], value V) {
	g.Add(e.Tail)
	g.Add(e.Head)
	g.adj[e.Tail][e.Head] = value
}

// ensureSymmetry makes the adjacency maps symmetric: missing inverted
// edges are synthesized from the present direction; a present inverted
// edge with a different value is ErrInconsistentEdges.
func (g *AdjacencyGraph[N, V]) ensureSymmetry() error {
	patch := make(map[Edge[N]]V)
	for tail, neighbours := range g.adj {
		for head, value := range neighbours {
			mirror, ok := g.adj[head][tail]
			switch {
			case !ok:
				patch[E(head, tail)] = value
			case mirror != value:
				return fmt.Errorf("edge %v disagrees with its mirror: %w", E(tail, head), ErrInconsistentEdges)
			}
		}
	}
	for e, value := range patch {
		g.install(e, value)
	}

	return nil
}

// Undirected reports whether the graph enforces symmetric edges.
// Complexity: O(1)
func (g *AdjacencyGraph[N, V]) Undirected() bool { return g.undirected }

// Len returns the number of nodes.
// Complexity: O(1)
func (g *AdjacencyGraph[N, V]) Len() int { return len(g.adj) }

// IsEmpty reports whether the graph has no nodes.
// Complexity: O(1)
func (g *AdjacencyGraph[N, V]) IsEmpty() bool { return len(g.adj) == 0 }

// HasNode reports whether node is in the graph.
// Complexity: O(1)
func (g *AdjacencyGraph[N, V]) HasNode(node N) bool {
	_, ok := g.adj[node]

	return ok
}

// HasEdge reports whether the directed edge e is present.
// Complexity: O(1)
func (g *AdjacencyGraph[N, V]) HasEdge(e Edge[N]) bool {
	neighbours, ok := g.adj[e.Tail]
	if !ok {
		return false
	}
	_, ok = neighbours[e.Head]

	return ok
}

// Adjacency returns a snapshot of node's outgoing edges as a
// neighbour→value map, or ErrNoSuchNode.
// Complexity: O(degree)
func (g *AdjacencyGraph[N, V]) Adjacency(node N) (map[N]V, error) {
	neighbours, ok := g.adj[node]
	if !ok {
		return nil, fmt.Errorf("node %v: %w", node, ErrNoSuchNode)
	}

	return maps.Clone(neighbours), nil
}

// Value returns the value of the directed edge e, descending both map
// levels; either level missing is ErrNoSuchEdge.
// Complexity: O(1)
func (g *AdjacencyGraph[N, V]) Value(e Edge[N]) (V, error) {
	var zero V
	neighbours, ok := g.adj[e.Tail]
	if !ok {
		return zero, fmt.Errorf("edge %v: %w", e, ErrNoSuchEdge)
	}
	value, ok := neighbours[e.Head]
	if !ok {
		return zero, fmt.Errorf("edge %v: %w", e, ErrNoSuchEdge)
	}

	return value, nil
}

// ValueOr returns the value of e, or fallback when absent.
// Complexity: O(1)
func (g *AdjacencyGraph[N, V]) ValueOr(e Edge[N], fallback V) V {
	if value, err := g.Value(e); err == nil {
		return value
	}

	return fallback
}

// Add ensures node is present without touching existing edges.
// Complexity: O(1)
func (g *AdjacencyGraph[N, V]) Add(node N) {
	if _, ok := g.adj[node]; !ok {
		g.adj[node] = make(map[N]V)
	}
}

// AddEdge ensures e is present, storing the zero value of V when
// absent. Present edges are untouched.
// Complexity: O(1)
func (g *AdjacencyGraph[N, V]) AddEdge(e Edge[N]) error {
	if g.HasEdge(e) {
		return nil
	}
	var zero V

	return g.SetValue(e, zero)
}

// SetValue sets the value of the directed edge e. Both endpoints must
// already be present (ErrNoSuchNode otherwise). On an undirected graph
// the same value is mirrored onto the opposite direction directly.
// Complexity: O(1)
func (g *AdjacencyGraph[N, V]) SetValue(e Edge[N], value V) error {
	if _, ok := g.adj[e.Head]; !ok {
		return fmt.Errorf("edge %v head: %w", e, ErrNoSuchNode)
	}
	neighbours, ok := g.adj[e.Tail]
	if !ok {
		return fmt.Errorf("edge %v tail: %w", e, ErrNoSuchNode)
	}
	neighbours[e.Head] = value
	if g.undirected {
		g.adj[e.Head][e.Tail] = value
	}

	return nil
}

// SetAdjacency ensures node is present and fully replaces its outgoing
// edges with adj. Every neighbour must already be present, except node
// itself in a loop (ErrNoSuchNode otherwise; nothing is mutated then).
// On an undirected graph, stale mirrored incoming edges are removed
// before the mirrored outgoing set is installed.
// Complexity: O(old degree + new degree)
func (g *AdjacencyGraph[N, V]) SetAdjacency(node N, adj map[N]V) error {
	for neighbour := range adj {
		if neighbour == node {
			continue
		}
		if _, ok := g.adj[neighbour]; !ok {
			return fmt.Errorf("neighbour %v: %w", neighbour, ErrNoSuchNode)
		}
	}
	if g.undirected {
		if old, ok := g.adj[node]; ok {
			for neighbour := range old {
				if neighbour != node {
					delete(g.adj[neighbour], node)
				}
			}
		}
	}
	g.adj[node] = maps.Clone(adj)
	if g.adj[node] == nil {
		g.adj[node] = make(map[N]V)
	}
	if g.undirected {
		for neighbour, value := range adj {
			if neighbour != node {
				g.adj[neighbour][node] = value
			}
		}
	}

	return nil
}

// RemoveNode removes node and every edge touching it, or reports
// ErrNoSuchNode. An undirected graph prunes reverse edges through the
// removed node's own adjacency; a directed graph must scan all
// remaining nodes for stale incoming edges.
// Complexity: O(degree) undirected, O(n) directed.
func (g *AdjacencyGraph[N, V]) RemoveNode(node N) error {
	old, ok := g.adj[node]
	if !ok {
		return fmt.Errorf("node %v: %w", node, ErrNoSuchNode)
	}
	delete(g.adj, node)
	if g.undirected {
		for neighbour := range old {
			if neighbour != node {
				delete(g.adj[neighbour], node)
			}
		}

		return nil
	}
	for _, neighbours := range g.adj {
		delete(neighbours, node)
	}

	return nil
}

// RemoveEdge removes the directed edge e, or reports ErrNoSuchEdge. On
// an undirected graph the mirrored direction is removed as well.
// Complexity: O(1)
func (g *AdjacencyGraph[N, V]) RemoveEdge(e Edge[N]) error {
	neighbours, ok := g.adj[e.Tail]
	if !ok {
		return fmt.Errorf("edge %v: %w", e, ErrNoSuchEdge)
	}
	if _, ok = neighbours[e.Head]; !ok {
		return fmt.Errorf("edge %v: %w", e, ErrNoSuchEdge)
	}
	delete(neighbours, e.Head)
	if g.undirected && !e.IsLoop() {
		delete(g.adj[e.Head], e.Tail)
	}

	return nil
}

// Discard removes node if present; absent is a no-op.
// Complexity: O(degree) undirected, O(n) directed.
func (g *AdjacencyGraph[N, V]) Discard(node N) {
	if g.HasNode(node) {
		_ = g.RemoveNode(node)
	}
}

// DiscardEdge removes e if present; absent is a no-op.
// Complexity: O(1)
func (g *AdjacencyGraph[N, V]) DiscardEdge(e Edge[N]) {
	if g.HasEdge(e) {
		_ = g.RemoveEdge(e)
	}
}

// Update merges src into the graph node-by-node, preferring incoming
// values on conflict and preserving nodes src does not mention. Writes
// go through SetValue, so the undirected mirror stays consistent.
// Complexity: O(nodes + edges) of src.
func (g *AdjacencyGraph[N, V]) Update(src Source[N, V]) error {
	return mergeSource[N, V](g, src)
}

// Clear removes all nodes and edges.
// Complexity: O(1)
func (g *AdjacencyGraph[N, V]) Clear() {
	g.adj = make(map[N]map[N]V)
}

// Copy returns an independent shallow duplicate: fresh adjacency maps,
// identical node and value identities.
// Complexity: O(nodes + edges)
func (g *AdjacencyGraph[N, V]) Copy() Graph[N, V] {
	dup := &AdjacencyGraph[N, V]{
		undirected: g.undirected,
		adj:        make(map[N]map[N]V, len(g.adj)),
	}
	for node, neighbours := range g.adj {
		dup.adj[node] = maps.Clone(neighbours)
	}

	return dup
}

// All yields the graph's nodes in arbitrary order.
func (g *AdjacencyGraph[N, V]) All() iter.Seq[N] {
	return maps.Keys(g.adj)
}

// Nodes returns a live view of the graph's nodes.
func (g *AdjacencyGraph[N, V]) Nodes() NodeView[N, V] { return NewNodeView[N, V](g) }

// Edges returns a live view of the graph's edges.
func (g *AdjacencyGraph[N, V]) Edges() EdgeView[N, V] { return NewEdgeView[N, V](g) }

// Values returns a live view of the values of the graph's edges.
func (g *AdjacencyGraph[N, V]) Values() ValueView[N, V] { return NewValueView[N, V](g) }

// Items returns a live view of (edge, value) pairs.
func (g *AdjacencyGraph[N, V]) Items() ItemView[N, V] { return NewItemView[N, V](g) }
