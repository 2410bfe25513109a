package distance

import (
	"fmt"
	"iter"
	"maps"

	"github.com/graphema/graphema/core"
)

// Func computes the distance between two nodes. On an undirected graph
// the arguments arrive in canonical orientation, so implementations
// need not be symmetric themselves.
type Func[N, V comparable] func(a, b N) V

// Option configures a computed graph before creation.
type Option func(*config)

type config struct {
	directed bool
}

// WithDirected disables pair canonicalization: dist(a, b) and
// dist(b, a) are allowed to differ.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// Graph connects every pair of its nodes by a distance function. Only
// the node set is stored; edge values are computed on demand.
//
// For n nodes, all n×n edges are exposed. Edge enumeration and
// adjacency snapshots may therefore cost O(n²).
type Graph[N, V comparable] struct {
	directed bool
	dist     Func[N, V]
	nodes    map[N]struct{}
}

var _ core.Graph[int, int] = (*Graph[int, int])(nil)

// New creates a computed graph over the given nodes. Distances are
// treated as symmetric unless WithDirected is given. A nil function is
// core.ErrInvalidArgument.
// Complexity: O(len(nodes))
func New[N, V comparable](nodes []N, dist Func[N, V], opts ...Option) (*Graph[N, V], error) {
	if dist == nil {
		return nil, fmt.Errorf("distance function is nil: %w", core.ErrInvalidArgument)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Graph[N, V]{
		directed: cfg.directed,
		dist:     dist,
		nodes:    make(map[N]struct{}, len(nodes)),
	}
	for _, node := range nodes {
		g.nodes[node] = struct{}{}
	}

	return g, nil
}

// canonical maps e to the orientation the distance function sees:
// unchanged when directed, canonical pair order when undirected.
func (g *Graph[N, V]) canonical(e core.Edge[N]) core.Edge[N] {
	if g.directed {
		return e
	}

	return core.NewUndirectedEdge(e.Tail, e.Head).Directed()
}

// Undirected reports whether distances are treated as symmetric.
// Complexity: O(1)
func (g *Graph[N, V]) Undirected() bool { return !g.directed }

// Len returns the number of nodes.
// Complexity: O(1)
func (g *Graph[N, V]) Len() int { return len(g.nodes) }

// IsEmpty reports whether the graph has no nodes.
// Complexity: O(1)
func (g *Graph[N, V]) IsEmpty() bool { return len(g.nodes) == 0 }

// HasNode reports whether node is in the graph.
// Complexity: O(1)
func (g *Graph[N, V]) HasNode(node N) bool {
	_, ok := g.nodes[node]

	return ok
}

// HasEdge reports whether e connects two present nodes. Every such
// pair is implicitly an edge.
// Complexity: O(1)
func (g *Graph[N, V]) HasEdge(e core.Edge[N]) bool {
	return g.HasNode(e.Tail) && g.HasNode(e.Head)
}

// Adjacency returns node's computed distances to every other node,
// excluding node itself, or core.ErrNoSuchNode.
// Complexity: O(n)
func (g *Graph[N, V]) Adjacency(node N) (map[N]V, error) {
	return g.adjacencyVia(node, g.Value)
}

// adjacencyVia synthesizes the adjacency snapshot through the given
// edge reader, so a memoizing override reuses the same shape.
func (g *Graph[N, V]) adjacencyVia(node N, value func(core.Edge[N]) (V, error)) (map[N]V, error) {
	if !g.HasNode(node) {
		return nil, fmt.Errorf("node %v: %w", node, core.ErrNoSuchNode)
	}
	adj := make(map[N]V, len(g.nodes)-1)
	for candidate := range g.nodes {
		if candidate == node {
			continue
		}
		v, err := value(core.E(node, candidate))
		if err != nil {
			return nil, err
		}
		adj[candidate] = v
	}

	return adj, nil
}

// Value computes the distance of e. An absent endpoint is
// core.ErrNoSuchEdge — the pair cannot be an edge, present or not.
// Complexity: O(1) plus the function itself.
func (g *Graph[N, V]) Value(e core.Edge[N]) (V, error) {
	var zero V
	if !g.HasNode(e.Tail) || !g.HasNode(e.Head) {
		return zero, fmt.Errorf("edge %v: %w", e, core.ErrNoSuchEdge)
	}
	c := g.canonical(e)

	return g.dist(c.Tail, c.Head), nil
}

// ValueOr computes the distance of e, or fallback when an endpoint is
// absent.
func (g *Graph[N, V]) ValueOr(e core.Edge[N], fallback V) V {
	if value, err := g.Value(e); err == nil {
		return value
	}

	return fallback
}

// Add ensures node is present.
// Complexity: O(1)
func (g *Graph[N, V]) Add(node N) {
	g.nodes[node] = struct{}{}
}

// AddEdge reports core.ErrInvalidOperation: edges exist by computation,
// not insertion.
func (g *Graph[N, V]) AddEdge(e core.Edge[N]) error {
	return fmt.Errorf("computed graph does not support edge insertion: %w", core.ErrInvalidOperation)
}

// SetValue reports core.ErrInvalidOperation: computed distances cannot
// be assigned.
func (g *Graph[N, V]) SetValue(e core.Edge[N], value V) error {
	return fmt.Errorf("computed graph does not support edge assignment: %w", core.ErrInvalidOperation)
}

// SetAdjacency reports core.ErrInvalidOperation: computed adjacency
// cannot be replaced.
func (g *Graph[N, V]) SetAdjacency(node N, adj map[N]V) error {
	return fmt.Errorf("computed graph does not support adjacency assignment: %w", core.ErrInvalidOperation)
}

// RemoveNode removes node from the node set, or reports
// core.ErrNoSuchNode. All edges through the node implicitly disappear.
// Complexity: O(1)
func (g *Graph[N, V]) RemoveNode(node N) error {
	if !g.HasNode(node) {
		return fmt.Errorf("node %v: %w", node, core.ErrNoSuchNode)
	}
	delete(g.nodes, node)

	return nil
}

// RemoveEdge reports core.ErrInvalidOperation: computed edges cannot be
// deleted. Use Cached for a graph whose edges can be masked out.
func (g *Graph[N, V]) RemoveEdge(e core.Edge[N]) error {
	return fmt.Errorf("computed graph does not support edge deletion: %w", core.ErrInvalidOperation)
}

// Discard removes node if present; absent is a no-op.
// Complexity: O(1)
func (g *Graph[N, V]) Discard(node N) {
	delete(g.nodes, node)
}

// DiscardEdge is a no-op: a computed edge has nothing to remove.
func (g *Graph[N, V]) DiscardEdge(e core.Edge[N]) {}

// Update merges the nodes of src into the graph. Sources carrying
// explicit edge values cannot be merged into a computed graph and
// report core.ErrInvalidOperation.
// Complexity: O(nodes) of src.
func (g *Graph[N, V]) Update(src core.Source[N, V]) error {
	if src == nil {
		return nil
	}
	for range core.ItemsOf(src) {
		return fmt.Errorf("computed graph does not support edge assignment: %w", core.ErrInvalidOperation)
	}
	for node := range core.NodesOf(src) {
		g.Add(node)
	}

	return nil
}

// Clear removes all nodes. The distance function survives.
// Complexity: O(1)
func (g *Graph[N, V]) Clear() {
	g.nodes = make(map[N]struct{})
}

// Copy returns an independent duplicate sharing the same distance
// function.
// Complexity: O(n)
func (g *Graph[N, V]) Copy() core.Graph[N, V] {
	return &Graph[N, V]{
		directed: g.directed,
		dist:     g.dist,
		nodes:    maps.Clone(g.nodes),
	}
}

// All yields the graph's nodes in arbitrary order.
func (g *Graph[N, V]) All() iter.Seq[N] {
	return maps.Keys(g.nodes)
}

// Nodes returns a live view of the graph's nodes.
func (g *Graph[N, V]) Nodes() core.NodeView[N, V] { return core.NewNodeView[N, V](g) }

// Edges returns a live view over all pairs of present nodes.
func (g *Graph[N, V]) Edges() core.EdgeView[N, V] { return core.NewEdgeView[N, V](g) }

// Values returns a live view of computed distances.
func (g *Graph[N, V]) Values() core.ValueView[N, V] { return core.NewValueView[N, V](g) }

// Items returns a live view of (edge, distance) pairs.
func (g *Graph[N, V]) Items() core.ItemView[N, V] { return core.NewItemView[N, V](g) }
