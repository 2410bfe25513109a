package core

import (
	"cmp"
	"iter"
	"slices"
)

// Graph is the capability contract every graph-like type satisfies.
//
// Nodes are the primary keys of a graph: Len, All and the membership
// tests operate on nodes, exactly like keys of a map. Edges are ordered
// pairs of nodes addressed by the Edge type; each directed pair carries
// at most one value.
//
// An edge may exist only between nodes already present in the graph:
// SetValue on an unknown endpoint reports ErrNoSuchNode, never inserts
// the node implicitly. Computed-edge graphs are the one exception — all
// pairs of present nodes are implicitly connected there.
//
// Undirected reports a construction-time policy fixed for the whole
// lifetime of the instance: when true, the values of E(a, b) and
// E(b, a) are identical at every observation point, and any single
// write to one direction atomically updates the other.
type Graph[N, V comparable] interface {
	// Undirected reports whether the graph enforces symmetric edges.
	Undirected() bool

	// Len returns the number of nodes.
	Len() int

	// IsEmpty reports whether the graph has no nodes.
	IsEmpty() bool

	// HasNode reports whether node is in the graph.
	HasNode(node N) bool

	// HasEdge reports whether the directed edge e is in the graph. On an
	// undirected graph either orientation matches.
	HasEdge(e Edge[N]) bool

	// Adjacency returns the outgoing edges of node as a neighbour→value
	// snapshot, or ErrNoSuchNode. Mutating the returned map never
	// mutates the graph.
	Adjacency(node N) (map[N]V, error)

	// Value returns the value of the directed edge e, or ErrNoSuchEdge.
	Value(e Edge[N]) (V, error)

	// ValueOr returns the value of e, or fallback if the edge (or either
	// endpoint) is absent. It never reports an error.
	ValueOr(e Edge[N], fallback V) V

	// Add ensures node is present without touching any existing edges.
	// Adding a present node is a no-op.
	Add(node N)

	// AddEdge ensures e is present, storing the zero value of V when the
	// edge was absent. Adding a present edge is a no-op. Reports
	// ErrNoSuchNode if either endpoint is missing.
	AddEdge(e Edge[N]) error

	// SetValue sets the value of the directed edge e, overwriting any
	// previous value. Reports ErrNoSuchNode if either endpoint is
	// missing.
	SetValue(e Edge[N], value V) error

	// SetAdjacency ensures node is present and fully replaces its
	// outgoing edges with adj: any previously present neighbour omitted
	// from adj loses its edge. Reports ErrNoSuchNode if a neighbour in
	// adj is not in the graph; nothing is mutated in that case.
	SetAdjacency(node N, adj map[N]V) error

	// RemoveNode removes node and every edge touching it, or reports
	// ErrNoSuchNode.
	RemoveNode(node N) error

	// RemoveEdge removes the directed edge e (both orientations on an
	// undirected graph), or reports ErrNoSuchEdge.
	RemoveEdge(e Edge[N]) error

	// Discard removes node and its edges if present; absent is a no-op.
	Discard(node N)

	// DiscardEdge removes the edge e if present; absent is a no-op.
	DiscardEdge(e Edge[N])

	// Update merges the nodes, edges and values of src into the graph,
	// overwriting values on conflict and keeping everything src does not
	// mention.
	Update(src Source[N, V]) error

	// Clear removes all nodes and edges.
	Clear()

	// Copy returns an independent shallow duplicate: same node and value
	// identities, fresh containers. Mutating the copy never mutates the
	// original.
	Copy() Graph[N, V]

	// All yields the graph's nodes in implementation-defined order.
	All() iter.Seq[N]

	// Nodes returns a live view of the graph's nodes.
	Nodes() NodeView[N, V]

	// Edges returns a live view of the graph's edges. On an undirected
	// graph each unordered pair is yielded exactly once.
	Edges() EdgeView[N, V]

	// Values returns a live view of the values of the graph's edges.
	Values() ValueView[N, V]

	// Items returns a live view of (edge, value) pairs.
	Items() ItemView[N, V]
}

// Source is a tagged description of graph content used by constructors
// and Update: a flat set of nodes, a nested adjacency mapping, or
// another graph. The variant is chosen by the caller — there is no
// runtime shape inspection.
type Source[N, V comparable] interface {
	sourceNodes() iter.Seq[N]
	sourceItems() iter.Seq2[Edge[N], V]
	sourceGraph() (Graph[N, V], bool)
}

// Nodes describes a node-only source: no edges, no values.
func Nodes[N, V comparable](nodes ...N) Source[N, V] {
	return nodesSource[N, V]{nodes: nodes}
}

// Adjacency describes a nested-mapping source, node → neighbour →
// value. Neighbours referenced only as targets count as nodes too.
func Adjacency[N, V comparable](adj map[N]map[N]V) Source[N, V] {
	return adjacencySource[N, V]{adj: adj}
}

// From describes another graph as a source. For an undirected graph
// both orientations of every edge are produced.
func From[N, V comparable](g Graph[N, V]) Source[N, V] {
	return graphSource[N, V]{g: g}
}

// NodesOf exposes the node sequence of a source to sibling packages
// implementing the Graph contract.
func NodesOf[N, V comparable](src Source[N, V]) iter.Seq[N] {
	return src.sourceNodes()
}

// ItemsOf exposes the (edge, value) sequence of a source to sibling
// packages implementing the Graph contract.
func ItemsOf[N, V comparable](src Source[N, V]) iter.Seq2[Edge[N], V] {
	return src.sourceItems()
}

// GraphOf returns the underlying graph of a From source, if any.
func GraphOf[N, V comparable](src Source[N, V]) (Graph[N, V], bool) {
	return src.sourceGraph()
}

type nodesSource[N, V comparable] struct {
	nodes []N
}

func (s nodesSource[N, V]) sourceNodes() iter.Seq[N] {
	return slices.Values(s.nodes)
}

func (s nodesSource[N, V]) sourceItems() iter.Seq2[Edge[N], V] {
	return func(func(Edge[N], V) bool) {}
}

func (s nodesSource[N, V]) sourceGraph() (Graph[N, V], bool) {
	return nil, false
}

type adjacencySource[N, V comparable] struct {
	adj map[N]map[N]V
}

func (s adjacencySource[N, V]) sourceNodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		seen := make(map[N]struct{}, len(s.adj))
		for node, neighbours := range s.adj {
			if _, ok := seen[node]; !ok {
				seen[node] = struct{}{}
				if !yield(node) {
					return
				}
			}
			for neighbour := range neighbours {
				if _, ok := seen[neighbour]; !ok {
					seen[neighbour] = struct{}{}
					if !yield(neighbour) {
						return
					}
				}
			}
		}
	}
}

func (s adjacencySource[N, V]) sourceItems() iter.Seq2[Edge[N], V] {
	return func(yield func(Edge[N], V) bool) {
		for tail, neighbours := range s.adj {
			for head, value := range neighbours {
				if !yield(E(tail, head), value) {
					return
				}
			}
		}
	}
}

func (s adjacencySource[N, V]) sourceGraph() (Graph[N, V], bool) {
	return nil, false
}

type graphSource[N, V comparable] struct {
	g Graph[N, V]
}

func (s graphSource[N, V]) sourceNodes() iter.Seq[N] {
	return s.g.All()
}

// sourceItems expands every node's full adjacency, so an undirected
// source yields both orientations of each edge.
func (s graphSource[N, V]) sourceItems() iter.Seq2[Edge[N], V] {
	return func(yield func(Edge[N], V) bool) {
		for tail := range s.g.All() {
			adj, err := s.g.Adjacency(tail)
			if err != nil {
				continue
			}
			for head, value := range adj {
				if !yield(E(tail, head), value) {
					return
				}
			}
		}
	}
}

func (s graphSource[N, V]) sourceGraph() (Graph[N, V], bool) {
	return s.g, true
}

// Option configures a graph before creation. Options are applied in
// order; the configuration is fixed for the instance's lifetime.
type Option func(*config)

type config struct {
	undirected bool
}

// WithUndirected makes the graph enforce symmetric edges: every write
// to one direction mirrors the other, and construction from asymmetric
// input runs a symmetry-repair pass.
func WithUndirected() Option {
	return func(c *config) { c.undirected = true }
}

func gatherOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Build constructs the default backend from a tagged source, applying
// options. A nil source yields an empty graph. Undirected construction
// from asymmetric input reports ErrInconsistentEdges.
//
// Build is the single ergonomic entry point; NewAdjacencyGraph,
// FromNodes, FromAdjacency and FromGraph are its named equivalents.
// Complexity: O(nodes + edges) of the source.
func Build[N, V comparable](src Source[N, V], opts ...Option) (Graph[N, V], error) {
	return buildAdjacency(src, gatherOptions(opts))
}

// BuildBounded constructs the default backend from src, then wraps it
// in a Bounded graph enforcing bound. Values exceeding the bound are
// swept away during construction.
// Complexity: O(nodes + edges) of the source.
func BuildBounded[N comparable, V cmp.Ordered](src Source[N, V], bound V, opts ...Option) (*Bounded[N, V], error) {
	base, err := buildAdjacency(src, gatherOptions(opts))
	if err != nil {
		return nil, err
	}

	return NewBounded[N, V](base, bound)
}

// mergeSource implements the shared Update semantics: ensure every
// source node is present, then set every source item through the
// destination's own SetValue, so destination policies (symmetry,
// bounds) stay in force. Incoming values win on conflict; nodes and
// edges the source does not mention are untouched.
func mergeSource[N, V comparable](dst Graph[N, V], src Source[N, V]) error {
	if src == nil {
		return nil
	}
	for node := range src.sourceNodes() {
		dst.Add(node)
	}
	for e, value := range src.sourceItems() {
		if err := dst.SetValue(e, value); err != nil {
			return err
		}
	}

	return nil
}
