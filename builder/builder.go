package builder

import (
	"errors"
	"fmt"

	"github.com/graphema/graphema/core"
)

// Topology minima.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 2
	minStarLeaves    = 1
)

// ErrTooFewNodes indicates that the node list is smaller than the
// requested topology allows.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// WeightFunc assigns the value of the edge from a to b. Constructors
// call it once per emitted edge, in deterministic order.
type WeightFunc[N, V comparable] func(a, b N) V

// Constant returns a WeightFunc assigning the same value to every
// edge.
func Constant[N, V comparable](value V) WeightFunc[N, V] {
	return func(N, N) V { return value }
}

// Path builds the path nodes[0] — nodes[1] — … — nodes[n-1]: n-1
// consecutive edges, no others. At least two nodes are required.
// Complexity: O(n)
func Path[N, V comparable](nodes []N, weight WeightFunc[N, V], opts ...core.Option) (core.Graph[N, V], error) {
	if len(nodes) < minPathNodes {
		return nil, fmt.Errorf("path over %d nodes, need %d: %w", len(nodes), minPathNodes, ErrTooFewNodes)
	}
	g, err := emptyGraph[N, V](nodes, weight, opts)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(nodes); i++ {
		if err := g.SetValue(core.E(nodes[i-1], nodes[i]), weight(nodes[i-1], nodes[i])); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle builds the cycle nodes[0] — … — nodes[n-1] — nodes[0]: a path
// plus the closing edge. At least three nodes are required.
// Complexity: O(n)
func Cycle[N, V comparable](nodes []N, weight WeightFunc[N, V], opts ...core.Option) (core.Graph[N, V], error) {
	if len(nodes) < minCycleNodes {
		return nil, fmt.Errorf("cycle over %d nodes, need %d: %w", len(nodes), minCycleNodes, ErrTooFewNodes)
	}
	g, err := Path(nodes, weight, opts...)
	if err != nil {
		return nil, err
	}
	last, first := nodes[len(nodes)-1], nodes[0]
	if err := g.SetValue(core.E(last, first), weight(last, first)); err != nil {
		return nil, err
	}

	return g, nil
}

// Complete builds the complete graph over nodes: every ordered pair of
// distinct nodes gets an edge, no loops. With core.WithUndirected each
// unordered pair is weighted once and mirrored. At least two nodes are
// required.
// Complexity: O(n²)
func Complete[N, V comparable](nodes []N, weight WeightFunc[N, V], opts ...core.Option) (core.Graph[N, V], error) {
	if len(nodes) < minCompleteNodes {
		return nil, fmt.Errorf("complete graph over %d nodes, need %d: %w", len(nodes), minCompleteNodes, ErrTooFewNodes)
	}
	g, err := emptyGraph[N, V](nodes, weight, opts)
	if err != nil {
		return nil, err
	}
	for i, tail := range nodes {
		heads := nodes
		if g.Undirected() {
			heads = nodes[i+1:]
		}
		for _, head := range heads {
			if head == tail {
				continue
			}
			if err := g.SetValue(core.E(tail, head), weight(tail, head)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Star builds a hub-and-spokes topology: one edge from center to every
// leaf. The center must not appear among the leaves. At least one leaf
// is required.
// Complexity: O(len(leaves))
func Star[N, V comparable](center N, leaves []N, weight WeightFunc[N, V], opts ...core.Option) (core.Graph[N, V], error) {
	if len(leaves) < minStarLeaves {
		return nil, fmt.Errorf("star with %d leaves, need %d: %w", len(leaves), minStarLeaves, ErrTooFewNodes)
	}
	for _, leaf := range leaves {
		if leaf == center {
			return nil, fmt.Errorf("star center %v appears among leaves: %w", center, core.ErrInvalidArgument)
		}
	}
	g, err := emptyGraph[N, V](append([]N{center}, leaves...), weight, opts)
	if err != nil {
		return nil, err
	}
	for _, leaf := range leaves {
		if err := g.SetValue(core.E(center, leaf), weight(center, leaf)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// emptyGraph validates the weight function and creates the node-only
// graph every topology starts from.
func emptyGraph[N, V comparable](nodes []N, weight WeightFunc[N, V], opts []core.Option) (core.Graph[N, V], error) {
	if weight == nil {
		return nil, fmt.Errorf("weight function is nil: %w", core.ErrInvalidArgument)
	}

	return core.FromNodes[N, V](nodes, opts...), nil
}
