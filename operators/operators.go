package operators

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/graphema/graphema/core"
)

// ErrTooFewNodes is returned by Density for graphs with fewer than two
// nodes, where density is undefined.
var ErrTooFewNodes = errors.New("operators: density undefined for fewer than two nodes")

// Density returns the connectedness of g: the ratio of present edges
// to the maximum non-looping edge count n×(n-1).
//
// An edgeless graph has density 0, a complete graph density 1, and a
// graph with loops may exceed 1. On an undirected graph each pair
// counts for both of its orientations.
// Complexity: O(n²)
func Density[N, V comparable](g core.Graph[N, V]) (float64, error) {
	n := g.Len()
	if n <= 1 {
		return 0, fmt.Errorf("%d nodes: %w", n, ErrTooFewNodes)
	}
	edgeCount := 0
	for e := range g.Edges().All() {
		if g.Undirected() && !e.IsLoop() {
			edgeCount += 2
			continue
		}
		edgeCount++
	}

	return float64(edgeCount) / float64(n*(n-1)), nil
}

// Neighbours returns every node reachable from node over one outgoing
// edge, in arbitrary order, or core.ErrNoSuchNode. A loop makes node
// its own neighbour.
// Complexity: O(degree)
func Neighbours[N, V comparable](g core.Graph[N, V], node N) ([]N, error) {
	adj, err := g.Adjacency(node)
	if err != nil {
		return nil, err
	}
	neighbours := make([]N, 0, len(adj))
	for neighbour := range adj {
		neighbours = append(neighbours, neighbour)
	}

	return neighbours, nil
}

// NeighboursWithin returns the neighbours of node whose edge value does
// not exceed maxValue, in arbitrary order, or core.ErrNoSuchNode.
// Complexity: O(degree)
func NeighboursWithin[N comparable, V cmp.Ordered](g core.Graph[N, V], node N, maxValue V) ([]N, error) {
	adj, err := g.Adjacency(node)
	if err != nil {
		return nil, err
	}
	neighbours := make([]N, 0, len(adj))
	for neighbour, value := range adj {
		if value <= maxValue {
			neighbours = append(neighbours, neighbour)
		}
	}

	return neighbours, nil
}
