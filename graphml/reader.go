package graphml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/graphema/graphema/core"
)

type xmlDocument struct {
	XMLName xml.Name   `xml:"graphml"`
	Keys    []xmlKey   `xml:"key"`
	Graphs  []xmlGraph `xml:"graph"`
}

type xmlKey struct {
	ID      string  `xml:"id,attr"`
	For     string  `xml:"for,attr"`
	Name    string  `xml:"attr.name,attr"`
	Type    string  `xml:"attr.type,attr"`
	Default *string `xml:"default"`
}

type xmlGraph struct {
	ID          string    `xml:"id,attr"`
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []xmlNode `xml:"node"`
	Edges       []xmlEdge `xml:"edge"`
}

type xmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []xmlData `xml:"data"`
}

type xmlEdge struct {
	ID       string    `xml:"id,attr"`
	Source   string    `xml:"source,attr"`
	Target   string    `xml:"target,attr"`
	Directed *bool     `xml:"directed,attr"`
	Data     []xmlData `xml:"data"`
}

type xmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// NodeID is the default node interpretation: the node's document id.
func NodeID(n Node) (string, error) {
	return n.ID, nil
}

// Read decodes a GraphML document and returns one graph per <graph>
// element, in document order.
//
// nodeFn decides node identity from each decoded <node>; valueFn
// decides the edge value from each decoded <edge>, with its typed
// attributes already resolved. Undirected edges contribute both
// orientations.
// Complexity: O(nodes + edges) per graph.
func Read[N, V comparable](r io.Reader, nodeFn func(Node) (N, error), valueFn func(Edge) (V, error)) ([]core.Graph[N, V], error) {
	if nodeFn == nil {
		return nil, fmt.Errorf("node function is nil: %w", core.ErrInvalidArgument)
	}
	if valueFn == nil {
		return nil, fmt.Errorf("value function is nil: %w", core.ErrInvalidArgument)
	}
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphml: %w", err)
	}
	nodeKeys, edgeKeys, err := compileKeys(doc.Keys)
	if err != nil {
		return nil, err
	}

	graphs := make([]core.Graph[N, V], 0, len(doc.Graphs))
	for _, xg := range doc.Graphs {
		g, err := readGraph[N, V](xg, nodeFn, valueFn, nodeKeys, edgeKeys)
		if err != nil {
			return nil, fmt.Errorf("graph %q: %w", xg.ID, err)
		}
		graphs = append(graphs, g)
	}

	return graphs, nil
}

func readGraph[N, V comparable](
	xg xmlGraph,
	nodeFn func(Node) (N, error),
	valueFn func(Edge) (V, error),
	nodeKeys, edgeKeys keyDomain,
) (core.Graph[N, V], error) {
	defaultDirected := xg.EdgeDefault != "undirected"

	g := core.NewAdjacencyGraph[N, V]()
	ids := make(map[string]N, len(xg.Nodes))
	for _, xn := range xg.Nodes {
		if _, ok := ids[xn.ID]; ok {
			return nil, fmt.Errorf("duplicate node id %q: %w", xn.ID, ErrMalformed)
		}
		attrs, err := nodeKeys.compile(xn.Data)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", xn.ID, err)
		}
		node, err := nodeFn(Node{ID: xn.ID, Attributes: attrs})
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", xn.ID, err)
		}
		ids[xn.ID] = node
		g.Add(node)
	}

	for _, xe := range xg.Edges {
		source, ok := ids[xe.Source]
		if !ok {
			return nil, fmt.Errorf("edge %q source %q: %w", xe.ID, xe.Source, ErrUnknownEndpoint)
		}
		target, ok := ids[xe.Target]
		if !ok {
			return nil, fmt.Errorf("edge %q target %q: %w", xe.ID, xe.Target, ErrUnknownEndpoint)
		}
		attrs, err := edgeKeys.compile(xe.Data)
		if err != nil {
			return nil, fmt.Errorf("edge %q: %w", xe.ID, err)
		}
		directed := defaultDirected
		if xe.Directed != nil {
			directed = *xe.Directed
		}
		value, err := valueFn(Edge{
			ID:         xe.ID,
			Source:     xe.Source,
			Target:     xe.Target,
			Directed:   directed,
			Attributes: attrs,
		})
		if err != nil {
			return nil, fmt.Errorf("edge %q: %w", xe.ID, err)
		}
		if err := g.SetValue(core.E(source, target), value); err != nil {
			return nil, err
		}
		if !directed && source != target {
			if err := g.SetValue(core.E(target, source), value); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
