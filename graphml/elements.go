package graphml

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformed is returned for structurally invalid documents.
	ErrMalformed = errors.New("graphml: malformed document")

	// ErrUnknownAttrType is returned when a key declares an attribute
	// type outside the GraphML set.
	ErrUnknownAttrType = errors.New("graphml: unknown attribute type")

	// ErrUnknownEndpoint is returned when an edge references a node the
	// document never declares.
	ErrUnknownEndpoint = errors.New("graphml: edge endpoint not declared")
)

// AttrType is a GraphML attribute type, determining the Go type of
// decoded attribute values.
type AttrType string

const (
	// Boolean decodes to bool.
	Boolean AttrType = "boolean"
	// Int decodes to int.
	Int AttrType = "int"
	// Long decodes to int64.
	Long AttrType = "long"
	// Float decodes to float64.
	Float AttrType = "float"
	// Double decodes to float64.
	Double AttrType = "double"
	// String decodes to string.
	String AttrType = "string"
)

// convert interprets attribute text according to the declared type.
func (t AttrType) convert(text string) (any, error) {
	text = strings.TrimSpace(text)
	switch t {
	case Boolean:
		return strconv.ParseBool(text)
	case Int:
		return strconv.Atoi(text)
	case Long:
		return strconv.ParseInt(text, 10, 64)
	case Float, Double:
		return strconv.ParseFloat(text, 64)
	case String:
		return text, nil
	default:
		return nil, fmt.Errorf("%q: %w", string(t), ErrUnknownAttrType)
	}
}

// Node is a decoded GraphML node: its document id and its typed
// attributes, defaults applied.
type Node struct {
	ID         string
	Attributes map[string]any
}

// Edge is a decoded GraphML edge. Source and Target are node ids;
// Directed reflects the graph's edgedefault unless overridden on the
// edge itself.
type Edge struct {
	ID         string
	Source     string
	Target     string
	Directed   bool
	Attributes map[string]any
}

// key is a declared GraphML attribute: <key id=.. for=.. attr.name=..
// attr.type=..> with an optional typed default.
type key struct {
	id         string
	name       string
	attrType   AttrType
	def        any
	hasDefault bool
}

// keyDomain holds the keys declared for one element domain ("node" or
// "edge"); keys declared for "all" belong to both.
type keyDomain struct {
	keys []key
}

// compile resolves the attributes of one element: declared data is
// converted through the key's type, missing data falls back to the
// key's default, and a key with neither stays absent.
func (d keyDomain) compile(data []xmlData) (map[string]any, error) {
	text := make(map[string]string, len(data))
	for _, item := range data {
		text[item.Key] = item.Value
	}
	attrs := make(map[string]any, len(d.keys))
	for _, k := range d.keys {
		raw, ok := text[k.id]
		if !ok {
			if k.hasDefault {
				attrs[k.name] = k.def
			}
			continue
		}
		value, err := k.attrType.convert(raw)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k.name, err)
		}
		attrs[k.name] = value
	}

	return attrs, nil
}

// compileKeys splits the declared keys into node and edge domains,
// converting defaults through their declared type up front.
func compileKeys(declared []xmlKey) (nodes, edges keyDomain, err error) {
	for _, xk := range declared {
		k := key{id: xk.ID, name: xk.Name, attrType: AttrType(xk.Type)}
		switch k.attrType {
		case Boolean, Int, Long, Float, Double, String:
		default:
			return nodes, edges, fmt.Errorf("key %q type %q: %w", xk.ID, xk.Type, ErrUnknownAttrType)
		}
		if xk.Default != nil {
			k.def, err = k.attrType.convert(*xk.Default)
			if err != nil {
				return nodes, edges, fmt.Errorf("key %q default: %w", xk.ID, err)
			}
			k.hasDefault = true
		}
		switch xk.For {
		case "node":
			nodes.keys = append(nodes.keys, k)
		case "edge":
			edges.keys = append(edges.keys, k)
		case "all", "":
			nodes.keys = append(nodes.keys, k)
			edges.keys = append(edges.keys, k)
		case "graph", "graphml", "port", "endpoint", "hyperedge":
			// declared for an element kind this reader does not attribute
		default:
			return nodes, edges, fmt.Errorf("key %q domain %q: %w", xk.ID, xk.For, ErrMalformed)
		}
	}

	return nodes, edges, nil
}
