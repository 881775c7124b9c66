// Package graphio provides a concrete, JSON-serializable graph
// description that renders with dot.
//
// # Overview
//
// The dot package deliberately mandates no graph representation. This
// package supplies one anyway for callers that do not have their own:
// a plain [Graph] value with nodes, edges, labels, and open attribute
// lists, decodable from a simple JSON format produced by external
// tools.
//
// # JSON Format
//
// The format has a name, a direction flag, and two arrays:
//
//	{
//	  "name": "deps",
//	  "directed": true,
//	  "nodes": [
//	    {"id": "app"},
//	    {"id": "lib", "label": "Library", "attrs": [{"name": "shape", "value": "box"}]}
//	  ],
//	  "edges": [
//	    {"from": "app", "to": "lib", "label": "uses"}
//	  ]
//	}
//
// Node ids must be unique and edges must reference declared nodes;
// [Graph.Validate] enforces both before anything is emitted.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/matzehuels/dotwalk/pkg/dot"
)

var (
	// ErrMissingNodeID is returned by [Graph.Validate] when a node has no
	// id. Every node needs a non-empty identifier.
	ErrMissingNodeID = errors.New("node id must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.Validate] when two nodes
	// share an id. Node ids must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node id")

	// ErrUnknownSourceNode is returned by [Graph.Validate] when an edge's
	// from field references an undeclared node.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.Validate] when an edge's
	// to field references an undeclared node.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Attr is one name/value attribute pair. Attribute order is preserved
// from the JSON array through to the rendered output.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Node declares a graph vertex. Label defaults to the id when empty.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Attrs []Attr `json:"attrs,omitempty"`
}

// Edge connects two nodes by id. For undirected graphs the from/to
// distinction only fixes the emission order of the endpoints.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
	Attrs []Attr `json:"attrs,omitempty"`
}

// Graph is the serialization format: a named, optionally directed graph
// with labelled nodes and edges. The zero value is an empty undirected
// graph with no name, which fails to render until Name is set.
type Graph struct {
	Name     string `json:"name"`
	Directed bool   `json:"directed,omitempty"`
	Nodes    []Node `json:"nodes"`
	Edges    []Edge `json:"edges"`
}

// Validate checks referential integrity: every node has a unique,
// non-empty id and every edge endpoint references a declared node.
// Errors are wrapped with the offending node or edge.
func (g *Graph) Validate() error {
	byID := make(map[string]bool, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node %d: %w", i, ErrMissingNodeID)
		}
		if byID[n.ID] {
			return fmt.Errorf("node %s: %w", n.ID, ErrDuplicateNodeID)
		}
		byID[n.ID] = true
	}
	for _, e := range g.Edges {
		if !byID[e.From] {
			return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrUnknownSourceNode)
		}
		if !byID[e.To] {
			return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrUnknownTargetNode)
		}
	}
	return nil
}

// Render validates the graph and writes it to w in DOT syntax.
func (g *Graph) Render(w io.Writer) error {
	return g.RenderOptions(w, dot.Options{})
}

// RenderOptions validates the graph and writes it to w, honoring opts.
func (g *Graph) RenderOptions(w io.Writer, opts dot.Options) error {
	if err := g.Validate(); err != nil {
		return err
	}
	return dot.RenderOptions[int, int](view{g: g, byID: g.index()}, w, opts)
}

// index maps node ids to their position in Nodes. Call after Validate;
// later duplicates would silently win otherwise.
func (g *Graph) index() map[string]int {
	byID := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		byID[n.ID] = i
	}
	return byID
}

// ReadJSON decodes a JSON graph from r and validates it.
//
// The returned graph is independent of r and can be modified safely
// after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// WriteJSON encodes g as indented JSON and writes it to w. The output
// can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// view adapts a validated Graph to the dot rendering contract. Node and
// edge handles are indices into the Nodes and Edges slices.
type view struct {
	g    *Graph
	byID map[string]int
}

func (v view) GraphID() dot.ID {
	id, err := dot.NewID(v.g.Name)
	if err != nil {
		return dot.ID{}
	}
	return id
}

func (v view) Kind() dot.Kind {
	if v.g.Directed {
		return dot.Directed
	}
	return dot.Undirected
}

func (v view) Nodes() []int {
	nodes := make([]int, len(v.g.Nodes))
	for i := range nodes {
		nodes[i] = i
	}
	return nodes
}

func (v view) Edges() []int {
	edges := make([]int, len(v.g.Edges))
	for i := range edges {
		edges[i] = i
	}
	return edges
}

func (v view) Source(e int) int { return v.byID[v.g.Edges[e].From] }
func (v view) Target(e int) int { return v.byID[v.g.Edges[e].To] }

func (v view) NodeID(n int) dot.ID {
	id, err := dot.NewID(v.g.Nodes[n].ID)
	if err != nil {
		return dot.ID{}
	}
	return id
}

func (v view) NodeLabel(n int) dot.Label {
	node := v.g.Nodes[n]
	if node.Label != "" {
		return dot.Text(node.Label)
	}
	return dot.Text(node.ID)
}

func (v view) EdgeLabel(e int) dot.Label {
	return dot.Text(v.g.Edges[e].Label)
}

func (v view) NodeAttrs(n int) []dot.Attr {
	return convertAttrs(v.g.Nodes[n].Attrs)
}

func (v view) EdgeAttrs(e int) []dot.Attr {
	return convertAttrs(v.g.Edges[e].Attrs)
}

func convertAttrs(attrs []Attr) []dot.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]dot.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = dot.Attr{Name: a.Name, Value: a.Value}
	}
	return out
}
