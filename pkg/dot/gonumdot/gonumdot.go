// Package gonumdot adapts gonum graph types to the dot rendering
// contract.
//
// Wrap any concrete gonum graph (the simple and multi packages both
// qualify) in a [Graph] and pass it to dot.Render:
//
//	g := simple.NewDirectedGraph()
//	g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(1)))
//	deps := &gonumdot.Graph{Name: "deps", G: g}
//	err := deps.Render(os.Stdout)
//
// Nodes carrying a DOTID method (gonum's encoding/dot convention) keep
// that name in the output; nodes and edges implementing
// encoding.Attributer contribute their attribute lists unchanged.
package gonumdot

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"

	"github.com/matzehuels/dotwalk/pkg/dot"
)

// Edged is the slice of gonum's graph API the adapter needs: topology
// plus an edge iterator. Every concrete gonum graph type provides it.
type Edged interface {
	graph.Graph
	Edges() graph.Edges
}

// dotIDer matches gonum's encoding/dot node extension.
type dotIDer interface {
	DOTID() string
}

// Graph exposes a gonum graph as a dot.Graph.
//
// Because gonum iterates nodes and edges in map order, the adapter sorts
// both by node ID so rendering the same graph twice produces identical
// output.
type Graph struct {
	// Name becomes the graph identifier. It must be non-empty or the
	// render fails.
	Name string
	// G is the wrapped gonum graph.
	G Edged
}

// Render writes the wrapped graph to w in DOT syntax.
func (a *Graph) Render(w io.Writer) error {
	return dot.Render[graph.Node, graph.Edge](a, w)
}

// GraphID returns the configured graph name.
func (a *Graph) GraphID() dot.ID {
	id, err := dot.NewID(a.Name)
	if err != nil {
		return dot.ID{}
	}
	return id
}

// Kind reports Directed when the wrapped graph implements gonum's
// directed interface.
func (a *Graph) Kind() dot.Kind {
	if _, ok := a.G.(graph.Directed); ok {
		return dot.Directed
	}
	return dot.Undirected
}

// Nodes returns all nodes sorted by gonum node ID.
func (a *Graph) Nodes() []graph.Node {
	nodes := graph.NodesOf(a.G.Nodes())
	slices.SortFunc(nodes, func(x, y graph.Node) int {
		return cmp.Compare(x.ID(), y.ID())
	})
	return nodes
}

// Edges returns all edges sorted by source then target node ID.
func (a *Graph) Edges() []graph.Edge {
	edges := graph.EdgesOf(a.G.Edges())
	slices.SortFunc(edges, func(x, y graph.Edge) int {
		if c := cmp.Compare(x.From().ID(), y.From().ID()); c != 0 {
			return c
		}
		return cmp.Compare(x.To().ID(), y.To().ID())
	})
	return edges
}

// Source returns the edge's from node.
func (a *Graph) Source(e graph.Edge) graph.Node { return e.From() }

// Target returns the edge's to node.
func (a *Graph) Target(e graph.Edge) graph.Node { return e.To() }

// NodeID names a node after its DOTID when the node provides one, and
// N<id> otherwise.
func (a *Graph) NodeID(n graph.Node) dot.ID {
	if d, ok := n.(dotIDer); ok {
		if id, err := dot.NewID(d.DOTID()); err == nil {
			return id
		}
	}
	return dot.MustID(fmt.Sprintf("N%d", n.ID()))
}

// NodeAttrs passes through the node's encoding.Attributer list, if any.
func (a *Graph) NodeAttrs(n graph.Node) []dot.Attr {
	at, ok := n.(encoding.Attributer)
	if !ok {
		return nil
	}
	return convertAttrs(at.Attributes())
}

// EdgeAttrs passes through the edge's encoding.Attributer list, if any.
func (a *Graph) EdgeAttrs(e graph.Edge) []dot.Attr {
	at, ok := e.(encoding.Attributer)
	if !ok {
		return nil
	}
	return convertAttrs(at.Attributes())
}

func convertAttrs(attrs []encoding.Attribute) []dot.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]dot.Attr, len(attrs))
	for i, kv := range attrs {
		out[i] = dot.Attr{Name: kv.Key, Value: kv.Value}
	}
	return out
}
