package dot

// Graph is the read-only contract a caller's graph type must satisfy to
// be rendered. N and E are opaque node and edge handles chosen by the
// caller: indices, strings, pointers into the caller's own structures.
//
// Nodes and Edges fix the emission order. The renderer iterates each
// sequence exactly once per render and never reorders or deduplicates;
// duplicate node identifiers are the caller's bug, not a detected error.
// No method may mutate the graph during a render.
type Graph[N, E any] interface {
	// GraphID names the graph after the digraph/graph keyword.
	GraphID() ID

	// Kind selects Directed or Undirected for the whole render.
	Kind() Kind

	// Nodes returns all node handles in emission order.
	Nodes() []N

	// Edges returns all edge handles in emission order.
	Edges() []E

	// Source returns the source node of an edge.
	Source(e E) N

	// Target returns the target node of an edge.
	Target(e E) N

	// NodeID maps a node handle to its unique identifier. The identifier
	// is quoted automatically when it is not a bare DOT identifier.
	NodeID(n N) ID
}

// Attr is a single attribute in an open attribute list. Name must be a
// bare DOT identifier (it is one of Graphviz's fixed attribute names);
// Value passes through the usual quoting rules. A slice of Attr keeps
// the caller's ordering, which the renderer preserves.
type Attr struct {
	Name  string
	Value string
}

// The interfaces below are optional capabilities. A graph implements
// whichever it needs on the same type as [Graph]; the renderer discovers
// them by type assertion and falls back to a default otherwise.

// NodeLabeler supplies node labels. The default label is the node
// identifier's own text.
type NodeLabeler[N any] interface {
	NodeLabel(n N) Label
}

// EdgeLabeler supplies edge labels. The default label is empty.
type EdgeLabeler[E any] interface {
	EdgeLabel(e E) Label
}

// NodeStyler supplies node styles. [StyleNone] omits the attribute.
type NodeStyler[N any] interface {
	NodeStyle(n N) Style
}

// EdgeStyler supplies edge styles. [StyleNone] omits the attribute.
type EdgeStyler[E any] interface {
	EdgeStyle(e E) Style
}

// NodeColorer supplies node colors. Returning ok=false omits the
// attribute for that node.
type NodeColorer[N any] interface {
	NodeColor(n N) (c Label, ok bool)
}

// EdgeColorer supplies edge colors. Returning ok=false omits the
// attribute for that edge.
type EdgeColorer[E any] interface {
	EdgeColor(e E) (c Label, ok bool)
}

// NodeShaper maps nodes to Graphviz shape names
// (https://graphviz.org/doc/info/shapes.html). Returning ok=false omits
// the attribute.
type NodeShaper[N any] interface {
	NodeShape(n N) (s Label, ok bool)
}

// NodeAttrer supplies an open, ordered attribute list per node, emitted
// after the fixed attributes.
type NodeAttrer[N any] interface {
	NodeAttrs(n N) []Attr
}

// EdgeAttrer supplies an open, ordered attribute list per edge, emitted
// after the fixed attributes.
type EdgeAttrer[E any] interface {
	EdgeAttrs(e E) []Attr
}

// GraphAttrer supplies graph-level attributes, emitted before any node.
type GraphAttrer interface {
	GraphAttrs() []Attr
}

// RankDirer supplies an explicit rank direction for directed graphs.
// Returning ok=false uses Graphviz's default (top to bottom).
type RankDirer interface {
	RankDir() (d RankDir, ok bool)
}

// EdgeArrower supplies per-edge arrow decorations. Default arrows at
// both ends leave the attributes unset.
type EdgeArrower[E any] interface {
	EdgeStartArrow(e E) Arrow
	EdgeEndArrow(e E) Arrow
}
