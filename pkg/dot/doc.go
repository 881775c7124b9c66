// Package dot generates files suitable for use with Graphviz by walking
// a labelled graph.
//
// # Overview
//
// Rather than impose a particular graph data structure on callers, the
// package defines a small read-only contract, [Graph], that callers
// implement on their own types before handing them to [Render]. The
// renderer pulls node and edge handles through that contract and writes
// standard DOT text to an io.Writer. Graphviz can then lay the graph out
// and render it as SVG, PNG, or any of its other output formats.
//
// The package only emits text. It never parses DOT, computes layouts, or
// checks that every edge endpoint appears in the node sequence; node
// uniqueness and referential integrity are the caller's responsibility.
//
// # Basic Usage
//
// Implement [Graph] on any type that can enumerate its nodes and edges,
// then call [Render]:
//
//	type deps struct{ edges [][2]string }
//
//	func (d deps) GraphID() dot.ID        { return dot.MustID("deps") }
//	func (d deps) Kind() dot.Kind         { return dot.Directed }
//	func (d deps) NodeID(n string) dot.ID { return dot.MustID(n) }
//	// ... Nodes, Edges, Source, Target ...
//
//	err := dot.Render[string, [2]string](d, os.Stdout)
//
// The type arguments are the node and edge handle types; they must be
// spelled out because Go does not infer type parameters from a concrete
// implementation of a generic interface.
//
// Nodes and edges are emitted in exactly the order the implementation
// yields them. The renderer never sorts, groups, or deduplicates.
//
// # Labels and Attributes
//
// Labels, styles, colors, shapes, arrows, and open attribute lists are
// optional capabilities: implement [NodeLabeler], [EdgeStyler],
// [NodeAttrer], and friends on the same type and the renderer picks them
// up. Anything not implemented falls back to a default (a node's label
// defaults to its identifier text, an edge's to the empty string).
//
// All emitted identifiers and attribute values pass through DOT's
// quoting rules: text matching the bare identifier grammar is written
// verbatim, everything else is double-quoted with embedded quotes,
// backslashes, and newlines escaped. Label text additionally
// distinguishes plain text ([Text]), Graphviz escString sequences
// ([Escaped]), and HTML-like labels ([HTML]).
//
// # Errors
//
// Rendering aborts on the first failure and reports which entity was
// being written. Empty identifiers surface [ErrEmptyID], malformed
// attribute names surface [ErrInvalidAttrName], and sink write failures
// are returned as-is, wrapped with context. Output already written to
// the sink is not rolled back.
//
// # Concurrency
//
// A render is a single synchronous pass over the graph. The graph must
// not be mutated during the call; concurrent renders of distinct graph
// values are independent and need no coordination.
//
// # Related Packages
//
// The [gonumdot] subpackage adapts gonum graph types to the [Graph]
// contract. The [graphio] subpackage provides a ready-made JSON graph
// description for callers without a graph type of their own.
//
// [gonumdot]: github.com/matzehuels/dotwalk/pkg/dot/gonumdot
// [graphio]: github.com/matzehuels/dotwalk/pkg/dot/graphio
package dot
