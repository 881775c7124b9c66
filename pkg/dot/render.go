package dot

import (
	"fmt"
	"io"
	"strings"
)

// Statements are indented one level inside the graph block.
const indent = "    "

// Options suppresses parts of the rendered output. The zero value
// renders everything the graph provides.
type Options struct {
	// NoNodeLabels omits the label attribute from node statements.
	NoNodeLabels bool
	// NoEdgeLabels omits the label attribute from edge statements.
	NoEdgeLabels bool
	// NoNodeStyles omits node style attributes.
	NoNodeStyles bool
	// NoNodeColors omits node color attributes.
	NoNodeColors bool
	// NoEdgeStyles omits edge style attributes.
	NoEdgeStyles bool
	// NoEdgeColors omits edge color attributes.
	NoEdgeColors bool
	// NoArrows omits arrowhead and arrowtail attributes.
	NoArrows bool
}

// Render writes g to w in DOT syntax. It is [RenderOptions] with the
// zero options and the only entry point most callers need.
func Render[N, E any](g Graph[N, E], w io.Writer) error {
	return RenderOptions(g, w, Options{})
}

// RenderOptions writes g to w in DOT syntax, honoring opts.
//
// Nodes are emitted first, then edges, each in the order the graph
// yields them. The first error aborts the render; output already
// written to w stays written.
func RenderOptions[N, E any](g Graph[N, E], w io.Writer, opts Options) error {
	id := g.GraphID()
	if id.isZero() {
		return fmt.Errorf("graph id: %w", ErrEmptyID)
	}
	kind := g.Kind()

	if err := writeLine(w, kind.keyword()+" "+id.dot()+" {"); err != nil {
		return fmt.Errorf("write graph %s: %w", id, err)
	}
	if kind == Directed {
		if rd, ok := g.(RankDirer); ok {
			if dir, ok := rd.RankDir(); ok {
				if err := writeLine(w, indent+`rankdir="`+dir.String()+`";`); err != nil {
					return fmt.Errorf("write graph %s: %w", id, err)
				}
			}
		}
	}
	if ga, ok := g.(GraphAttrer); ok {
		for _, a := range ga.GraphAttrs() {
			if !isBareID(a.Name) {
				return fmt.Errorf("graph %s attribute %q: %w", id, a.Name, ErrInvalidAttrName)
			}
			if err := writeLine(w, indent+a.Name+"="+attrValue(a.Value)+";"); err != nil {
				return fmt.Errorf("write graph %s: %w", id, err)
			}
		}
	}

	if err := renderNodes(g, w, opts); err != nil {
		return err
	}
	if err := renderEdges(g, w, opts); err != nil {
		return err
	}

	if err := writeLine(w, "}"); err != nil {
		return fmt.Errorf("write graph %s: %w", id, err)
	}
	return nil
}

func renderNodes[N, E any](g Graph[N, E], w io.Writer, opts Options) error {
	labeler, hasLabeler := g.(NodeLabeler[N])
	styler, hasStyler := g.(NodeStyler[N])
	colorer, hasColorer := g.(NodeColorer[N])
	shaper, hasShaper := g.(NodeShaper[N])
	attrer, hasAttrer := g.(NodeAttrer[N])

	var b strings.Builder
	for _, n := range g.Nodes() {
		id := g.NodeID(n)
		if id.isZero() {
			return fmt.Errorf("node %v: %w", n, ErrEmptyID)
		}
		b.Reset()
		b.WriteString(indent)
		b.WriteString(id.dot())

		if !opts.NoNodeLabels {
			label := Text(id.String())
			if hasLabeler {
				label = labeler.NodeLabel(n)
			}
			b.WriteString("[label=")
			b.WriteString(label.dot())
			b.WriteString("]")
		}
		if !opts.NoNodeStyles && hasStyler {
			if style := styler.NodeStyle(n); style != StyleNone {
				b.WriteString(`[style="`)
				b.WriteString(style.String())
				b.WriteString(`"]`)
			}
		}
		if !opts.NoNodeColors && hasColorer {
			if c, ok := colorer.NodeColor(n); ok {
				b.WriteString("[color=")
				b.WriteString(c.dot())
				b.WriteString("]")
			}
		}
		if hasShaper {
			if s, ok := shaper.NodeShape(n); ok {
				b.WriteString("[shape=")
				b.WriteString(s.dot())
				b.WriteString("]")
			}
		}
		if hasAttrer {
			for _, a := range attrer.NodeAttrs(n) {
				if !isBareID(a.Name) {
					return fmt.Errorf("node %s attribute %q: %w", id, a.Name, ErrInvalidAttrName)
				}
				b.WriteString("[" + a.Name + "=" + attrValue(a.Value) + "]")
			}
		}
		b.WriteString(";")

		if err := writeLine(w, b.String()); err != nil {
			return fmt.Errorf("write node %s: %w", id, err)
		}
	}
	return nil
}

func renderEdges[N, E any](g Graph[N, E], w io.Writer, opts Options) error {
	labeler, hasLabeler := g.(EdgeLabeler[E])
	styler, hasStyler := g.(EdgeStyler[E])
	colorer, hasColorer := g.(EdgeColorer[E])
	arrower, hasArrower := g.(EdgeArrower[E])
	attrer, hasAttrer := g.(EdgeAttrer[E])

	edgeOp := g.Kind().edgeOp()

	var b strings.Builder
	for _, e := range g.Edges() {
		src := g.NodeID(g.Source(e))
		dst := g.NodeID(g.Target(e))
		if src.isZero() || dst.isZero() {
			return fmt.Errorf("edge %v: %w", e, ErrEmptyID)
		}
		b.Reset()
		b.WriteString(indent)
		b.WriteString(src.dot())
		b.WriteString(" " + edgeOp + " ")
		b.WriteString(dst.dot())

		if !opts.NoEdgeLabels {
			label := Text("")
			if hasLabeler {
				label = labeler.EdgeLabel(e)
			}
			b.WriteString("[label=")
			b.WriteString(label.dot())
			b.WriteString("]")
		}
		if !opts.NoEdgeStyles && hasStyler {
			if style := styler.EdgeStyle(e); style != StyleNone {
				b.WriteString(`[style="`)
				b.WriteString(style.String())
				b.WriteString(`"]`)
			}
		}
		if !opts.NoEdgeColors && hasColorer {
			if c, ok := colorer.EdgeColor(e); ok {
				b.WriteString("[color=")
				b.WriteString(c.dot())
				b.WriteString("]")
			}
		}
		if !opts.NoArrows && hasArrower {
			start, end := arrower.EdgeStartArrow(e), arrower.EdgeEndArrow(e)
			if !start.IsDefault() || !end.IsDefault() {
				b.WriteString("[")
				if !end.IsDefault() {
					b.WriteString(`arrowhead="` + end.dot() + `"`)
				}
				if !start.IsDefault() {
					b.WriteString(` dir="both" arrowtail="` + start.dot() + `"`)
				}
				b.WriteString("]")
			}
		}
		if hasAttrer {
			for _, a := range attrer.EdgeAttrs(e) {
				if !isBareID(a.Name) {
					return fmt.Errorf("edge %s %s %s attribute %q: %w", src, edgeOp, dst, a.Name, ErrInvalidAttrName)
				}
				b.WriteString("[" + a.Name + "=" + attrValue(a.Value) + "]")
			}
		}
		b.WriteString(";")

		if err := writeLine(w, b.String()); err != nil {
			return fmt.Errorf("write edge %s %s %s: %w", src, edgeOp, dst, err)
		}
	}
	return nil
}

// attrValue emits an attribute value: verbatim when it is a bare DOT
// identifier, quoted otherwise.
func attrValue(v string) string {
	if isBareID(v) {
		return v
	}
	return quote(v)
}

func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
