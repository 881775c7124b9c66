package dot

import "strings"

// Fill decides whether an arrow shape is drawn open or filled.
type Fill int

const (
	FillFilled Fill = iota
	FillOpen
)

// modifier returns the arrowhead-grammar prefix for the fill.
func (f Fill) modifier() string {
	if f == FillOpen {
		return "o"
	}
	return ""
}

// Side clips an arrow shape to one side of the edge line.
// SideLeft means only the left half is visible.
type Side int

const (
	SideBoth Side = iota
	SideLeft
	SideRight
)

// modifier returns the arrowhead-grammar prefix for the clipping side.
func (s Side) modifier() string {
	switch s {
	case SideLeft:
		return "l"
	case SideRight:
		return "r"
	default:
		return ""
	}
}

type arrowName int

const (
	arrowNone arrowName = iota
	arrowNormal
	arrowBox
	arrowCrow
	arrowCurve
	arrowICurve
	arrowDiamond
	arrowDot
	arrowInv
	arrowTee
	arrowVee
)

var arrowNames = [...]string{
	arrowNone:    "none",
	arrowNormal:  "normal",
	arrowBox:     "box",
	arrowCrow:    "crow",
	arrowCurve:   "curve",
	arrowICurve:  "icurve",
	arrowDiamond: "diamond",
	arrowDot:     "dot",
	arrowInv:     "inv",
	arrowTee:     "tee",
	arrowVee:     "vee",
}

// ArrowShape is one primitive shape from Graphviz's arrowhead grammar
// (https://graphviz.org/doc/info/arrows.html), with its fill and
// clipping modifiers where the grammar allows them.
type ArrowShape struct {
	name arrowName
	fill Fill
	side Side
}

// NoArrowShape returns the shape that suppresses the arrowhead.
func NoArrowShape() ArrowShape { return ArrowShape{name: arrowNone} }

// NormalShape returns the regular triangle arrowhead.
func NormalShape(fill Fill, side Side) ArrowShape {
	return ArrowShape{name: arrowNormal, fill: fill, side: side}
}

// BoxShape returns an arrowhead ending in a small square.
func BoxShape(fill Fill, side Side) ArrowShape {
	return ArrowShape{name: arrowBox, fill: fill, side: side}
}

// CrowShape returns the three-branch crow's foot arrowhead.
func CrowShape(side Side) ArrowShape {
	return ArrowShape{name: arrowCrow, side: side}
}

// CurveShape returns an arrowhead ending in a curve.
func CurveShape(side Side) ArrowShape {
	return ArrowShape{name: arrowCurve, side: side}
}

// ICurveShape returns an arrowhead ending in an inverted curve.
func ICurveShape(fill Fill, side Side) ArrowShape {
	return ArrowShape{name: arrowICurve, fill: fill, side: side}
}

// DiamondShape returns a diamond-shaped arrowhead.
func DiamondShape(fill Fill, side Side) ArrowShape {
	return ArrowShape{name: arrowDiamond, fill: fill, side: side}
}

// DotShape returns an arrowhead ending in a circle.
func DotShape(fill Fill) ArrowShape {
	return ArrowShape{name: arrowDot, fill: fill}
}

// InvShape returns an inverted triangle arrowhead.
func InvShape(fill Fill, side Side) ArrowShape {
	return ArrowShape{name: arrowInv, fill: fill, side: side}
}

// TeeShape returns a T-shaped arrowhead.
func TeeShape(side Side) ArrowShape {
	return ArrowShape{name: arrowTee, side: side}
}

// VeeShape returns a V-shaped arrowhead.
func VeeShape(side Side) ArrowShape {
	return ArrowShape{name: arrowVee, side: side}
}

// dot renders the shape in arrowhead grammar, modifiers first.
func (a ArrowShape) dot() string {
	var b strings.Builder
	switch a.name {
	case arrowNormal, arrowBox, arrowICurve, arrowDiamond, arrowInv:
		b.WriteString(a.fill.modifier())
		b.WriteString(a.side.modifier())
	case arrowDot:
		b.WriteString(a.fill.modifier())
	case arrowCrow, arrowCurve, arrowTee, arrowVee:
		b.WriteString(a.side.modifier())
	}
	b.WriteString(arrowNames[a.name])
	return b.String()
}

// Arrow describes the decoration at one end of an edge: a sequence of up
// to four primitive shapes, innermost last, per Graphviz's arrowhead
// grammar.
//
// The zero value is the default arrow; the renderer then omits the
// arrowhead and arrowtail attributes entirely and Graphviz applies its
// own default.
type Arrow struct {
	shapes []ArrowShape
}

// DefaultArrow returns the default arrow.
func DefaultArrow() Arrow { return Arrow{} }

// NoArrow returns an arrow that renders without any head.
func NoArrow() Arrow { return Arrow{shapes: []ArrowShape{NoArrowShape()}} }

// NormalArrow returns the regular triangle arrow without modifiers.
func NormalArrow() Arrow {
	return Arrow{shapes: []ArrowShape{NormalShape(FillFilled, SideBoth)}}
}

// ArrowFrom composes an arrow from primitive shapes, outermost first.
func ArrowFrom(shapes ...ArrowShape) Arrow {
	return Arrow{shapes: shapes}
}

// IsDefault reports whether this is the default arrow.
func (a Arrow) IsDefault() bool { return len(a.shapes) == 0 }

// dot renders the arrow as an arrowhead or arrowtail attribute value.
func (a Arrow) dot() string {
	var b strings.Builder
	for _, s := range a.shapes {
		b.WriteString(s.dot())
	}
	return b.String()
}
