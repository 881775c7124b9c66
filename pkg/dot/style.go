package dot

// Kind determines whether the graph is introduced with the digraph or
// graph keyword, which in turn fixes the edge operator.
type Kind int

const (
	// Directed graphs use the digraph keyword and -> edges.
	Directed Kind = iota
	// Undirected graphs use the graph keyword and -- edges.
	Undirected
)

// keyword returns the token introducing the graph.
func (k Kind) keyword() string {
	if k == Undirected {
		return "graph"
	}
	return "digraph"
}

// edgeOp returns the edge operator for this graph kind.
func (k Kind) edgeOp() string {
	if k == Undirected {
		return "--"
	}
	return "->"
}

// Style is the style attribute for a node or edge.
// See https://graphviz.org/doc/info/attrs.html#k:style for descriptions.
// Note that some styles are not valid for edges.
type Style int

const (
	StyleNone Style = iota
	StyleSolid
	StyleDashed
	StyleDotted
	StyleBold
	StyleRounded
	StyleDiagonals
	StyleFilled
	StyleStriped
	StyleWedged
)

var styleNames = [...]string{
	StyleNone:      "",
	StyleSolid:     "solid",
	StyleDashed:    "dashed",
	StyleDotted:    "dotted",
	StyleBold:      "bold",
	StyleRounded:   "rounded",
	StyleDiagonals: "diagonals",
	StyleFilled:    "filled",
	StyleStriped:   "striped",
	StyleWedged:    "wedged",
}

// String returns the Graphviz name of the style, or "" for [StyleNone].
func (s Style) String() string {
	if s < StyleNone || int(s) >= len(styleNames) {
		return ""
	}
	return styleNames[s]
}

// RankDir is the direction directed graphs are drawn in, one rank at a
// time. See https://graphviz.org/docs/attr-types/rankdir.
type RankDir int

const (
	TopBottom RankDir = iota
	LeftRight
	BottomTop
	RightLeft
)

var rankDirNames = [...]string{
	TopBottom: "TB",
	LeftRight: "LR",
	BottomTop: "BT",
	RightLeft: "RL",
}

// String returns the rankdir attribute value.
func (d RankDir) String() string {
	if d < TopBottom || int(d) >= len(rankDirNames) {
		return rankDirNames[TopBottom]
	}
	return rankDirNames[d]
}
