package dot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-graphviz"
)

// Every document the renderer produces must be accepted by a conformant
// DOT parser. Graphviz itself is the reference here.
func TestRenderedOutputParses(t *testing.T) {
	graphs := []struct {
		name   string
		render func(t *testing.T) string
	}{
		{
			name: "Empty",
			render: func(t *testing.T) string {
				return renderToString(t, &labelledGraph{name: "empty"})
			},
		},
		{
			name: "LabelsStylesColors",
			render: func(t *testing.T) string {
				return renderToString(t, &labelledGraph{
					name:       "full",
					nodeLabels: []string{"{x,y}", `He said "hi"`, ""},
					nodeStyles: []Style{StyleNone, StyleDashed, StyleFilled},
					edges: []testEdge{
						edge(0, 1, "⊆", StyleBold, "red"),
						edge(1, 2, "", StyleNone, ""),
						edge(2, 2, "loop", StyleDotted, "blue"),
					},
				})
			},
		},
		{
			name: "QuotedIdentifiers",
			render: func(t *testing.T) string {
				g := &namedGraph{
					name:  "quoting",
					kind:  Directed,
					nodes: []string{"foo-bar", "multi\nline", "plain"},
					edges: []testEdge{edge(0, 1, "", StyleNone, ""), edge(1, 2, "", StyleNone, "")},
				}
				var buf bytes.Buffer
				if err := Render[string, testEdge](g, &buf); err != nil {
					t.Fatalf("Render: %v", err)
				}
				return buf.String()
			},
		},
		{
			name: "UndirectedWithRankdirAndAttrs",
			render: func(t *testing.T) string {
				g := &attrGraph{
					defaultStyleGraph: defaultStyleGraph{
						name: "g", nodes: 3, kind: Undirected,
						edges: [][2]int{{0, 1}, {1, 2}},
					},
					graphAttrs: []Attr{{Name: "bgcolor", Value: "transparent"}},
					nodeAttrs: map[int][]Attr{
						0: {{Name: "shape", Value: "box"}},
					},
					edgeAttrs: []Attr{{Name: "weight", Value: "2"}},
				}
				var buf bytes.Buffer
				if err := Render[int, [2]int](g, &buf); err != nil {
					t.Fatalf("Render: %v", err)
				}
				return buf.String()
			},
		},
		{
			name: "ReservedWords",
			render: func(t *testing.T) string {
				g := &namedGraph{
					name:  "graph",
					kind:  Directed,
					nodes: []string{"node", "edge", "Subgraph"},
					edges: []testEdge{edge(0, 1, "", StyleNone, ""), edge(1, 2, "", StyleNone, "")},
				}
				var buf bytes.Buffer
				if err := Render[string, testEdge](g, &buf); err != nil {
					t.Fatalf("Render: %v", err)
				}
				out := buf.String()
				for _, tok := range []string{`"graph"`, `"node"`, `"edge"`, `"Subgraph"`} {
					if !strings.Contains(out, tok) {
						t.Errorf("reserved word should be quoted as %s:\n%s", tok, out)
					}
				}
				return out
			},
		},
		{
			name: "Arrows",
			render: func(t *testing.T) string {
				return renderToString(t, &labelledGraph{
					name:       "arrows",
					nodeLabels: make([]string, 2),
					edges: []testEdge{{
						from: 0, to: 1,
						startArrow: ArrowFrom(TeeShape(SideBoth)),
						endArrow:   ArrowFrom(CrowShape(SideLeft)),
					}},
				})
			},
		},
	}

	for _, tt := range graphs {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.render(t)

			parsed, err := graphviz.ParseBytes([]byte(out))
			if err != nil {
				t.Fatalf("graphviz rejected rendered output: %v\n%s", err, out)
			}
			defer parsed.Close()
		})
	}
}
