package graphio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/dotwalk/pkg/dot"
)

func TestReadJSON(t *testing.T) {
	input := `{
	  "name": "deps",
	  "directed": true,
	  "nodes": [
	    {"id": "app"},
	    {"id": "lib", "label": "Library", "attrs": [{"name": "shape", "value": "box"}]}
	  ],
	  "edges": [
	    {"from": "app", "to": "lib", "label": "uses"}
	  ]
	}`

	g, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if g.Name != "deps" || !g.Directed {
		t.Errorf("header = (%q, %v), want (deps, true)", g.Name, g.Directed)
	}
	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Fatalf("got %d nodes, %d edges, want 2, 1", len(g.Nodes), len(g.Edges))
	}
	if g.Nodes[1].Label != "Library" {
		t.Errorf("Nodes[1].Label = %q, want Library", g.Nodes[1].Label)
	}
	if got := g.Nodes[1].Attrs[0]; got != (Attr{Name: "shape", Value: "box"}) {
		t.Errorf("Nodes[1].Attrs[0] = %+v", got)
	}
	if g.Edges[0].From != "app" || g.Edges[0].To != "lib" {
		t.Errorf("Edges[0] = %+v", g.Edges[0])
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			name:  "MissingNodeID",
			input: `{"name": "g", "nodes": [{"id": ""}]}`,
			want:  ErrMissingNodeID,
		},
		{
			name:  "DuplicateNodeID",
			input: `{"name": "g", "nodes": [{"id": "a"}, {"id": "a"}]}`,
			want:  ErrDuplicateNodeID,
		},
		{
			name:  "UnknownSource",
			input: `{"name": "g", "nodes": [{"id": "a"}], "edges": [{"from": "x", "to": "a"}]}`,
			want:  ErrUnknownSourceNode,
		},
		{
			name:  "UnknownTarget",
			input: `{"name": "g", "nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "x"}]}`,
			want:  ErrUnknownTargetNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.input)); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReadJSONMalformed(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader(`{"name":`)); err == nil {
		t.Fatal("expected a decode error for truncated input")
	}
}

func TestRender(t *testing.T) {
	g := &Graph{
		Name:     "deps",
		Directed: true,
		Nodes: []Node{
			{ID: "app"},
			{ID: "lib", Label: "Library", Attrs: []Attr{{Name: "shape", Value: "box"}}},
		},
		Edges: []Edge{
			{From: "app", To: "lib", Label: "uses", Attrs: []Attr{{Name: "weight", Value: "2"}}},
		},
	}

	var buf bytes.Buffer
	if err := g.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := `digraph deps {
    app[label="app"];
    lib[label="Library"][shape=box];
    app -> lib[label="uses"][weight=2];
}
`
	if got := buf.String(); got != want {
		t.Errorf("rendered output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderUndirected(t *testing.T) {
	g := &Graph{
		Name:  "pair",
		Nodes: []Node{{ID: "a"}, {ID: "b"}},
		Edges: []Edge{{From: "a", To: "b"}},
	}

	var buf bytes.Buffer
	if err := g.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := `graph pair {
    a[label="a"];
    b[label="b"];
    a -- b[label=""];
}
`
	if got := buf.String(); got != want {
		t.Errorf("rendered output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderValidates(t *testing.T) {
	g := &Graph{
		Name:  "g",
		Nodes: []Node{{ID: "a"}},
		Edges: []Edge{{From: "a", To: "missing"}},
	}

	if err := g.Render(&bytes.Buffer{}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Fatalf("err = %v, want ErrUnknownTargetNode", err)
	}
}

func TestRenderEmptyNameFails(t *testing.T) {
	g := &Graph{Nodes: []Node{{ID: "a"}}}

	if err := g.Render(&bytes.Buffer{}); !errors.Is(err, dot.ErrEmptyID) {
		t.Fatalf("err = %v, want dot.ErrEmptyID", err)
	}
}

func TestRenderOptionsSuppressLabels(t *testing.T) {
	g := &Graph{
		Name:     "g",
		Directed: true,
		Nodes:    []Node{{ID: "a", Label: "A"}, {ID: "b"}},
		Edges:    []Edge{{From: "a", To: "b", Label: "e"}},
	}

	var buf bytes.Buffer
	opts := dot.Options{NoNodeLabels: true, NoEdgeLabels: true}
	if err := g.RenderOptions(&buf, opts); err != nil {
		t.Fatalf("RenderOptions: %v", err)
	}

	want := `digraph g {
    a;
    b;
    a -> b;
}
`
	if got := buf.String(); got != want {
		t.Errorf("rendered output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	g := &Graph{
		Name:     "roundtrip",
		Directed: true,
		Nodes: []Node{
			{ID: "a", Label: "first"},
			{ID: "b", Attrs: []Attr{{Name: "color", Value: "red"}}},
		},
		Edges: []Edge{{From: "a", To: "b", Label: "link"}},
	}

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if back.Name != g.Name || back.Directed != g.Directed {
		t.Errorf("header = (%q, %v), want (%q, %v)", back.Name, back.Directed, g.Name, g.Directed)
	}
	if len(back.Nodes) != len(g.Nodes) || len(back.Edges) != len(g.Edges) {
		t.Fatalf("got %d nodes, %d edges, want %d, %d",
			len(back.Nodes), len(back.Edges), len(g.Nodes), len(g.Edges))
	}
	if back.Nodes[1].Attrs[0] != g.Nodes[1].Attrs[0] {
		t.Errorf("Nodes[1].Attrs[0] = %+v, want %+v", back.Nodes[1].Attrs[0], g.Nodes[1].Attrs[0])
	}
}

func TestQuotedIdentifiersSurviveRender(t *testing.T) {
	g := &Graph{
		Name:     "build plan",
		Directed: true,
		Nodes:    []Node{{ID: "pkg/core"}, {ID: "pkg/render"}},
		Edges:    []Edge{{From: "pkg/render", To: "pkg/core"}},
	}

	var buf bytes.Buffer
	if err := g.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := `digraph "build plan" {
    "pkg/core"[label="pkg/core"];
    "pkg/render"[label="pkg/render"];
    "pkg/render" -> "pkg/core"[label=""];
}
`
	if got := buf.String(); got != want {
		t.Errorf("rendered output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
