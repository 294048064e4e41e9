package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/wireframe/pkg/core/dsl"
	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/tree"
)

func parse(t *testing.T, src string) *tree.Document {
	t.Helper()
	doc, err := dsl.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestToDOT_Basic(t *testing.T) {
	doc := parse(t, "wireframe\ncol\n  title \"Hi\"\n  button \"OK\"\n")

	dot := ToDOT(doc, Options{})

	for _, want := range []string{
		"digraph G",
		"rankdir=LR",
		`n0 [label="col"`,
		`n1 [label="title \"Hi\""]`,
		"n0 -> n1;",
		"n0 -> n2;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "cluster") {
		t.Error("no screens, no clusters expected")
	}
}

func TestToDOT_Direction(t *testing.T) {
	dot := ToDOT(parse(t, "wireframe TD\ntext\n"), Options{})
	if !strings.Contains(dot, "rankdir=TB") {
		t.Errorf("TD document should rank top to bottom:\n%s", dot)
	}
}

func TestToDOT_ScreenClusters(t *testing.T) {
	doc := parse(t, "wireframe\nscreen \"Login\"\n  input\nscreen\n  text\n")

	dot := ToDOT(doc, Options{})

	if got := strings.Count(dot, "subgraph cluster_"); got != 2 {
		t.Errorf("clusters = %d, want 2", got)
	}
	if !strings.Contains(dot, `label="Login"`) || !strings.Contains(dot, `label="screen 2"`) {
		t.Errorf("cluster labels missing:\n%s", dot)
	}
}

func TestToDOT_Containers(t *testing.T) {
	dot := ToDOT(parse(t, "wireframe\ncard\n  text\n"), Options{})
	if !strings.Contains(dot, "dashed") || !strings.Contains(dot, "lightgrey") {
		t.Errorf("container not styled:\n%s", dot)
	}
}

func TestFmtLabel(t *testing.T) {
	doc := parse(t, "wireframe\nbutton \"Go\" primary width=120 flex=2 disabled\n")
	n := doc.Roots()[0]

	if got := fmtLabel(n, Options{}); got != `button "Go"` {
		t.Errorf("simple label = %q", got)
	}

	l := layout.Build(doc, layout.ViewportBox(doc))
	got := fmtLabel(n, Options{Detailed: true, Layout: &l})
	for _, want := range []string{"line: 2", "flex=2", "width=120", "primary", "disabled", "0,0 120x"} {
		if !strings.Contains(got, want) {
			t.Errorf("detailed label %q missing %q", got, want)
		}
	}
}

func TestFmtAttrs(t *testing.T) {
	doc := parse(t, "wireframe\nrow\n  icon\n")
	row, icon := doc.Roots()[0], doc.Roots()[0].Child(0)

	if attrs := fmtAttrs(icon, "icon"); len(attrs) != 1 || !strings.HasPrefix(attrs[0], "label=") {
		t.Errorf("leaf attrs = %v", attrs)
	}
	if attrs := fmtAttrs(row, "row"); len(attrs) != 4 {
		t.Errorf("container attrs = %v, want 4", attrs)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(parse(t, "wireframe\ncol\n  text\n"), Options{})
	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), `not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
