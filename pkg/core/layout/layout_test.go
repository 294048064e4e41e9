package layout

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/wireframe/pkg/core/dsl"
	"github.com/matzehuels/wireframe/pkg/core/tree"
	"github.com/matzehuels/wireframe/pkg/errors"
)

func TestTextIntrinsicWidth(t *testing.T) {
	for _, n := range []int{0, 5, 20} {
		label := strings.Repeat("a", n)
		doc, err := dsl.Parse("wireframe\ntext \"" + label + "\"\n")
		if err != nil {
			t.Fatal(err)
		}
		e := &engine{cfg: newConfig(nil), sizes: map[tree.NodeID]Size{}}
		got := e.intrinsic(doc.Roots()[0])
		if want := float64(8*n + 16); got.W != want {
			t.Errorf("L=%d: width = %v, want %v", n, got.W, want)
		}
		if got.H != 24 {
			t.Errorf("L=%d: height = %v, want 24", n, got.H)
		}
	}
}

func TestTextWidthCountsRunes(t *testing.T) {
	w, ok := TextWidth(tree.KindText, len([]rune("héllo")))
	if !ok || w != 56 {
		t.Errorf("TextWidth = %v, %v", w, ok)
	}
	if _, ok := TextWidth(tree.KindImage, 3); ok {
		t.Error("image is not sized by text")
	}
}

func TestIntrinsicSizes(t *testing.T) {
	tests := []struct {
		line string
		w, h float64
	}{
		{`title "Hello"`, 86, 36},
		{`button`, 86, 40},
		{`button "OK"`, 50, 40},
		{`input "Email"`, 200, 40},
		{`checkbox "Remember"`, 96, 24},
		{`radio "A"`, 40, 24},
		{`switch "Wi-Fi"`, 96, 28},
		{`dropdown "Country"`, 200, 40},
		{`list "One|Three"`, 72, 72},
		{`list`, 80, 108},
		{`nav-menu "A|BB"`, 88, 48},
		{`bottom-nav "Home|Search|Profile"`, 232, 56},
		{`app-bar "Inbox"`, 142, 56},
		{`fab`, 56, 56},
		{`avatar "JD"`, 40, 40},
		{`icon "gear"`, 24, 24},
		{`image "hero"`, 160, 120},
		{`spacer`, 0, 0},
		{`divider`, 0, 16},
		{`grid`, 300, 96},
		{`row`, 100, 40},
		{`col`, 100, 40},
		{`card`, 200, 100},
		{`screen`, 800, 600},
		{`grid-row "a|b|c"`, 240, 32},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			doc, err := dsl.Parse("wireframe\n" + tt.line)
			if err != nil {
				t.Fatal(err)
			}
			e := &engine{cfg: newConfig(nil), viewport: doc.Viewport(), sizes: map[tree.NodeID]Size{}}
			got := e.intrinsic(doc.Roots()[0])
			if got.W != tt.w || got.H != tt.h {
				t.Errorf("intrinsic = %vx%v, want %vx%v", got.W, got.H, tt.w, tt.h)
			}
		})
	}
}

func TestContainerIntrinsic(t *testing.T) {
	src := `wireframe
row padding=4
  text "abc"
  button "Go" height=60
  col width=10
card "Profile"
  text "a"
`
	doc, err := dsl.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	e := &engine{cfg: newConfig(nil), sizes: map[tree.NodeID]Size{}}
	roots := doc.Roots()

	// main: 40 + 50 + 10 + 8, cross: max(24, 60, 40) + 8
	if got := e.intrinsic(roots[0]); got.W != 108 || got.H != 68 {
		t.Errorf("row intrinsic = %+v, want 108x68", got)
	}
	// card: padding 12 each side, header band 20
	if got := e.intrinsic(roots[1]); got.W != 48 || got.H != 68 {
		t.Errorf("card intrinsic = %+v, want 48x68", got)
	}
}

func TestEveryKindHasLayout(t *testing.T) {
	for _, k := range tree.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			doc, err := dsl.Parse("wireframe\n" + k.String())
			if err != nil {
				t.Fatal(err)
			}
			l := Build(doc, ViewportBox(doc))
			checkEveryNodeBounded(t, doc, l)
		})
	}
}

func TestEveryKindBoundsNestedChildren(t *testing.T) {
	for _, k := range tree.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			doc, err := dsl.Parse("wireframe\n" + k.String() + "\n  text \"inner\"\n    icon\n")
			if err != nil {
				t.Fatal(err)
			}
			checkEveryNodeBounded(t, doc, Build(doc, ViewportBox(doc)))
		})
	}
}

func TestLeafChildren(t *testing.T) {
	doc, l := build(t, "wireframe\ncol\n  button \"Go\"\n    text \"inner\"\n")
	button := doc.Roots()[0].Child(0)
	inner := button.Child(0)

	b, _ := l.Rect(button.ID())
	r, _ := l.Rect(inner.ID())
	if r.X != b.X || r.Y != b.Y || r.W != b.W {
		t.Errorf("child of button = %+v, want stacked at the top of %+v", r, b)
	}
	if r.W < 0 || r.H < 0 {
		t.Errorf("negative size %+v", r)
	}

	if len(l.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %v, want one LEAF_CHILDREN", l.Diagnostics)
	}
	if d := l.Diagnostics[0]; d.Code != errors.ErrCodeLeafChildren || d.Line != 3 {
		t.Errorf("diagnostic = %s@%d, want LEAF_CHILDREN@3", d.Code, d.Line)
	}
}

func TestScreensLR(t *testing.T) {
	src := `wireframe mobile LR
screen "Login"
  button "Sign in"
screen "Home"
  col
    text "Hi"
    text "There"
`
	doc, l := build(t, src)
	if want := 2*(375+2*DefaultScreenPadding) + DefaultScreenGap; l.Width != want {
		t.Errorf("canvas width = %v, want %v", l.Width, want)
	}
	if want := DefaultScreenHeight + 2*DefaultScreenPadding + DefaultCaptionHeight; l.Height != want {
		t.Errorf("canvas height = %v, want %v", l.Height, want)
	}
	if len(l.Screens) != 2 || !l.Framed() {
		t.Fatalf("screens = %d", len(l.Screens))
	}

	second := l.Screens[1]
	if second.Frame.X != 375+40+40 {
		t.Errorf("second frame x = %v", second.Frame.X)
	}
	if second.Caption != "Home" || !second.HasCaption {
		t.Errorf("caption = %q", second.Caption)
	}
	root, _ := l.Rect(doc.Roots()[1].ID())
	if root != second.Content {
		t.Errorf("screen bounds = %+v, want content %+v", root, second.Content)
	}
	if root.W != 375 || root.H != 600 || root.Y != 44 {
		t.Errorf("screen content = %+v", root)
	}
	for _, n := range doc.Nodes() {
		r, ok := l.Rect(n.ID())
		if !ok {
			t.Fatalf("node %d has no bounds", n.ID())
		}
		if r.Right() > l.Width || r.Bottom() > l.Height {
			t.Errorf("node %d %+v escapes canvas", n.ID(), r)
		}
	}
}

func TestScreensCanvasIndependentOfContent(t *testing.T) {
	_, a := build(t, "wireframe mobile\nscreen\nscreen\n")
	_, b := build(t, "wireframe mobile\nscreen \"A\"\n  image height=2000\nscreen\n  text \"x\"\n")
	if a.Width != b.Width || a.Height != b.Height {
		t.Errorf("canvas %vx%v vs %vx%v", a.Width, a.Height, b.Width, b.Height)
	}
	if a.Width != 870 {
		t.Errorf("canvas width = %v, want 870", a.Width)
	}
}

func TestScreensTD(t *testing.T) {
	_, l := build(t, "wireframe tablet TD\nscreen\nscreen\nscreen\n")
	if l.Width != 768+40 {
		t.Errorf("width = %v", l.Width)
	}
	if want := 3*664.0 + 2*40; l.Height != want {
		t.Errorf("height = %v, want %v", l.Height, want)
	}
	if l.Screens[2].Frame.Y != 2*(664+40) {
		t.Errorf("third frame y = %v", l.Screens[2].Frame.Y)
	}
}

func TestSingleScreenNotFramed(t *testing.T) {
	_, l := build(t, "wireframe\nscreen \"Only\"\n  text \"x\"\n")
	if l.Framed() {
		t.Error("single screen should not be framed")
	}
	if l.Width != 840 || l.Height != 664 {
		t.Errorf("canvas = %vx%v, want 840x664", l.Width, l.Height)
	}
}

func TestNonScreenRootGetsSlot(t *testing.T) {
	doc, l := build(t, "wireframe mobile\nscreen \"A\"\ntext \"loose\"\n")
	if len(l.Screens) != 2 {
		t.Fatalf("screens = %d, want 2", len(l.Screens))
	}
	if l.Screens[1].HasCaption {
		t.Error("non-screen root should not get a caption")
	}
	r, _ := l.Rect(doc.Roots()[1].ID())
	if r.W != 375 || r.H != 24 || r.X != l.Screens[1].Content.X {
		t.Errorf("loose text = %+v", r)
	}
}

func TestNoScreensUsesViewportBox(t *testing.T) {
	_, l := build(t, "wireframe desktop\ncol\n  text \"a\"\n")
	if l.Width != 1200 || l.Height != 600 {
		t.Errorf("canvas = %vx%v, want 1200x600", l.Width, l.Height)
	}
	if len(l.Screens) != 0 {
		t.Errorf("screens = %d", len(l.Screens))
	}
}

func TestNoScreensGrowsToFitRoots(t *testing.T) {
	_, l := build(t, "wireframe mobile\nimage height=500\nimage height=500\n")
	if l.Height != 1000 {
		t.Errorf("height = %v, want 1000", l.Height)
	}
}

func TestScreenOptions(t *testing.T) {
	_, l := build(t, "wireframe mobile\nscreen\nscreen\n",
		WithScreenHeight(400), WithScreenPadding(0), WithScreenGap(10), WithCaptionHeight(0))
	if l.Width != 760 || l.Height != 400 {
		t.Errorf("canvas = %vx%v, want 760x400", l.Width, l.Height)
	}
}

func TestViewportOverride(t *testing.T) {
	_, l := build(t, "wireframe mobile\nscreen\nscreen\n", WithViewport(tree.ViewportTablet))
	if l.Viewport != tree.ViewportTablet {
		t.Errorf("viewport = %v, want tablet", l.Viewport)
	}
	if want := 2*(768+2*DefaultScreenPadding) + DefaultScreenGap; l.Width != want {
		t.Errorf("width = %v, want %v", l.Width, want)
	}
}

func TestGridRows(t *testing.T) {
	src := `wireframe
grid
  grid-header "Name|Age|Role"
  grid-row "Ann|31|Dev"
  grid-row "Bob|42|Ops"
`
	doc, l := build(t, src)
	grid := doc.Roots()[0]
	g, _ := l.Rect(grid.ID())
	if g.W != 800 || g.H != 96 {
		t.Errorf("grid = %+v", g)
	}
	for i := 0; i < 3; i++ {
		r, _ := l.Rect(grid.Child(i).ID())
		if r.Y != float64(i)*GridRowHeight || r.H != GridRowHeight || r.W != g.W {
			t.Errorf("row %d = %+v", i, r)
		}
	}
}

func TestLayoutDiagnostics(t *testing.T) {
	src := `wireframe
col
  row
  grid
    grid-row ""
    grid-row "a|b"
  card
`
	doc, err := dsl.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	l := Build(doc, ViewportBox(doc))
	checkEveryNodeBounded(t, doc, l)
	var codes []errors.Code
	var lines []int
	for _, d := range l.Diagnostics {
		codes = append(codes, d.Code)
		lines = append(lines, d.Line)
	}
	want := []errors.Code{errors.ErrCodeZeroChildContainer, errors.ErrCodeEmptyGridChild, errors.ErrCodeZeroChildContainer}
	wantLines := []int{3, 5, 7}
	if len(codes) != len(want) {
		t.Fatalf("diagnostics = %v", l.Diagnostics)
	}
	for i := range want {
		if codes[i] != want[i] || lines[i] != wantLines[i] {
			t.Errorf("diagnostic %d = %s@%d, want %s@%d", i, codes[i], lines[i], want[i], wantLines[i])
		}
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	src := "wireframe mobile\nscreen \"A\"\n  row\n    col flex\n    col flex=2\n  list\n"
	doc, a := build(t, src)
	b := Build(doc, ViewportBox(doc))
	for id, r := range a.Bounds {
		if b.Bounds[id] != r {
			t.Errorf("node %d: %+v vs %+v", id, r, b.Bounds[id])
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	doc, l := build(t, "wireframe mobile\nscreen \"A\"\n  button \"Go\" primary\n")
	data, err := MarshalJSON(doc, l)
	if err != nil {
		t.Fatal(err)
	}
	var out Export
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Viewport != "mobile" || out.Direction != "LR" {
		t.Errorf("header = %s %s", out.Viewport, out.Direction)
	}
	if len(out.Nodes) != 2 || out.Nodes[1].Parent != 0 || out.Nodes[1].Kind != "button" {
		t.Errorf("nodes = %+v", out.Nodes)
	}
	if !strings.Contains(string(data), `"width": 375`) {
		t.Errorf("rect keys not lower-case:\n%s", data)
	}
}
