package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/wireframe/pkg/core/dsl"
	"github.com/matzehuels/wireframe/pkg/core/tree"
)

func build(t *testing.T, src string, opts ...Option) (*tree.Document, Layout) {
	t.Helper()
	doc, err := dsl.Parse(src, dsl.WithStrict())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	l := Build(doc, ViewportBox(doc, opts...), opts...)
	checkEveryNodeBounded(t, doc, l)
	return doc, l
}

// checkEveryNodeBounded fails unless l has exactly one rect per node.
func checkEveryNodeBounded(t *testing.T, doc *tree.Document, l Layout) {
	t.Helper()
	if len(l.Bounds) != doc.NodeCount() {
		t.Fatalf("layout has %d bounds for %d nodes", len(l.Bounds), doc.NodeCount())
	}
	for _, n := range doc.Nodes() {
		if _, ok := l.Rect(n.ID()); !ok {
			t.Fatalf("no bounds for %s on line %d", n.Kind(), n.Line())
		}
	}
}

func widthsOf(t *testing.T, doc *tree.Document, l Layout, parent *tree.Node) []float64 {
	t.Helper()
	var out []float64
	for _, c := range parent.Children() {
		r, ok := l.Rect(c.ID())
		if !ok {
			t.Fatalf("no bounds for node %d", c.ID())
		}
		out = append(out, r.W)
	}
	return out
}

func TestRowFlexSplit(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []float64
	}{
		{
			name: "TwoBareFlex",
			src:  "wireframe\nrow width=300\n  col flex\n  col flex\n",
			want: []float64{150, 150},
		},
		{
			name: "FixedPlusFlex",
			src:  "wireframe\nrow width=300\n  col width=100\n  col flex\n",
			want: []float64{100, 200},
		},
		{
			name: "Weighted",
			src:  "wireframe\nrow width=300\n  col flex=1\n  col flex=2\n",
			want: []float64{100, 200},
		},
		{
			name: "SpacerIsFlexible",
			src:  "wireframe\nrow width=300\n  text \"abc\"\n  spacer\n  button \"OK\"\n",
			// text 8*3+16 = 40, button 9*2+32 = 50
			want: []float64{40, 210, 50},
		},
		{
			name: "RemainderGoesToFirst",
			src:  "wireframe\nrow width=100\n  col flex\n  col flex\n  col flex\n",
			want: []float64{34, 33, 33},
		},
		{
			name: "OverfullFloorsAtZero",
			src:  "wireframe\nrow width=100\n  col width=80\n  col width=80\n  col flex\n",
			want: []float64{80, 80, 0},
		},
		{
			name: "PaddingReducesSpace",
			src:  "wireframe\nrow width=300 padding=10\n  col flex\n  col flex\n",
			want: []float64{140, 140},
		},
		{
			name: "FixedBeatsFlex",
			src:  "wireframe\nrow width=300\n  col flex width=50\n  col flex\n",
			want: []float64{50, 250},
		},
		{
			name: "FlexZeroIsIntrinsic",
			src:  "wireframe\nrow width=300\n  text \"\" flex=0\n  col flex\n",
			want: []float64{16, 284},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, l := build(t, tt.src)
			got := widthsOf(t, doc, l, doc.Roots()[0])
			if len(got) != len(tt.want) {
				t.Fatalf("widths = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("widths = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestFlexSharesSumExactly(t *testing.T) {
	for total := 0; total <= 97; total++ {
		items := []Item{{Weight: 1}, {Weight: 3}, {Weight: 2}, {Fixed: 7, HasFixed: true}}
		lengths := Distribute(float64(total)+7, items)
		var sum float64
		for _, v := range lengths {
			sum += v
		}
		if sum != float64(total)+7 {
			t.Fatalf("total %d: lengths %v sum to %v", total, lengths, sum)
		}
	}
}

func TestDistributeHugeWeights(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		items []Item
	}{
		{"TwoMaxWeights", 300, []Item{{Weight: math.MaxInt / 2}, {Weight: math.MaxInt / 2}}},
		{"HugeAndOne", 300, []Item{{Weight: 100000000000000000}, {Weight: 1}}},
		{"HugeBesideFixed", 301, []Item{{Weight: math.MaxInt}, {Fixed: 50, HasFixed: true}, {Weight: math.MaxInt}, {Weight: 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lengths := Distribute(tt.total, tt.items)
			var sum float64
			for _, v := range lengths {
				if v < 0 {
					t.Fatalf("negative length in %v", lengths)
				}
				sum += v
			}
			if sum != tt.total {
				t.Errorf("lengths %v sum to %v, want %v", lengths, sum, tt.total)
			}
		})
	}
	if got := Distribute(300, []Item{{Weight: math.MaxInt / 2}, {Weight: math.MaxInt / 2}}); got[0] != 150 || got[1] != 150 {
		t.Errorf("equal huge weights = %v, want [150 150]", got)
	}
}

func TestRowHugeFlexWeight(t *testing.T) {
	doc, l := build(t, "wireframe\nrow width=300\n  col flex=100000000000000000\n  col flex\n")
	widths := widthsOf(t, doc, l, doc.Roots()[0])
	if len(widths) != 2 || widths[0] < 0 || widths[1] < 0 || widths[0]+widths[1] != 300 {
		t.Errorf("widths = %v, want two non-negative widths summing to 300", widths)
	}
}

func TestSpacerFlexZeroStaysFlexible(t *testing.T) {
	doc, l := build(t, "wireframe\nrow width=300\n  spacer flex=0\n  col width=100\n")
	widths := widthsOf(t, doc, l, doc.Roots()[0])
	if len(widths) != 2 || widths[0] != 200 || widths[1] != 100 {
		t.Errorf("widths = %v, want [200 100]", widths)
	}
}

func TestRowPositionsChildrenInSequence(t *testing.T) {
	doc, l := build(t, "wireframe\nrow width=300\n  col width=100\n  col flex\n")
	row := doc.Roots()[0]
	a, _ := l.Rect(row.Child(0).ID())
	b, _ := l.Rect(row.Child(1).ID())
	if a.X != 0 || b.X != 100 {
		t.Errorf("x positions = %v, %v; want 0, 100", a.X, b.X)
	}
	if a.H != b.H {
		t.Errorf("children should stretch to the same cross size, got %v and %v", a.H, b.H)
	}
}

func TestCrossAxisStretch(t *testing.T) {
	doc, l := build(t, "wireframe\ncol\n  button \"Go\"\n  text \"x\" width=30\n")
	col := doc.Roots()[0]
	btn, _ := l.Rect(col.Child(0).ID())
	txt, _ := l.Rect(col.Child(1).ID())
	if btn.W != 800 {
		t.Errorf("button width = %v, want stretched 800", btn.W)
	}
	if btn.H != 40 {
		t.Errorf("button height = %v, want intrinsic 40", btn.H)
	}
	if txt.W != 30 {
		t.Errorf("fixed cross width = %v, want 30", txt.W)
	}
}

func TestCrossHint(t *testing.T) {
	doc, l := build(t, "wireframe\ncol width=200 cross=center\n  text \"abc\"\n")
	r, _ := l.Rect(doc.Roots()[0].Child(0).ID())
	if r.W != 40 || r.X != 80 {
		t.Errorf("centered text = %+v, want width 40 at x 80", r)
	}

	doc, l = build(t, "wireframe\ncol width=200 cross=end\n  text \"abc\"\n")
	r, _ = l.Rect(doc.Roots()[0].Child(0).ID())
	if r.X != 160 {
		t.Errorf("end-aligned text x = %v, want 160", r.X)
	}
}

func TestMainAxisAlign(t *testing.T) {
	tests := []struct {
		align string
		want  []float64
	}{
		{"start", []float64{0, 40}},
		{"center", []float64{110, 150}},
		{"end", []float64{220, 260}},
		{"space-between", []float64{0, 260}},
	}
	for _, tt := range tests {
		t.Run(tt.align, func(t *testing.T) {
			src := "wireframe\nrow width=300 align=" + tt.align + "\n  text \"abc\"\n  text \"abc\"\n"
			doc, l := build(t, src)
			row := doc.Roots()[0]
			for i, want := range tt.want {
				r, _ := l.Rect(row.Child(i).ID())
				if r.X != want {
					t.Errorf("child %d x = %v, want %v", i, r.X, want)
				}
			}
		})
	}
}

func TestAlignIgnoredWhenFlexConsumesSpace(t *testing.T) {
	doc, l := build(t, "wireframe\nrow width=300 align=end\n  text \"abc\"\n  spacer\n")
	r, _ := l.Rect(doc.Roots()[0].Child(0).ID())
	if r.X != 0 {
		t.Errorf("x = %v, want 0", r.X)
	}
}
