package tree

import (
	"testing"

	"github.com/matzehuels/wireframe/pkg/errors"
)

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("carousel"); ok {
		t.Error("ParseKind(carousel) should fail")
	}
	if Kind(200).String() != "unknown" || Kind(200).Valid() {
		t.Error("out of range kind should be invalid")
	}
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		kind        Kind
		container   bool
		label       bool
		interactive bool
		axis        Axis
	}{
		{KindRow, true, false, false, Horizontal},
		{KindCol, true, false, false, Vertical},
		{KindCard, true, true, false, Vertical},
		{KindScreen, true, true, false, Vertical},
		{KindGrid, false, false, false, Vertical},
		{KindButton, false, true, true, Vertical},
		{KindSpacer, false, false, false, Vertical},
		{KindDivider, false, false, false, Vertical},
		{KindText, false, true, false, Vertical},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsContainer(); got != tt.container {
				t.Errorf("IsContainer = %v", got)
			}
			if got := tt.kind.AcceptsLabel(); got != tt.label {
				t.Errorf("AcceptsLabel = %v", got)
			}
			if got := tt.kind.IsInteractive(); got != tt.interactive {
				t.Errorf("IsInteractive = %v", got)
			}
			if got := tt.kind.MainAxis(); got != tt.axis {
				t.Errorf("MainAxis = %v", got)
			}
		})
	}
}

func TestViewportWidths(t *testing.T) {
	tests := map[string]int{"mobile": 375, "tablet": 768, "desktop": 1200, "default": 800}
	for name, want := range tests {
		v, ok := ParseViewport(name)
		if !ok {
			t.Fatalf("ParseViewport(%q) failed", name)
		}
		if v.Width() != want {
			t.Errorf("%s width = %d, want %d", name, v.Width(), want)
		}
		if v.String() != name {
			t.Errorf("String() = %q, want %q", v.String(), name)
		}
	}
}

func TestNodeReadOnlyViews(t *testing.T) {
	doc := NewDocument(Header{}, []Descriptor{
		{Line: 2, Indent: 0, Kind: KindRow},
		{Line: 3, Indent: 2, Kind: KindButton, Label: "Go", HasLabel: true,
			Modifiers: Modifiers{Width: Int(100), Variant: VariantPrimary}},
	}, nil)

	row := doc.Roots()[0]
	kids := row.Children()
	kids[0] = nil
	if row.Child(0) == nil {
		t.Fatal("mutating Children() result changed the node")
	}

	btn := row.Child(0)
	m := btn.Modifiers()
	*m.Width = 5
	if w, _ := btn.Fixed(Horizontal); w != 100 {
		t.Errorf("width = %d after mutating a copy, want 100", w)
	}

	roots := doc.Roots()
	roots[0] = nil
	if doc.Roots()[0] == nil {
		t.Error("mutating Roots() result changed the document")
	}
}

func TestDocumentWalk(t *testing.T) {
	doc := NewDocument(Header{Viewport: ViewportMobile}, []Descriptor{
		{Indent: 0, Kind: KindScreen, Label: "A", HasLabel: true},
		{Indent: 2, Kind: KindCol},
		{Indent: 4, Kind: KindText},
		{Indent: 0, Kind: KindScreen, Label: "B", HasLabel: true},
	}, []Diagnostic{{Code: errors.ErrCodeUnrecognizedToken, Line: 3, Message: "skipped"}})

	var kinds []Kind
	var depths []int
	doc.Walk(func(n *Node, depth int) bool {
		kinds = append(kinds, n.Kind())
		depths = append(depths, depth)
		return n.Kind() != KindCol
	})
	wantDepths := []int{0, 1, 0}
	if len(depths) != len(wantDepths) {
		t.Fatalf("visited %v, want depths %v", kinds, wantDepths)
	}
	for i := range wantDepths {
		if depths[i] != wantDepths[i] {
			t.Errorf("depth[%d] = %d, want %d", i, depths[i], wantDepths[i])
		}
	}

	if !doc.HasScreens() || len(doc.Screens()) != 2 {
		t.Errorf("Screens() = %d, want 2", len(doc.Screens()))
	}
	if doc.NodeCount() != 4 {
		t.Errorf("NodeCount = %d, want 4", doc.NodeCount())
	}
	if n, ok := doc.Node(2); !ok || n.Kind() != KindText {
		t.Errorf("Node(2) = %v, %v", n, ok)
	}
	if _, ok := doc.Node(9); ok {
		t.Error("Node(9) should not exist")
	}
	if len(doc.Diagnostics()) != 1 {
		t.Errorf("Diagnostics = %v", doc.Diagnostics())
	}
}

func TestSplitCells(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"Name", []string{"Name"}},
		{"Name | Age |Role", []string{"Name", "Age", "Role"}},
		{"a||b", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		got := SplitCells(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("SplitCells(%q) = %q, want %q", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitCells(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestItemsAndText(t *testing.T) {
	list := newNode(0, Descriptor{Kind: KindList})
	if got := list.Items(); len(got) != 3 || got[0] != "Item 1" {
		t.Errorf("unlabelled list items = %q", got)
	}
	nav := newNode(1, Descriptor{Kind: KindNavMenu, Label: "A|B", HasLabel: true})
	if got := nav.Items(); len(got) != 2 || got[1] != "B" {
		t.Errorf("nav items = %q", got)
	}
	if got := newNode(2, Descriptor{Kind: KindButton}).Text(); got != "Button" {
		t.Errorf("button text = %q", got)
	}
	if got := newNode(3, Descriptor{Kind: KindButton, Label: "", HasLabel: true}).Text(); got != "" {
		t.Errorf("empty-label button text = %q", got)
	}
	if got := newNode(4, Descriptor{Kind: KindText}).Text(); got != "" {
		t.Errorf("text placeholder = %q", got)
	}
}

func TestFlexWeight(t *testing.T) {
	spacer := newNode(0, Descriptor{Kind: KindSpacer})
	if spacer.FlexWeight() != 1 {
		t.Errorf("spacer weight = %d, want 1", spacer.FlexWeight())
	}
	weighted := newNode(1, Descriptor{Kind: KindSpacer, Modifiers: Modifiers{Flex: 3}})
	if weighted.FlexWeight() != 3 {
		t.Errorf("flex=3 spacer weight = %d", weighted.FlexWeight())
	}
	plain := newNode(2, Descriptor{Kind: KindText})
	if plain.FlexWeight() != 0 {
		t.Errorf("text weight = %d, want 0", plain.FlexWeight())
	}
}

func TestFlexZero(t *testing.T) {
	spacer := newNode(0, Descriptor{Kind: KindSpacer, Modifiers: Modifiers{Flex: 0}})
	if spacer.FlexWeight() != 1 {
		t.Errorf("flex=0 spacer weight = %d, want 1", spacer.FlexWeight())
	}
	col := newNode(1, Descriptor{Kind: KindCol, Modifiers: Modifiers{Flex: 0}})
	if col.FlexWeight() != 0 {
		t.Errorf("flex=0 col weight = %d, want 0", col.FlexWeight())
	}
}
