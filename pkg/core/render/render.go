package render

import (
	"fmt"

	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/tree"
)

// Neutral colours shared by every template.
const (
	colorOutline = "#9e9e9e"
	colorMuted   = "#bdbdbd"
	colorText    = "#212121"
	colorHint    = "#757575"
	colorSurface = "#ffffff"
	colorShade   = "#eeeeee"
	colorHeader  = "#f0f0f0"

	dashContainer = "4 4"
	dashFrame     = "6 4"
)

// Option configures [Render].
type Option func(*renderer)

// WithPalette replaces the variant palette.
func WithPalette(p Palette) Option {
	return func(r *renderer) { r.palette = p }
}

// WithFontScale scales every font size; values <= 0 are ignored.
func WithFontScale(f float64) Option {
	return func(r *renderer) {
		if f > 0 {
			r.fontScale = f
		}
	}
}

type renderer struct {
	palette   Palette
	fontScale float64
	layout    layout.Layout
	surface   Surface
	grouper   Grouper
	screens   map[tree.NodeID]bool
}

// Render draws doc once onto s using the bounds in l. The canvas is sized to
// the layout, screen frames and captions are drawn when the layout has more
// than one slot, and every node is drawn before its children.
func Render(doc *tree.Document, l layout.Layout, s Surface, opts ...Option) {
	r := &renderer{
		palette:   DefaultPalette(),
		fontScale: 1,
		layout:    l,
		surface:   s,
		screens:   make(map[tree.NodeID]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.grouper, _ = s.(Grouper)
	for _, sc := range doc.Screens() {
		r.screens[sc.ID()] = true
	}

	s.SetCanvasSize(l.Width, l.Height)
	if l.Framed() {
		for _, sc := range l.Screens {
			r.frame(sc)
		}
	}
	for _, root := range doc.Roots() {
		r.visit(root)
	}
}

func (r *renderer) visit(n *tree.Node) {
	b, ok := r.layout.Rect(n.ID())
	if !ok {
		return
	}
	if r.grouper != nil {
		r.grouper.BeginGroup(n.ID(), n.Kind())
	}
	r.draw(n, b)
	for _, c := range n.Children() {
		r.visit(c)
	}
	if r.grouper != nil {
		r.grouper.EndGroup()
	}
}

// draw dispatches on every kind; adding a kind without a template panics in
// tests that render each kind.
func (r *renderer) draw(n *tree.Node, b layout.Rect) {
	switch k := n.Kind(); k {
	case tree.KindRow, tree.KindCol:
		r.outline(b)
	case tree.KindScreen:
		r.screen(n, b)
	case tree.KindCard:
		r.card(n, b)
	case tree.KindGrid:
		r.grid(b)
	case tree.KindGridHeader, tree.KindGridRow:
		r.gridStrip(n, b)
	case tree.KindText:
		r.text(n, b, 14, "")
	case tree.KindTitle:
		r.text(n, b, 20, "bold")
	case tree.KindButton:
		r.button(n, b)
	case tree.KindInput:
		r.input(n, b)
	case tree.KindCheckbox:
		r.checkbox(n, b)
	case tree.KindRadio:
		r.radio(n, b)
	case tree.KindSwitch:
		r.toggle(n, b)
	case tree.KindDropdown:
		r.dropdown(n, b)
	case tree.KindList:
		r.list(n, b)
	case tree.KindNavMenu:
		r.navMenu(n, b)
	case tree.KindBottomNav:
		r.bottomNav(n, b)
	case tree.KindAppBar:
		r.appBar(n, b)
	case tree.KindFab:
		r.fab(n, b)
	case tree.KindAvatar:
		r.avatar(n, b)
	case tree.KindIcon:
		r.icon(b)
	case tree.KindImage:
		r.image(n, b)
	case tree.KindSpacer:
	case tree.KindDivider:
		r.surface.DrawLine(b.X, b.CenterY(), b.Right(), b.CenterY(),
			Style{Stroke: colorMuted, StrokeWidth: 1, Class: "divider"})
	default:
		panic(fmt.Sprintf("render: unhandled kind %v", k))
	}
}

// frame draws the dashed slot outline and caption of one screen.
func (r *renderer) frame(sc layout.Screen) {
	r.surface.DrawRect(sc.Frame, Style{
		Stroke:      colorMuted,
		StrokeWidth: 1,
		Dash:        dashFrame,
		Class:       "screen-frame",
	})
	if !sc.HasCaption || sc.Caption == "" {
		return
	}
	size := r.font(13)
	text := TruncateLabel(sc.Caption, sc.Content.W, size)
	r.surface.DrawText(sc.Content.X, sc.Content.Y-8, text, Style{
		Fill:       colorHint,
		FontSize:   size,
		FontWeight: "bold",
		Class:      "screen-caption",
	})
}

func (r *renderer) font(size float64) float64 { return size * r.fontScale }

// label draws a single line of text vertically centered in b.
func (r *renderer) label(text string, x float64, b layout.Rect, size float64, s Style) {
	if text == "" {
		return
	}
	s.FontSize = size
	width := b.Right() - x
	if s.Anchor == AnchorMiddle {
		width = b.W
	}
	r.surface.DrawText(x, Baseline(b.CenterY(), size), TruncateLabel(text, width, size), s)
}
