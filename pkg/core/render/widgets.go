package render

import (
	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/tree"
)

func (r *renderer) outline(b layout.Rect) {
	r.surface.DrawRect(b, Style{Stroke: colorMuted, StrokeWidth: 1, Dash: dashContainer, Class: "container"})
}

// screen draws top-level screens as the device viewport and nested ones as
// plain containers.
func (r *renderer) screen(n *tree.Node, b layout.Rect) {
	if !r.screens[n.ID()] {
		r.outline(b)
		return
	}
	r.surface.DrawRect(b, Style{Fill: colorSurface, Stroke: colorOutline, StrokeWidth: 1, Class: "screen"})
}

func (r *renderer) card(n *tree.Node, b layout.Rect) {
	r.surface.DrawRoundedRect(b, 8, Style{Fill: colorSurface, Stroke: colorOutline, StrokeWidth: 1, Class: "card"})
	label, ok := n.Label()
	if !ok || label == "" {
		return
	}
	pad := float64(n.Padding())
	band := layout.Rect{X: b.X + pad, Y: b.Y + pad, W: max(0, b.W-2*pad), H: layout.CardHeaderHeight}
	r.label(label, band.X, band, r.font(12), Style{Fill: colorHint, FontWeight: "bold", Class: "card-title"})
}

func (r *renderer) grid(b layout.Rect) {
	r.surface.DrawRect(b, Style{Fill: colorSurface, Stroke: colorOutline, StrokeWidth: 1, Class: "grid"})
}

// gridStrip splits a header or data row into equal-width cells. A row
// without cells is drawn as an empty strip.
func (r *renderer) gridStrip(n *tree.Node, b layout.Rect) {
	header := n.Kind() == tree.KindGridHeader
	cells := n.Cells()
	if len(cells) == 0 {
		r.surface.DrawRect(b, Style{Stroke: colorMuted, StrokeWidth: 1, Class: "grid-empty"})
		return
	}

	cell := Style{Stroke: colorMuted, StrokeWidth: 1, Class: "grid-cell"}
	text := Style{Fill: colorText, Class: "grid-cell-text"}
	if header {
		cell.Fill, cell.Class = colorHeader, "grid-header-cell"
		text.FontWeight, text.Class = "bold", "grid-header-text"
	}
	w := b.W / float64(len(cells))
	size := r.font(13)
	for i, c := range cells {
		cr := layout.Rect{X: b.X + float64(i)*w, Y: b.Y, W: w, H: b.H}
		r.surface.DrawRect(cr, cell)
		inner := layout.Rect{X: cr.X, Y: cr.Y, W: max(0, cr.W-8), H: cr.H}
		r.label(c, cr.X+8, inner, size, text)
	}
}

func (r *renderer) text(n *tree.Node, b layout.Rect, size float64, weight string) {
	class := "text"
	if weight != "" {
		class = "title"
	}
	r.label(n.Text(), b.X, b, r.font(size), Style{Fill: colorText, FontWeight: weight, Class: class})
}

func (r *renderer) colors(n *tree.Node) Colors {
	m := n.Modifiers()
	return r.palette.For(m.Variant, m.Disabled)
}

func (r *renderer) button(n *tree.Node, b layout.Rect) {
	c := r.colors(n)
	r.surface.DrawRoundedRect(b, 6, Style{Fill: c.Fill, Stroke: c.Stroke, StrokeWidth: 1, Class: "button"})
	r.label(n.Text(), b.CenterX(), b, r.font(14), Style{Fill: c.Text, Anchor: AnchorMiddle, FontWeight: "bold", Class: "button-label"})
}

func (r *renderer) input(n *tree.Node, b layout.Rect) {
	c := r.colors(n)
	r.surface.DrawRect(b, Style{Fill: c.Fill, Stroke: c.Stroke, StrokeWidth: 1, Class: "input"})
	hint := colorHint
	if n.Modifiers().Disabled {
		hint = c.Text
	}
	r.label(n.Text(), b.X+8, b, r.font(14), Style{Fill: hint, Class: "input-placeholder"})
}

// checked reports whether a toggle-style widget is drawn in its on state.
func checked(n *tree.Node) bool {
	return n.Modifiers().Variant != tree.VariantNone
}

func (r *renderer) checkbox(n *tree.Node, b layout.Rect) {
	c := r.colors(n)
	box := layout.Rect{X: b.X, Y: b.CenterY() - 8, W: 16, H: 16}
	if checked(n) {
		r.surface.DrawRoundedRect(box, 2, Style{Fill: c.Fill, Stroke: c.Stroke, StrokeWidth: 1, Class: "checkbox"})
		r.surface.DrawPath([]Point{
			{box.X + 4, box.Y + 8},
			{box.X + 7, box.Y + 11},
			{box.X + 12, box.Y + 5},
		}, false, Style{Stroke: c.Text, StrokeWidth: 2, Class: "checkbox-mark"})
	} else {
		r.surface.DrawRoundedRect(box, 2, Style{Fill: colorSurface, Stroke: c.Stroke, StrokeWidth: 1, Class: "checkbox"})
	}
	r.label(n.Text(), b.X+24, b, r.font(14), Style{Fill: r.textColor(n), Class: "checkbox-label"})
}

func (r *renderer) radio(n *tree.Node, b layout.Rect) {
	c := r.colors(n)
	cx, cy := b.X+8, b.CenterY()
	r.surface.DrawCircle(cx, cy, 8, Style{Fill: colorSurface, Stroke: c.Stroke, StrokeWidth: 1, Class: "radio"})
	if checked(n) {
		r.surface.DrawCircle(cx, cy, 4, Style{Fill: c.Fill, Class: "radio-dot"})
	}
	r.label(n.Text(), b.X+24, b, r.font(14), Style{Fill: r.textColor(n), Class: "radio-label"})
}

// toggle draws a switch as a track plus thumb; the thumb sits right when on.
func (r *renderer) toggle(n *tree.Node, b layout.Rect) {
	c := r.colors(n)
	on := checked(n)
	track := layout.Rect{X: b.X, Y: b.CenterY() - 10, W: 40, H: 20}
	trackStyle := Style{Fill: colorShade, Stroke: colorMuted, StrokeWidth: 1, Class: "switch-track"}
	thumbX := track.X + 10
	if on {
		trackStyle.Fill, trackStyle.Stroke = c.Fill, c.Stroke
		thumbX = track.Right() - 10
	}
	r.surface.DrawRoundedRect(track, 10, trackStyle)
	r.surface.DrawCircle(thumbX, track.CenterY(), 8, Style{Fill: colorSurface, Stroke: colorMuted, StrokeWidth: 1, Class: "switch-thumb"})
	r.label(n.Text(), b.X+48, b, r.font(14), Style{Fill: r.textColor(n), Class: "switch-label"})
}

// textColor is the label colour for widgets whose variant colours only the
// control, not the text beside it.
func (r *renderer) textColor(n *tree.Node) string {
	if n.Modifiers().Disabled {
		return r.palette.Disabled.Text
	}
	return colorText
}

func (r *renderer) dropdown(n *tree.Node, b layout.Rect) {
	c := r.colors(n)
	r.surface.DrawRect(b, Style{Fill: c.Fill, Stroke: c.Stroke, StrokeWidth: 1, Class: "dropdown"})
	body := layout.Rect{X: b.X, Y: b.Y, W: max(0, b.W-28), H: b.H}
	r.label(n.Text(), b.X+8, body, r.font(14), Style{Fill: c.Text, Class: "dropdown-label"})
	x, cy := b.Right(), b.CenterY()
	r.surface.DrawPath([]Point{{x - 20, cy - 3}, {x - 14, cy + 3}, {x - 8, cy - 3}}, false,
		Style{Stroke: c.Text, StrokeWidth: 1.5, Class: "dropdown-chevron"})
}

func (r *renderer) list(n *tree.Node, b layout.Rect) {
	items := n.Items()
	r.surface.DrawRect(b, Style{Fill: colorSurface, Stroke: colorOutline, StrokeWidth: 1, Class: "list"})
	h := b.H / float64(len(items))
	for i, it := range items {
		row := layout.Rect{X: b.X, Y: b.Y + float64(i)*h, W: b.W, H: h}
		if i > 0 {
			r.surface.DrawLine(row.X, row.Y, row.Right(), row.Y, Style{Stroke: colorShade, StrokeWidth: 1, Class: "list-separator"})
		}
		r.label(it, row.X+16, row, r.font(14), Style{Fill: colorText, Class: "list-item"})
	}
}

func (r *renderer) navMenu(n *tree.Node, b layout.Rect) {
	items := n.Items()
	r.surface.DrawRect(b, Style{Fill: colorSurface, Stroke: colorOutline, StrokeWidth: 1, Class: "nav-menu"})
	w := b.W / float64(len(items))
	for i, it := range items {
		cell := layout.Rect{X: b.X + float64(i)*w, Y: b.Y, W: w, H: b.H}
		r.label(it, cell.CenterX(), cell, r.font(14), Style{Fill: colorText, Anchor: AnchorMiddle, Class: "nav-item"})
	}
}

func (r *renderer) bottomNav(n *tree.Node, b layout.Rect) {
	items := n.Items()
	r.surface.DrawRect(b, Style{Fill: colorSurface, Class: "bottom-nav"})
	r.surface.DrawLine(b.X, b.Y, b.Right(), b.Y, Style{Stroke: colorOutline, StrokeWidth: 1, Class: "bottom-nav-border"})
	w := b.W / float64(len(items))
	for i, it := range items {
		cell := layout.Rect{X: b.X + float64(i)*w, Y: b.Y, W: w, H: b.H}
		r.surface.DrawCircle(cell.CenterX(), cell.Y+cell.H*0.35, 6, Style{Fill: colorMuted, Class: "bottom-nav-icon"})
		text := layout.Rect{X: cell.X, Y: cell.Y + cell.H*0.5, W: cell.W, H: cell.H * 0.5}
		r.label(it, cell.CenterX(), text, r.font(11), Style{Fill: colorHint, Anchor: AnchorMiddle, Class: "bottom-nav-item"})
	}
}

func (r *renderer) appBar(n *tree.Node, b layout.Rect) {
	c := r.palette.Primary
	r.surface.DrawRect(b, Style{Fill: c.Fill, Class: "app-bar"})
	line := Style{Stroke: c.Text, StrokeWidth: 2, Class: "app-bar-menu"}
	cy := b.CenterY()
	for _, dy := range []float64{-6, 0, 6} {
		r.surface.DrawLine(b.X+16, cy+dy, b.X+34, cy+dy, line)
	}
	r.label(n.Text(), b.X+56, b, r.font(18), Style{Fill: c.Text, FontWeight: "bold", Class: "app-bar-title"})
}

func (r *renderer) fab(n *tree.Node, b layout.Rect) {
	c := r.palette.Primary
	if m := n.Modifiers(); m.Variant != tree.VariantNone || m.Disabled {
		c = r.colors(n)
	}
	radius := min(b.W, b.H) / 2
	cx, cy := b.CenterX(), b.CenterY()
	r.surface.DrawCircle(cx, cy, radius, Style{Fill: c.Fill, Stroke: c.Stroke, StrokeWidth: 1, Class: "fab"})
	arm := radius * 0.4
	plus := Style{Stroke: c.Text, StrokeWidth: 2, Class: "fab-icon"}
	r.surface.DrawLine(cx-arm, cy, cx+arm, cy, plus)
	r.surface.DrawLine(cx, cy-arm, cx, cy+arm, plus)
}

func (r *renderer) avatar(n *tree.Node, b layout.Rect) {
	radius := min(b.W, b.H) / 2
	cx, cy := b.CenterX(), b.CenterY()
	r.surface.DrawCircle(cx, cy, radius, Style{Fill: colorShade, Stroke: colorOutline, StrokeWidth: 1, Class: "avatar"})
	if initial := Initial(n.Text()); initial != "" {
		size := r.font(radius)
		r.surface.DrawText(cx, Baseline(cy, size), initial, Style{Fill: colorHint, FontSize: size, FontWeight: "bold", Anchor: AnchorMiddle, Class: "avatar-initial"})
	}
}

func (r *renderer) icon(b layout.Rect) {
	r.surface.DrawRoundedRect(b, 4, Style{Fill: colorShade, Stroke: colorOutline, StrokeWidth: 1, Class: "icon"})
}

func (r *renderer) image(n *tree.Node, b layout.Rect) {
	line := Style{Stroke: colorMuted, StrokeWidth: 1, Class: "image-cross"}
	r.surface.DrawRect(b, Style{Fill: colorShade, Stroke: colorOutline, StrokeWidth: 1, Class: "image"})
	r.surface.DrawLine(b.X, b.Y, b.Right(), b.Bottom(), line)
	r.surface.DrawLine(b.X, b.Bottom(), b.Right(), b.Y, line)
	if label, ok := n.Label(); ok && label != "" {
		r.label(label, b.CenterX(), b, r.font(12), Style{Fill: colorHint, Anchor: AnchorMiddle, Class: "image-caption"})
	}
}
