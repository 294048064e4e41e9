package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/render"
	"github.com/matzehuels/wireframe/pkg/core/tree"
)

const fontFamily = `system-ui, -apple-system, "Segoe UI", Roboto, sans-serif`

// SVGOption configures an [SVG] surface.
type SVGOption func(*SVG)

// WithHanddrawn draws rectangles and lines as slightly wobbly strokes. The
// wobble is derived from seed and the enclosing node, so output is stable.
func WithHanddrawn(seed uint64) SVGOption {
	return func(s *SVG) { s.handdrawn, s.seed = true, seed }
}

// WithBackground fills the whole canvas with color before anything else.
func WithBackground(color string) SVGOption {
	return func(s *SVG) { s.background = color }
}

// WithoutGroups suppresses the per-node <g> elements.
func WithoutGroups() SVGOption { return func(s *SVG) { s.flat = true } }

// SVG is a [render.Surface] that writes an SVG document. Call [SVG.Bytes]
// after rendering to get the closed document.
type SVG struct {
	body          bytes.Buffer
	width, height float64

	background string
	handdrawn  bool
	seed       uint64
	flat       bool

	groups []string
	shapes int
}

// NewSVG returns an empty SVG surface.
func NewSVG(opts ...SVGOption) *SVG {
	s := &SVG{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SVG) SetCanvasSize(w, h float64) { s.width, s.height = w, h }

func (s *SVG) DrawRect(r layout.Rect, st render.Style) {
	if s.handdrawn {
		s.path(wobbledRect(r.X, r.Y, r.W, r.H, s.seed, s.key()), st)
		return
	}
	s.indent()
	fmt.Fprintf(&s.body, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"%s/>`+"\n",
		r.X, r.Y, r.W, r.H, attrs(st))
}

func (s *SVG) DrawRoundedRect(r layout.Rect, radius float64, st render.Style) {
	s.indent()
	fmt.Fprintf(&s.body, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" ry="%.1f"%s/>`+"\n",
		r.X, r.Y, r.W, r.H, radius, radius, attrs(st))
}

func (s *SVG) DrawCircle(cx, cy, radius float64, st render.Style) {
	s.indent()
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.1f"%s/>`+"\n", cx, cy, radius, attrs(st))
}

func (s *SVG) DrawLine(x1, y1, x2, y2 float64, st render.Style) {
	if s.handdrawn {
		s.path(wobbledLine(x1, y1, x2, y2, s.seed, s.key()), st)
		return
	}
	s.indent()
	fmt.Fprintf(&s.body, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"%s/>`+"\n", x1, y1, x2, y2, attrs(st))
}

func (s *SVG) DrawPath(points []render.Point, closed bool, st render.Style) {
	if len(points) == 0 {
		return
	}
	var d strings.Builder
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&d, "%s %.1f %.1f ", cmd, p.X, p.Y)
	}
	if closed {
		d.WriteString("Z")
	}
	s.path(strings.TrimSpace(d.String()), st)
}

func (s *SVG) DrawText(x, y float64, text string, st render.Style) {
	s.indent()
	fmt.Fprintf(&s.body, `<text x="%.1f" y="%.1f" font-family='%s'%s>%s</text>`+"\n",
		x, y, fontFamily, attrs(st), EscapeXML(text))
}

func (s *SVG) BeginGroup(id tree.NodeID, kind tree.Kind) {
	key := fmt.Sprintf("node-%d", id)
	if !s.flat {
		s.indent()
		fmt.Fprintf(&s.body, `<g id="%s" class="node %s">`+"\n", key, kind)
	}
	s.groups = append(s.groups, key)
}

func (s *SVG) EndGroup() {
	if len(s.groups) == 0 {
		return
	}
	s.groups = s.groups[:len(s.groups)-1]
	if !s.flat {
		s.indent()
		s.body.WriteString("</g>\n")
	}
}

// Bytes returns the complete document. Groups still open are closed.
func (s *SVG) Bytes() []byte {
	for len(s.groups) > 0 {
		s.EndGroup()
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)
	if s.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			s.width, s.height, EscapeXML(s.background))
	}
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (s *SVG) path(d string, st render.Style) {
	s.indent()
	fmt.Fprintf(&s.body, `<path d="%s"%s/>`+"\n", d, attrs(st))
}

func (s *SVG) indent() {
	depth := 1
	if !s.flat {
		depth += len(s.groups)
	}
	s.body.WriteString(strings.Repeat("  ", depth))
}

// key identifies the current drawing call for the wobble hash: the innermost
// group plus a running shape counter.
func (s *SVG) key() string {
	s.shapes++
	g := "canvas"
	if n := len(s.groups); n > 0 {
		g = s.groups[n-1]
	}
	return fmt.Sprintf("%s/%d", g, s.shapes)
}

func attrs(st render.Style) string {
	var b strings.Builder
	fill := st.Fill
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(&b, ` fill="%s"`, EscapeXML(fill))
	if st.Stroke != "" {
		fmt.Fprintf(&b, ` stroke="%s"`, EscapeXML(st.Stroke))
		if st.StrokeWidth > 0 {
			fmt.Fprintf(&b, ` stroke-width="%.1f"`, st.StrokeWidth)
		}
	}
	if st.Dash != "" {
		fmt.Fprintf(&b, ` stroke-dasharray="%s"`, EscapeXML(st.Dash))
	}
	if st.FontSize > 0 {
		fmt.Fprintf(&b, ` font-size="%.1f"`, st.FontSize)
	}
	if st.FontWeight != "" {
		fmt.Fprintf(&b, ` font-weight="%s"`, EscapeXML(st.FontWeight))
	}
	if st.FontSize > 0 && st.Anchor != render.AnchorStart {
		fmt.Fprintf(&b, ` text-anchor="%s"`, st.Anchor)
	}
	if st.Class != "" {
		fmt.Fprintf(&b, ` class="%s"`, EscapeXML(st.Class))
	}
	return b.String()
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

var (
	_ render.Surface = (*SVG)(nil)
	_ render.Grouper = (*SVG)(nil)
)
