package render

import (
	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/tree"
)

// Surface is an abstract 2D vector target. Coordinates are canvas units with
// the origin at the top-left. Implementations decide how primitives are
// realized (SVG markup, recorded commands, a raster canvas).
type Surface interface {
	SetCanvasSize(w, h float64)
	DrawRect(r layout.Rect, s Style)
	DrawRoundedRect(r layout.Rect, radius float64, s Style)
	DrawCircle(cx, cy, radius float64, s Style)
	DrawLine(x1, y1, x2, y2 float64, s Style)
	DrawPath(points []Point, closed bool, s Style)
	// DrawText draws text with its baseline at y. Style.Anchor decides
	// whether x is the start, middle or end of the run.
	DrawText(x, y float64, text string, s Style)
}

// Grouper is implemented by surfaces that can group the primitives drawn for
// one node. Render calls BeginGroup before a node's primitives and EndGroup
// after its whole subtree.
type Grouper interface {
	BeginGroup(id tree.NodeID, kind tree.Kind)
	EndGroup()
}

// Point is a vertex of a path.
type Point struct {
	X, Y float64
}

// Anchor is the horizontal alignment of a text run relative to its x.
type Anchor uint8

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

func (a Anchor) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	}
	return "start"
}

// MarshalText encodes the anchor by name.
func (a Anchor) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Style parameterizes one primitive. Empty Fill or Stroke means none.
type Style struct {
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Dash        string  `json:"dash,omitempty"` // SVG dash array, e.g. "4 4"
	FontSize    float64 `json:"font_size,omitempty"`
	FontWeight  string  `json:"font_weight,omitempty"`
	Anchor      Anchor  `json:"anchor,omitempty"`
	// Class tags the primitive with its role, e.g. "grid-cell".
	Class string `json:"class,omitempty"`
}
