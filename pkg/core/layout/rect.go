package layout

import "github.com/matzehuels/wireframe/pkg/core/tree"

// Rect is an axis-aligned box in canvas units. The origin is the top-left
// corner of the canvas and Y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center of the rect.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rect.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Inset shrinks r by p on every side. Sizes never go negative.
func (r Rect) Inset(p float64) Rect {
	return Rect{
		X: r.X + p,
		Y: r.Y + p,
		W: max(0, r.W-2*p),
		H: max(0, r.H-2*p),
	}
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Size returns the extent of r along axis.
func (r Rect) Size(axis tree.Axis) float64 {
	if axis == tree.Horizontal {
		return r.W
	}
	return r.H
}

// Size is an intrinsic width and height.
type Size struct {
	W, H float64
}

// Along returns the extent along axis.
func (s Size) Along(axis tree.Axis) float64 {
	if axis == tree.Horizontal {
		return s.W
	}
	return s.H
}

// sizeOnAxes builds a Size from main and cross extents.
func sizeOnAxes(axis tree.Axis, main, cross float64) Size {
	if axis == tree.Horizontal {
		return Size{W: main, H: cross}
	}
	return Size{W: cross, H: main}
}

// rectOnAxes builds a Rect from offsets and extents expressed along axis.
func rectOnAxes(axis tree.Axis, origin Rect, mainPos, crossPos, main, cross float64) Rect {
	if axis == tree.Horizontal {
		return Rect{X: origin.X + mainPos, Y: origin.Y + crossPos, W: main, H: cross}
	}
	return Rect{X: origin.X + crossPos, Y: origin.Y + mainPos, W: cross, H: main}
}
