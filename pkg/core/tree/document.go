package tree

import (
	"fmt"

	"github.com/matzehuels/wireframe/pkg/errors"
)

// Viewport is the device class a document targets.
type Viewport uint8

const (
	ViewportDefault Viewport = iota
	ViewportMobile
	ViewportTablet
	ViewportDesktop
)

// ParseViewport maps a header keyword to a Viewport. "default" is accepted
// so the keyword can be written explicitly.
func ParseViewport(s string) (Viewport, bool) {
	switch s {
	case "mobile":
		return ViewportMobile, true
	case "tablet":
		return ViewportTablet, true
	case "desktop":
		return ViewportDesktop, true
	case "default":
		return ViewportDefault, true
	}
	return ViewportDefault, false
}

func (v Viewport) String() string {
	switch v {
	case ViewportMobile:
		return "mobile"
	case ViewportTablet:
		return "tablet"
	case ViewportDesktop:
		return "desktop"
	}
	return "default"
}

// Width returns the fixed pixel width of the viewport class.
func (v Viewport) Width() int {
	switch v {
	case ViewportMobile:
		return 375
	case ViewportTablet:
		return 768
	case ViewportDesktop:
		return 1200
	}
	return 800
}

// Direction arranges multiple top-level screens.
type Direction uint8

const (
	DirectionLR Direction = iota // left to right (default)
	DirectionTD                  // top to bottom
)

// ParseDirection maps a header keyword to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "LR":
		return DirectionLR, true
	case "TD":
		return DirectionTD, true
	}
	return DirectionLR, false
}

func (d Direction) String() string {
	if d == DirectionTD {
		return "TD"
	}
	return "LR"
}

// Header is the parsed first line of a document.
type Header struct {
	Viewport  Viewport
	Direction Direction
}

// Diagnostic records a recovered anomaly. Diagnostics never stop a render.
type Diagnostic struct {
	Code    errors.Code
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", d.Line, d.Code, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// Document is one parsed wireframe: header metadata plus the node forest.
// It is immutable once built.
type Document struct {
	header      Header
	roots       []*Node
	nodes       []*Node
	diagnostics []Diagnostic
}

// NewDocument builds a document from a header and the parser's flat list.
func NewDocument(h Header, descs []Descriptor, diags []Diagnostic) *Document {
	roots, nodes := build(descs)
	d := &Document{
		header: h,
		roots:  roots,
		nodes:  nodes,
	}
	if len(diags) > 0 {
		d.diagnostics = append([]Diagnostic(nil), diags...)
	}
	return d
}

func (d *Document) Header() Header       { return d.header }
func (d *Document) Viewport() Viewport   { return d.header.Viewport }
func (d *Document) Direction() Direction { return d.header.Direction }

// Roots returns a copy of the top-level node slice.
func (d *Document) Roots() []*Node {
	out := make([]*Node, len(d.roots))
	copy(out, d.roots)
	return out
}

// NodeCount returns the total number of nodes in the forest.
func (d *Document) NodeCount() int { return len(d.nodes) }

// Node looks up a node by ID.
func (d *Document) Node(id NodeID) (*Node, bool) {
	if id < 0 || int(id) >= len(d.nodes) {
		return nil, false
	}
	return d.nodes[id], true
}

// Nodes returns every node in source order.
func (d *Document) Nodes() []*Node {
	out := make([]*Node, len(d.nodes))
	copy(out, d.nodes)
	return out
}

// HasScreens reports whether any top-level node is a screen. When true, the
// layout engine frames every root as a screen slot.
func (d *Document) HasScreens() bool {
	for _, r := range d.roots {
		if r.kind == KindScreen {
			return true
		}
	}
	return false
}

// Screens returns the top-level screen nodes in source order.
func (d *Document) Screens() []*Node {
	var out []*Node
	for _, r := range d.roots {
		if r.kind == KindScreen {
			out = append(out, r)
		}
	}
	return out
}

// Diagnostics returns the anomalies recovered while parsing.
func (d *Document) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), d.diagnostics...)
}

// Walk visits every node depth-first in source order. Returning false from
// fn skips the node's children.
func (d *Document) Walk(fn func(n *Node, depth int) bool) {
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		if !fn(n, depth) {
			return
		}
		for _, c := range n.children {
			visit(c, depth+1)
		}
	}
	for _, r := range d.roots {
		visit(r, 0)
	}
}
