package layout

import (
	"fmt"

	"github.com/matzehuels/wireframe/pkg/core/tree"
	"github.com/matzehuels/wireframe/pkg/errors"
)

// Screen is one framed slot on the canvas. Every top-level node gets a slot
// when the document contains at least one top-level screen.
type Screen struct {
	Root    tree.NodeID
	Frame   Rect // whole slot, including padding and caption band
	Content Rect // viewport-sized box the root is laid out in
	Caption string
	// HasCaption is set for labelled screen roots only.
	HasCaption bool
}

// Layout is the computed geometry of one document. It is recomputed on
// every pass and never mutated after [Build] returns.
type Layout struct {
	Width, Height float64
	Viewport      tree.Viewport
	Direction     tree.Direction
	Bounds        map[tree.NodeID]Rect
	Screens       []Screen
	Diagnostics   []tree.Diagnostic
}

// Framed reports whether screen frames and captions should be drawn.
func (l Layout) Framed() bool { return len(l.Screens) > 1 }

// Rect returns the bounds computed for id.
func (l Layout) Rect(id tree.NodeID) (Rect, bool) {
	r, ok := l.Bounds[id]
	return r, ok
}

// ViewportBox returns the content box for doc: the viewport width by the
// configured screen height, at the origin.
func ViewportBox(doc *tree.Document, opts ...Option) Rect {
	c := newConfig(opts)
	return Rect{W: float64(c.viewportOf(doc).Width()), H: c.screenHeight}
}

// Build computes a Rect for every node of doc. box is the viewport box each
// screen (or, without screens, the whole forest) is laid out in; use
// [ViewportBox] for the document's own.
func Build(doc *tree.Document, box Rect, opts ...Option) Layout {
	cfg := newConfig(opts)
	e := &engine{
		cfg:      cfg,
		viewport: cfg.viewportOf(doc),
		sizes:    make(map[tree.NodeID]Size, doc.NodeCount()),
		bounds:   make(map[tree.NodeID]Rect, doc.NodeCount()),
	}
	l := Layout{
		Viewport:  e.viewport,
		Direction: doc.Direction(),
	}

	if doc.HasScreens() {
		l.Screens = e.arrangeScreens(doc, box)
		for _, s := range l.Screens {
			l.Width = max(l.Width, s.Frame.Right())
			l.Height = max(l.Height, s.Frame.Bottom())
		}
	} else {
		roots := doc.Roots()
		e.stack(tree.Vertical, roots, box, tree.AlignNone, tree.AlignNone)
		l.Width, l.Height = box.Right(), box.Bottom()
		for _, r := range roots {
			b := e.bounds[r.ID()]
			l.Width = max(l.Width, b.Right())
			l.Height = max(l.Height, b.Bottom())
		}
	}

	l.Bounds = e.bounds
	l.Diagnostics = diagnose(doc)
	return l
}

type engine struct {
	cfg      config
	viewport tree.Viewport
	sizes    map[tree.NodeID]Size
	bounds   map[tree.NodeID]Rect
}

// arrangeScreens gives every root a framed slot and lays it out inside.
// Slot geometry depends only on the box and the constants, never on content.
func (e *engine) arrangeScreens(doc *tree.Document, box Rect) []Screen {
	c := e.cfg
	frameW := box.W + 2*c.padding
	frameH := box.H + 2*c.padding + c.captionHeight

	roots := doc.Roots()
	screens := make([]Screen, 0, len(roots))
	x, y := box.X, box.Y
	for _, r := range roots {
		s := Screen{
			Root:  r.ID(),
			Frame: Rect{X: x, Y: y, W: frameW, H: frameH},
		}
		s.Content = Rect{X: x + c.padding, Y: y + c.padding + c.captionHeight, W: box.W, H: box.H}
		if r.Kind() == tree.KindScreen {
			s.Caption, s.HasCaption = r.Label()
			e.place(r, s.Content)
		} else {
			e.stack(tree.Vertical, []*tree.Node{r}, s.Content, tree.AlignNone, tree.AlignNone)
		}
		screens = append(screens, s)

		if doc.Direction() == tree.DirectionTD {
			y += frameH + c.gap
		} else {
			x += frameW + c.gap
		}
	}
	return screens
}

// place records r as n's bounds and lays out n's children inside it.
func (e *engine) place(n *tree.Node, r Rect) {
	e.bounds[n.ID()] = r
	switch k := n.Kind(); {
	case k.IsContainer():
		if n.ChildCount() == 0 {
			return
		}
		content := r.Inset(float64(n.Padding()))
		if h := e.header(n); h > 0 {
			content.Y += h
			content.H = max(0, content.H-h)
		}
		m := n.Modifiers()
		e.stack(k.MainAxis(), n.Children(), content, m.Align, m.Cross)
	case k == tree.KindGrid:
		content := r.Inset(float64(n.Padding()))
		y := content.Y
		for _, c := range n.Children() {
			h := stripHeight(c)
			e.place(c, Rect{X: content.X, Y: y, W: content.W, H: h})
			y += h
		}
	default:
		// Children indented under a widget still get bounds: they are
		// stacked inside the widget's box and reported by diagnose.
		e.stack(tree.Vertical, n.Children(), r, tree.AlignNone, tree.AlignNone)
	}
}

// diagnose reports recovered structural anomalies in source order.
func diagnose(doc *tree.Document) []tree.Diagnostic {
	var out []tree.Diagnostic
	doc.Walk(func(n *tree.Node, _ int) bool {
		switch k := n.Kind(); {
		case k.IsContainer() && n.ChildCount() == 0:
			out = append(out, tree.Diagnostic{
				Code:    errors.ErrCodeZeroChildContainer,
				Line:    n.Line(),
				Message: k.String() + " has no children",
			})
		case (k == tree.KindGridHeader || k == tree.KindGridRow) && len(n.Cells()) == 0:
			out = append(out, tree.Diagnostic{
				Code:    errors.ErrCodeEmptyGridChild,
				Line:    n.Line(),
				Message: k.String() + " has no cells",
			})
		}
		if k := n.Kind(); !k.IsContainer() && k != tree.KindGrid && n.ChildCount() > 0 {
			out = append(out, tree.Diagnostic{
				Code:    errors.ErrCodeLeafChildren,
				Line:    n.Line(),
				Message: fmt.Sprintf("%s cannot hold children; %d stacked inside it", k, n.ChildCount()),
			})
		}
		return true
	})
	return out
}
