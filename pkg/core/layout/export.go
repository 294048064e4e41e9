package layout

import (
	"encoding/json"

	"github.com/matzehuels/wireframe/pkg/core/tree"
)

// Export is the serialized form of a layout.
type Export struct {
	Viewport    string             `json:"viewport"`
	Direction   string             `json:"direction"`
	Width       float64            `json:"width"`
	Height      float64            `json:"height"`
	Screens     []ExportScreen     `json:"screens,omitempty"`
	Nodes       []ExportNode       `json:"nodes"`
	Diagnostics []ExportDiagnostic `json:"diagnostics,omitempty"`
}

// ExportScreen is one screen slot.
type ExportScreen struct {
	Root    int    `json:"root"`
	Caption string `json:"caption,omitempty"`
	Frame   Rect   `json:"frame"`
	Content Rect   `json:"content"`
}

// ExportNode is one node with its bounds.
type ExportNode struct {
	ID       int    `json:"id"`
	Parent   int    `json:"parent"` // -1 for roots
	Kind     string `json:"kind"`
	Label    string `json:"label,omitempty"`
	Line     int    `json:"line"`
	Depth    int    `json:"depth"`
	Bounds   Rect   `json:"bounds"`
	Children []int  `json:"children,omitempty"`
}

// ExportDiagnostic is a recovered anomaly from parsing or layout.
type ExportDiagnostic struct {
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

// MarshalJSON encodes Rect with lower-case keys.
func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		W float64 `json:"width"`
		H float64 `json:"height"`
	}{r.X, r.Y, r.W, r.H})
}

// Export converts l into its serialized form. Nodes appear in source order
// and diagnostics from doc precede the layout's own.
func (l Layout) Export(doc *tree.Document) Export {
	out := Export{
		Viewport:  l.Viewport.String(),
		Direction: l.Direction.String(),
		Width:     l.Width,
		Height:    l.Height,
		Nodes:     make([]ExportNode, 0, doc.NodeCount()),
	}
	for _, s := range l.Screens {
		out.Screens = append(out.Screens, ExportScreen{
			Root:    int(s.Root),
			Caption: s.Caption,
			Frame:   s.Frame,
			Content: s.Content,
		})
	}

	parents := []int{-1}
	doc.Walk(func(n *tree.Node, depth int) bool {
		parents = parents[:depth+1]
		label, _ := n.Label()
		en := ExportNode{
			ID:     int(n.ID()),
			Parent: parents[depth],
			Kind:   n.Kind().String(),
			Label:  label,
			Line:   n.Line(),
			Depth:  depth,
			Bounds: l.Bounds[n.ID()],
		}
		for _, c := range n.Children() {
			en.Children = append(en.Children, int(c.ID()))
		}
		out.Nodes = append(out.Nodes, en)
		parents = append(parents, int(n.ID()))
		return true
	})

	for _, d := range append(doc.Diagnostics(), l.Diagnostics...) {
		out.Diagnostics = append(out.Diagnostics, ExportDiagnostic{
			Code:    string(d.Code),
			Line:    d.Line,
			Message: d.Message,
		})
	}
	return out
}

// MarshalJSON encodes the layout of doc as indented JSON.
func MarshalJSON(doc *tree.Document, l Layout) ([]byte, error) {
	return json.MarshalIndent(l.Export(doc), "", "  ")
}
