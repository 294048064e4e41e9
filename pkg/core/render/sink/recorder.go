package sink

import (
	"encoding/json"

	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/render"
	"github.com/matzehuels/wireframe/pkg/core/tree"
)

// Op names a recorded primitive.
type Op string

const (
	OpCanvas      Op = "canvas"
	OpRect        Op = "rect"
	OpRoundedRect Op = "rounded_rect"
	OpCircle      Op = "circle"
	OpLine        Op = "line"
	OpPath        Op = "path"
	OpText        Op = "text"
)

// Command is one recorded surface call. Only the fields relevant to Op are
// set. Node is the innermost node group the call was made in, or -1.
type Command struct {
	Op     Op             `json:"op"`
	Node   tree.NodeID    `json:"node"`
	Kind   string         `json:"kind,omitempty"`
	Rect   *layout.Rect   `json:"rect,omitempty"`
	Radius float64        `json:"radius,omitempty"`
	Points []render.Point `json:"points,omitempty"`
	Closed bool           `json:"closed,omitempty"`
	Text   string         `json:"text,omitempty"`
	Style  render.Style   `json:"style"`
}

// Recorder is a [render.Surface] that keeps every call as a [Command]. It is
// the backing surface of the json output format and of renderer tests.
type Recorder struct {
	Width, Height float64
	Commands      []Command

	groups []group
}

type group struct {
	id   tree.NodeID
	kind tree.Kind
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) SetCanvasSize(w, h float64) {
	r.Width, r.Height = w, h
	r.add(Command{Op: OpCanvas, Rect: &layout.Rect{W: w, H: h}})
}

func (r *Recorder) DrawRect(b layout.Rect, s render.Style) {
	r.add(Command{Op: OpRect, Rect: &b, Style: s})
}

func (r *Recorder) DrawRoundedRect(b layout.Rect, radius float64, s render.Style) {
	r.add(Command{Op: OpRoundedRect, Rect: &b, Radius: radius, Style: s})
}

func (r *Recorder) DrawCircle(cx, cy, radius float64, s render.Style) {
	r.add(Command{Op: OpCircle, Points: []render.Point{{X: cx, Y: cy}}, Radius: radius, Style: s})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, s render.Style) {
	r.add(Command{Op: OpLine, Points: []render.Point{{X: x1, Y: y1}, {X: x2, Y: y2}}, Style: s})
}

func (r *Recorder) DrawPath(points []render.Point, closed bool, s render.Style) {
	pts := append([]render.Point(nil), points...)
	r.add(Command{Op: OpPath, Points: pts, Closed: closed, Style: s})
}

func (r *Recorder) DrawText(x, y float64, text string, s render.Style) {
	r.add(Command{Op: OpText, Points: []render.Point{{X: x, Y: y}}, Text: text, Style: s})
}

func (r *Recorder) BeginGroup(id tree.NodeID, kind tree.Kind) {
	r.groups = append(r.groups, group{id: id, kind: kind})
}

func (r *Recorder) EndGroup() {
	if len(r.groups) > 0 {
		r.groups = r.groups[:len(r.groups)-1]
	}
}

func (r *Recorder) add(c Command) {
	c.Node = -1
	if n := len(r.groups); n > 0 {
		c.Node, c.Kind = r.groups[n-1].id, r.groups[n-1].kind.String()
	}
	r.Commands = append(r.Commands, c)
}

// ByClass returns the commands whose style carries class.
func (r *Recorder) ByClass(class string) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Style.Class == class {
			out = append(out, c)
		}
	}
	return out
}

// ByNode returns the commands drawn directly for node id.
func (r *Recorder) ByNode(id tree.NodeID) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Node == id {
			out = append(out, c)
		}
	}
	return out
}

type recording struct {
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Commands []Command `json:"commands"`
}

// JSON encodes the recording as indented JSON.
func (r *Recorder) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

var (
	_ render.Surface = (*Recorder)(nil)
	_ render.Grouper = (*Recorder)(nil)
)

// MarshalJSON encodes the canvas size and command list.
func (r *Recorder) MarshalJSON() ([]byte, error) {
	cmds := r.Commands
	if cmds == nil {
		cmds = []Command{}
	}
	return json.Marshal(recording{Width: r.Width, Height: r.Height, Commands: cmds})
}
