// Package sink provides concrete [render.Surface] implementations.
//
// # Overview
//
// A "sink" receives the primitives emitted by [render.Render] and turns them
// into an output format:
//
//   - [SVG]: a standalone SVG document, one <g> per node
//   - [Recorder]: an in-memory command list, exported as JSON
//
// Basic usage:
//
//	svg := sink.NewSVG(sink.WithBackground("#fafafa"))
//	render.Render(doc, l, svg)
//	os.Stdout.Write(svg.Bytes())
//
// # Hand-drawn Style
//
// [WithHanddrawn] replaces straight rectangle and line strokes with gently
// curved paths. The curvature is derived by hashing the seed with the
// enclosing node, so the same input always yields the same picture.
package sink
