// Package nodelink draws the structure of a wireframe document as a
// node-and-edge diagram using Graphviz.
//
// Where the render package shows what a wireframe looks like, this package
// shows how it is built: every node is a box labelled with its kind and
// label, and edges run from each container to its children. Top-level
// screens become dashed clusters.
//
// # Architecture
//
// Graphviz computes positions and draws in a single step, so the DOT text is
// the only intermediate representation:
//
//	Document → ToDOT() → DOT → RenderSVG() → SVG
//
// # Usage
//
//	doc, _ := dsl.Parse(src)
//	dot := nodelink.ToDOT(doc, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// With Options.Detailed, labels also carry the source line and written
// modifiers; setting Options.Layout adds each node's computed bounds.
package nodelink
