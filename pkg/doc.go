// Package pkg provides the libraries behind the wireframe tool.
//
// # Overview
//
// Wireframe turns a small indentation-based language into a vector drawing
// of UI screens. The pkg directory is organized into three areas:
//
//  1. [core] - Domain logic (parsing, the node tree, layout, rendering)
//  2. [pipeline] - Orchestration (parse → layout → render) with caching
//  3. Supporting packages: [session], [cache], [config], [errors],
//     [observability] and [buildinfo]
//
// # Architecture
//
// The data flow through wireframe:
//
//	Source text
//	     ↓
//	[core/dsl] package (header, descriptors, diagnostics)
//	     ↓
//	[core/tree] package (read-only node forest)
//	     ↓
//	[core/layout] package (flex layout → bounds per node)
//	     ↓
//	[core/render] package (widget templates on a Surface)
//	     ↓
//	SVG / draw-command JSON / layout JSON / DOT
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/wireframe/pkg/core/dsl"
//	    "github.com/matzehuels/wireframe/pkg/core/layout"
//	    "github.com/matzehuels/wireframe/pkg/core/render"
//	    "github.com/matzehuels/wireframe/pkg/core/render/sink"
//	)
//
//	doc, err := dsl.Parse(src)
//	if err != nil {
//	    return err
//	}
//	l := layout.Build(doc, layout.ViewportBox(doc))
//	svg := sink.NewSVG()
//	render.Render(doc, l, svg)
//	os.WriteFile("login.svg", svg.Bytes(), 0o644)
//
// For repeated edits of one document use a [session.Session]; to render
// with caching and several output formats use a [pipeline.Runner].
package pkg
