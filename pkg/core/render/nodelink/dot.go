package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/tree"
)

// Options configures structure diagram rendering.
type Options struct {
	// Detailed adds the source line and modifiers to node labels. With a
	// Layout set it also adds the computed bounds.
	Detailed bool

	// Layout, when non-nil, supplies bounds for detailed labels.
	Layout *layout.Layout
}

// ToDOT converts a document's node forest to Graphviz DOT format. Each node
// becomes a box, each parent/child link an edge, and every top-level screen
// is wrapped in its own cluster so slots read as separate panels.
func ToDOT(doc *tree.Document, opts Options) string {
	var buf bytes.Buffer
	rankdir := "TB"
	if doc.Direction() == tree.DirectionLR {
		rankdir = "LR"
	}
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")

	for i, root := range doc.Roots() {
		buf.WriteString("\n")
		indent := "  "
		if root.Kind() == tree.KindScreen {
			fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
			fmt.Fprintf(&buf, "    label=%q;\n", root.LabelOr(fmt.Sprintf("screen %d", i+1)))
			buf.WriteString("    style=dashed;\n")
			indent = "    "
		}
		writeNodes(&buf, root, indent, opts)
		if root.Kind() == tree.KindScreen {
			buf.WriteString("  }\n")
		}
	}

	buf.WriteString("\n")
	doc.Walk(func(n *tree.Node, _ int) bool {
		for _, c := range n.Children() {
			fmt.Fprintf(&buf, "  %s -> %s;\n", nodeName(n), nodeName(c))
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

func writeNodes(buf *bytes.Buffer, n *tree.Node, indent string, opts Options) {
	fmt.Fprintf(buf, "%s%s [%s];\n", indent, nodeName(n), strings.Join(fmtAttrs(n, fmtLabel(n, opts)), ", "))
	for _, c := range n.Children() {
		writeNodes(buf, c, indent, opts)
	}
}

func nodeName(n *tree.Node) string { return fmt.Sprintf("n%d", n.ID()) }

func fmtLabel(n *tree.Node, opts Options) string {
	label := n.Kind().String()
	if text, ok := n.Label(); ok && text != "" {
		label += " " + strconv.Quote(text)
	}
	if !opts.Detailed {
		return label
	}

	parts := []string{fmt.Sprintf("line: %d", n.Line())}
	if mods := fmtModifiers(n.Modifiers()); mods != "" {
		parts = append(parts, mods)
	}
	if opts.Layout != nil {
		if r, ok := opts.Layout.Rect(n.ID()); ok {
			parts = append(parts, fmt.Sprintf("%.0f,%.0f %.0fx%.0f", r.X, r.Y, r.W, r.H))
		}
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtModifiers(m tree.Modifiers) string {
	var parts []string
	if m.Flex > 0 {
		parts = append(parts, fmt.Sprintf("flex=%d", m.Flex))
	}
	if m.Width != nil {
		parts = append(parts, fmt.Sprintf("width=%d", *m.Width))
	}
	if m.Height != nil {
		parts = append(parts, fmt.Sprintf("height=%d", *m.Height))
	}
	if m.Padding != nil {
		parts = append(parts, fmt.Sprintf("padding=%d", *m.Padding))
	}
	if m.Align != tree.AlignNone {
		parts = append(parts, "align="+m.Align.String())
	}
	if m.Cross != tree.AlignNone {
		parts = append(parts, "cross="+m.Cross.String())
	}
	if m.Variant != tree.VariantNone {
		parts = append(parts, m.Variant.String())
	}
	if m.Disabled {
		parts = append(parts, "disabled")
	}
	return strings.Join(parts, " ")
}

// fmtAttrs styles containers as dashed grey boxes so they stand apart from
// leaf widgets.
func fmtAttrs(n *tree.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Kind().IsContainer() {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// pixel one matching the sink package's output.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
