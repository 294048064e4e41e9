// Package layout computes pixel geometry for a wireframe document.
//
// # Overview
//
// Layout runs in two phases over the node forest:
//
//   - Intrinsic size: each node's content-derived size. Leaves come from a
//     per-kind table; text-bearing leaves grow linearly with the rune length
//     of their label (text is 8·L + 16 wide). Containers sum their children's
//     resolved sizes along the main axis, take the maximum across, and add
//     twice their padding. Sizes are memoised per node.
//   - Distribution: each container splits its padding-reduced box among its
//     children. A fixed modifier wins, then a flex share of the space left by
//     non-flexible siblings, then the intrinsic size. See [Distribute].
//
// Rows lay their children out horizontally; every other container stacks
// them vertically. Children stretch across the cross axis by default.
//
// # Screens
//
// When any top-level node is a screen, every top-level node gets a slot of
// (viewport + 2·padding) by (screen height + 2·padding + caption). Slots are
// arranged left to right or top to bottom with a gap between them, and the
// canvas is exactly their union. Without screens the forest is laid out as a
// column inside the viewport box.
//
// # Building a Layout
//
//	doc, _ := dsl.Parse(src)
//	l := layout.Build(doc, layout.ViewportBox(doc))
//	r, _ := l.Rect(id)
//
// # Options
//
//   - [WithScreenHeight]: content height of a screen (default 600)
//   - [WithScreenPadding]: padding around screen content (default 20)
//   - [WithScreenGap]: gap between screens (default 40)
//   - [WithCaptionHeight]: caption band above screen content (default 24)
//
// # Diagnostics
//
// Containers without children fall back to a fixed size and grid rows
// without cells render as empty strips. Both are reported on
// [Layout.Diagnostics] rather than failing the build.
package layout
