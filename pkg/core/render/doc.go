// Package render draws a laid-out wireframe document onto an abstract
// vector [Surface].
//
// # Overview
//
// [Render] walks the forest in source order and draws each node's template
// at the bounds computed by the layout package: parents first, so children
// paint over them. Containers draw a dashed outline only; leaf widgets draw
// a fixed template per kind, for example:
//
//   - switch: a rounded track plus a circular thumb, on when a variant is set
//   - list, nav-menu, bottom-nav: equal sub-cells split from a "|" label,
//     with placeholder entries when none is given
//   - grid-header, grid-row: equal-width cells, header cells filled
//   - spacer: nothing; divider: one centered line
//
// When the layout holds more than one screen slot, each slot additionally
// gets a dashed frame and its caption at the top-left.
//
// # Surfaces
//
// A [Surface] receives primitives only (rects, rounded rects, circles,
// lines, paths and text) each with a [Style]. Surfaces that also implement
// [Grouper] receive one group per node, which the SVG sink uses to emit a
// <g> per element. Concrete surfaces live in the sink subpackage.
//
// # Colours
//
// Interactive widgets pick their fill, stroke and text colour from a
// [Palette] by variant; disabled wins over any variant. Override it with
// [WithPalette].
package render
