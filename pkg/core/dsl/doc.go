// Package dsl parses wireframe source text.
//
// # Grammar
//
// The first non-blank line is the header:
//
//	wireframe [mobile|tablet|desktop|default] [TD|LR]
//
// Viewport and direction are optional and may appear in either order. Every
// following non-blank line declares one node:
//
//	<indent><kind> ["label"] [modifier ...]
//
// Indent is the raw number of leading spaces and tabs; it is not normalized
// into levels. Labels are double-quoted and support the escapes \" and \\.
// Modifiers are:
//
//	flex | flex=N          flexible, weight 1 or N (flex=0 same as absent)
//	width=N height=N       fixed size on an axis
//	padding=N              inner padding on all sides
//	align=V cross=V        V is start, center, end or space-between
//	primary secondary danger success
//	disabled
//
// Lines whose first non-blank character is '#' are comments.
//
// # Leniency
//
// A missing or malformed header is the only fatal condition. An unknown kind
// skips its whole line; an unknown modifier, a bad modifier value, or a label
// on a kind that takes none skips just that token. Each skip is recorded as
// an UNRECOGNIZED_TOKEN diagnostic on the result. [WithStrict] turns those
// skips, as well as indentation jumps of more than one indent unit, into
// line-attributed errors.
//
// # Usage
//
//	doc, err := dsl.Parse(src)
//	if errors.Is(err, errors.ErrCodeMalformedHeader) {
//	    // not a wireframe document
//	}
//	for _, d := range doc.Diagnostics() {
//	    log.Warn(d.String())
//	}
package dsl
