// Package tree defines the wireframe data model: the closed set of node
// kinds, the per-node modifier record, and the Document that owns a parsed
// node forest.
//
// # Building a Forest
//
// The parser produces a flat, source-ordered list of [Descriptor] values,
// each carrying the raw indent of its line. [Build] turns that list into a
// forest in a single pass using an explicit stack seeded with a synthetic
// root at indent -1: for every descriptor it pops while the top of the stack
// has an indent greater than or equal to the incoming one, attaches the new
// node as the last child of the top, and pushes it.
//
//	roots := tree.Build([]tree.Descriptor{
//	    {Indent: 0, Kind: tree.KindScreen},
//	    {Indent: 2, Kind: tree.KindButton, Label: "OK", HasLabel: true},
//	})
//
// A node attaches to the nearest preceding node with a smaller indent no
// matter how large the jump. [IndentJumps] reports such jumps so callers can
// surface them or reject them.
//
// # Ownership
//
// Nodes have no exported mutators. A [Document] exclusively owns its forest
// and hands out *Node values as read-only views; accessors that return
// slices or modifiers return copies. A Document is never mutated after
// [NewDocument] returns: re-parsing produces a new one.
//
// # Node Kinds
//
// [Kind] is a closed enum. Packages that branch on it (layout, render) switch
// over every value, so adding a kind is a compile-visible change across the
// pipeline.
package tree
