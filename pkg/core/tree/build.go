package tree

// stackEntry is an open node on the builder stack.
type stackEntry struct {
	indent int
	node   *Node
}

// Build converts the parser's flat, source-ordered descriptor list into a
// forest. Each descriptor attaches to the nearest preceding descriptor with
// a strictly smaller indent, however large the jump; jumps are reported by
// [IndentJumps], not rejected here.
func Build(descs []Descriptor) []*Node {
	roots, _ := build(descs)
	return roots
}

func build(descs []Descriptor) (roots, nodes []*Node) {
	synthetic := &Node{}
	stack := make([]stackEntry, 1, 16)
	stack[0] = stackEntry{indent: -1, node: synthetic}
	nodes = make([]*Node, 0, len(descs))

	for i, d := range descs {
		for stack[len(stack)-1].indent >= d.Indent {
			stack = stack[:len(stack)-1]
		}
		n := newNode(NodeID(i), d)
		parent := stack[len(stack)-1].node
		parent.children = append(parent.children, n)
		stack = append(stack, stackEntry{indent: d.Indent, node: n})
		nodes = append(nodes, n)
	}
	return synthetic.children, nodes
}

// IndentJump describes a node nested more than one indent unit below its
// structural parent.
type IndentJump struct {
	Line         int
	Indent       int
	ParentIndent int // -1 for top-level nodes
	Unit         int
}

// IndentUnit returns the smallest positive indent in descs, or 0 when every
// node is at column zero.
func IndentUnit(descs []Descriptor) int {
	unit := 0
	for _, d := range descs {
		if d.Indent > 0 && (unit == 0 || d.Indent < unit) {
			unit = d.Indent
		}
	}
	return unit
}

// IndentJumps replays the builder's stack and returns every descriptor whose
// indent exceeds its parent's by more than the document's indent unit.
// Top-level nodes count from an implicit parent at indent -unit.
func IndentJumps(descs []Descriptor) []IndentJump {
	unit := IndentUnit(descs)
	if unit == 0 {
		return nil
	}
	var jumps []IndentJump
	stack := make([]int, 0, 16)
	for _, d := range descs {
		for len(stack) > 0 && stack[len(stack)-1] >= d.Indent {
			stack = stack[:len(stack)-1]
		}
		parent := -unit
		if len(stack) > 0 {
			parent = stack[len(stack)-1]
		}
		if d.Indent-parent > unit {
			p := parent
			if len(stack) == 0 {
				p = -1
			}
			jumps = append(jumps, IndentJump{Line: d.Line, Indent: d.Indent, ParentIndent: p, Unit: unit})
		}
		stack = append(stack, d.Indent)
	}
	return jumps
}
