package tree

import "strings"

// NodeID identifies a node within its document. IDs follow source order,
// starting at 0, so they are stable across re-parses of identical text.
type NodeID int

// Descriptor is one parsed node line before tree construction. Indent is the
// raw count of leading whitespace characters.
type Descriptor struct {
	Line      int
	Indent    int
	Kind      Kind
	Label     string
	HasLabel  bool
	Modifiers Modifiers
}

// Node is one wireframe element. Nodes are owned by their Document and
// expose no mutators, so any *Node handed out is a read-only view.
type Node struct {
	id        NodeID
	line      int
	kind      Kind
	label     string
	hasLabel  bool
	modifiers Modifiers
	children  []*Node
}

func newNode(id NodeID, d Descriptor) *Node {
	return &Node{
		id:        id,
		line:      d.Line,
		kind:      d.Kind,
		label:     d.Label,
		hasLabel:  d.HasLabel,
		modifiers: d.Modifiers.clone(),
	}
}

func (n *Node) ID() NodeID { return n.id }
func (n *Node) Line() int  { return n.line }
func (n *Node) Kind() Kind { return n.kind }

// Label returns the quoted label and whether one was written.
func (n *Node) Label() (string, bool) { return n.label, n.hasLabel }

// LabelOr returns the label, or def when none was written.
func (n *Node) LabelOr(def string) string {
	if !n.hasLabel {
		return def
	}
	return n.label
}

// Modifiers returns a copy of the node's modifiers.
func (n *Node) Modifiers() Modifiers { return n.modifiers.clone() }

// Children returns a copy of the child slice in source order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the i-th child.
func (n *Node) Child(i int) *Node { return n.children[i] }

// FlexWeight returns the node's share weight in its parent's main axis.
// Spacers are implicitly flexible with weight 1. Flex 0 means no flex
// modifier, so a spacer with flex=0 keeps weight 1.
func (n *Node) FlexWeight() int {
	if n.modifiers.Flex > 0 {
		return n.modifiers.Flex
	}
	if n.kind == KindSpacer {
		return 1
	}
	return 0
}

// Fixed returns the explicit size along axis, if any.
func (n *Node) Fixed(axis Axis) (int, bool) { return n.modifiers.Fixed(axis) }

// Padding returns the node's padding, falling back to the kind default:
// 12 for cards, 0 otherwise.
func (n *Node) Padding() int {
	def := 0
	if n.kind == KindCard {
		def = 12
	}
	return n.modifiers.PaddingOr(def)
}

// Cells splits a pipe-delimited label into trimmed cells. An unlabelled or
// blank node has no cells.
func (n *Node) Cells() []string {
	return SplitCells(n.label)
}

var (
	placeholderItems = map[Kind][]string{
		KindList:      {"Item 1", "Item 2", "Item 3"},
		KindNavMenu:   {"Home", "About", "Contact"},
		KindBottomNav: {"Home", "Search", "Profile"},
	}
	placeholderText = map[Kind]string{
		KindButton:   "Button",
		KindDropdown: "Select",
	}
)

// Items returns the entries of a list-like node: its pipe-split label, or a
// canned placeholder set when the label yields no cells.
func (n *Node) Items() []string {
	if cells := n.Cells(); len(cells) > 0 {
		return cells
	}
	return append([]string(nil), placeholderItems[n.kind]...)
}

// Text returns the text a widget displays: its label, or a kind-specific
// placeholder when none was written.
func (n *Node) Text() string {
	if n.hasLabel {
		return n.label
	}
	return placeholderText[n.kind]
}

// SplitCells splits a pipe-delimited label. Blank input yields no cells.
func SplitCells(label string) []string {
	if strings.TrimSpace(label) == "" {
		return nil
	}
	parts := strings.Split(label, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
