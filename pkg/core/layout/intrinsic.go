package layout

import (
	"fmt"
	"unicode/utf8"

	"github.com/matzehuels/wireframe/pkg/core/tree"
)

// GridRowHeight is the height of every strip inside a grid.
const GridRowHeight = 32.0

// CardHeaderHeight is reserved above a labelled card's children.
const CardHeaderHeight = 20.0

// gridColumnWidth is the intrinsic width of one grid column.
const gridColumnWidth = 80.0

// textMetric sizes a text-bearing leaf: width = perChar*L + base where L is
// the rune length of the displayed text.
type textMetric struct {
	perChar, base, height float64
}

var textMetrics = map[tree.Kind]textMetric{
	tree.KindText:     {8, 16, 24},
	tree.KindTitle:    {14, 16, 36},
	tree.KindButton:   {9, 32, 40},
	tree.KindCheckbox: {8, 32, 24},
	tree.KindRadio:    {8, 32, 24},
	tree.KindSwitch:   {8, 56, 28},
	tree.KindAppBar:   {14, 72, 56},
}

// fixedSizes holds leaves whose intrinsic size does not depend on content.
var fixedSizes = map[tree.Kind]Size{
	tree.KindInput:    {200, 40},
	tree.KindDropdown: {200, 40},
	tree.KindFab:      {56, 56},
	tree.KindAvatar:   {40, 40},
	tree.KindIcon:     {24, 24},
	tree.KindImage:    {160, 120},
	tree.KindSpacer:   {0, 0},
	tree.KindDivider:  {0, 16},
}

// emptyContainerSizes is the fallback for containers without children.
// Screens fall back to the viewport width instead.
var emptyContainerSizes = map[tree.Kind]Size{
	tree.KindRow:  {100, 40},
	tree.KindCol:  {100, 40},
	tree.KindCard: {200, 100},
}

// TextWidth returns the intrinsic width of a text-bearing leaf kind for a
// label of n runes. ok is false for kinds not sized by their text.
func TextWidth(kind tree.Kind, n int) (w float64, ok bool) {
	m, ok := textMetrics[kind]
	if !ok {
		return 0, false
	}
	return m.perChar*float64(n) + m.base, true
}

// intrinsic returns the memoised content-derived size of n, ignoring its own
// fixed modifiers.
func (e *engine) intrinsic(n *tree.Node) Size {
	if s, ok := e.sizes[n.ID()]; ok {
		return s
	}
	s := e.measure(n)
	e.sizes[n.ID()] = s
	return s
}

// resolved returns n's size with its fixed modifiers applied.
func (e *engine) resolved(n *tree.Node) Size {
	s := e.intrinsic(n)
	if w, ok := n.Fixed(tree.Horizontal); ok {
		s.W = float64(w)
	}
	if h, ok := n.Fixed(tree.Vertical); ok {
		s.H = float64(h)
	}
	return s
}

func (e *engine) measure(n *tree.Node) Size {
	switch k := n.Kind(); k {
	case tree.KindRow, tree.KindCol, tree.KindCard, tree.KindScreen:
		return e.measureContainer(n)
	case tree.KindGrid:
		return e.measureGrid(n)
	case tree.KindGridHeader, tree.KindGridRow:
		return Size{W: float64(len(n.Cells())) * gridColumnWidth, H: GridRowHeight}
	case tree.KindText, tree.KindTitle, tree.KindButton, tree.KindCheckbox,
		tree.KindRadio, tree.KindSwitch, tree.KindAppBar:
		m := textMetrics[k]
		w, _ := TextWidth(k, utf8.RuneCountInString(n.Text()))
		return Size{W: w, H: m.height}
	case tree.KindList:
		items := n.Items()
		longest := 0
		for _, it := range items {
			longest = max(longest, utf8.RuneCountInString(it))
		}
		return Size{W: 8*float64(longest) + 32, H: 36 * float64(len(items))}
	case tree.KindNavMenu, tree.KindBottomNav:
		items := n.Items()
		total := 0
		for _, it := range items {
			total += utf8.RuneCountInString(it)
		}
		h := 48.0
		if k == tree.KindBottomNav {
			h = 56
		}
		return Size{W: 8*float64(total) + 32*float64(len(items)), H: h}
	case tree.KindInput, tree.KindDropdown, tree.KindFab, tree.KindAvatar,
		tree.KindIcon, tree.KindImage, tree.KindSpacer, tree.KindDivider:
		return fixedSizes[k]
	default:
		panic(fmt.Sprintf("layout: unhandled kind %v", k))
	}
}

func (e *engine) measureContainer(n *tree.Node) Size {
	if n.ChildCount() == 0 {
		if n.Kind() == tree.KindScreen {
			return Size{W: float64(e.viewport.Width()), H: e.cfg.screenHeight}
		}
		return emptyContainerSizes[n.Kind()]
	}

	axis := n.Kind().MainAxis()
	var main, cross float64
	for _, c := range n.Children() {
		s := e.resolved(c)
		main += s.Along(axis)
		cross = max(cross, s.Along(axis.Cross()))
	}
	pad := 2 * float64(n.Padding())
	s := sizeOnAxes(axis, main+pad, cross+pad)
	s.H += e.header(n)
	return s
}

func (e *engine) measureGrid(n *tree.Node) Size {
	if n.ChildCount() == 0 {
		return Size{W: 300, H: 96}
	}
	cols := 0
	var h float64
	for _, c := range n.Children() {
		if k := c.Kind(); k == tree.KindGridHeader || k == tree.KindGridRow {
			cols = max(cols, len(c.Cells()))
		}
		h += stripHeight(c)
	}
	pad := 2 * float64(n.Padding())
	return Size{W: max(float64(cols)*gridColumnWidth, 160) + pad, H: h + pad}
}

// stripHeight is the height a grid child occupies.
func stripHeight(n *tree.Node) float64 {
	if h, ok := n.Fixed(tree.Vertical); ok {
		return float64(h)
	}
	return GridRowHeight
}

// header returns the band a labelled card reserves for its caption.
func (e *engine) header(n *tree.Node) float64 {
	if n.Kind() != tree.KindCard {
		return 0
	}
	if _, ok := n.Label(); !ok {
		return 0
	}
	return CardHeaderHeight
}
