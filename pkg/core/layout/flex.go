package layout

import (
	"math"

	"github.com/matzehuels/wireframe/pkg/core/tree"
)

// stack places children in sequence along axis inside content.
//
// Main-axis length per child, in priority order: its fixed modifier, a flex
// share of the remaining space, its intrinsic size. Remaining space is the
// content length minus every non-flexible length, floored at zero. Shares are
// floored and the whole pixels left over go one at a time to flexible
// children in source order, so lengths sum exactly when content is whole.
//
// Cross-axis children stretch unless they have a fixed cross size or the
// container carries a start/center/end cross hint, in which case they keep
// their own size and are positioned by the hint.
func (e *engine) stack(axis tree.Axis, children []*tree.Node, content Rect, align, cross tree.Align) {
	if len(children) == 0 {
		return
	}
	mainLen := content.Size(axis)
	crossLen := content.Size(axis.Cross())

	items := e.mainInputs(axis, children)
	lengths := Distribute(mainLen, items)

	flexed := false
	var used float64
	for i, it := range items {
		flexed = flexed || it.flexible()
		used += lengths[i]
	}

	pos, step := 0.0, 0.0
	if !flexed {
		pos, step = justify(align, max(0, mainLen-used), len(children))
	}

	for i, c := range children {
		size, offset := e.crossExtent(axis, c, crossLen, cross)
		e.place(c, rectOnAxes(axis, content, pos, offset, lengths[i], size))
		pos += lengths[i] + step
	}
}

// Item is one child's input to [Distribute].
type Item struct {
	Fixed     float64
	HasFixed  bool
	Weight    int
	Intrinsic float64
}

func (it Item) flexible() bool { return !it.HasFixed && it.Weight > 0 }

// Distribute computes main-axis lengths for a container of length total.
func Distribute(total float64, items []Item) []float64 {
	lengths := make([]float64, len(items))
	var rigid, weights float64
	for i, it := range items {
		switch {
		case it.HasFixed:
			lengths[i] = it.Fixed
		case it.flexible():
			weights += float64(it.Weight)
			continue
		default:
			lengths[i] = it.Intrinsic
		}
		rigid += lengths[i]
	}
	if weights == 0 {
		return lengths
	}

	remaining := int(math.Floor(max(0, total-rigid)))
	left := remaining
	for i, it := range items {
		if !it.flexible() {
			continue
		}
		// float64 keeps huge weights from overflowing; the clamp absorbs
		// rounding so shares never exceed what is left.
		share := int(math.Floor(float64(remaining) * (float64(it.Weight) / weights)))
		share = min(max(share, 0), left)
		lengths[i] = float64(share)
		left -= share
	}
	for left > 0 {
		for i, it := range items {
			if left > 0 && it.flexible() {
				lengths[i]++
				left--
			}
		}
	}
	return lengths
}

func (e *engine) mainInputs(axis tree.Axis, children []*tree.Node) []Item {
	items := make([]Item, len(children))
	for i, c := range children {
		it := Item{Weight: c.FlexWeight()}
		if v, ok := c.Fixed(axis); ok {
			it.Fixed, it.HasFixed = float64(v), true
		} else if it.Weight == 0 {
			it.Intrinsic = e.intrinsic(c).Along(axis)
		}
		items[i] = it
	}
	return items
}

// crossExtent returns a child's cross-axis size and offset.
func (e *engine) crossExtent(axis tree.Axis, c *tree.Node, crossLen float64, hint tree.Align) (size, offset float64) {
	ca := axis.Cross()
	v, fixed := c.Fixed(ca)
	switch {
	case fixed:
		size = float64(v)
	case hint == tree.AlignStart || hint == tree.AlignCenter || hint == tree.AlignEnd:
		size = min(crossLen, e.intrinsic(c).Along(ca))
	default:
		return crossLen, 0
	}
	switch hint {
	case tree.AlignCenter:
		offset = (crossLen - size) / 2
	case tree.AlignEnd:
		offset = crossLen - size
	}
	return size, max(0, offset)
}

// justify returns the leading offset and the extra step between children
// for the free main-axis space.
func justify(align tree.Align, free float64, n int) (pos, step float64) {
	switch align {
	case tree.AlignCenter:
		return free / 2, 0
	case tree.AlignEnd:
		return free, 0
	case tree.AlignSpaceBetween:
		if n > 1 {
			return 0, free / float64(n-1)
		}
	}
	return 0, 0
}
