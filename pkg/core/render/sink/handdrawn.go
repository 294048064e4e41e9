package sink

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

const (
	wobbleMax  = 1.5 // max perpendicular offset of a control point, px
	wobbleStep = 40  // one curve segment per this many px of edge
)

func hash(key string, seed uint64) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%s", seed, key)
	return h.Sum64()
}

// jitter returns a value in [-wobbleMax, wobbleMax] for the i-th draw of key.
func jitter(key string, seed uint64, i int) float64 {
	v := hash(fmt.Sprintf("%s#%d", key, i), seed)
	return (float64(v%2001)/1000 - 1) * wobbleMax
}

// wobbledRect returns a closed path tracing the rectangle edges with small
// quadratic bends.
func wobbledRect(x, y, w, h float64, seed uint64, key string) string {
	corners := [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	var b strings.Builder
	fmt.Fprintf(&b, "M %.1f %.1f", corners[0][0], corners[0][1])
	n := 0
	for i := range corners {
		from, to := corners[i], corners[(i+1)%len(corners)]
		n = wobbleSegment(&b, from, to, seed, key, n)
	}
	b.WriteString(" Z")
	return b.String()
}

// wobbledLine returns an open path from (x1,y1) to (x2,y2).
func wobbledLine(x1, y1, x2, y2 float64, seed uint64, key string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "M %.1f %.1f", x1, y1)
	wobbleSegment(&b, [2]float64{x1, y1}, [2]float64{x2, y2}, seed, key, 0)
	return b.String()
}

func wobbleSegment(b *strings.Builder, from, to [2]float64, seed uint64, key string, n int) int {
	dx, dy := to[0]-from[0], to[1]-from[1]
	length := math.Hypot(dx, dy)
	steps := max(1, int(length/wobbleStep))
	var nx, ny float64
	if length > 0 {
		nx, ny = -dy/length, dx/length
	}
	for s := 1; s <= steps; s++ {
		t0, t1 := float64(s-1)/float64(steps), float64(s)/float64(steps)
		tm := (t0 + t1) / 2
		off := jitter(key, seed, n)
		n++
		cx := from[0] + dx*tm + nx*off
		cy := from[1] + dy*tm + ny*off
		fmt.Fprintf(b, " Q %.1f %.1f %.1f %.1f", cx, cy, from[0]+dx*t1, from[1]+dy*t1)
	}
	return n
}
