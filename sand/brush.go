package sand

import (
	"github.com/kamstrup/intmap"
)

const maxBrushRadius = 8

// Brush widens a stroke. A zero radius paints exactly the rasterized line.
type Brush struct {
	Radius int

	seen   *intmap.Map[int, struct{}]
	points []Point
}

// Grow increases the radius by delta, clamped to [0, maxBrushRadius].
func (b *Brush) Grow(delta int) {
	b.Radius = min(max(b.Radius+delta, 0), maxBrushRadius)
}

// Stamp returns the in-bounds cells covered by the brush along the segment
// p0..p1, each cell once, in the order the segment first reaches it.
// The returned slice is reused by the next call.
func (b *Brush) Stamp(g *Grid, p0, p1 Point) []Point {
	if b.seen == nil {
		b.seen = intmap.New[int, struct{}](64)
	}
	b.seen.Clear()
	b.points = b.points[:0]

	r := max(b.Radius, 0)
	rr := r * r
	for center := range Line(p0, p1) {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx*dx+dy*dy > rr {
					continue
				}
				p := Point{Col: center.Col + dx, Row: center.Row + dy}
				if !g.InBounds(p) {
					continue
				}
				idx := g.index(p)
				if _, ok := b.seen.Get(idx); ok {
					continue
				}
				b.seen.Put(idx, struct{}{})
				b.points = append(b.points, p)
			}
		}
	}
	return b.points
}
