package sand

import (
	"github.com/aquilax/go-perlin"
)

// Dunes paints a rolling layer of grains along the floor, at most maxHeight
// rows tall, shaped by 1D Perlin noise. Occupied cells are left alone. It
// returns the number of grains added.
func Dunes(w *World, seed int64, maxHeight int) int {
	g := w.Grid
	maxHeight = min(maxHeight, g.Rows())
	if maxHeight <= 0 {
		return 0
	}

	noise := perlin.NewPerlin(2, 2, 3, seed)
	painted := 0
	for col := 0; col < g.Cols(); col++ {
		n := noise.Noise1D(float64(col) / float64(g.Cols()) * 4)
		height := int((n + 1) / 2 * float64(maxHeight))
		height = min(max(height, 0), maxHeight)

		for row := g.Rows() - 1; row >= g.Rows()-height; row-- {
			p := Point{Col: col, Row: row}
			if g.IsOccupied(p) {
				continue
			}
			_ = g.Place(p, w.Sampler.Next())
			painted++
		}
	}
	return painted
}
