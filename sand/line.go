package sand

import "iter"

// Line yields the cells of the straight segment from p0 to p1, both ends
// included, using integer Bresenham stepping.
func Line(p0, p1 Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		dx := abs(p1.Col - p0.Col)
		dy := abs(p1.Row - p0.Row)
		sx := -1
		if p0.Col < p1.Col {
			sx = 1
		}
		sy := -1
		if p0.Row < p1.Row {
			sy = 1
		}
		err := dx - dy

		p := p0
		for {
			if !yield(p) {
				return
			}
			if p == p1 {
				return
			}

			e2 := 2 * err
			if e2 > -dy {
				err -= dy
				p.Col += sx
			}
			if e2 < dx {
				err += dx
				p.Row += sy
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
