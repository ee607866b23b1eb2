package sand

// fallOrder is the neighbor priority for a falling grain. Straight down wins,
// then down-left, then down-right, which biases piles to grow leftward first.
var fallOrder = [...]Point{
	{Col: 0, Row: 1},
	{Col: -1, Row: 1},
	{Col: 1, Row: 1},
}

// Fall returns where the grain at p moves this pass. The second result is
// false when the grain is settled. Off-grid neighbors are blocked.
func Fall(g *Grid, p Point) (Point, bool) {
	for _, d := range fallOrder {
		next := Point{Col: p.Col + d.Col, Row: p.Row + d.Row}
		if !g.IsOccupied(next) {
			return next, true
		}
	}
	return p, false
}

// Step runs one gravity pass and returns the number of grains that moved.
//
// Every grain moves at most one cell per pass. Rows are visited from the
// bottom up and each row left to right, so a grain always lands on a row the
// pass has already visited and is never moved twice. Because the lower grains
// move first, a falling column keeps no gaps between its grains.
func Step(g *Grid) int {
	if g.count == 0 {
		return 0
	}

	moved := 0
	for row := g.rows - 1; row >= 0; row-- {
		base := row * g.cols
		for col := 0; col < g.cols; col++ {
			if !g.cells[base+col].Occupied {
				continue
			}
			from := Point{Col: col, Row: row}
			if to, ok := Fall(g, from); ok {
				g.move(from, to)
				moved++
			}
		}
	}
	return moved
}

// Settle runs gravity passes until nothing moves and returns the number of
// passes that moved at least one grain.
func Settle(g *Grid) int {
	passes := 0
	for Step(g) > 0 {
		passes++
	}
	return passes
}
