package sand

import (
	"fmt"
	"iter"
)

// Point addresses a grid cell. Col grows to the right, Row grows downward.
type Point struct {
	Col, Row int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Col, p.Row)
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Cell is one grid slot. Color is only meaningful while Occupied is set.
type Cell struct {
	Occupied bool
	Color    Color
}

// Grid is a fixed-size field of cells stored row-major in a flat slice.
// A grain is not a separate object: it is an occupied cell.
type Grid struct {
	cols  int
	rows  int
	cells []Cell
	count int
}

// NewGrid creates an empty grid of cols x rows cells.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, cols, rows)
	}
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}, nil
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Count returns the number of occupied cells.
func (g *Grid) Count() int { return g.count }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.Col >= 0 && p.Col < g.cols && p.Row >= 0 && p.Row < g.rows
}

func (g *Grid) index(p Point) int {
	return p.Row*g.cols + p.Col
}

func (g *Grid) point(index int) Point {
	return Point{Col: index % g.cols, Row: index / g.cols}
}

// At returns the cell at p. The second result is false when p is off-grid.
func (g *Grid) At(p Point) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[g.index(p)], true
}

// Place occupies p with color, overwriting any grain already there.
// Off-grid points fail with ErrOutOfBounds and leave the grid untouched.
func (g *Grid) Place(p Point, color Color) error {
	if !g.InBounds(p) {
		return fmt.Errorf("place %s on %dx%d grid: %w", p, g.cols, g.rows, ErrOutOfBounds)
	}

	cell := &g.cells[g.index(p)]
	if !cell.Occupied {
		g.count++
	}
	cell.Occupied = true
	cell.Color = color
	return nil
}

// Clear empties p. It is a no-op for empty or off-grid cells.
func (g *Grid) Clear(p Point) {
	if !g.InBounds(p) {
		return
	}

	cell := &g.cells[g.index(p)]
	if cell.Occupied {
		g.count--
	}
	*cell = Cell{}
}

// IsOccupied reports whether p holds a grain. Off-grid points count as
// occupied so that the edges of the grid behave as walls.
func (g *Grid) IsOccupied(p Point) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.cells[g.index(p)].Occupied
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.cells)
	g.count = 0
}

// Occupied returns a row-major iterator over all occupied cells.
// The sequence can be ranged over any number of times.
func (g *Grid) Occupied() iter.Seq2[Point, Color] {
	return func(yield func(Point, Color) bool) {
		if g.count == 0 {
			return
		}
		for i, cell := range g.cells {
			if !cell.Occupied {
				continue
			}
			if !yield(g.point(i), cell.Color) {
				return
			}
		}
	}
}

// move relocates the grain at from to the empty cell to.
// Callers guarantee both points are in bounds.
func (g *Grid) move(from, to Point) {
	src := &g.cells[g.index(from)]
	g.cells[g.index(to)] = *src
	*src = Cell{}
}
