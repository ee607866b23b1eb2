package sand_test

import (
	"testing"

	"github.com/plus3/grainfall/sand"
	"github.com/stretchr/testify/require"
)

var grainColor = sand.Color{R: 210, G: 180, B: 65}

func newTestGrid(t testing.TB, cols, rows int) *sand.Grid {
	t.Helper()
	g, err := sand.NewGrid(cols, rows)
	require.NoError(t, err)
	return g
}

func newTestWorld(t testing.TB, width, height, scale int) *sand.World {
	t.Helper()
	cfg := sand.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Scale = scale
	cfg.Seed = 42
	w, err := sand.NewWorld(cfg, nil)
	require.NoError(t, err)
	return w
}

func pt(col, row int) sand.Point {
	return sand.Point{Col: col, Row: row}
}

func occupiedPoints(g *sand.Grid) []sand.Point {
	var points []sand.Point
	for p := range g.Occupied() {
		points = append(points, p)
	}
	return points
}

// scriptedInput replays one Input per poll, then reports nothing.
type scriptedInput struct {
	frames []sand.Input
	polls  int
}

func (s *scriptedInput) Poll() sand.Input {
	s.polls++
	if len(s.frames) == 0 {
		return sand.Input{}
	}
	in := s.frames[0]
	s.frames = s.frames[1:]
	return in
}
