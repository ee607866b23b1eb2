package sand_test

import (
	"testing"

	"github.com/plus3/grainfall/sand"
	"github.com/stretchr/testify/assert"
)

func TestDunes(t *testing.T) {
	w := newTestWorld(t, 640, 480, 10)

	painted := sand.Dunes(w, 7, 12)
	assert.Positive(t, painted)
	assert.Equal(t, painted, w.Grid.Count())

	for p := range w.Grid.Occupied() {
		assert.GreaterOrEqual(t, p.Row, w.Grid.Rows()-12, "grain %s above the dune band", p)
	}

	// Every dune column is solid down to the floor.
	for col := range w.Grid.Cols() {
		top := -1
		for row := range w.Grid.Rows() {
			if w.Grid.IsOccupied(sand.Point{Col: col, Row: row}) {
				top = row
				break
			}
		}
		if top < 0 {
			continue
		}
		for row := top; row < w.Grid.Rows(); row++ {
			assert.True(t, w.Grid.IsOccupied(sand.Point{Col: col, Row: row}))
		}
	}

	again := sand.Dunes(w, 7, 12)
	assert.Equal(t, 0, again)
}

func TestDunesZeroHeight(t *testing.T) {
	w := newTestWorld(t, 100, 100, 10)
	assert.Equal(t, 0, sand.Dunes(w, 1, 0))
}
