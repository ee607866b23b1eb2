package sand_test

import (
	"errors"
	"testing"

	"github.com/plus3/grainfall/sand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func held(x, y int, events ...sand.Event) sand.Input {
	return sand.Input{Events: events, X: x, Y: y}
}

func TestPipelinePaintFallPresent(t *testing.T) {
	world := newTestWorld(t, 50, 50, 10)
	input := &scriptedInput{frames: []sand.Input{
		held(25, 5, sand.EventPointerDown),
		held(25, 5, sand.EventPointerUp),
	}}

	var presented int
	fb := sand.NewFramebuffer(world.Grid.Cols(), world.Grid.Rows(), func(pix []byte) error {
		presented++
		return nil
	})
	scheduler := sand.NewPipeline(world, input, fb)

	require.NoError(t, scheduler.Once(0))
	assert.Equal(t, 1, world.Painted)
	assert.Equal(t, 1, world.Moved)
	assert.Equal(t, []sand.Point{pt(2, 1)}, occupiedPoints(world.Grid))

	cell, _ := world.Grid.At(pt(2, 1))
	assert.Equal(t, cell.Color, fb.At(pt(2, 1)))
	assert.Equal(t, world.Config.Background, fb.At(pt(2, 0)))

	// Released: nothing new is painted and the grain keeps falling.
	for range 5 {
		require.NoError(t, scheduler.Once(0))
	}
	assert.Equal(t, 0, world.Painted)
	assert.Equal(t, []sand.Point{pt(2, 4)}, occupiedPoints(world.Grid))
	assert.Equal(t, 6, presented)
	assert.Equal(t, 6, input.polls)
}

func TestPipelineConnectsFastPointer(t *testing.T) {
	world := newTestWorld(t, 100, 50, 10)
	world.Config.GravityPasses = 0
	input := &scriptedInput{frames: []sand.Input{
		held(0, 0, sand.EventPointerDown),
		held(95, 0),
	}}
	scheduler := sand.NewPipeline(world, input, sand.NewFramebuffer(10, 5, nil))

	require.NoError(t, scheduler.Once(0))
	require.NoError(t, scheduler.Once(0))

	assert.Equal(t, 10, world.Grid.Count())
	for p := range world.Grid.Occupied() {
		assert.Equal(t, 0, p.Row)
	}
}

func TestPipelineRepressDoesNotConnect(t *testing.T) {
	world := newTestWorld(t, 100, 100, 10)
	world.Config.GravityPasses = 0
	input := &scriptedInput{frames: []sand.Input{
		held(5, 5, sand.EventPointerDown),
		held(5, 5, sand.EventPointerUp),
		held(85, 85, sand.EventPointerDown),
	}}
	scheduler := sand.NewPipeline(world, input, sand.NewFramebuffer(10, 10, nil))

	for range 3 {
		require.NoError(t, scheduler.Once(0))
	}
	assert.Equal(t, []sand.Point{pt(0, 0), pt(8, 8)}, occupiedPoints(world.Grid))
}

func TestInputSystemEvents(t *testing.T) {
	world := newTestWorld(t, 100, 100, 10)
	require.NoError(t, world.Grid.Place(pt(3, 9), grainColor))
	input := &scriptedInput{frames: []sand.Input{
		{Events: []sand.Event{sand.EventTogglePause, sand.EventNextBand, sand.EventBrushGrow, sand.EventBrushGrow, sand.EventBrushShrink}},
		{Events: []sand.Event{sand.EventClearGrid}},
	}}
	scheduler := sand.NewPipeline(world, input, sand.NewFramebuffer(10, 10, nil))

	require.NoError(t, scheduler.Once(0))
	assert.True(t, world.Paused)
	assert.Equal(t, "dusk", world.Sampler.Band().Name)
	assert.Equal(t, 1, world.Brush.Radius)
	assert.Equal(t, 1, world.Grid.Count())

	require.NoError(t, scheduler.Once(0))
	assert.Equal(t, 0, world.Grid.Count())
	assert.False(t, world.Quit)
}

func TestPausedGravity(t *testing.T) {
	world := newTestWorld(t, 100, 100, 10)
	world.Paused = true
	require.NoError(t, world.Grid.Place(pt(3, 0), grainColor))

	scheduler := sand.NewScheduler(world)
	scheduler.Register(&sand.GravitySystem{})
	require.NoError(t, scheduler.Once(0))
	assert.Equal(t, 0, world.Moved)
	assert.True(t, world.Grid.IsOccupied(pt(3, 0)))

	world.Paused = false
	world.Config.GravityPasses = 3
	require.NoError(t, scheduler.Once(0))
	assert.Equal(t, 3, world.Moved)
	assert.True(t, world.Grid.IsOccupied(pt(3, 3)))
}

type brokenSurface struct {
	failOn string
}

func (s *brokenSurface) fail(op string) error {
	if s.failOn == op {
		return errors.New("device lost")
	}
	return nil
}

func (s *brokenSurface) Clear(sand.Color) error           { return s.fail("clear") }
func (s *brokenSurface) Plot(sand.Point, sand.Color) error { return s.fail("plot") }
func (s *brokenSurface) Present() error                    { return s.fail("present") }

func TestPresentFailureIsPlatformError(t *testing.T) {
	for _, op := range []string{"clear", "plot", "present"} {
		t.Run(op, func(t *testing.T) {
			world := newTestWorld(t, 100, 100, 10)
			require.NoError(t, world.Grid.Place(pt(0, 9), grainColor))
			scheduler := sand.NewScheduler(world)
			scheduler.Register(&sand.PresentSystem{Surface: &brokenSurface{failOn: op}})

			err := scheduler.Once(0)
			require.ErrorIs(t, err, sand.ErrPlatform)

			var perr *sand.PlatformError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, op, perr.Op)
			assert.Contains(t, err.Error(), "device lost")
		})
	}
}
