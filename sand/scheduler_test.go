package sand_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/plus3/grainfall/sand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSystem struct {
	ExecuteCount int
	order        *[]string
	name         string
}

func (s *countingSystem) Execute(frame *sand.Frame) {
	s.ExecuteCount++
	if s.order != nil {
		*s.order = append(*s.order, s.name)
	}
}

type failingSystem struct {
	err error
}

func (s *failingSystem) Execute(frame *sand.Frame) {
	frame.Fail(s.err)
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		world := newTestWorld(t, 100, 100, 10)
		scheduler := sand.NewScheduler(world)

		var order []string
		first := &countingSystem{order: &order, name: "first"}
		second := &countingSystem{order: &order, name: "second"}
		scheduler.Register(first)
		scheduler.Register(second)

		require.NoError(t, scheduler.Once(1.0/60))
		require.NoError(t, scheduler.Once(1.0/60))

		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
		assert.Equal(t, int64(2), world.Frame)
	})

	t.Run("failure skips remaining systems", func(t *testing.T) {
		world := newTestWorld(t, 100, 100, 10)
		scheduler := sand.NewScheduler(world)

		boom := errors.New("boom")
		after := &countingSystem{}
		scheduler.Register(&failingSystem{err: boom})
		scheduler.Register(after)

		err := scheduler.Once(0)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, after.ExecuteCount)
	})

	t.Run("stats", func(t *testing.T) {
		world := newTestWorld(t, 100, 100, 10)
		scheduler := sand.NewScheduler(world)
		scheduler.Register(&countingSystem{})
		scheduler.Register(&sand.GravitySystem{})

		for range 3 {
			require.NoError(t, scheduler.Once(0))
		}

		stats := scheduler.GetStats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, int64(6), stats.TotalExecutions)
		require.Len(t, stats.Systems, 2)
		assert.Equal(t, "countingSystem", stats.Systems[0].Name)
		assert.Equal(t, "GravitySystem", stats.Systems[1].Name)
		assert.Equal(t, int64(3), stats.Systems[1].ExecutionCount)
		assert.LessOrEqual(t, stats.Systems[1].MinDuration, stats.Systems[1].MaxDuration)
	})

	t.Run("stats before first frame", func(t *testing.T) {
		world := newTestWorld(t, 100, 100, 10)
		scheduler := sand.NewScheduler(world)
		scheduler.Register(&countingSystem{})

		stats := scheduler.GetStats()
		require.Len(t, stats.Systems, 1)
		assert.Zero(t, stats.Systems[0].ExecutionCount)
		assert.Zero(t, stats.Systems[0].MinDuration)
		assert.Zero(t, stats.Systems[0].AvgDuration)
		assert.Zero(t, stats.Systems[0].MaxDuration)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		world := newTestWorld(t, 100, 100, 10)
		scheduler := sand.NewScheduler(world)
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error)
		go func() {
			done <- scheduler.Run(ctx, time.Millisecond)
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if counter.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})

	t.Run("quit ends run after the frame", func(t *testing.T) {
		world := newTestWorld(t, 100, 100, 10)
		input := &scriptedInput{frames: []sand.Input{{}, {Events: []sand.Event{sand.EventQuit}}}}
		counter := &countingSystem{}
		scheduler := sand.NewScheduler(world)
		scheduler.Register(&sand.InputSystem{Source: input})
		scheduler.Register(counter)

		err := scheduler.Run(context.Background(), time.Millisecond)
		require.NoError(t, err)
		assert.True(t, world.Quit)
		assert.Equal(t, 2, counter.ExecuteCount)
	})

	t.Run("run returns frame errors", func(t *testing.T) {
		world := newTestWorld(t, 100, 100, 10)
		scheduler := sand.NewScheduler(world)
		scheduler.Register(&failingSystem{err: sand.NewPlatformError("draw", nil)})

		err := scheduler.Run(context.Background(), time.Millisecond)
		assert.ErrorIs(t, err, sand.ErrPlatform)
	})
}

func TestCommandsFlushAfterSystems(t *testing.T) {
	world := newTestWorld(t, 100, 100, 10)
	require.NoError(t, world.Grid.Place(pt(1, 1), grainColor))

	var seen []int
	calls := 0
	scheduler := sand.NewScheduler(world)
	scheduler.Register(systemFunc(func(frame *sand.Frame) {
		calls++
		if calls > 1 {
			return
		}
		frame.Commands.ResetGrid()
		frame.Commands.Defer(func() { seen = append(seen, frame.World.Grid.Count()) })
		seen = append(seen, frame.World.Grid.Count())
	}))

	require.NoError(t, scheduler.Once(0))
	assert.Equal(t, []int{1, 0}, seen)

	// Buffers are empty on the next frame.
	require.NoError(t, world.Grid.Place(pt(1, 1), grainColor))
	require.NoError(t, scheduler.Once(0))
	assert.Equal(t, 1, world.Grid.Count())
	assert.Equal(t, []int{1, 0}, seen)
}

type systemFunc func(frame *sand.Frame)

func (f systemFunc) Execute(frame *sand.Frame) { f(frame) }
