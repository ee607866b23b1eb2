package sand

import "errors"

// InputSystem polls the platform and applies its events to the world.
type InputSystem struct {
	Source InputSource
}

func (s *InputSystem) Execute(frame *Frame) {
	world := frame.World
	input := s.Source.Poll()

	for _, event := range input.Events {
		switch event {
		case EventPointerDown:
			world.Stroke.Press()
		case EventPointerUp:
			world.Stroke.Release()
		case EventQuit:
			world.Quit = true
		case EventTogglePause:
			world.Paused = !world.Paused
		case EventClearGrid:
			frame.Commands.ResetGrid()
		case EventNextBand:
			world.Sampler.Cycle()
		case EventBrushGrow:
			world.Brush.Grow(1)
		case EventBrushShrink:
			world.Brush.Grow(-1)
		}
	}

	world.Pointer = world.Config.ToGrid(input.X, input.Y)
}

// StrokeSystem paints along the pointer path while the button is held.
type StrokeSystem struct{}

func (s *StrokeSystem) Execute(frame *Frame) {
	world := frame.World
	world.Painted = 0

	if !world.Stroke.Active() {
		return
	}
	world.Painted = world.Stroke.Drag(world, world.Pointer)
}

// GravitySystem runs the configured number of gravity passes.
type GravitySystem struct{}

func (s *GravitySystem) Execute(frame *Frame) {
	world := frame.World
	world.Moved = 0

	if world.Paused {
		return
	}
	for range world.Config.GravityPasses {
		world.Moved += Step(world.Grid)
	}
}

// PresentSystem repaints the whole grid onto a Surface.
type PresentSystem struct {
	Surface Surface
}

func (s *PresentSystem) Execute(frame *Frame) {
	world := frame.World

	if err := s.Surface.Clear(world.Config.Background); err != nil {
		frame.Fail(platformError("clear", err))
		return
	}

	for p, c := range world.Grid.Occupied() {
		if err := s.Surface.Plot(p, c); err != nil {
			frame.Fail(platformError("plot", err))
			return
		}
	}

	if err := s.Surface.Present(); err != nil {
		frame.Fail(platformError("present", err))
	}
}

func platformError(op string, err error) error {
	if errors.Is(err, ErrPlatform) {
		return err
	}
	return NewPlatformError(op, err)
}

// NewPipeline registers the frame pipeline in order: input, stroke, gravity,
// present. Extra systems run first, which is where overlays that must see
// input before the simulation belong.
func NewPipeline(world *World, input InputSource, surface Surface, extra ...System) *Scheduler {
	scheduler := NewScheduler(world)
	for _, system := range extra {
		scheduler.Register(system)
	}
	scheduler.Register(&InputSystem{Source: input})
	scheduler.Register(&StrokeSystem{})
	scheduler.Register(&GravitySystem{})
	scheduler.Register(&PresentSystem{Surface: surface})
	return scheduler
}
