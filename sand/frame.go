package sand

// Frame is handed to every system during one scheduler tick.
type Frame struct {
	DeltaTime float64
	World     *World
	Commands  *Commands

	err error
}

func newFrame(dt float64, world *World, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		World:     world,
		Commands:  commands,
	}
}

// Fail records a fatal error. The remaining systems of the frame are skipped
// and the scheduler returns the first recorded error.
func (f *Frame) Fail(err error) {
	if f.err == nil && err != nil {
		f.err = err
	}
}

// Err returns the error recorded by Fail, if any.
func (f *Frame) Err() error {
	return f.err
}
