package sand

// Commands buffers work that must run after every system of the frame has
// executed, such as immediate-mode UI draws or wiping the grid.
type Commands struct {
	defers []func()
	reset  bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run at the end of the frame.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// ResetGrid queues removal of every grain.
func (c *Commands) ResetGrid() {
	c.reset = true
}

// Flush applies all queued commands to world, resetting the buffer state.
func (c *Commands) Flush(world *World) {
	if c.reset {
		world.Grid.Reset()
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.defers)
	c.defers = c.defers[:0]
	c.reset = false
}
