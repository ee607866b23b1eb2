package sand

import (
	"flag"
	"fmt"
	"time"
)

// Config holds the startup constants of a simulation. None of them change
// while the simulation runs.
type Config struct {
	// Width and Height are the window size in physical pixels.
	Width  int
	Height int
	// Scale is the number of pixels per grid cell on each axis.
	Scale int
	// FrameDelay is the target time between frames.
	FrameDelay time.Duration
	// GravityPasses is the number of one-step gravity passes per frame.
	GravityPasses int
	// Seed feeds the color sampler. Zero picks a seed from the clock.
	Seed uint64
	// Background is the color the surface is cleared to each frame.
	Background Color
}

// DefaultConfig returns a 640x480 window with 10 pixel cells at ~60 FPS.
func DefaultConfig() Config {
	return Config{
		Width:         640,
		Height:        480,
		Scale:         10,
		FrameDelay:    16 * time.Millisecond,
		GravityPasses: 1,
	}
}

// RegisterFlags binds the config fields to command line flags on fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Window width in pixels.")
	fs.IntVar(&c.Height, "height", c.Height, "Window height in pixels.")
	fs.IntVar(&c.Scale, "scale", c.Scale, "Pixels per grid cell.")
	fs.DurationVar(&c.FrameDelay, "frame-delay", c.FrameDelay, "Target delay between frames.")
	fs.IntVar(&c.GravityPasses, "gravity-passes", c.GravityPasses, "Gravity passes per frame.")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Color sampler seed, 0 for a time based seed.")
}

// Validate checks that the config describes a usable grid.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, c.Scale)
	case c.Scale > c.Width || c.Scale > c.Height:
		return fmt.Errorf("%w: scale %d exceeds window %dx%d", ErrInvalidConfig, c.Scale, c.Width, c.Height)
	case c.FrameDelay <= 0:
		return fmt.Errorf("%w: frame delay %s", ErrInvalidConfig, c.FrameDelay)
	case c.GravityPasses < 0:
		return fmt.Errorf("%w: gravity passes %d", ErrInvalidConfig, c.GravityPasses)
	}
	return nil
}

// Cols returns the grid width in cells.
func (c Config) Cols() int { return c.Width / c.Scale }

// Rows returns the grid height in cells.
func (c Config) Rows() int { return c.Height / c.Scale }

// TPS returns the frame rate implied by FrameDelay, at least 1.
func (c Config) TPS() int {
	if c.FrameDelay <= 0 {
		return 1
	}
	return max(int(time.Second/c.FrameDelay), 1)
}

// ToGrid maps a pixel position to a cell. Division floors, so pixels left of
// or above the window map to negative, off-grid cells.
func (c Config) ToGrid(x, y int) Point {
	return Point{Col: floorDiv(x, c.Scale), Row: floorDiv(y, c.Scale)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
