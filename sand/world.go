package sand

import (
	"io"
	"log"
)

// World is the whole simulation state. Systems receive it through the Frame
// instead of sharing package level variables.
type World struct {
	Config  Config
	Grid    *Grid
	Stroke  Stroke
	Brush   Brush
	Sampler *Sampler
	Logger  *log.Logger

	// Pointer is the grid cell under the pointer as of the last poll.
	Pointer Point

	// Paused stops gravity. Painting still works.
	Paused bool
	// Quit is set once a quit request has been seen. The loop stops after
	// the frame in which it was set.
	Quit bool

	// Frame is the number of completed frames.
	Frame int64
	// Painted and Moved count grains added and moved in the last frame.
	Painted int
	Moved   int
}

// NewWorld validates cfg and creates an empty world. A nil logger discards
// output.
func NewWorld(cfg Config, logger *log.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid, err := NewGrid(cfg.Cols(), cfg.Rows())
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &World{
		Config:  cfg,
		Grid:    grid,
		Sampler: NewSampler(cfg.Seed),
		Logger:  logger,
	}, nil
}
