package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/grainfall/sand"
)

// wanderer is a scripted pointer that drags strokes across the window at
// random, standing in for a user during headless runs.
type wanderer struct {
	rng    *rand.Rand
	width  int
	height int
	step   int

	x, y   int
	held   bool
	events []sand.Event
}

// checkStep rejects pointer steps the wanderer cannot draw from.
func checkStep(step int) error {
	if step < 0 {
		return fmt.Errorf("%w: step %d", sand.ErrInvalidConfig, step)
	}
	return nil
}

func newWanderer(seed uint64, width, height, step int) *wanderer {
	return &wanderer{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		width:  width,
		height: height,
		step:   step,
		x:      width / 2,
		y:      height / 4,
	}
}

func (w *wanderer) Poll() sand.Input {
	w.events = w.events[:0]

	switch {
	case !w.held && w.rng.IntN(8) == 0:
		w.held = true
		w.x = w.rng.IntN(w.width)
		w.y = w.rng.IntN(w.height/2 + 1)
		w.events = append(w.events, sand.EventPointerDown)
	case w.held && w.rng.IntN(40) == 0:
		w.held = false
		w.events = append(w.events, sand.EventPointerUp)
	}

	switch w.rng.IntN(200) {
	case 0:
		w.events = append(w.events, sand.EventBrushGrow)
	case 1:
		w.events = append(w.events, sand.EventBrushShrink)
	case 2:
		w.events = append(w.events, sand.EventNextBand)
	}

	w.x = clamp(w.x+w.rng.IntN(2*w.step+1)-w.step, 0, w.width-1)
	w.y = clamp(w.y+w.rng.IntN(2*w.step+1)-w.step, 0, w.height-1)

	return sand.Input{Events: w.events, X: w.x, Y: w.y}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
