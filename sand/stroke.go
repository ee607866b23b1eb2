package sand

// Stroke tracks one pointer drag. The previous cell is forgotten on release
// so that the next press does not connect to the old stroke.
type Stroke struct {
	active  bool
	prev    Point
	hasPrev bool
}

// Press starts a stroke.
func (s *Stroke) Press() {
	s.active = true
}

// Release ends the stroke and drops the previous cell.
func (s *Stroke) Release() {
	s.active = false
	s.hasPrev = false
}

// Active reports whether the pointer button is held.
func (s *Stroke) Active() bool {
	return s.active
}

// Previous returns the last painted pointer cell of the current stroke.
func (s *Stroke) Previous() (Point, bool) {
	return s.prev, s.hasPrev
}

// Drag paints toward p and returns the number of grains added.
//
// The first sample of a stroke places a single grain at p, overwriting.
// Later samples fill the line from the previous sample to p, skipping cells
// that already hold a grain. Off-grid samples are logged and ignored, and the
// next on-grid sample starts a fresh line.
func (s *Stroke) Drag(w *World, p Point) int {
	if !w.Grid.InBounds(p) {
		w.Logger.Printf("pointer: sample %s on %dx%d grid: %v", p, w.Grid.Cols(), w.Grid.Rows(), ErrOutOfBounds)
		s.hasPrev = false
		return 0
	}

	defer func() {
		s.prev = p
		s.hasPrev = true
	}()

	if !s.hasPrev && w.Brush.Radius == 0 {
		wasOccupied := w.Grid.IsOccupied(p)
		// In bounds, so Place cannot fail.
		_ = w.Grid.Place(p, w.Sampler.Next())
		if wasOccupied {
			return 0
		}
		return 1
	}

	from := p
	if s.hasPrev {
		from = s.prev
	}

	painted := 0
	for _, cell := range w.Brush.Stamp(w.Grid, from, p) {
		if w.Grid.IsOccupied(cell) {
			continue
		}
		// In bounds and empty, so Place cannot fail.
		_ = w.Grid.Place(cell, w.Sampler.Next())
		painted++
	}
	return painted
}
