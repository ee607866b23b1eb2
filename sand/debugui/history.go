package debugui

// History is a fixed size ring of samples for plotting.
type History struct {
	samples []float32
	offset  int
	filled  bool
	ordered []float32
}

func NewHistory(size int) *History {
	return &History{
		samples: make([]float32, size),
		ordered: make([]float32, size),
	}
}

// Push records v, overwriting the oldest sample once the ring is full.
func (h *History) Push(v float32) {
	h.samples[h.offset] = v
	h.offset = (h.offset + 1) % len(h.samples)
	if h.offset == 0 {
		h.filled = true
	}
}

// Len returns the number of recorded samples.
func (h *History) Len() int {
	if h.filled {
		return len(h.samples)
	}
	return h.offset
}

// Ordered returns the recorded samples, oldest first. The slice is reused by
// the next call.
func (h *History) Ordered() []float32 {
	if !h.filled {
		return h.samples[:h.offset]
	}
	n := copy(h.ordered, h.samples[h.offset:])
	copy(h.ordered[n:], h.samples[:h.offset])
	return h.ordered
}

// Mean returns the average of the recorded samples.
func (h *History) Mean() float32 {
	n := h.Len()
	if n == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.Ordered() {
		sum += v
	}
	return sum / float32(n)
}
