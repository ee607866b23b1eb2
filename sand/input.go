package sand

// Event is a discrete input event reported by the platform.
type Event int

const (
	EventPointerDown Event = iota
	EventPointerUp
	EventQuit
	EventTogglePause
	EventClearGrid
	EventNextBand
	EventBrushGrow
	EventBrushShrink
)

var eventNames = [...]string{
	EventPointerDown: "pointer-down",
	EventPointerUp:   "pointer-up",
	EventQuit:        "quit",
	EventTogglePause: "toggle-pause",
	EventClearGrid:   "clear-grid",
	EventNextBand:    "next-band",
	EventBrushGrow:   "brush-grow",
	EventBrushShrink: "brush-shrink",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// Input is everything the platform reports for one frame. X and Y are the
// pointer position in physical pixels.
type Input struct {
	Events []Event
	X, Y   int
}

// InputSource is polled once per frame without blocking.
type InputSource interface {
	Poll() Input
}

// InputFunc adapts a function to the InputSource interface.
type InputFunc func() Input

func (f InputFunc) Poll() Input { return f() }
