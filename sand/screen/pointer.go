package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/grainfall/sand"
)

// Pointer reads the left mouse button, cursor and keyboard shortcuts.
//
//	left button  paint
//	space        pause gravity
//	c            clear the grid
//	b            next color band
//	wheel        brush size
//	escape       quit
type Pointer struct {
	// Blocked reports whether another layer, such as a debug overlay, owns
	// the mouse this frame. Presses are ignored while it returns true.
	Blocked func() bool

	held   bool
	events []sand.Event
}

func (p *Pointer) Poll() sand.Input {
	p.events = p.events[:0]

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.events = append(p.events, sand.EventQuit)
	}

	blocked := p.Blocked != nil && p.Blocked()

	if !blocked && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.held = true
		p.events = append(p.events, sand.EventPointerDown)
	}
	if p.held && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.held = false
		p.events = append(p.events, sand.EventPointerUp)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.events = append(p.events, sand.EventTogglePause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		p.events = append(p.events, sand.EventClearGrid)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		p.events = append(p.events, sand.EventNextBand)
	}

	if !blocked {
		_, dy := ebiten.Wheel()
		switch {
		case dy > 0:
			p.events = append(p.events, sand.EventBrushGrow)
		case dy < 0:
			p.events = append(p.events, sand.EventBrushShrink)
		}
	}

	x, y := ebiten.CursorPosition()
	return sand.Input{Events: p.events, X: x, Y: y}
}
