package sand

import "fmt"

// Surface is the rendering side of the platform. A frame is drawn as Clear,
// one Plot per grain, then Present.
type Surface interface {
	Clear(bg Color) error
	Plot(p Point, c Color) error
	Present() error
}

// Framebuffer is a Surface backed by an RGBA byte slice with one pixel per
// grid cell. Present hands the pixels to the sink, if any.
type Framebuffer struct {
	cols int
	rows int
	pix  []byte
	sink func(pix []byte) error
}

// NewFramebuffer allocates a cols x rows framebuffer.
func NewFramebuffer(cols, rows int, sink func(pix []byte) error) *Framebuffer {
	return &Framebuffer{
		cols: cols,
		rows: rows,
		pix:  make([]byte, cols*rows*4),
		sink: sink,
	}
}

func (fb *Framebuffer) Clear(bg Color) error {
	for i := 0; i < len(fb.pix); i += 4 {
		fb.pix[i] = bg.R
		fb.pix[i+1] = bg.G
		fb.pix[i+2] = bg.B
		fb.pix[i+3] = 0xff
	}
	return nil
}

func (fb *Framebuffer) Plot(p Point, c Color) error {
	if p.Col < 0 || p.Col >= fb.cols || p.Row < 0 || p.Row >= fb.rows {
		return fmt.Errorf("plot %s on %dx%d framebuffer: %w", p, fb.cols, fb.rows, ErrOutOfBounds)
	}
	i := (p.Row*fb.cols + p.Col) * 4
	fb.pix[i] = c.R
	fb.pix[i+1] = c.G
	fb.pix[i+2] = c.B
	fb.pix[i+3] = 0xff
	return nil
}

func (fb *Framebuffer) Present() error {
	if fb.sink == nil {
		return nil
	}
	return fb.sink(fb.pix)
}

// At returns the color of the pixel at p, ignoring alpha.
func (fb *Framebuffer) At(p Point) Color {
	i := (p.Row*fb.cols + p.Col) * 4
	return Color{R: fb.pix[i], G: fb.pix[i+1], B: fb.pix[i+2]}
}

// Pix returns the raw RGBA pixels.
func (fb *Framebuffer) Pix() []byte {
	return fb.pix
}
