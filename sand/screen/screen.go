// Package screen connects the simulation to an Ebitengine window: a Surface
// that uploads the grid as one texel per cell, and an InputSource that reads
// the mouse and keyboard.
package screen

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/grainfall/sand"
)

// Screen is a sand.Surface drawing into an offscreen image with one pixel per
// grid cell. Draw scales it up to window size.
type Screen struct {
	*sand.Framebuffer

	cols  int
	rows  int
	scale int
	image *ebiten.Image
}

// New creates a screen for a cols x rows grid shown at scale pixels per cell.
// The backing image is allocated on the first Present.
func New(cols, rows, scale int) *Screen {
	s := &Screen{
		cols:  cols,
		rows:  rows,
		scale: scale,
	}
	s.Framebuffer = sand.NewFramebuffer(cols, rows, s.upload)
	return s
}

func (s *Screen) upload(pix []byte) error {
	if want := s.cols * s.rows * 4; len(pix) != want {
		return sand.NewPlatformError("write pixels", fmt.Errorf("got %d bytes, want %d", len(pix), want))
	}
	if s.image == nil {
		s.image = ebiten.NewImage(s.cols, s.rows)
	}
	s.image.WritePixels(pix)
	return nil
}

// Draw renders the last presented frame onto dst.
func (s *Screen) Draw(dst *ebiten.Image) {
	if s.image == nil {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(s.scale), float64(s.scale))
	opts.Filter = ebiten.FilterNearest
	dst.DrawImage(s.image, opts)
}
