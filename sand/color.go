package sand

import (
	"math/rand/v2"
	"time"
)

// ColorBand is a base color with a per-channel jitter range. Samples land in
// [Base, Base+Spread) on every channel.
type ColorBand struct {
	Name   string
	Base   Color
	Spread [3]uint8
}

// Bands are the selectable grain palettes. The first is the default.
var Bands = []ColorBand{
	{Name: "sand", Base: Color{R: 200, G: 170, B: 60}, Spread: [3]uint8{20, 20, 10}},
	{Name: "dusk", Base: Color{R: 180, G: 90, B: 70}, Spread: [3]uint8{30, 20, 20}},
	{Name: "ash", Base: Color{R: 120, G: 120, B: 125}, Spread: [3]uint8{25, 25, 25}},
}

// Sample draws one color from the band.
func (b ColorBand) Sample(rng *rand.Rand) Color {
	return Color{
		R: jitter(rng, b.Base.R, b.Spread[0]),
		G: jitter(rng, b.Base.G, b.Spread[1]),
		B: jitter(rng, b.Base.B, b.Spread[2]),
	}
}

func jitter(rng *rand.Rand, base, spread uint8) uint8 {
	if spread == 0 {
		return base
	}
	v := int(base) + rng.IntN(int(spread))
	return uint8(min(v, 255))
}

// Sampler produces grain colors from the currently selected band.
type Sampler struct {
	rng  *rand.Rand
	band int
}

// NewSampler creates a sampler. A zero seed draws a seed from the clock.
func NewSampler(seed uint64) *Sampler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Sampler{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Next returns a freshly sampled color.
func (s *Sampler) Next() Color {
	return Bands[s.band].Sample(s.rng)
}

// Band returns the active band.
func (s *Sampler) Band() ColorBand {
	return Bands[s.band]
}

// Cycle selects the next band, wrapping around.
func (s *Sampler) Cycle() {
	s.band = (s.band + 1) % len(Bands)
}

// Rand exposes the sampler's random source for other seeded helpers.
func (s *Sampler) Rand() *rand.Rand {
	return s.rng
}
