package hexfield

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/hexfield/internal/config"
)

// Particle is one drifting hexagon. Only Pos and Angle change after creation.
type Particle struct {
	Pos          Point
	Size         float64
	Opacity      float64
	Vel          Point
	Angle        float64
	AngularSpeed float64
}

// Count returns the population for a canvas of w x h pixels.
func Count(w, h int) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h / config.AreaPerParticle
}

// NewField seeds Count(w, h) particles spread uniformly over the canvas.
func NewField(rng *rand.Rand, w, h int) []Particle {
	n := Count(w, h)
	if n == 0 {
		return nil
	}
	field := make([]Particle, n)
	for i := range field {
		field[i] = Particle{
			Pos: Point{
				X: rng.Float64() * float64(w),
				Y: rng.Float64() * float64(h),
			},
			Size:    config.MinSize + rng.Float64()*config.SizeSpan,
			Opacity: config.MinOpacity + rng.Float64()*config.OpacitySpan,
			Vel: Point{
				X: (rng.Float64()*2 - 1) * config.MaxSpeed,
				Y: (rng.Float64()*2 - 1) * config.MaxSpeed,
			},
			Angle:        rng.Float64() * 2 * math.Pi,
			AngularSpeed: (rng.Float64()*2 - 1) * config.MaxAngularStep,
		}
	}
	return field
}

// step advances p by one frame and wraps it back into the margin box.
func (p *Particle) step(w, h float64) {
	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y
	p.Angle += p.AngularSpeed

	p.Pos.X = wrap(p.Pos.X, w, config.WrapMargin)
	p.Pos.Y = wrap(p.Pos.Y, h, config.WrapMargin)
}
