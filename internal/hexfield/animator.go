// Package hexfield animates a field of drifting, rotating hexagons with
// wrap-around motion and a pointer-driven parallax shift.
//
// An Animator is not safe for concurrent use. Hosts call Configure,
// OnPointerMove, Advance and Draw from the single goroutine that drives
// their refresh loop.
package hexfield

import (
	"image/color"
	"math/rand"

	"github.com/iburimskiy/hexfield/internal/config"
)

// Surface is a 2D drawing target.
type Surface interface {
	// Clear fills the whole surface with c.
	Clear(c color.Color)
	// FillPolygon fills the closed polygon through pts with c.
	FillPolygon(pts []Point, c color.Color)
}

// Animator owns the particle field, the last pointer position and the
// viewport the field was generated for.
type Animator struct {
	rng     *rand.Rand
	isDark  func() bool
	palette config.ResolvedPalette

	width, height int
	configured    bool
	field         []Particle
	pointer       Point
	stopped       bool

	verts []Point
}

// New returns an animator with an empty field. isDark is queried once per
// drawn frame to pick the fill colour; a nil isDark means dark.
func New(rng *rand.Rand, palette config.ResolvedPalette, isDark func() bool) *Animator {
	if isDark == nil {
		isDark = func() bool { return true }
	}
	return &Animator{
		rng:     rng,
		isDark:  isDark,
		palette: palette,
		verts:   make([]Point, 6),
	}
}

// Configure discards the current field and seeds a new one for a viewport of
// width x height. A zero or negative dimension yields an empty field.
func (a *Animator) Configure(width, height int) {
	a.width, a.height = max(width, 0), max(height, 0)
	a.field = NewField(a.rng, a.width, a.height)
	a.configured = true
}

// Resize reseeds the field when width x height differs from the viewport it
// was last configured for, and reports whether it did.
func (a *Animator) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if width == a.width && height == a.height && a.configured {
		return false
	}
	a.Configure(width, height)
	return true
}

// OnPointerMove records the pointer position used by the next frame.
func (a *Animator) OnPointerMove(x, y float64) {
	a.pointer = Point{X: x, Y: y}
}

// Advance moves every particle by one frame.
func (a *Animator) Advance() {
	if a.stopped {
		return
	}
	w, h := float64(a.width), float64(a.height)
	for i := range a.field {
		a.field[i].step(w, h)
	}
}

// Draw renders the field onto s. Nothing is drawn for an empty field or
// after Stop.
func (a *Animator) Draw(s Surface) {
	if a.stopped || len(a.field) == 0 {
		return
	}
	base := a.palette.Fill(a.isDark())
	off := a.Parallax()
	for _, p := range a.field {
		hex := Hexagon(p.Pos.Add(off), p.Size, p.Angle)
		copy(a.verts, hex[:])
		s.FillPolygon(a.verts, color.NRGBA64{
			R: uint16(base.R) * 0x101,
			G: uint16(base.G) * 0x101,
			B: uint16(base.B) * 0x101,
			A: uint16(p.Opacity * 0xffff),
		})
	}
}

// RenderFrame advances the field by one frame and draws it.
func (a *Animator) RenderFrame(s Surface) {
	a.Advance()
	a.Draw(s)
}

// Stop tears the animator down; later frames are no-ops.
func (a *Animator) Stop() { a.stopped = true }

// Stopped reports whether Stop was called.
func (a *Animator) Stopped() bool { return a.stopped }

// Parallax returns the offset applied to every particle this frame.
func (a *Animator) Parallax() Point {
	return ParallaxOffset(a.pointer, float64(a.width), float64(a.height), config.ParallaxStrength)
}

// Len returns the number of particles in the field.
func (a *Animator) Len() int { return len(a.field) }

// Size returns the viewport the field was last configured for.
func (a *Animator) Size() (int, int) { return a.width, a.height }

// Particles returns a copy of the field.
func (a *Animator) Particles() []Particle {
	out := make([]Particle, len(a.field))
	copy(out, a.field)
	return out
}
