package game

import (
	"image/color"

	"github.com/iburimskiy/hexfield/internal/config"
)

// rgb255 turns a palette entry into an opaque colour.
func rgb255(c config.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// premultiplied returns the 0..1 premultiplied-alpha components of c.
func premultiplied(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, clamp01(float32(ca) / 0xffff)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
