// Package raster draws hexfield frames into an in-memory RGBA image, for
// snapshots and rendering without a window.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/iburimskiy/hexfield/internal/hexfield"
)

// Surface is a hexfield.Surface backed by *image.RGBA.
type Surface struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	filled int
}

var _ hexfield.Surface = (*Surface)(nil)

// New returns a transparent w x h surface.
func New(w, h int) *Surface {
	w, h = max(w, 0), max(h, 0)
	return &Surface{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

// Clear fills the surface with c and resets the polygon counter.
func (s *Surface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	s.filled = 0
}

// FillPolygon composites the polygon over the current contents.
func (s *Surface) FillPolygon(pts []hexfield.Point, c color.Color) {
	b := s.img.Bounds()
	if len(pts) < 3 || b.Empty() {
		return
	}
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
	s.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		s.z.LineTo(float32(p.X), float32(p.Y))
	}
	s.z.ClosePath()
	s.z.Draw(s.img, b, image.NewUniform(c), image.Point{})
	s.filled++
}

// Filled returns the number of polygons drawn since the last Clear.
func (s *Surface) Filled() int { return s.filled }

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA { return s.img }

// Empty reports whether the surface has no pixels, as for a zero-size
// viewport.
func (s *Surface) Empty() bool { return s.img.Bounds().Empty() }

// WritePNG encodes the surface as PNG. An empty surface writes nothing.
func (s *Surface) WritePNG(w io.Writer) error {
	if s.Empty() {
		return nil
	}
	return png.Encode(w, s.img)
}

// SavePNG writes the surface to path. An empty surface is skipped without
// creating the file.
func (s *Surface) SavePNG(path string) error {
	if s.Empty() {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := s.WritePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
