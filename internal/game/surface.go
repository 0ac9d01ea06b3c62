package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/hexfield/internal/hexfield"
)

// screenSurface draws hexfield polygons onto an ebiten image.
type screenSurface struct {
	dst   *ebiten.Image
	white *ebiten.Image

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
	op       ebiten.DrawTrianglesOptions
}

var _ hexfield.Surface = (*screenSurface)(nil)

func newScreenSurface() *screenSurface {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	s := &screenSurface{white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
	s.op.AntiAlias = true
	s.op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	return s
}

func (s *screenSurface) bind(dst *ebiten.Image) { s.dst = dst }

func (s *screenSurface) Clear(c color.Color) {
	s.dst.Fill(c)
}

func (s *screenSurface) FillPolygon(pts []hexfield.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	s.path = vector.Path{}
	s.path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		s.path.LineTo(float32(p.X), float32(p.Y))
	}
	s.path.Close()

	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	r, g, b, a := premultiplied(c)
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}
	s.dst.DrawTriangles(s.vertices, s.indices, s.white, &s.op)
}
