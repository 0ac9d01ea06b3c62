package hexfield

import "math"

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Hexagon returns the six vertices of a regular hexagon centred on c with
// circumradius r, rotated by angle radians. Vertex k sits at angle+k*pi/3.
func Hexagon(c Point, r, angle float64) [6]Point {
	var v [6]Point
	for k := range v {
		a := angle + float64(k)*math.Pi/3
		v[k] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return v
}

// ParallaxOffset maps a pointer position to a shift of at most strength/2 on
// each axis, zero when the pointer is at the viewport centre. A zero
// viewport dimension gives no shift on that axis.
func ParallaxOffset(pointer Point, viewW, viewH, strength float64) Point {
	var off Point
	if viewW > 0 {
		off.X = (pointer.X/viewW - 0.5) * strength
	}
	if viewH > 0 {
		off.Y = (pointer.Y/viewH - 0.5) * strength
	}
	return off
}

// wrap moves a coordinate that left [-margin, limit+margin] to the opposite edge.
func wrap(v, limit, margin float64) float64 {
	if v < -margin {
		return limit + margin
	}
	if v > limit+margin {
		return -margin
	}
	return v
}
