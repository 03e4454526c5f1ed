package render

import (
	"math"

	"lunar-rover/internal/flight"
	"lunar-rover/internal/terrain"
)

// Vec is a point in screen pixels.
type Vec struct {
	X float64
	Y float64
}

// Segment is a straight line between two screen points.
type Segment struct {
	A Vec
	B Vec
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Segments converts the terrain polyline into screen-space segments. Segments
// lying wholly outside [0, width] (in world units) are dropped.
func Segments(pts []terrain.Point, scale, width float64) []Segment {
	if len(pts) < 2 {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}
	out := make([]Segment, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if b.X < 0 || a.X > width {
			continue
		}
		out = append(out, Segment{
			A: Vec{a.X * scale, a.Y * scale},
			B: Vec{b.X * scale, b.Y * scale},
		})
	}
	return out
}

// PadRect is the drawn pad: centred on the pad x and sitting on top of the
// ground at the pad y.
func PadRect(p terrain.Pad, scale float64) Rect {
	if scale <= 0 {
		scale = 1
	}
	return Rect{
		X: (p.X - p.Width/2) * scale,
		Y: (p.Y - p.Height) * scale,
		W: p.Width * scale,
		H: p.Height * scale,
	}
}

// CaptureRect spans the x range a pad accepts a landing in, from a little
// above the surface down to it.
func CaptureRect(p terrain.Pad, tolerance, reach, scale float64) Rect {
	if scale <= 0 {
		scale = 1
	}
	half := p.Width/2 + tolerance
	return Rect{
		X: (p.X - half) * scale,
		Y: (p.Y - reach) * scale,
		W: 2 * half * scale,
		H: reach * scale,
	}
}

// RoverOutline returns the body corners clockwise from the top-left after
// rotating by the vehicle angle about its centre.
func RoverOutline(v flight.Vehicle, halfW, halfH, scale float64) [4]Vec {
	corners := [4]Vec{{-halfW, -halfH}, {halfW, -halfH}, {halfW, halfH}, {-halfW, halfH}}
	var out [4]Vec
	for i, c := range corners {
		out[i] = place(v, c, scale)
	}
	return out
}

// Flame is the exhaust trail leaving the skids opposite to the thrust
// direction.
func Flame(v flight.Vehicle, halfH, length, scale float64) Segment {
	return Segment{
		A: place(v, Vec{0, halfH}, scale),
		B: place(v, Vec{0, halfH + length}, scale),
	}
}

// Edges closes an outline into its four sides.
func Edges(outline [4]Vec) [4]Segment {
	var out [4]Segment
	for i := range outline {
		out[i] = Segment{A: outline[i], B: outline[(i+1)%len(outline)]}
	}
	return out
}

// place rotates a body-local offset by the vehicle angle (clockwise on a
// y-down screen) and moves it to the vehicle position.
func place(v flight.Vehicle, local Vec, scale float64) Vec {
	if scale <= 0 {
		scale = 1
	}
	rad := v.Angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	x := local.X*cos - local.Y*sin
	y := local.X*sin + local.Y*cos
	return Vec{(v.X + x) * scale, (v.Y + y) * scale}
}
