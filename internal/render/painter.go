//go:build ebiten

package render

import (
	"image/color"

	"lunar-rover/internal/flight"
	"lunar-rover/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws the terrain and rover as vector line art.
type Painter struct {
	scale float64
	width float64

	Ground color.Color
	Pad    color.Color
	Body   color.Color
	Flame  color.Color
	Wreck  color.Color
}

// NewPainter returns a Painter for a play field width world units wide.
func NewPainter(scale int, width float64) *Painter {
	if scale <= 0 {
		scale = 1
	}
	return &Painter{
		scale:  float64(scale),
		width:  width,
		Ground: color.White,
		Pad:    color.RGBA{G: 255, A: 255},
		Body:   color.White,
		Flame:  color.RGBA{R: 255, G: 160, B: 40, A: 255},
		Wreck:  color.RGBA{R: 255, G: 64, B: 64, A: 255},
	}
}

// DrawTerrain strokes the ground polyline and fills every pad.
func (p *Painter) DrawTerrain(screen *ebiten.Image, g *terrain.Generator) {
	for _, s := range Segments(g.Points(), p.scale, p.width) {
		line(screen, s, 2, p.Ground)
	}
	for _, pad := range g.Pads() {
		fill(screen, PadRect(pad, p.scale), p.Pad)
	}
}

// DrawRover outlines the vehicle and, while thrusting, its exhaust.
func (p *Painter) DrawRover(screen *ebiten.Image, v flight.Vehicle, params flight.Params, state flight.State, thrusting bool) {
	halfH := params.BodyHalfHeight
	halfW := halfH * 0.75
	col := p.Body
	if state == flight.Crashed {
		col = p.Wreck
	}
	for _, e := range Edges(RoverOutline(v, halfW, halfH, p.scale)) {
		line(screen, e, 1.5, col)
	}
	if thrusting && v.Fuel > 0 && state != flight.Crashed {
		line(screen, Flame(v, halfH, halfH, p.scale), 2, p.Flame)
	}
}

// Line strokes one screen-space segment.
func Line(screen *ebiten.Image, s Segment, width float32, c color.Color) {
	line(screen, s, width, c)
}

// Outline strokes a rectangle.
func Outline(screen *ebiten.Image, r Rect, width float32, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}

func line(screen *ebiten.Image, s Segment, width float32, c color.Color) {
	vector.StrokeLine(screen, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y), width, c, true)
}

func fill(screen *ebiten.Image, r Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}
