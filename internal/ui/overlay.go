//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lunar-rover/internal/core"
	"lunar-rover/internal/flight"
	"lunar-rover/internal/render"
	"lunar-rover/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type groundProvider interface {
	Terrain() *terrain.Generator
	Vehicle() flight.Vehicle
	Params() flight.Params
}

// Overlay draws optional debugging visuals on top of the play field.
type Overlay struct {
	sim       core.Sim
	scale     int
	showProbe bool
	showSpans bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the ground probe (1) and the pad capture spans (2).
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showProbe = !o.showProbe
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showSpans = !o.showSpans
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(groundProvider)
	if !ok {
		return
	}
	g := provider.Terrain()
	if g == nil {
		return
	}
	scale := float64(o.scale)
	params := provider.Params()

	if o.showSpans {
		spanColor := color.RGBA{R: 64, G: 164, B: 223, A: 255}
		for _, pad := range g.Pads() {
			r := render.CaptureRect(pad, params.PadTolerance, 2*params.BodyHalfHeight, scale)
			render.Outline(screen, r, 1, spanColor)
		}
	}

	if o.showProbe {
		v := provider.Vehicle()
		ground := g.GroundHeight(v.X)
		skids := v.Y + params.BodyHalfHeight
		probeColor := color.RGBA{R: 255, G: 220, B: 64, A: 255}
		render.Line(screen, render.Segment{
			A: render.Vec{X: v.X * scale, Y: skids * scale},
			B: render.Vec{X: v.X * scale, Y: ground * scale},
		}, 1, probeColor)
		render.Line(screen, render.Segment{
			A: render.Vec{X: (v.X - 10) * scale, Y: ground * scale},
			B: render.Vec{X: (v.X + 10) * scale, Y: ground * scale},
		}, 1, probeColor)

		label := fmt.Sprintf("clear %.1f  vy %.2f", ground-skids, v.VelocityY)
		if pad, onPad := g.PadAt(v.X, params.PadTolerance); onPad {
			label += fmt.Sprintf("  pad %.0f", pad.X)
		}
		text.Draw(screen, label, basicfont.Face7x13, int((v.X+16)*scale), int(ground*scale)-4, probeColor)
	}
}
