//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"lunar-rover/internal/core"
	"lunar-rover/internal/flight"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type telemetry interface {
	Distance() float64
	HighScore() float64
	Speed() float64
	Vehicle() flight.Vehicle
}

var (
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	keyLive     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	keyIdle     = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD draws the telemetry block over the play field and the tunable panel to
// its right.
type HUD struct {
	sim          core.Sim
	width        int
	panel        *ebiten.Image
	lastHeight   int
	snapshot     core.ParameterSnapshot
	sliders      []slider
	setter       core.FloatParameterSetter
	panelOffsetX int
	title        string
}

// NewHUD constructs a HUD for sim with a parameter panel width pixels wide.
// A zero width hides the panel. Only float controls are shown.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: buildTitle(sim)}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type == core.ParamTypeFloat {
				h.sliders = append(h.sliders, slider{ctrl: ctrl})
			}
		}
	}
	h.setter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Update refreshes the parameter snapshot and handles panel clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	for i := range h.sliders {
		sl := &h.sliders[i]
		sl.value, sl.ok = floatParam(h.snapshot, sl.ctrl.Key)
	}
	h.handleClick()
}

// DrawStats writes the telemetry lines in the top-left corner.
func (h *HUD) DrawStats(screen *ebiten.Image) {
	if h == nil {
		return
	}
	t, ok := h.sim.(telemetry)
	if !ok {
		return
	}
	lines := StatLines(Stats{
		Distance:  t.Distance(),
		Fuel:      t.Vehicle().Fuel,
		HighScore: t.HighScore(),
		Speed:     t.Speed(),
	})
	face := basicfont.Face7x13
	for i, l := range lines {
		text.Draw(screen, l, face, 10, 20+i*statLineHeight, color.White)
	}
}

// DrawCentered writes a title and body lines centred in the play field.
func DrawCentered(screen *ebiten.Image, width, height int, title string, lines []string) {
	face := basicfont.Face7x13
	y := height/2 - 50
	tb := text.BoundString(face, title)
	text.Draw(screen, title, face, (width-tb.Dx())/2, y, color.White)
	y += 2 * statLineHeight
	for _, l := range lines {
		b := text.BoundString(face, l)
		text.Draw(screen, l, face, (width-b.Dx())/2, y, textColor)
		y += statLineHeight
	}
}

// Draw paints the parameter panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawPanel()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	return fmt.Sprintf("%s controls", strings.ToUpper(sim.Name()[:1])+sim.Name()[1:])
}

func (h *HUD) handleClick() {
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	row, dir := rowAt(mx-h.panelOffsetX, my, h.width, len(h.sliders))
	if dir == 0 || !h.sliders[row].ok {
		return
	}
	sl := &h.sliders[row]
	if next, ok := stepFloat(sl.ctrl, sl.value, dir); ok && h.setter.SetFloatParameter(sl.ctrl.Key, next) {
		sl.value = next
	}
}

func (h *HUD) drawPanel() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelInset, 24, headerColor)
	if len(h.sliders) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelInset, rowTop+rowHeight/2, mutedColor)
	}
	for i, sl := range h.sliders {
		base := rowTop + i*rowHeight + rowHeight/2 + 4
		text.Draw(h.panel, sl.ctrl.Label, face, panelInset, base, textColor)

		value, ink := "--", color.Color(mutedColor)
		if sl.ok {
			value, ink = formatFloat(sl.ctrl, sl.value), textColor
		}
		vx := h.width - panelInset - 2*keyWidth - 6 - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, vx, base, ink)

		h.drawKey(i, -1, sl)
		h.drawKey(i, 1, sl)
	}
	y := rowTop + len(h.sliders)*rowHeight + 20
	for _, g := range h.snapshot.Groups {
		if g.Summary == "" {
			continue
		}
		text.Draw(h.panel, g.Name+": "+g.Summary, face, panelInset, y, mutedColor)
		y += statLineHeight
	}
}

// drawKey paints the "-" (dir < 0) or "+" step key of a row, dimmed when a
// click would change nothing.
func (h *HUD) drawKey(row, dir int, sl slider) {
	x, label := h.width-panelInset-keyWidth, "+"
	if dir < 0 {
		x, label = x-keyWidth, "-"
	}
	y := rowTop + row*rowHeight + 4
	fill, ink := keyIdle, color.Color(mutedColor)
	if _, live := stepFloat(sl.ctrl, sl.value, dir); live && sl.ok && h.setter != nil {
		fill, ink = keyLive, textColor
	}
	vector.DrawFilledRect(h.panel, float32(x+1), float32(y), keyWidth-2, rowHeight-8, fill, false)
	text.Draw(h.panel, label, basicfont.Face7x13, x+keyWidth/2-3, y+rowHeight/2, ink)
}

const statLineHeight = 16
