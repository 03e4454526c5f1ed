//go:build ebiten

package app

import (
	"image/color"

	"lunar-rover/internal/core"
	"lunar-rover/internal/render"
	"lunar-rover/internal/session"
	"lunar-rover/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the parameter panel to the right of the play field.
const hudWidth = 240

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	clock   *core.FixedStep
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale     int
	seed      int64
	thrusting bool
	played    bool
}

// New constructs a Game stepping sess at tps.
func New(sess *session.Session, tps, scale int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sess.Size()
	return &Game{
		sess:    sess,
		clock:   core.NewFixedStep(tps),
		painter: render.NewPainter(scale, float64(size.W)),
		hud:     ui.NewHUD(sess, hudWidth),
		overlay: ui.NewOverlay(sess, scale),
		scale:   scale,
		seed:    seed,
	}
}

// Reset returns the session to the menu with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.played = false
	g.sess.Reset(seed)
}

// Update reads input and advances the session by one fixed tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	g.overlay.Update()
	g.hud.Update(g.sess.Size().W * g.scale)

	in := core.Input{
		Left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Thrust: ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Start:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
	g.thrusting = in.Thrust

	wasPlaying := g.sess.Mode() == session.ModePlaying
	g.sess.Step(in, g.clock.Advance())
	if wasPlaying && g.sess.Mode() == session.ModeMenu {
		g.played = true
	}
	return nil
}

// Draw renders the play field, the HUD and, in the menu, the start text.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	size := g.sess.Size()

	g.painter.DrawTerrain(screen, g.sess.Terrain())
	playing := g.sess.Mode() == session.ModePlaying
	if playing || g.played {
		g.painter.DrawRover(screen, g.sess.Vehicle(), g.sess.Params(), g.sess.FlightState(), playing && g.thrusting)
	}
	g.hud.DrawStats(screen)
	if !playing {
		ui.DrawCentered(screen, size.W*g.scale, size.H*g.scale, ui.MenuTitle,
			ui.MenuLines(g.sess.Distance(), g.sess.HighScore(), g.played))
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, size.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sess.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}

// WindowSize is the initial window size for Layout.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
