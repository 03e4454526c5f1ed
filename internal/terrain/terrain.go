package terrain

import (
	"fmt"
	"math"
	"sort"

	"lunar-rover/internal/core"
)

// Point is one ground-height sample of the terrain polyline.
type Point struct {
	X float64
	Y float64
}

// Pad is a refuel pad centred on a flat run of the polyline.
type Pad struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether x lies within the pad span widened by tolerance on
// both sides. Bounds are inclusive.
func (p Pad) Contains(x, tolerance float64) bool {
	half := p.Width/2 + tolerance
	return x >= p.X-half && x <= p.X+half
}

// Generator maintains the scrolling window of terrain points and pads.
type Generator struct {
	cfg Config
	rng core.Random

	points []Point
	pads   []Pad
}

// New returns a Generator drawing from rng. Call Initialize before use.
func New(cfg Config, rng core.Random) *Generator {
	if rng == nil {
		rng = core.NewRNG(1)
	}
	return &Generator{cfg: cfg.normalized(), rng: rng}
}

// Config returns the normalized configuration in use.
func (g *Generator) Config() Config { return g.cfg }

// Points exposes the ordered terrain samples. Callers must not modify it.
func (g *Generator) Points() []Point { return g.points }

// Pads exposes the pads in ascending x order. Callers must not modify it.
func (g *Generator) Pads() []Pad { return g.pads }

// Initialize discards the window and fills it from x=0 to the configured end.
func (g *Generator) Initialize() {
	g.points = g.points[:0]
	g.pads = g.pads[:0]
	y := core.Uniform(g.rng, g.cfg.MinY, g.cfg.MaxY)
	g.points = append(g.points, Point{X: 0, Y: y})
	g.extend()
}

// Advance scrolls the window left by delta, evicts samples that fell behind
// the leading edge and regrows the trailing edge. Non-positive deltas are
// ignored since the world never scrolls backwards.
func (g *Generator) Advance(delta float64) {
	if delta <= 0 {
		return
	}
	if len(g.points) == 0 {
		g.Initialize()
		return
	}
	lastY := g.points[len(g.points)-1].Y

	for i := range g.points {
		g.points[i].X -= delta
	}
	for i := range g.pads {
		g.pads[i].X -= delta
	}

	limit := -g.cfg.Spacing
	cut := 0
	for cut < len(g.points) && g.points[cut].X < limit {
		cut++
	}
	g.points = append(g.points[:0], g.points[cut:]...)

	cut = 0
	for cut < len(g.pads) && g.pads[cut].X < limit {
		cut++
	}
	g.pads = append(g.pads[:0], g.pads[cut:]...)

	if len(g.points) == 0 {
		g.points = append(g.points, Point{X: 0, Y: lastY})
	}
	g.extend()
}

// extend continues the random walk from the last point until the window
// reaches the configured end.
func (g *Generator) extend() {
	s := g.cfg.Spacing
	end := g.cfg.End()
	last := g.points[len(g.points)-1]
	for last.X < end {
		if core.Chance(g.rng, g.cfg.PadChance) {
			mid := Point{X: last.X + s, Y: last.Y}
			last = Point{X: last.X + 2*s, Y: last.Y}
			g.points = append(g.points, mid, last)
			g.pads = append(g.pads, Pad{X: mid.X, Y: mid.Y, Width: g.cfg.PadWidth, Height: g.cfg.PadHeight})
			continue
		}
		y := last.Y + core.Uniform(g.rng, -g.cfg.Jitter, g.cfg.Jitter)
		last = Point{X: last.X + s, Y: clampF(y, g.cfg.MinY, g.cfg.MaxY)}
		g.points = append(g.points, last)
	}
}

// GroundHeight interpolates the terrain height at x. Outside the window the
// nearest end point is used; with fewer than two points DefaultHeight is
// returned.
func (g *Generator) GroundHeight(x float64) float64 {
	pts := g.points
	if len(pts) < 2 {
		return g.cfg.DefaultHeight
	}
	if x <= pts[0].X {
		return pts[0].Y
	}
	last := pts[len(pts)-1]
	if x >= last.X {
		return last.Y
	}
	i := sort.Search(len(pts), func(i int) bool { return pts[i].X > x })
	p1, p2 := pts[i-1], pts[i]
	if p2.X == p1.X {
		return p1.Y
	}
	t := (x - p1.X) / (p2.X - p1.X)
	return p1.Y + (p2.Y-p1.Y)*t
}

// PadAt returns the leftmost pad whose span, widened by tolerance, contains x.
func (g *Generator) PadAt(x, tolerance float64) (Pad, bool) {
	for _, p := range g.pads {
		if p.Contains(x, tolerance) {
			return p, true
		}
	}
	return Pad{}, false
}

// Verify checks the window invariants: coverage of [0, ScreenWidth], strictly
// ascending samples one spacing apart, heights within bounds, and every pad
// sitting on a level run of two steps.
func (g *Generator) Verify() error {
	const eps = 1e-6
	pts := g.points
	if len(pts) < 2 {
		return fmt.Errorf("terrain: window has %d points", len(pts))
	}
	if pts[0].X > eps {
		return fmt.Errorf("terrain: first point at x=%.3f leaves the left edge uncovered", pts[0].X)
	}
	if last := pts[len(pts)-1].X; last < g.cfg.ScreenWidth {
		return fmt.Errorf("terrain: last point at x=%.3f short of screen width %.0f", last, g.cfg.ScreenWidth)
	}
	for i, p := range pts {
		if p.Y < g.cfg.MinY || p.Y > g.cfg.MaxY {
			return fmt.Errorf("terrain: point %d height %.3f outside [%.0f, %.0f]", i, p.Y, g.cfg.MinY, g.cfg.MaxY)
		}
		if i == 0 {
			continue
		}
		if step := p.X - pts[i-1].X; math.Abs(step-g.cfg.Spacing) > eps {
			return fmt.Errorf("terrain: points %d-%d spaced %.6f, want %.0f", i-1, i, step, g.cfg.Spacing)
		}
	}
	for i, pad := range g.pads {
		if i > 0 && pad.X <= g.pads[i-1].X {
			return fmt.Errorf("terrain: pad %d out of order", i)
		}
		if pad.X < pts[0].X+g.cfg.Spacing-eps || pad.X > pts[len(pts)-1].X-g.cfg.Spacing+eps {
			// Part of the flat run was already evicted or not yet generated.
			continue
		}
		left := g.GroundHeight(pad.X - g.cfg.Spacing)
		right := g.GroundHeight(pad.X + g.cfg.Spacing)
		if math.Abs(left-pad.Y) > eps || math.Abs(right-pad.Y) > eps {
			return fmt.Errorf("terrain: pad %d at x=%.3f not on level ground", i, pad.X)
		}
	}
	return nil
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
