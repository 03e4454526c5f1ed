package terrain

import (
	"slices"
	"testing"

	"lunar-rover/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// script replays a fixed sequence of draws, repeating the last one.
type script struct {
	vals []float64
	i    int
}

func (s *script) Float64() float64 {
	if len(s.vals) == 0 {
		return 0.5
	}
	v := s.vals[min(s.i, len(s.vals)-1)]
	s.i++
	return v
}

func TestInitializeCoversScreenPlusMargin(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(1); seed <= 25; seed++ {
		g := New(cfg, core.NewRNG(seed))
		g.Initialize()

		require.NoError(t, g.Verify(), "seed %d", seed)
		pts := g.Points()
		assert.Equal(t, 0.0, pts[0].X)
		assert.GreaterOrEqual(t, pts[len(pts)-1].X, cfg.End())
		assert.LessOrEqual(t, pts[len(pts)-1].X, cfg.End()+2*cfg.Spacing, "walk stops once the end is reached")
	}
}

func TestAdvanceKeepsInvariants(t *testing.T) {
	cfg := DefaultConfig()
	g := New(cfg, core.NewRNG(99))
	g.Initialize()

	deltas := []float64{0.39, 0.2, 7, 19.99, 20, 20.01, 55.5, 0.001}
	for tick := 0; tick < 4000; tick++ {
		d := deltas[tick%len(deltas)]
		g.Advance(d)
		require.NoError(t, g.Verify(), "tick %d", tick)
		for _, p := range g.Points() {
			require.GreaterOrEqual(t, p.X, -cfg.Spacing, "tick %d: point survived past eviction edge", tick)
		}
		for _, p := range g.Pads() {
			require.GreaterOrEqual(t, p.X, -cfg.Spacing, "tick %d: pad survived past eviction edge", tick)
		}
	}
}

func TestAdvanceEvictsWholeWindow(t *testing.T) {
	cfg := DefaultConfig()
	g := New(cfg, core.NewRNG(3))
	g.Initialize()
	lastY := g.Points()[len(g.Points())-1].Y

	g.Advance(10 * cfg.End())

	require.NoError(t, g.Verify())
	assert.Equal(t, Point{X: 0, Y: lastY}, g.Points()[0], "walk restarts from the last known height")
}

func TestAdvanceIgnoresNonPositiveDelta(t *testing.T) {
	g := New(DefaultConfig(), core.NewRNG(5))
	g.Initialize()
	before := slices.Clone(g.Points())

	g.Advance(0)
	g.Advance(-4)

	assert.Equal(t, before, g.Points())
}

func TestGenerationIsReproducible(t *testing.T) {
	a := New(DefaultConfig(), core.NewRNG(1234))
	b := New(DefaultConfig(), core.NewRNG(1234))
	a.Initialize()
	b.Initialize()
	for i := 0; i < 300; i++ {
		a.Advance(3.3)
		b.Advance(3.3)
	}
	assert.Equal(t, a.Points(), b.Points())
	assert.Equal(t, a.Pads(), b.Pads())

	c := New(DefaultConfig(), core.NewRNG(4321))
	c.Initialize()
	assert.NotEqual(t, a.Points()[0].Y, c.Points()[0].Y)
}

func TestHeightsStayClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Jitter = 200
	cfg.PadChance = 0
	g := New(cfg, core.NewRNG(8))
	g.Initialize()
	for i := 0; i < 500; i++ {
		g.Advance(13)
		for _, p := range g.Points() {
			require.GreaterOrEqual(t, p.Y, cfg.MinY)
			require.LessOrEqual(t, p.Y, cfg.MaxY)
		}
	}
}

func TestPadRunIsFlat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScreenWidth = 60
	cfg.Margin = 0
	// Initial height 0.5 -> 360, then a pad roll, then walk steps.
	g := New(cfg, &script{vals: []float64{0.5, 0.01, 0.9, 0.75}})
	g.Initialize()

	pts := g.Points()
	require.Len(t, pts, 4)
	assert.Equal(t, Point{X: 0, Y: 360}, pts[0])
	assert.Equal(t, Point{X: 20, Y: 360}, pts[1])
	assert.Equal(t, Point{X: 40, Y: 360}, pts[2])
	assert.Equal(t, 60.0, pts[3].X)
	assert.InDelta(t, 365, pts[3].Y, 1e-9, "walk step of +5 from the run height")

	pads := g.Pads()
	require.Len(t, pads, 1)
	assert.Equal(t, Pad{X: 20, Y: 360, Width: 40, Height: 3}, pads[0])
	require.NoError(t, g.Verify())
}

func TestGroundHeightInterpolates(t *testing.T) {
	g := New(DefaultConfig(), core.NewRNG(1))
	g.points = []Point{{0, 100}, {20, 140}, {40, 130}}

	assert.Equal(t, 120.0, g.GroundHeight(10))
	assert.Equal(t, 100.0, g.GroundHeight(0))
	assert.Equal(t, 140.0, g.GroundHeight(20), "sample points are returned exactly")
	assert.Equal(t, 130.0, g.GroundHeight(40))
	assert.InDelta(t, 135.0, g.GroundHeight(30), 1e-12)
	assert.Equal(t, 100.0, g.GroundHeight(-50), "clamped to first point")
	assert.Equal(t, 130.0, g.GroundHeight(500), "clamped to last point")
}

func TestGroundHeightDegenerateWindows(t *testing.T) {
	cfg := DefaultConfig()
	g := New(cfg, core.NewRNG(1))
	assert.Equal(t, cfg.DefaultHeight, g.GroundHeight(10), "empty window")

	g.points = []Point{{0, 100}}
	assert.Equal(t, cfg.DefaultHeight, g.GroundHeight(0), "single point")

	g.points = []Point{{0, 100}, {10, 150}, {10, 170}, {20, 200}}
	assert.NotPanics(t, func() { g.GroundHeight(10) })
	assert.Equal(t, 170.0, g.GroundHeight(10), "duplicate x resolves to the later sample")
}

func TestPadAtInclusiveSpan(t *testing.T) {
	g := New(DefaultConfig(), core.NewRNG(1))
	g.pads = []Pad{{X: 100, Y: 300, Width: 70, Height: 3}}

	for _, x := range []float64{55, 100, 145} {
		_, ok := g.PadAt(x, 10)
		assert.True(t, ok, "x=%v should be captured", x)
	}
	for _, x := range []float64{54.9, 145.1} {
		_, ok := g.PadAt(x, 10)
		assert.False(t, ok, "x=%v should miss", x)
	}

	g.pads = []Pad{{X: 100, Y: 300, Width: 40, Height: 3}}
	_, ok := g.PadAt(70, 10)
	assert.True(t, ok)
	_, ok = g.PadAt(130, 10)
	assert.True(t, ok)
	_, ok = g.PadAt(69.9, 10)
	assert.False(t, ok)
	_, ok = g.PadAt(130.1, 10)
	assert.False(t, ok)
}

func TestPadAtReturnsLeftmost(t *testing.T) {
	g := New(DefaultConfig(), core.NewRNG(1))
	g.pads = []Pad{{X: 100, Width: 40}, {X: 120, Width: 40}}

	p, ok := g.PadAt(115, 0)
	require.True(t, ok)
	assert.Equal(t, 100.0, p.X)
}

func TestNormalizedConfig(t *testing.T) {
	g := New(Config{Spacing: -1, MinY: 400, MaxY: 300, PadChance: 3, Jitter: -4}, core.NewRNG(1))
	cfg := g.Config()
	assert.Equal(t, 20.0, cfg.Spacing)
	assert.Equal(t, 300.0, cfg.MinY)
	assert.Equal(t, 400.0, cfg.MaxY)
	assert.Equal(t, 1.0, cfg.PadChance)
	assert.Equal(t, 4.0, cfg.Jitter)
}
