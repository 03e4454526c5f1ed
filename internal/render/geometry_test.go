package render

import (
	"testing"

	"lunar-rover/internal/flight"
	"lunar-rover/internal/terrain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestSegmentsClipAndScale(t *testing.T) {
	pts := []terrain.Point{{-40, 300}, {-20, 310}, {0, 320}, {20, 330}, {40, 340}, {60, 350}}

	segs := Segments(pts, 2, 39)
	require.Len(t, segs, 3, "segments ending left of 0 or starting right of the width are dropped")
	assert.Equal(t, Segment{A: Vec{-40, 620}, B: Vec{0, 640}}, segs[0])
	assert.Equal(t, Segment{A: Vec{40, 660}, B: Vec{80, 680}}, segs[2])

	assert.Nil(t, Segments(pts[:1], 1, 100))
	assert.Len(t, Segments(pts, 0, 1000), 4, "non-positive scale draws at 1x")
}

func TestPadRectSitsOnSurface(t *testing.T) {
	r := PadRect(terrain.Pad{X: 100, Y: 350, Width: 40, Height: 3}, 1)
	assert.Equal(t, Rect{X: 80, Y: 347, W: 40, H: 3}, r)

	r = PadRect(terrain.Pad{X: 100, Y: 350, Width: 40, Height: 3}, 2)
	assert.Equal(t, Rect{X: 160, Y: 694, W: 80, H: 6}, r)
}

func TestCaptureRectMatchesPadTolerance(t *testing.T) {
	p := terrain.Pad{X: 100, Y: 300, Width: 40}
	r := CaptureRect(p, 10, 12, 1)
	assert.Equal(t, Rect{X: 70, Y: 288, W: 60, H: 12}, r)
	assert.True(t, p.Contains(r.X, 10))
	assert.True(t, p.Contains(r.X+r.W, 10))
}

func TestRoverOutlineRotates(t *testing.T) {
	v := flight.Vehicle{X: 100, Y: 50}
	upright := RoverOutline(v, 8, 12, 1)
	assertVec(t, Vec{92, 38}, upright[0])
	assertVec(t, Vec{108, 38}, upright[1])
	assertVec(t, Vec{108, 62}, upright[2])
	assertVec(t, Vec{92, 62}, upright[3])

	v.Angle = 90
	tilted := RoverOutline(v, 8, 12, 1)
	// The top edge now faces right.
	assertVec(t, Vec{112, 42}, tilted[0])
	assertVec(t, Vec{112, 58}, tilted[1])
}

func TestFlameOpposesThrust(t *testing.T) {
	v := flight.Vehicle{X: 10, Y: 10}
	f := Flame(v, 12, 6, 1)
	assertVec(t, Vec{10, 22}, f.A)
	assertVec(t, Vec{10, 28}, f.B)

	v.Angle = 90
	f = Flame(v, 12, 6, 1)
	assert.Less(t, f.B.X, f.A.X, "thrusting right pushes the flame left")
}

func TestEdgesCloseOutline(t *testing.T) {
	outline := RoverOutline(flight.Vehicle{}, 1, 1, 1)
	edges := Edges(outline)
	assert.Equal(t, outline[3], edges[3].A)
	assert.Equal(t, outline[0], edges[3].B)
}
