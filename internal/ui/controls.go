package ui

import (
	"math"
	"strconv"

	"lunar-rover/internal/core"
)

const defaultFloatStep = 0.05

// formatFloat picks a precision fine enough to show one control step.
func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// stepFloat moves current one step in direction, clamped to the control
// bounds. It reports false when the value would not change.
func stepFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}

// Panel geometry, in pixels from the panel's top-left corner.
const (
	panelInset = 10
	rowTop     = 40
	rowHeight  = 28
	keyWidth   = 20
)

// slider is one float tunable shown in the panel. ok is false while the
// snapshot has no parseable value for it.
type slider struct {
	ctrl  core.ParameterControl
	value float64
	ok    bool
}

// floatParam reads key from snap as a float.
func floatParam(snap core.ParameterSnapshot, key string) (float64, bool) {
	p, ok := snap.Lookup(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// rowAt maps a panel-local point to a slider row and a step direction. The
// two step keys sit at the right edge, "-" then "+". A direction of 0 means
// the point hit no key.
func rowAt(x, y, width, rows int) (int, int) {
	if y < rowTop || x < 0 {
		return -1, 0
	}
	row := (y - rowTop) / rowHeight
	if row >= rows {
		return -1, 0
	}
	right := width - panelInset
	switch {
	case x >= right-keyWidth && x < right:
		return row, 1
	case x >= right-2*keyWidth && x < right-keyWidth:
		return row, -1
	}
	return row, 0
}
