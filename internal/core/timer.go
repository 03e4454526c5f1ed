package core

import "time"

// FixedStep hands out a constant simulation delta for a ticks-per-second rate
// and counts the ticks it has issued.
type FixedStep struct {
	step  time.Duration
	ticks uint64
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the delta of a single tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Advance records one tick and returns its delta.
func (f *FixedStep) Advance() time.Duration {
	f.ticks++
	return f.step
}

// Ticks reports how many ticks have been issued.
func (f *FixedStep) Ticks() uint64 { return f.ticks }

// Elapsed is the simulated time covered by the issued ticks.
func (f *FixedStep) Elapsed() time.Duration {
	return time.Duration(f.ticks) * f.step
}
