package core

import "time"

// Size describes the logical screen dimensions of a simulation.
type Size struct {
	W int
	H int
}

// Input is the per-tick control intent supplied by the host. Flags combine
// freely; Start is only read while a menu is showing.
type Input struct {
	Left   bool
	Right  bool
	Thrust bool
	Start  bool
}

// Sim defines the contract the presentation layer drives once per tick.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step(in Input, dt time.Duration)
}
