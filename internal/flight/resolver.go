package flight

import (
	"math"
	"time"

	"lunar-rover/internal/core"
	"lunar-rover/internal/terrain"
)

// fuelEpsilon absorbs the rounding left over from repeated fractional burns.
const fuelEpsilon = 1e-9

// Ground is the terrain surface the resolver flies over.
type Ground interface {
	Advance(delta float64)
	GroundHeight(x float64) float64
	PadAt(x, tolerance float64) (terrain.Pad, bool)
}

// State is the vehicle's flight state.
type State int

const (
	Flying State = iota
	Landed
	Crashed
)

func (s State) String() string {
	switch s {
	case Flying:
		return "flying"
	case Landed:
		return "landed"
	case Crashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// EventKind enumerates what a tick reported.
type EventKind int

const (
	EventNone EventKind = iota
	EventLiftoff
	EventLanded
	EventCrashed
)

func (k EventKind) String() string {
	switch k {
	case EventLiftoff:
		return "liftoff"
	case EventLanded:
		return "landed"
	case EventCrashed:
		return "crashed"
	default:
		return "none"
	}
}

// Event is the outcome of one Update.
type Event struct {
	Kind EventKind
	// Pad is the surface landed on for EventLanded.
	Pad terrain.Pad
	// Speed is the total speed at contact for EventLanded and EventCrashed.
	Speed float64
}

// Vehicle is the kinematic state of the rover. VelocityX is the world scroll
// speed: the vehicle keeps its X and the ground moves beneath it.
type Vehicle struct {
	X         float64
	Y         float64
	Angle     float64
	VelocityX float64
	VelocityY float64
	Fuel      float64
}

// Speed is the magnitude of the velocity vector.
func (v Vehicle) Speed() float64 { return math.Hypot(v.VelocityX, v.VelocityY) }

// Resolver integrates the vehicle from input intent and resolves contact with
// the ground.
type Resolver struct {
	params Params
	ground Ground
	rule   LandingRule

	v        Vehicle
	state    State
	pad      terrain.Pad
	onPad    bool
	distance float64
}

// NewResolver starts a flight from the given vehicle state. A nil rule falls
// back to PadRule.
func NewResolver(p Params, ground Ground, rule LandingRule, start Vehicle) *Resolver {
	if rule == nil {
		rule = PadRule{}
	}
	p = p.normalized()
	start.Fuel = clampF(start.Fuel, 0, p.MaxFuel)
	return &Resolver{params: p, ground: ground, rule: rule, v: start}
}

// Vehicle returns a copy of the current kinematic state.
func (r *Resolver) Vehicle() Vehicle { return r.v }

// State reports the flight state.
func (r *Resolver) State() State { return r.state }

// Pad returns the pad the vehicle rests on while Landed.
func (r *Resolver) Pad() (terrain.Pad, bool) { return r.pad, r.onPad }

// Distance is the total world distance scrolled.
func (r *Resolver) Distance() float64 { return r.distance }

// Params returns the live tunables.
func (r *Resolver) Params() Params { return r.params }

// Rule returns the landing rule in use.
func (r *Resolver) Rule() LandingRule { return r.rule }

// Update advances one tick. Once Crashed, Update does nothing.
func (r *Resolver) Update(in core.Input, dt time.Duration) Event {
	if r.state == Crashed {
		return Event{}
	}
	p := r.params
	ms := float64(dt) / float64(time.Millisecond)
	var ev Event

	if r.v.Fuel > 0 {
		switch {
		case in.Left:
			r.v.Angle -= p.RotationSpeed
			r.burn(p.RotationFuelCost)
		case in.Right:
			r.v.Angle += p.RotationSpeed
			r.burn(p.RotationFuelCost)
		}
	}

	if in.Thrust && r.v.Fuel > 0 {
		if r.state == Landed {
			r.state = Flying
			r.onPad = false
			r.v.VelocityY -= p.LiftoffImpulse
			ev = Event{Kind: EventLiftoff}
		}
		r.burn(p.BurnRate)

		// Angle 0 points up; screen space measures from +x.
		rad := (r.v.Angle - 90) * math.Pi / 180
		r.v.VelocityY += math.Sin(rad) * p.ThrustAccel * ms
		r.v.VelocityX = clampF(r.v.VelocityX+math.Cos(rad)*p.ForwardAccel, 0, p.MaxForwardSpeed)
	} else {
		if r.state == Flying {
			r.v.VelocityY += p.Gravity * ms
		}
		r.v.VelocityX *= p.Friction
		if r.state == Landed && r.onPad {
			r.v.Fuel = math.Min(p.MaxFuel, r.v.Fuel+p.RefuelRate)
			r.v.VelocityX = 0
		}
	}

	if r.state == Flying {
		r.v.Y += r.v.VelocityY * ms / 1000
	}

	if math.Abs(r.v.VelocityX) > p.ScrollEpsilon {
		r.distance += r.v.VelocityX
		r.ground.Advance(r.v.VelocityX)
	}

	// Rising vehicles are never in contact; this keeps a fresh liftoff from
	// registering against the pad it just left.
	if r.state != Flying || r.v.VelocityY < 0 {
		return ev
	}
	groundY := r.ground.GroundHeight(r.v.X)
	if r.v.Y+p.BodyHalfHeight < groundY {
		return ev
	}

	c := Contact{
		X:             r.v.X,
		GroundY:       groundY,
		Speed:         r.v.Speed(),
		VerticalSpeed: r.v.VelocityY,
		Ground:        r.ground,
	}
	outcome, pad := r.rule.Classify(c, p)
	if outcome == OutcomeLand {
		r.v.VelocityX = 0
		r.v.VelocityY = 0
		r.v.Y = pad.Y - p.BodyHalfHeight
		r.state = Landed
		r.pad = pad
		r.onPad = true
		return Event{Kind: EventLanded, Pad: pad, Speed: c.Speed}
	}
	r.state = Crashed
	return Event{Kind: EventCrashed, Speed: c.Speed}
}

func (r *Resolver) burn(amount float64) {
	if amount <= 0 {
		return
	}
	r.v.Fuel -= amount
	if r.v.Fuel < fuelEpsilon {
		r.v.Fuel = 0
	}
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
