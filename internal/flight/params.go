package flight

import "lunar-rover/internal/core"

// Params holds the flight model tunables. Accelerations are per millisecond of
// tick delta; speeds are world units per tick for the scroll axis and world
// units per second for the vertical axis.
type Params struct {
	RotationSpeed    float64 `yaml:"rotation_speed"`
	RotationFuelCost float64 `yaml:"rotation_fuel_cost"`

	ThrustAccel     float64 `yaml:"thrust_accel"`
	ForwardAccel    float64 `yaml:"forward_accel"`
	MaxForwardSpeed float64 `yaml:"max_forward_speed"`
	LiftoffImpulse  float64 `yaml:"liftoff_impulse"`

	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"`

	MaxFuel    float64 `yaml:"max_fuel"`
	BurnRate   float64 `yaml:"burn_rate"`
	RefuelRate float64 `yaml:"refuel_rate"`

	SafeLandingSpeed  float64 `yaml:"safe_landing_speed"`
	SafeVerticalSpeed float64 `yaml:"safe_vertical_speed"`
	PadTolerance      float64 `yaml:"pad_tolerance"`

	// BodyHalfHeight is the distance from the vehicle centre to its skids.
	BodyHalfHeight float64 `yaml:"body_half_height"`
	ScrollEpsilon  float64 `yaml:"scroll_epsilon"`
}

// DefaultParams returns the standard flight model.
func DefaultParams() Params {
	return Params{
		RotationSpeed:     1.5,
		ThrustAccel:       0.1,
		ForwardAccel:      0.2,
		MaxForwardSpeed:   0.39,
		Gravity:           0.01,
		Friction:          1,
		MaxFuel:           100,
		BurnRate:          0.1,
		RefuelRate:        0.1,
		SafeLandingSpeed:  20,
		SafeVerticalSpeed: 6,
		PadTolerance:      10,
		BodyHalfHeight:    12,
		ScrollEpsilon:     0.001,
	}
}

func (p Params) normalized() Params {
	if p.MaxFuel < 0 {
		p.MaxFuel = 0
	}
	if p.MaxForwardSpeed < 0 {
		p.MaxForwardSpeed = 0
	}
	if p.BurnRate < 0 {
		p.BurnRate = 0
	}
	if p.RefuelRate < 0 {
		p.RefuelRate = 0
	}
	if p.Friction < 0 {
		p.Friction = 0
	}
	if p.ScrollEpsilon < 0 {
		p.ScrollEpsilon = 0
	}
	return p
}

type tunable struct {
	key   string
	label string
	step  float64
	min   float64
	max   float64
	field func(*Params) *float64
}

var tunables = []tunable{
	{"gravity", "Gravity", 0.002, 0, 0.1, func(p *Params) *float64 { return &p.Gravity }},
	{"thrust_accel", "Thrust", 0.01, 0, 1, func(p *Params) *float64 { return &p.ThrustAccel }},
	{"forward_accel", "Forward accel", 0.02, 0, 2, func(p *Params) *float64 { return &p.ForwardAccel }},
	{"max_forward_speed", "Max forward speed", 0.05, 0, 5, func(p *Params) *float64 { return &p.MaxForwardSpeed }},
	{"rotation_speed", "Rotation speed", 0.25, 0, 10, func(p *Params) *float64 { return &p.RotationSpeed }},
	{"burn_rate", "Burn rate", 0.01, 0, 1, func(p *Params) *float64 { return &p.BurnRate }},
	{"refuel_rate", "Refuel rate", 0.05, 0, 5, func(p *Params) *float64 { return &p.RefuelRate }},
	{"safe_landing_speed", "Safe landing speed", 1, 0, 100, func(p *Params) *float64 { return &p.SafeLandingSpeed }},
	{"pad_tolerance", "Pad tolerance", 1, 0, 60, func(p *Params) *float64 { return &p.PadTolerance }},
}

// Parameters reports the live tunables for the HUD.
func (r *Resolver) Parameters() core.ParameterSnapshot {
	params := make([]core.Parameter, 0, len(tunables))
	for _, t := range tunables {
		params = append(params, core.FloatParam(t.key, t.label, *t.field(&r.params)))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:    "Flight",
		Params:  params,
		Summary: "rule " + r.rule.Name(),
	}}}
}

// ParameterControls lists the HUD-adjustable tunables.
func (r *Resolver) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, 0, len(tunables))
	for _, t := range tunables {
		out = append(out, core.ParameterControl{
			Key:    t.key,
			Label:  t.label,
			Type:   core.ParamTypeFloat,
			Step:   t.step,
			Min:    t.min,
			Max:    t.max,
			HasMin: true,
			HasMax: true,
		})
	}
	return out
}

// SetFloatParameter updates a tunable, clamped to its control bounds.
func (r *Resolver) SetFloatParameter(key string, value float64) bool {
	for _, t := range tunables {
		if t.key != key {
			continue
		}
		if value < t.min {
			value = t.min
		}
		if value > t.max {
			value = t.max
		}
		*t.field(&r.params) = value
		return true
	}
	return false
}
