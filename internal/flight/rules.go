package flight

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"lunar-rover/internal/terrain"
)

// ErrUnknownRule is returned when a landing rule name is not registered.
var ErrUnknownRule = errors.New("unknown landing rule")

// Outcome classifies a ground contact.
type Outcome int

const (
	OutcomeCrash Outcome = iota
	OutcomeLand
)

// Contact describes the vehicle touching or passing through the ground.
type Contact struct {
	X             float64
	GroundY       float64
	Speed         float64
	VerticalSpeed float64
	Ground        Ground
}

// LandingRule decides whether a contact is a landing. On a landing it returns
// the surface the vehicle rests on.
type LandingRule interface {
	Name() string
	Classify(c Contact, p Params) (Outcome, terrain.Pad)
}

// PadRule requires a pad under the vehicle and a total speed below
// SafeLandingSpeed.
type PadRule struct{}

// Name identifies the rule.
func (PadRule) Name() string { return "pads" }

// Classify implements LandingRule.
func (PadRule) Classify(c Contact, p Params) (Outcome, terrain.Pad) {
	pad, ok := c.Ground.PadAt(c.X, p.PadTolerance)
	if !ok || c.Speed >= p.SafeLandingSpeed {
		return OutcomeCrash, terrain.Pad{}
	}
	return OutcomeLand, pad
}

// ClassicRule accepts any ground as long as the descent is gentle; the spot
// touched down on acts as a refuel pad.
type ClassicRule struct{}

// Name identifies the rule.
func (ClassicRule) Name() string { return "classic" }

// Classify implements LandingRule.
func (ClassicRule) Classify(c Contact, p Params) (Outcome, terrain.Pad) {
	if math.Abs(c.VerticalSpeed) >= p.SafeVerticalSpeed {
		return OutcomeCrash, terrain.Pad{}
	}
	return OutcomeLand, terrain.Pad{X: c.X, Y: c.GroundY}
}

var rules = map[string]LandingRule{}

// RegisterRule adds a landing rule under the provided name.
func RegisterRule(name string, r LandingRule) {
	if name == "" || r == nil {
		return
	}
	rules[name] = r
}

// Rule looks up a registered landing rule.
func Rule(name string) (LandingRule, error) {
	r, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownRule, name, RuleNames())
	}
	return r, nil
}

// RuleNames lists the registered rules in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for n := range rules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterRule(PadRule{}.Name(), PadRule{})
	RegisterRule(ClassicRule{}.Name(), ClassicRule{})
}
