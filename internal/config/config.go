package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"lunar-rover/internal/flight"
	"lunar-rover/internal/logging"
	"lunar-rover/internal/terrain"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKey is returned by Apply for an override key with no matching
// setting.
var ErrUnknownKey = errors.New("unknown config key")

// Window controls the presentation surface.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
	Scale  int `yaml:"scale"`
}

// Scores locates the high-score database. An empty path keeps scores in
// memory for the process lifetime.
type Scores struct {
	Path string `yaml:"path"`
}

// Config is the complete game configuration.
type Config struct {
	Variant string         `yaml:"variant"`
	Seed    int64          `yaml:"seed"`
	Window  Window         `yaml:"window"`
	Terrain terrain.Config `yaml:"terrain"`
	Flight  flight.Params  `yaml:"flight"`
	Scores  Scores         `yaml:"scores"`
	Log     logging.Config `yaml:"log"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Variant: "pads",
		Seed:    1,
		Window:  Window{Width: 1280, Height: 720, TPS: 60, Scale: 1},
		Terrain: terrain.DefaultConfig(),
		Flight:  flight.DefaultParams(),
		Scores:  Scores{Path: filepath.Join("data", "scores.db")},
		Log:     logging.DefaultConfig(),
	}
}

// Load reads path over the defaults. A missing file or empty path yields the
// defaults unchanged. Unknown YAML fields are rejected. The terrain screen
// width always follows window.width.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.syncViewport()
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate reports settings the game cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("config: tps %d must be positive", c.Window.TPS)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("config: scale %d must be positive", c.Window.Scale)
	}
	if c.Terrain.ScreenWidth != float64(c.Window.Width) {
		return fmt.Errorf("config: terrain screen_width %.0f differs from window width %d", c.Terrain.ScreenWidth, c.Window.Width)
	}
	if c.Terrain.MinY > c.Terrain.MaxY {
		return fmt.Errorf("config: terrain min_y %.0f above max_y %.0f", c.Terrain.MinY, c.Terrain.MaxY)
	}
	if _, err := flight.Rule(c.Variant); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Apply sets dotted keys (for example "flight.gravity") from string values.
// Keys are applied in sorted order; the first failure stops the walk.
func (c *Config) Apply(overrides map[string]string) error {
	if len(overrides) == 0 {
		return nil
	}
	setters := c.setters()
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		set, ok := setters[k]
		if !ok {
			return fmt.Errorf("%w %q", ErrUnknownKey, k)
		}
		if err := set(overrides[k]); err != nil {
			return fmt.Errorf("config: %s=%q: %w", k, overrides[k], err)
		}
	}
	c.syncViewport()
	return nil
}

// syncViewport makes the terrain window as wide as the play field.
func (c *Config) syncViewport() {
	c.Terrain.ScreenWidth = float64(c.Window.Width)
}

// Keys lists every key Apply accepts.
func (c *Config) Keys() []string {
	setters := c.setters()
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type setter func(string) error

func (c *Config) setters() map[string]setter {
	t := &c.Terrain
	f := &c.Flight
	return map[string]setter{
		"variant":     stringSetter(&c.Variant),
		"seed":        int64Setter(&c.Seed),
		"scores.path": stringSetter(&c.Scores.Path),
		"log.level":   stringSetter(&c.Log.Level),
		"log.pretty":  boolSetter(&c.Log.Pretty),

		"window.width":  intSetter(&c.Window.Width),
		"window.height": intSetter(&c.Window.Height),
		"window.tps":    intSetter(&c.Window.TPS),
		"window.scale":  intSetter(&c.Window.Scale),

		"terrain.margin":         floatSetter(&t.Margin),
		"terrain.spacing":        floatSetter(&t.Spacing),
		"terrain.min_y":          floatSetter(&t.MinY),
		"terrain.max_y":          floatSetter(&t.MaxY),
		"terrain.jitter":         floatSetter(&t.Jitter),
		"terrain.pad_chance":     floatSetter(&t.PadChance),
		"terrain.pad_width":      floatSetter(&t.PadWidth),
		"terrain.pad_height":     floatSetter(&t.PadHeight),
		"terrain.default_height": floatSetter(&t.DefaultHeight),

		"flight.rotation_speed":      floatSetter(&f.RotationSpeed),
		"flight.rotation_fuel_cost":  floatSetter(&f.RotationFuelCost),
		"flight.thrust_accel":        floatSetter(&f.ThrustAccel),
		"flight.forward_accel":       floatSetter(&f.ForwardAccel),
		"flight.max_forward_speed":   floatSetter(&f.MaxForwardSpeed),
		"flight.liftoff_impulse":     floatSetter(&f.LiftoffImpulse),
		"flight.gravity":             floatSetter(&f.Gravity),
		"flight.friction":            floatSetter(&f.Friction),
		"flight.max_fuel":            floatSetter(&f.MaxFuel),
		"flight.burn_rate":           floatSetter(&f.BurnRate),
		"flight.refuel_rate":         floatSetter(&f.RefuelRate),
		"flight.safe_landing_speed":  floatSetter(&f.SafeLandingSpeed),
		"flight.safe_vertical_speed": floatSetter(&f.SafeVerticalSpeed),
		"flight.pad_tolerance":       floatSetter(&f.PadTolerance),
		"flight.body_half_height":    floatSetter(&f.BodyHalfHeight),
		"flight.scroll_epsilon":      floatSetter(&f.ScrollEpsilon),
	}
}

func stringSetter(dst *string) setter {
	return func(v string) error {
		*dst = v
		return nil
	}
}

func boolSetter(dst *bool) setter {
	return func(v string) error {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = parsed
		return nil
	}
}

func intSetter(dst *int) setter {
	return func(v string) error {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = parsed
		return nil
	}
}

func int64Setter(dst *int64) setter {
	return func(v string) error {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		*dst = parsed
		return nil
	}
}

func floatSetter(dst *float64) setter {
	return func(v string) error {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst = parsed
		return nil
	}
}
