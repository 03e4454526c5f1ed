package app

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"lunar-rover/internal/config"
)

// kvList collects repeatable key=value flags.
type kvList map[string]string

func (kv kvList) String() string {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+kv[k])
	}
	return strings.Join(parts, ",")
}

func (kv kvList) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return errors.New("expected key=value")
	}
	kv[key] = strings.TrimSpace(value)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Variant    string
	Seed       int64
	TPS        int
	Scale      int
	Scores     string
	Set        kvList

	fs *flag.FlagSet
}

// NewConfig returns a Config whose defaults mirror config.Default.
func NewConfig() *Config {
	d := config.Default()
	return &Config{
		ConfigPath: "rover.yaml",
		Variant:    d.Variant,
		Seed:       d.Seed,
		TPS:        d.Window.TPS,
		Scale:      d.Window.Scale,
		Scores:     d.Scores.Path,
		Set:        kvList{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.fs = fs
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config file (missing file uses defaults)")
	fs.StringVar(&c.Variant, "variant", c.Variant, "landing rule: pads or classic")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "terrain seed")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.StringVar(&c.Scores, "scores", c.Scores, "high-score database path (empty keeps scores in memory)")
	fs.Var(c.Set, "set", "config override key=value (repeatable)")
}

// Resolve loads the config file and layers -set overrides and then any
// explicitly passed flags on top.
func (c *Config) Resolve() (config.Config, error) {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return cfg, err
	}
	overrides := make(map[string]string, len(c.Set)+6)
	for k, v := range c.Set {
		overrides[k] = v
	}
	if c.fs != nil {
		c.fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "variant":
				overrides["variant"] = c.Variant
			case "seed":
				overrides["seed"] = strconv.FormatInt(c.Seed, 10)
			case "tps":
				overrides["window.tps"] = strconv.Itoa(c.TPS)
			case "scale":
				overrides["window.scale"] = strconv.Itoa(c.Scale)
			case "scores":
				overrides["scores.path"] = c.Scores
			}
		})
	}
	if err := cfg.Apply(overrides); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
