package terrain

// Config controls the terrain window and pad placement.
type Config struct {
	// ScreenWidth is the visible play width; the window always extends to
	// ScreenWidth+Margin.
	ScreenWidth float64 `yaml:"screen_width"`
	Margin      float64 `yaml:"margin"`

	Spacing float64 `yaml:"spacing"`
	MinY    float64 `yaml:"min_y"`
	MaxY    float64 `yaml:"max_y"`
	// Jitter bounds the per-step random walk of the ground height.
	Jitter float64 `yaml:"jitter"`

	PadChance float64 `yaml:"pad_chance"`
	PadWidth  float64 `yaml:"pad_width"`
	PadHeight float64 `yaml:"pad_height"`

	// DefaultHeight is reported when fewer than two points exist.
	DefaultHeight float64 `yaml:"default_height"`
}

// DefaultConfig returns the standard 1280x720 configuration.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   1280,
		Margin:        200,
		Spacing:       20,
		MinY:          300,
		MaxY:          420,
		Jitter:        10,
		PadChance:     0.1,
		PadWidth:      40,
		PadHeight:     3,
		DefaultHeight: 720,
	}
}

// normalized repairs values that would break the generator invariants.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Spacing <= 0 {
		c.Spacing = d.Spacing
	}
	if c.ScreenWidth < 0 {
		c.ScreenWidth = 0
	}
	if c.Margin < 0 {
		c.Margin = 0
	}
	if c.MaxY < c.MinY {
		c.MinY, c.MaxY = c.MaxY, c.MinY
	}
	if c.Jitter < 0 {
		c.Jitter = -c.Jitter
	}
	if c.PadChance < 0 {
		c.PadChance = 0
	}
	if c.PadChance > 1 {
		c.PadChance = 1
	}
	if c.PadWidth < 0 {
		c.PadWidth = 0
	}
	if c.PadHeight < 0 {
		c.PadHeight = 0
	}
	return c
}

// End is the x coordinate the trailing edge must reach.
func (c Config) End() float64 { return c.ScreenWidth + c.Margin }
