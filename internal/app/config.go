package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"wavegraph/internal/core"
	"wavegraph/internal/function"
	"wavegraph/internal/graph"
)

// Config represents the command-line and config-file parameters shared by
// the viewer and the headless tools.
type Config struct {
	Resolution int           `toml:"resolution"`
	Function   function.Name `toml:"function"`
	Speed      float64       `toml:"speed"`
	Width      int           `toml:"width"`
	Height     int           `toml:"height"`
	HUDWidth   int           `toml:"hud_width"`
	TPS        int           `toml:"tps"`

	File      string `toml:"-"`
	Verbose   bool   `toml:"-"`
	Overrides KVList `toml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := graph.DefaultConfig()
	return &Config{
		Resolution: def.Resolution,
		Function:   def.Function,
		Speed:      1,
		Width:      640,
		Height:     640,
		HUDWidth:   220,
		TPS:        60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Resolution, "resolution", c.Resolution, "grid edge length, clamped to [10,100]")
	fs.TextVar(&c.Function, "function", c.Function, "function to animate")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "animation time multiplier")
	fs.IntVar(&c.Width, "width", c.Width, "view width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "view height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 hides it")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.File, "config", c.File, "TOML config file; explicit flags take precedence")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
	fs.Var(&c.Overrides, "set", "graph override in key=value form (repeatable)")
}

// Load parses args into a fresh Config. When -config names a file, its values
// are applied first and the flags are parsed again so they win.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.File != "" {
		if err := c.LoadFile(c.File); err != nil {
			return nil, err
		}
		c.Overrides = nil
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Validate rejects host settings the clock and window cannot honor. A
// negative speed would run animation time backward.
func (c *Config) Validate() error {
	switch {
	case c.Speed < 0:
		return fmt.Errorf("speed must not be negative, got %g", c.Speed)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("view size must be positive, got %dx%d", c.Width, c.Height)
	case c.HUDWidth < 0:
		return fmt.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	return nil
}

// Delta is the animation time one tick covers: speed / TPS seconds.
func (c *Config) Delta() float64 {
	return core.NewFixedStep(c.TPS).Delta() * c.Speed
}

// LoadFile decodes a TOML file over the current values. Keys missing from
// the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Graph resolves the graph configuration, applying -set overrides last.
func (c *Config) Graph() graph.Config {
	m := map[string]string{
		"resolution": strconv.Itoa(c.Resolution),
		"function":   c.Function.String(),
	}
	for _, kv := range c.Overrides {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return graph.FromMap(m)
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}
