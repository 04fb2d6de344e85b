package graph

import (
	"strconv"

	"wavegraph/internal/function"
)

const (
	// MinResolution and MaxResolution bound the grid edge length.
	MinResolution = 10
	MaxResolution = 100
)

// Config controls the grid size and the active function.
type Config struct {
	Resolution int
	Function   function.Name
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Resolution: 10, Function: function.Sine}
}

// ClampResolution forces r into [MinResolution, MaxResolution].
func ClampResolution(r int) int {
	if r < MinResolution {
		return MinResolution
	}
	if r > MaxResolution {
		return MaxResolution
	}
	return r
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["resolution"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Resolution = ClampResolution(parsed)
		}
	}
	if v, ok := cfg["function"]; ok {
		if parsed, err := function.ParseName(v); err == nil {
			c.Function = parsed
		} else if idx, err := strconv.Atoi(v); err == nil && function.Name(idx).Valid() {
			c.Function = function.Name(idx)
		}
	}
	return c
}

// Normalized returns c with the resolution clamped and an invalid function
// replaced by the default.
func (c Config) Normalized() Config {
	c.Resolution = ClampResolution(c.Resolution)
	if !c.Function.Valid() {
		c.Function = DefaultConfig().Function
	}
	return c
}
