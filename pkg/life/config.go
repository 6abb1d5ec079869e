package life

import (
	"runtime"
	"strconv"
)

// Config holds the construction parameters for a Grid.
type Config struct {
	Width  int
	Height int

	// Workers bounds the goroutines used per pass. Zero or less means one per
	// CPU; it is never more than the number of rows.
	Workers int

	// Seed drives RandomState. Equal seeds give equal sequences of seedings.
	Seed int64

	// LiveProbability is the density used when callers seed with the default.
	LiveProbability float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:           128,
		Height:          96,
		Workers:         runtime.NumCPU(),
		Seed:            42,
		LiveProbability: 0.25,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.LiveProbability = parsed
		}
	}
	return c
}

func effectiveWorkers(requested, rows int) int {
	if requested <= 0 {
		requested = runtime.NumCPU()
	}
	if requested > rows {
		requested = rows
	}
	if requested < 1 {
		requested = 1
	}
	return requested
}
