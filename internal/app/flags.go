package app

import (
	"flag"
	"fmt"

	"metal-gol/pkg/life"
)

// PatternRandom selects stochastic seeding instead of a named pattern.
const PatternRandom = "random"

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Workers int
	Seed    int64
	Density float64
	Pattern string

	Scale int
	TPS   int
	GPS   int
	HUD   bool

	// Headless runner only.
	Generations int
	Every       int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	lc := life.DefaultConfig()
	return &Config{
		Width:       lc.Width,
		Height:      lc.Height,
		Workers:     lc.Workers,
		Seed:        lc.Seed,
		Density:     lc.LiveProbability,
		Pattern:     PatternRandom,
		Scale:       6,
		TPS:         60,
		GPS:         15,
		HUD:         true,
		Generations: 500,
		Every:       50,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per update pass")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random seeding")
	fs.Float64Var(&c.Density, "p", c.Density, "live probability for random seeding")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern, or \"random\"")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the statistics panel")
	fs.IntVar(&c.Generations, "gens", c.Generations, "generations to run headless")
	fs.IntVar(&c.Every, "every", c.Every, "headless report interval in generations")
}

// Validate reports configuration the grid cannot be built from.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("live probability %v outside [0,1]", c.Density)
	}
	if c.Pattern != PatternRandom {
		if _, err := life.LookupPattern(c.Pattern); err != nil {
			return err
		}
	}
	return nil
}

// LifeConfig converts the flags into a grid configuration.
func (c *Config) LifeConfig() life.Config {
	return life.Config{
		Width:           c.Width,
		Height:          c.Height,
		Workers:         c.Workers,
		Seed:            c.Seed,
		LiveProbability: c.Density,
	}
}

// Populate resets g and applies the configured initial pattern.
func (c *Config) Populate(g *life.Grid) error {
	if c.Pattern == PatternRandom {
		g.RandomState(c.Density)
		return nil
	}
	g.Reset()
	return g.PlacePatternCentered(c.Pattern)
}
