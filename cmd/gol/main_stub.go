//go:build !ebiten

package main

import (
	"flag"
	"log"
	"time"

	"metal-gol/internal/app"
	"metal-gol/pkg/life"
)

// Without the ebiten tag the command runs the simulation headless and logs
// the population at a fixed generation interval.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	grid := life.NewWithConfig(cfg.LifeConfig())
	if err := cfg.Populate(grid); err != nil {
		log.Fatal(err)
	}

	log.Printf("headless run: %dx%d, %d workers, pattern %s (build with -tags ebiten for the viewer)",
		cfg.Width, cfg.Height, grid.Workers(), cfg.Pattern)

	every := max(cfg.Every, 1)
	total := float64(grid.Size().Total())
	start := time.Now()
	for gen := 0; gen < cfg.Generations; gen++ {
		n := grid.Update()
		if n%uint64(every) == 0 || gen == cfg.Generations-1 {
			pop := grid.Population()
			log.Printf("gen=%d live=%d (%.2f%%)", n, pop, 100*float64(pop)/total)
		}
	}
	if cfg.Generations > 0 {
		elapsed := time.Since(start)
		log.Printf("%d generations in %s (%.0f gen/s)", cfg.Generations, elapsed, float64(cfg.Generations)/elapsed.Seconds())
	}
}
