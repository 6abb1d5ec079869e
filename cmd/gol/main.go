//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"metal-gol/internal/app"
	"metal-gol/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

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

	game := app.New(grid, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("metal-gol — " + grid.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
