package app

import (
	"errors"
	"flag"
	"testing"

	"metal-gol/pkg/life"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-w", "20", "-h", "10", "-pattern", "glider", "-gps", "4", "-seed", "3", "-p", "0.5"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 20 || cfg.Height != 10 || cfg.Pattern != "glider" || cfg.GPS != 4 || cfg.Seed != 3 || cfg.Density != 0.5 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	lc := cfg.LifeConfig()
	if lc.Width != 20 || lc.Height != 10 || lc.Seed != 3 || lc.LiveProbability != 0.5 {
		t.Fatalf("unexpected life config %+v", lc)
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = "spaceship-9000"
	if err := cfg.Validate(); !errors.Is(err, life.ErrUnknownPattern) {
		t.Fatalf("err = %v, expected ErrUnknownPattern", err)
	}

	cfg = NewConfig()
	cfg.Width = 0
	if cfg.Validate() == nil {
		t.Fatal("zero width should be rejected")
	}

	cfg = NewConfig()
	cfg.Density = 1.2
	if cfg.Validate() == nil {
		t.Fatal("density above 1 should be rejected")
	}
}

func TestPopulate(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 9, 9
	cfg.Pattern = "blinker"
	g := life.NewWithConfig(cfg.LifeConfig())
	g.RandomState(1)

	if err := cfg.Populate(g); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 3 || !g.Alive(3, 4) || !g.Alive(4, 4) || !g.Alive(5, 4) {
		t.Fatalf("blinker not centered, population %d", g.Population())
	}

	cfg.Pattern = PatternRandom
	cfg.Density = 1
	if err := cfg.Populate(g); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 81 {
		t.Fatalf("density 1 should fill the grid, got %d", g.Population())
	}
}
