package life

import (
	"math"
	"slices"
	"testing"
)

func TestRandomStateExtremes(t *testing.T) {
	g := New(30, 20)
	g.Update()

	g.RandomState(1)
	if got := g.Population(); got != 600 {
		t.Fatalf("p=1 population = %d, expected 600", got)
	}
	if g.Generation() != 0 {
		t.Fatalf("RandomState must reset the generation, got %d", g.Generation())
	}

	g.RandomState(0)
	if got := g.Population(); got != 0 {
		t.Fatalf("p=0 population = %d, expected 0", got)
	}

	g.RandomState(math.NaN())
	if got := g.Population(); got != 0 {
		t.Fatalf("p=NaN population = %d, expected 0", got)
	}
}

func TestRandomStateDensity(t *testing.T) {
	const trials = 5
	g := New(100, 100)
	total := float64(g.Size().Total())
	for _, p := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		sum := 0.0
		for i := 0; i < trials; i++ {
			g.RandomState(p)
			sum += float64(g.Population()) / total
		}
		if mean := sum / trials; math.Abs(mean-p) > 0.02 {
			t.Fatalf("p=%.2f observed live fraction %.4f", p, mean)
		}
	}
}

func TestRandomStateKeepsStatesConsistent(t *testing.T) {
	g := New(20, 20)
	g.RandomState(0.4)
	for i := range g.cells {
		c := &g.cells[i]
		if c.NeedsUpdate() {
			t.Fatalf("cell %d has a pending update after seeding", i)
		}
		if uint8(c.current) != g.Cells()[i] {
			t.Fatalf("cell %d liveness buffer out of sync", i)
		}
	}
}

func TestRandomStateReproducible(t *testing.T) {
	build := func(workers int) *Grid {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height, cfg.Workers, cfg.Seed = 50, 40, workers, 99
		return NewWithConfig(cfg)
	}
	a, b := build(1), build(6)

	a.RandomState(0.3)
	b.RandomState(0.3)
	first := slices.Clone(a.Cells())
	if !slices.Equal(first, b.Cells()) {
		t.Fatal("same seed should give the same seeding regardless of workers")
	}

	a.RandomState(0.3)
	if slices.Equal(first, a.Cells()) {
		t.Fatal("consecutive seedings should differ")
	}

	a.Seed(99)
	a.RandomState(0.3)
	if !slices.Equal(first, a.Cells()) {
		t.Fatal("reseeding should replay the sequence")
	}
}
