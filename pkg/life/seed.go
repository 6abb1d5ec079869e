package life

import (
	"math"

	"metal-gol/pkg/core"
)

// Seed restarts the generator behind RandomState.
func (g *Grid) Seed(seed int64) {
	g.rng = core.NewRNG(seed)
}

// RandomState resets the grid and then makes each cell live with probability
// p. For each cell a value is drawn uniformly from [0, 100] and the cell is
// live when it is at most floor(p*100). p >= 1 makes every cell live; p <= 0
// (or NaN) leaves the grid dead.
//
// Every row draws from its own PCG stream keyed by a per-call seed, so the
// outcome depends only on the grid seed and the call sequence, not on the
// worker count.
func (g *Grid) RandomState(p float64) {
	g.Reset()
	switch {
	case p >= 1:
		g.fill(Live)
	case p > 0:
		threshold := int(math.Floor(p * 100))
		base := g.rng.Uint64()
		w := g.w
		g.parallel(func(_ int, lo, hi int) {
			for y := lo / w; y < hi/w; y++ {
				rng := core.NewStream(base, uint64(y))
				for i := y * w; i < (y+1)*w; i++ {
					if rng.IntN(101) <= threshold {
						g.cells[i].set(Live)
						g.alive[i] = uint8(Live)
					}
				}
			}
		})
	}
}
