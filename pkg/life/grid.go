package life

import (
	"image/color"

	"golang.org/x/sync/errgroup"

	"metal-gol/pkg/core"
)

var _ core.Sim = (*Grid)(nil)

// band is a contiguous run of rows [y0, y1) handled by one worker.
type band struct {
	y0, y1 int
}

// Grid is a fixed-size, non-wrapping Game of Life board. Cells are stored in
// row-major order and never added or removed after construction.
//
// Update, Reset and RandomState fan work out across goroutines and block
// until it is done. A Grid is not safe for concurrent use by multiple
// callers.
type Grid struct {
	w, h       int
	cells      []Cell
	alive      []uint8
	bands      []band
	generation uint64

	rng *core.RNG
}

// New returns a grid of w*h dead cells using the default worker count.
func New(w, h int) *Grid {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds a grid from cfg. Non-positive dimensions are clamped
// to 1.
func NewWithConfig(cfg Config) *Grid {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	total := w * h
	g := &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, total),
		alive: make([]uint8, total),
		rng:   core.NewRNG(cfg.Seed),
	}
	// Cells must all exist before neighbor indices into them are attached.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := &g.cells[y*w+x]
			c.x, c.y = x, y
			c.color = DefaultLiveColor
		}
	}
	for i, nb := range buildNeighbors(w, h) {
		g.cells[i].neighbors = nb
	}
	g.bands = splitRows(h, effectiveWorkers(cfg.Workers, h))
	return g
}

func splitRows(rows, workers int) []band {
	per := (rows + workers - 1) / workers
	bands := make([]band, 0, workers)
	for y0 := 0; y0 < rows; y0 += per {
		bands = append(bands, band{y0: y0, y1: min(y0+per, rows)})
	}
	return bands
}

// parallel runs fn once per band and returns after every call has finished.
// The return of parallel is the barrier between passes.
func (g *Grid) parallel(fn func(b int, lo, hi int)) {
	var eg errgroup.Group
	eg.SetLimit(len(g.bands))
	for i, b := range g.bands {
		eg.Go(func() error {
			fn(i, b.y0*g.w, b.y1*g.w)
			return nil
		})
	}
	_ = eg.Wait()
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Workers returns the number of goroutines used per pass.
func (g *Grid) Workers() int { return len(g.bands) }

// Generation returns the number of generations since the last reset.
func (g *Grid) Generation() uint64 { return g.generation }

// Cells exposes the liveness buffer, one byte per cell in row-major order
// (1 live, 0 dead). Callers must treat it as read-only.
func (g *Grid) Cells() []uint8 { return g.alive }

// Update advances the grid by one generation and returns the new generation
// number. Every cell stages its next state from the current snapshot before
// any cell commits.
func (g *Grid) Update() uint64 {
	cells := g.cells
	g.parallel(func(_ int, lo, hi int) {
		for i := lo; i < hi; i++ {
			cells[i].prepareUpdate(cells)
		}
	})
	g.parallel(func(_ int, lo, hi int) {
		for i := lo; i < hi; i++ {
			if cells[i].commit() {
				g.alive[i] = uint8(cells[i].current)
			}
		}
	})
	g.generation++
	return g.generation
}

// Step is Update under the name the viewer uses.
func (g *Grid) Step() uint64 { return g.Update() }

// Reset kills every cell and sets the generation back to zero.
func (g *Grid) Reset() {
	g.fill(Dead)
	g.generation = 0
}

func (g *Grid) fill(s State) {
	g.parallel(func(_ int, lo, hi int) {
		for i := lo; i < hi; i++ {
			g.cells[i].set(s)
			g.cells[i].liveNeighbors = 0
			g.alive[i] = uint8(s)
		}
	})
}

// Index maps (x, y) to its row-major index. It panics with a *BoundsError
// when the coordinate is outside the grid.
func (g *Grid) Index(x, y int) int {
	idx, err := g.Lookup(x, y)
	if err != nil {
		panic(err)
	}
	return idx
}

// Lookup maps (x, y) to its row-major index, or returns an error wrapping
// ErrOutOfBounds.
func (g *Grid) Lookup(x, y int) (int, error) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return 0, &BoundsError{X: x, Y: y, W: g.w, H: g.h}
	}
	return x + y*g.w, nil
}

// Cell returns the cell at (x, y). It panics when out of bounds.
func (g *Grid) Cell(x, y int) *Cell { return &g.cells[g.Index(x, y)] }

// Alive reports whether the cell at (x, y) is live. It panics when out of
// bounds.
func (g *Grid) Alive(x, y int) bool { return g.cells[g.Index(x, y)].current == Live }

// SetAlive forces the state of the cell at (x, y). It must not be called
// while Update is running. It panics when out of bounds.
func (g *Grid) SetAlive(x, y int, live bool) {
	g.setIndex(g.Index(x, y), live)
}

// Toggle flips the cell at (x, y) and returns its new liveness.
func (g *Grid) Toggle(x, y int) bool {
	idx := g.Index(x, y)
	live := g.cells[idx].current != Live
	g.setIndex(idx, live)
	return live
}

func (g *Grid) setIndex(idx int, live bool) {
	s := Dead
	if live {
		s = Live
	}
	g.cells[idx].set(s)
	g.alive[idx] = uint8(s)
}

// Population counts live cells.
func (g *Grid) Population() int {
	counts := make([]int, len(g.bands))
	g.parallel(func(b int, lo, hi int) {
		n := 0
		for _, v := range g.alive[lo:hi] {
			n += int(v)
		}
		counts[b] = n
	})
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// SetCellsColor sets the render color of every cell. Simulation state is not
// affected.
func (g *Grid) SetCellsColor(c color.Color) {
	r, gr, b, a := c.RGBA()
	rgba := color.RGBA{R: uint8(r >> 8), G: uint8(gr >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	for i := range g.cells {
		g.cells[i].color = rgba
	}
}

// AppendColors appends the per-cell render colors in row-major order to dst.
func (g *Grid) AppendColors(dst []color.RGBA) []color.RGBA {
	for i := range g.cells {
		dst = append(dst, g.cells[i].color)
	}
	return dst
}
