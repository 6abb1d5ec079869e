//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"strconv"

	"metal-gol/internal/core"
	"metal-gol/internal/render"
	"metal-gol/internal/ui"
	"metal-gol/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth = 190
	maxGPS   = 960
)

var livePalette = []color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 90, G: 220, B: 120, A: 255},
	{R: 255, G: 190, B: 60, A: 255},
	{R: 90, G: 170, B: 255, A: 255},
	{R: 240, G: 90, B: 160, A: 255},
}

// Game adapts a life grid to the ebiten.Game interface.
type Game struct {
	grid    *life.Grid
	cfg     *Config
	painter *render.GridPainter
	hud     *ui.HUD
	ticker  *core.FixedStep

	offColor color.Color
	colorIdx int

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided grid.
func New(grid *life.Grid, cfg *Config) *Game {
	size := grid.Size()
	g := &Game{
		grid:     grid,
		cfg:      cfg,
		painter:  render.NewGridPainter(size.W, size.H),
		ticker:   core.NewFixedStep(cfg.GPS),
		offColor: color.Black,
		scale:    max(cfg.Scale, 1),
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(g, grid.Name(), hudWidth)
	}
	grid.SetCellsColor(livePalette[0])
	return g
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.ticker.Pause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.grid.RandomState(g.cfg.Density)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.colorIdx = (g.colorIdx + 1) % len(livePalette)
		g.grid.SetCellsColor(livePalette[g.colorIdx])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.ticker.SetTPS(min(g.ticker.TPS()*2, maxGPS))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.ticker.SetTPS(max(g.ticker.TPS()/2, 1))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= 0 && my >= 0 {
			// Clicks on the HUD land outside the grid and are ignored.
			x, y := mx/g.scale, my/g.scale
			if _, err := g.grid.Lookup(x, y); err == nil {
				g.grid.Toggle(x, y)
			}
		}
	}

	if g.paused {
		if g.tickOnce {
			g.grid.Update()
			g.tickOnce = false
		}
		return nil
	}
	for n := g.ticker.Steps(); n > 0; n-- {
		g.grid.Update()
	}
	g.tickOnce = false
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.grid.Size()
	g.painter.Blit(screen, g.grid.Cells(), g.grid, g.offColor, g.scale)
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.grid.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

// Stats reports the HUD lines for the current frame.
func (g *Game) Stats() []core.Stat {
	size := g.grid.Size()
	pop := g.grid.Population()
	state := "running"
	if g.paused {
		state = "paused"
	}
	return []core.Stat{
		{Label: "generation", Value: strconv.FormatUint(g.grid.Generation(), 10)},
		{Label: "live", Value: strconv.Itoa(pop)},
		{Label: "density", Value: fmt.Sprintf("%.1f%%", 100*float64(pop)/float64(size.Total()))},
		{Label: "grid", Value: fmt.Sprintf("%dx%d", size.W, size.H)},
		{Label: "gen/s", Value: strconv.Itoa(g.ticker.TPS())},
		{Label: "workers", Value: strconv.Itoa(g.grid.Workers())},
		{Label: "state", Value: state},
	}
}
