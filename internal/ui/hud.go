//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"metal-gol/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 16
)

var helpLines = []string{
	"space  pause/resume",
	"n      single step",
	"r      reset",
	"s      random seed",
	"c      cycle color",
	"up/dn  speed",
	"click  toggle cell",
	"q      quit",
}

// HUD renders simulation statistics in a panel to the right of the grid.
type HUD struct {
	src        core.StatsProvider
	width      int
	title      string
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD reading from src with the given panel width. A
// non-positive width disables the panel.
func NewHUD(src core.StatsProvider, name string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{src: src, width: width, title: buildTitle(name)}
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := hudPadding + hudLineHeight
	text.Draw(h.panel, h.title, face, hudPadding, y, color.White)
	y += hudLineHeight * 3 / 2
	for _, stat := range h.src.Stats() {
		text.Draw(h.panel, fmt.Sprintf("%-10s %s", stat.Label, stat.Value), face, hudPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += hudLineHeight
	}
	y += hudLineHeight / 2
	for _, line := range helpLines {
		if y > height-hudPadding {
			break
		}
		text.Draw(h.panel, line, face, hudPadding, y, color.RGBA{R: 120, G: 120, B: 130, A: 255})
		y += hudLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(name string) string {
	if name == "" {
		return "Stats"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Stats"
}
