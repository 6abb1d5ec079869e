//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from cell liveness and colors.
type GridPainter struct {
	w, h   int
	img    *ebiten.Image
	buf    []byte
	colors []color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// ColorSource fills dst with per-cell colors in row-major order.
type ColorSource interface {
	AppendColors(dst []color.RGBA) []color.RGBA
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, src ColorSource, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	gp.colors = src.AppendColors(gp.colors[:0])
	fillCellRGBA(gp.buf, cells, gp.colors, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
