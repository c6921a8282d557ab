//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads boolean cell data into a single RGBA image.
type GridPainter struct {
	w, h  int
	scale int
	img   *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for a w*h grid drawn at scale pixels
// per cell.
func NewGridPainter(w, h, scale int) *GridPainter {
	if scale < 1 {
		scale = 1
	}
	gp := &GridPainter{w: w, h: h, scale: scale, buf: make([]byte, 4*w*h*scale*scale)}
	gp.img = ebiten.NewImage(w*scale, h*scale)
	return gp
}

// Blit repaints the painter image from cells and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []bool, on, off color.Color) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.w, gp.h, gp.scale, on, off)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Size returns the pixel dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w * gp.scale, gp.h * gp.scale }
