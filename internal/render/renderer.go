//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on cell ages.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a grid of rows x cols cells.
func NewGridPainter(rows, cols, maxAge int) *GridPainter {
	gp := &GridPainter{w: cols, h: rows, buf: make([]byte, 4*rows*cols), palette: AgePalette(maxAge)}
	gp.img = ebiten.NewImage(max(cols, 1), max(rows, 1))
	return gp
}

// Blit uploads the provided ages into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, ages []int, scale int) {
	if len(ages) != gp.w*gp.h || len(ages) == 0 {
		return
	}
	fillAgeRGBA(gp.buf, ages, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying grid as rows, cols.
func (gp *GridPainter) Size() (int, int) { return gp.h, gp.w }
