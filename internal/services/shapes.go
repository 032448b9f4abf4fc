package services

import (
	"qrstudio/internal/domain/render"

	"github.com/gogpu/gg"
)

const (
	// gappedRatio is the share of the box covered by gapped squares and bars.
	gappedRatio = 0.8
	// kappa approximates a quarter circle with one cubic segment.
	kappa = 0.5522847498307936
)

type moduleGrid [][]bool

func (g moduleGrid) on(row, col int) bool {
	if row < 0 || col < 0 || row >= len(g) || col >= len(g[row]) {
		return false
	}
	return g[row][col]
}

// corners holds per-corner radii: top-left, top-right, bottom-right, bottom-left.
type corners [4]float64

// addModule appends the outline of one dark module to the current path.
// Every outline winds the same way so overlaps union under the non-zero rule.
func addModule(dc *gg.Context, g moduleGrid, shape render.ShapeKey, row, col int, x, y, box float64) {
	switch shape {
	case render.ShapeCircle:
		half := box / 2
		dc.DrawCircle(x+half, y+half, half)

	case render.ShapeGapped:
		side := box * gappedRatio
		inset := (box - side) / 2
		dc.DrawRectangle(x+inset, y+inset, side, side)

	case render.ShapeRounded:
		r := box / 2
		up, down := g.on(row-1, col), g.on(row+1, col)
		left, right := g.on(row, col-1), g.on(row, col+1)
		var c corners
		if !up && !left {
			c[0] = r
		}
		if !up && !right {
			c[1] = r
		}
		if !down && !right {
			c[2] = r
		}
		if !down && !left {
			c[3] = r
		}
		roundedRect(dc, x, y, box, box, c)

	case render.ShapeVerticalBars:
		w := box * gappedRatio
		r := w / 2
		var c corners
		if !g.on(row-1, col) {
			c[0], c[1] = r, r
		}
		if !g.on(row+1, col) {
			c[2], c[3] = r, r
		}
		roundedRect(dc, x+(box-w)/2, y, w, box, c)

	case render.ShapeHorizontalBars:
		h := box * gappedRatio
		r := h / 2
		var c corners
		if !g.on(row, col-1) {
			c[0], c[3] = r, r
		}
		if !g.on(row, col+1) {
			c[1], c[2] = r, r
		}
		roundedRect(dc, x, y+(box-h)/2, box, h, c)

	default:
		dc.DrawRectangle(x, y, box, box)
	}
}

// roundedRect traces a clockwise rectangle with independently rounded corners.
func roundedRect(dc *gg.Context, x, y, w, h float64, c corners) {
	tl, tr, br, bl := c[0], c[1], c[2], c[3]

	dc.MoveTo(x+tl, y)
	dc.LineTo(x+w-tr, y)
	if tr > 0 {
		dc.CubicTo(x+w-tr+tr*kappa, y, x+w, y+tr-tr*kappa, x+w, y+tr)
	}
	dc.LineTo(x+w, y+h-br)
	if br > 0 {
		dc.CubicTo(x+w, y+h-br+br*kappa, x+w-br+br*kappa, y+h, x+w-br, y+h)
	}
	dc.LineTo(x+bl, y+h)
	if bl > 0 {
		dc.CubicTo(x+bl-bl*kappa, y+h, x, y+h-bl+bl*kappa, x, y+h-bl)
	}
	dc.LineTo(x, y+tl)
	if tl > 0 {
		dc.CubicTo(x, y+tl-tl*kappa, x+tl-tl*kappa, y, x+tl, y)
	}
	dc.ClosePath()
}
