// Package tiling computes rectangular grid layouts for composing many images into a single one.
package tiling

import (
	"image"
	"math"

	"github.com/pkg/errors"
)

// Layout describes a rectangular tiling - the grid shape, the tile geometry and the resulting canvas size.
// Cells are filled row by row, left to right.
type Layout struct {
	Columns, Rows         int
	TileWidth, TileHeight int
	Padding               int
	CanvasWidth           int
	CanvasHeight          int
}

// Optimal returns the tiling whose canvas aspect ratio is the closest to the target one, among all the
// grids able to host numTiles tiles. The padding is applied between the tiles and along the canvas borders.
func Optimal(numTiles, tileWidth, tileHeight, padding int, aspectRatio float64) (Layout, error) {
	if numTiles < 1 {
		return Layout{}, errors.New("nothing to tile")
	}

	if tileWidth < 1 || tileHeight < 1 {
		return Layout{}, errors.Errorf("invalid tile size (%d x %d)", tileWidth, tileHeight)
	}

	if padding < 0 {
		return Layout{}, errors.Errorf("invalid tile padding (%d)", padding)
	}

	if aspectRatio <= 0 {
		return Layout{}, errors.Errorf("invalid target aspect ratio (%f)", aspectRatio)
	}

	var (
		best     Layout
		bestDist = math.Inf(1)
	)

	for columns := 1; columns <= numTiles; columns++ {
		var (
			rows      = (numTiles + columns - 1) / columns
			candidate = newLayout(columns, rows, tileWidth, tileHeight, padding)

			// compare aspect ratios on a log scale, so that a twice-too-wide canvas is as bad as a
			// twice-too-tall one
			dist = math.Abs(math.Log(candidate.AspectRatio() / aspectRatio))
		)

		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}

	return best, nil
}

func newLayout(columns, rows, tileWidth, tileHeight, padding int) Layout {
	return Layout{
		Columns:      columns,
		Rows:         rows,
		TileWidth:    tileWidth,
		TileHeight:   tileHeight,
		Padding:      padding,
		CanvasWidth:  columns*tileWidth + (columns+1)*padding,
		CanvasHeight: rows*tileHeight + (rows+1)*padding,
	}
}

// AspectRatio returns the width-to-height ratio of the canvas.
func (l Layout) AspectRatio() float64 {
	return float64(l.CanvasWidth) / float64(l.CanvasHeight)
}

// CellOrigin returns the upper-left corner of the i-th cell.
func (l Layout) CellOrigin(i int) image.Point {
	var column, row = i % l.Columns, i / l.Columns

	return image.Point{
		X: l.Padding + column*(l.TileWidth+l.Padding),
		Y: l.Padding + row*(l.TileHeight+l.Padding),
	}
}
