package mosaic

import (
	"image"

	"github.com/ironsheep/photomosaic/internal/imaging"
)

// Canvas is the mosaic being assembled. Cells are disjoint cell×cell squares
// laid out on the sampling grid; unpainted cells stay black.
type Canvas struct {
	img    *image.NRGBA
	cell   int
	scaled map[*Tile]*image.NRGBA
}

// NewCanvas returns a black canvas of grid.Cols*cell by grid.Rows*cell pixels.
func NewCanvas(grid imaging.Grid, cell int) *Canvas {
	return &Canvas{
		img:    imaging.NewCanvas(grid.Cols*cell, grid.Rows*cell),
		cell:   cell,
		scaled: make(map[*Tile]*image.NRGBA),
	}
}

// Paint scales tile to the cell size with nearest-neighbor sampling and
// pastes it at the block's cell. A nil tile leaves the cell untouched.
func (c *Canvas) Paint(block SampleBlock, tile *Tile) {
	if tile == nil {
		return
	}
	scaled, ok := c.scaled[tile]
	if !ok {
		scaled = imaging.ScaleNearest(tile.Image(), c.cell)
		c.scaled[tile] = scaled
	}
	imaging.Paste(c.img, scaled, image.Pt(block.GridX*c.cell, block.GridY*c.cell))
}

// Image returns the assembled mosaic.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}
