package mosaic

import (
	"image"

	"github.com/ironsheep/photomosaic/internal/imaging"
)

// SampleBlock is one cell of the sampling grid. GridX and GridY are zero-based
// column and row indices, not pixel coordinates.
type SampleBlock struct {
	GridX   int              `json:"grid_x"`
	GridY   int              `json:"grid_y"`
	Average imaging.RGBColor `json:"average"`
}

// Sample trims target so its dimensions are multiples of sampleSize and
// returns the resulting grid with the average color of every cell, in
// row-major order.
//
// Each average covers all sampleSize² pixels of its cell and is truncated
// toward zero. A sampleSize larger than either dimension yields an empty grid.
func Sample(target image.Image, sampleSize int) (imaging.Grid, []SampleBlock) {
	trimmed := imaging.TrimToMultiple(target, sampleSize)
	grid := imaging.NewGrid(trimmed.Bounds(), sampleSize)

	blocks := make([]SampleBlock, 0, grid.Len())
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			blocks = append(blocks, SampleBlock{
				GridX:   x,
				GridY:   y,
				Average: imaging.AverageRect(trimmed, grid.CellRect(x, y)),
			})
		}
	}
	return grid, blocks
}
