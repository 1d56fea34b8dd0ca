package mosaic

import (
	"fmt"
	"image"

	"github.com/ironsheep/photomosaic/internal/imaging"
)

// ThumbSide is the edge of the square thumbnail kept for every tile.
const ThumbSide = 25

// ThumbPixels is the number of pixels in a tile thumbnail.
const ThumbPixels = ThumbSide * ThumbSide

// Tile is a summarized candidate image.
//
// Pixels always holds exactly ThumbPixels values in row-major order, and
// Average is their per-channel floor mean. Tiles are not modified after
// construction.
type Tile struct {
	// Path is the file the tile was summarized from.
	Path string `json:"path"`

	// Pixels is the thumbnail, row-major.
	Pixels []imaging.RGBColor `json:"-"`

	// Average is the average color of Pixels.
	Average imaging.RGBColor `json:"average"`
}

// NewTile builds a Tile from a thumbnail buffer, computing its average color.
// It fails when pixels does not hold exactly ThumbPixels values.
func NewTile(path string, pixels []imaging.RGBColor) (Tile, error) {
	if len(pixels) != ThumbPixels {
		return Tile{}, fmt.Errorf("tile %s: thumbnail has %d pixels, want %d", path, len(pixels), ThumbPixels)
	}
	return Tile{
		Path:    path,
		Pixels:  pixels,
		Average: imaging.Average(pixels),
	}, nil
}

// Summarize crops img to its centered square, scales it to ThumbSide×ThumbSide
// and records the opaque pixels and their average. An image with no pixels
// is rejected with ErrUnreadableTile.
func Summarize(path string, img image.Image) (Tile, error) {
	if img.Bounds().Empty() {
		return Tile{}, fmt.Errorf("%w: %s: image is empty", ErrUnreadableTile, path)
	}
	return NewTile(path, imaging.Pixels(imaging.Thumbnail(imaging.CenterSquare(img), ThumbSide)))
}

// SummarizeFile decodes the image at path and summarizes it.
// Decode failures are wrapped in ErrUnreadableTile.
func SummarizeFile(path string) (Tile, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return Tile{}, fmt.Errorf("%w: %s: %w", ErrUnreadableTile, path, err)
	}
	return Summarize(path, img)
}

// Image returns the tile thumbnail as an opaque image.
func (t *Tile) Image() *image.NRGBA {
	img, err := imaging.FromPixels(t.Pixels, ThumbSide)
	if err != nil {
		// Tiles built by this package always carry a full thumbnail.
		panic(err)
	}
	return img
}
