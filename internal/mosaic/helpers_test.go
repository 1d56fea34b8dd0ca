package mosaic

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/photomosaic/internal/imaging"
	"github.com/stretchr/testify/require"
)

// solidImage returns a width×height image filled with c.
func solidImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// fillRect paints r of img with c.
func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// writePNG encodes img into dir/name and returns the path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

// solidTile returns a tile whose thumbnail is entirely c.
func solidTile(t *testing.T, path string, c imaging.RGBColor) Tile {
	t.Helper()
	pixels := make([]imaging.RGBColor, ThumbPixels)
	for i := range pixels {
		pixels[i] = c
	}
	tile, err := NewTile(path, pixels)
	require.NoError(t, err)
	return tile
}

// mustLibrary builds a library from tiles.
func mustLibrary(t *testing.T, tiles ...Tile) *Library {
	t.Helper()
	lib, err := NewLibrary(tiles...)
	require.NoError(t, err)
	return lib
}

func rgb(r, g, b uint8) imaging.RGBColor {
	return imaging.RGBColor{R: r, G: g, B: b}
}

func nrgba(c imaging.RGBColor) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
