package mosaic

import (
	"image"
	"image/color"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/photomosaic/internal/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_SolidImage(t *testing.T) {
	tile, err := Summarize("solid.png", solidImage(80, 60, color.RGBA{30, 60, 90, 255}))
	require.NoError(t, err)

	assert.Equal(t, "solid.png", tile.Path)
	assert.Len(t, tile.Pixels, ThumbPixels)
	assert.Equal(t, rgb(30, 60, 90), tile.Average)
}

func TestSummarize_CropsToCenter(t *testing.T) {
	// 60×20: the centered 20×20 square is x in [20,40), painted white.
	img := solidImage(60, 20, color.RGBA{0, 0, 0, 255})
	fillRect(img, image.Rect(20, 0, 40, 20), color.RGBA{255, 255, 255, 255})

	tile, err := Summarize("wide.png", img)
	require.NoError(t, err)
	assert.Equal(t, rgb(255, 255, 255), tile.Average)
}

func TestSummarize_SmallImage(t *testing.T) {
	tile, err := Summarize("tiny.png", solidImage(3, 7, color.RGBA{5, 6, 7, 255}))
	require.NoError(t, err)

	assert.Len(t, tile.Pixels, ThumbPixels)
	assert.Equal(t, rgb(5, 6, 7), tile.Average)
}

func TestSummarize_EmptyImage(t *testing.T) {
	for _, img := range []image.Image{
		image.NewRGBA(image.Rect(0, 0, 0, 0)),
		image.NewRGBA(image.Rect(0, 0, 10, 0)),
		&image.NRGBA{},
	} {
		_, err := Summarize("empty.png", img)
		assert.ErrorIs(t, err, ErrUnreadableTile)
	}
}

func TestNewTile_AverageIsFloor(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for n := 0; n < 20; n++ {
		pixels := make([]imaging.RGBColor, ThumbPixels)
		var sumR, sumG, sumB int
		for i := range pixels {
			pixels[i] = rgb(uint8(r.IntN(256)), uint8(r.IntN(256)), uint8(r.IntN(256)))
			sumR += int(pixels[i].R)
			sumG += int(pixels[i].G)
			sumB += int(pixels[i].B)
		}

		tile, err := NewTile("random", pixels)
		require.NoError(t, err)
		assert.Equal(t, rgb(uint8(sumR/ThumbPixels), uint8(sumG/ThumbPixels), uint8(sumB/ThumbPixels)), tile.Average)
	}
}

func TestNewTile_RejectsShortBuffer(t *testing.T) {
	_, err := NewTile("short", make([]imaging.RGBColor, ThumbPixels-1))
	assert.Error(t, err)
}

func TestSummarizeFile(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "tile.png", solidImage(50, 50, color.RGBA{200, 10, 10, 255}))

	tile, err := SummarizeFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, tile.Path)
	assert.Equal(t, rgb(200, 10, 10), tile.Average)
}

func TestSummarizeFile_Unreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.jpg")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a jpeg"), 0o644))

	_, err := SummarizeFile(path)
	assert.ErrorIs(t, err, ErrUnreadableTile)
	assert.Contains(t, err.Error(), path)

	_, err = SummarizeFile(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, ErrUnreadableTile)
}

func TestTile_Image(t *testing.T) {
	tile := solidTile(t, "t", rgb(1, 2, 3))

	img := tile.Image()
	assert.Equal(t, image.Rect(0, 0, ThumbSide, ThumbSide), img.Bounds())
	assert.Equal(t, color.NRGBA{1, 2, 3, 255}, img.NRGBAAt(ThumbSide-1, ThumbSide-1))
}
