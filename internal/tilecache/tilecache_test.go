package tilecache

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ironsheep/photomosaic/internal/imaging"
	"github.com/ironsheep/photomosaic/internal/mosaic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTile(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func openCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "tiles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_StoreAndLookup(t *testing.T) {
	c := openCache(t)
	path := filepath.Join(t.TempDir(), "tile.png")
	writeTile(t, path, color.RGBA{10, 20, 30, 255})

	tile, err := mosaic.SummarizeFile(path)
	require.NoError(t, err)
	require.NoError(t, c.Store(tile))

	got, ok, err := c.Lookup(path)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tile.Path, got.Path)
	assert.Equal(t, tile.Average, got.Average)
	assert.Equal(t, tile.Pixels, got.Pixels)

	n, err := c.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCache_LookupMissing(t *testing.T) {
	c := openCache(t)
	path := filepath.Join(t.TempDir(), "tile.png")
	writeTile(t, path, color.White)

	_, ok, err := c.Lookup(path)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = c.Lookup(filepath.Join(t.TempDir(), "gone.png"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_LookupStale(t *testing.T) {
	c := openCache(t)
	path := filepath.Join(t.TempDir(), "tile.png")
	writeTile(t, path, color.RGBA{10, 20, 30, 255})

	tile, err := mosaic.SummarizeFile(path)
	require.NoError(t, err)
	require.NoError(t, c.Store(tile))

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	_, ok, err := c.Lookup(path)
	require.NoError(t, err)
	assert.False(t, ok, "a modified file must not be served from the cache")
}

func TestCache_StoreReplaces(t *testing.T) {
	c := openCache(t)
	path := filepath.Join(t.TempDir(), "tile.png")
	writeTile(t, path, color.Black)

	tile, err := mosaic.SummarizeFile(path)
	require.NoError(t, err)
	require.NoError(t, c.Store(tile))
	require.NoError(t, c.Store(tile))

	n, err := c.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCache_WithBuilder(t *testing.T) {
	c := openCache(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "tile.png")
	writeTile(t, path, color.RGBA{200, 100, 0, 255})

	b := mosaic.Builder{Store: c}
	lib, skipped := b.Build([]string{path})
	require.Empty(t, skipped)
	require.Equal(t, 1, lib.Len())

	// Corrupt the file but keep size and mtime: the cached summary still wins.
	info, err := os.Stat(path)
	require.NoError(t, err)
	garbage := make([]byte, info.Size())
	require.NoError(t, os.WriteFile(path, garbage, 0o644))
	require.NoError(t, os.Chtimes(path, info.ModTime(), info.ModTime()))

	lib, skipped = b.Build([]string{path})
	assert.Empty(t, skipped)
	require.Equal(t, 1, lib.Len())
	assert.Equal(t, imaging.RGBColor{R: 200, G: 100, B: 0}, lib.Tile(0).Average)
}

func TestDecodePixels_WrongLength(t *testing.T) {
	_, err := decodePixels(make([]byte, 10))
	assert.Error(t, err)
}
