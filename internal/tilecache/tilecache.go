/*
Package tilecache persists tile summaries in a SQLite database so that repeated
mosaic runs over the same tile directory skip decoding unchanged files.

A cached summary is keyed by the tile's path and is only returned while the
file's size and modification time still match the values recorded with it.
*/
package tilecache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/ironsheep/photomosaic/internal/imaging"
	"github.com/ironsheep/photomosaic/internal/mosaic"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS tile (
	path   TEXT PRIMARY KEY NOT NULL,
	size   INTEGER NOT NULL,
	mtime  INTEGER NOT NULL,
	pixels BLOB NOT NULL
)`

// Cache is a mosaic.TileStore backed by SQLite.
type Cache struct {
	db *sql.DB
}

var _ mosaic.TileStore = (*Cache)(nil)

// Open opens (creating if needed) the cache database at file.
func Open(file string) (*Cache, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialise tile cache %s: %w", file, err)
	}

	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the cached summary for path. ok is false when nothing is
// cached, the file has changed since it was cached, or the file cannot be
// stat'd.
func (c *Cache) Lookup(path string) (mosaic.Tile, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return mosaic.Tile{}, false, nil
	}

	var size, mtime int64
	var blob []byte
	err = c.db.QueryRow("SELECT size, mtime, pixels FROM tile WHERE path = ?", path).Scan(&size, &mtime, &blob)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return mosaic.Tile{}, false, nil
	case err != nil:
		return mosaic.Tile{}, false, err
	}

	if size != info.Size() || mtime != info.ModTime().UnixNano() {
		return mosaic.Tile{}, false, nil
	}

	pixels, err := decodePixels(blob)
	if err != nil {
		return mosaic.Tile{}, false, nil
	}

	tile, err := mosaic.NewTile(path, pixels)
	if err != nil {
		return mosaic.Tile{}, false, nil
	}
	return tile, true, nil
}

// Store records tile against the current size and modification time of its file.
func (c *Cache) Store(tile mosaic.Tile) error {
	info, err := os.Stat(tile.Path)
	if err != nil {
		return err
	}

	_, err = c.db.Exec("INSERT OR REPLACE INTO tile (path, size, mtime, pixels) VALUES (?, ?, ?, ?)",
		tile.Path, info.Size(), info.ModTime().UnixNano(), encodePixels(tile.Pixels))
	return err
}

// Len returns the number of cached summaries.
func (c *Cache) Len() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM tile").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func encodePixels(pixels []imaging.RGBColor) []byte {
	b := make([]byte, 0, len(pixels)*3)
	for _, p := range pixels {
		b = append(b, p.R, p.G, p.B)
	}
	return b
}

func decodePixels(b []byte) ([]imaging.RGBColor, error) {
	if len(b) != mosaic.ThumbPixels*3 {
		return nil, fmt.Errorf("cached thumbnail is %d bytes, want %d", len(b), mosaic.ThumbPixels*3)
	}
	pixels := make([]imaging.RGBColor, mosaic.ThumbPixels)
	for i := range pixels {
		pixels[i] = imaging.RGBColor{R: b[i*3], G: b[i*3+1], B: b[i*3+2]}
	}
	return pixels, nil
}
