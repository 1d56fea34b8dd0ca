package mosaic

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Library is the in-memory collection of summarized tiles. It is built once
// and only read afterwards.
type Library struct {
	tiles []Tile
}

// NewLibrary returns a library holding tiles. Every tile must carry a full
// ThumbPixels thumbnail.
func NewLibrary(tiles ...Tile) (*Library, error) {
	for _, t := range tiles {
		if len(t.Pixels) != ThumbPixels {
			return nil, fmt.Errorf("tile %s: thumbnail has %d pixels, want %d", t.Path, len(t.Pixels), ThumbPixels)
		}
	}
	return &Library{tiles: tiles}, nil
}

// Len is the number of tiles in the library.
func (l *Library) Len() int {
	return len(l.tiles)
}

// Tile returns the i-th tile.
func (l *Library) Tile(i int) *Tile {
	return &l.tiles[i]
}

// Skipped records a candidate file left out of the library.
type Skipped struct {
	Path string `json:"path"`
	Err  error  `json:"-"`
}

// Reason is the error text, for reports.
func (s Skipped) Reason() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// MarshalJSON renders the entry as {"path": ..., "reason": ...}.
func (s Skipped) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Path   string `json:"path"`
		Reason string `json:"reason"`
	}{s.Path, s.Reason()})
}

// TileStore persists tile summaries between runs.
//
// Lookup reports ok=false when no summary is stored for path or the stored
// summary is stale. Store errors are advisory: ingestion logs them and goes on.
type TileStore interface {
	Lookup(path string) (tile Tile, ok bool, err error)
	Store(tile Tile) error
}

// Builder summarizes candidate files into a Library.
type Builder struct {
	// Logger receives one warning per skipped file. Nil discards everything.
	Logger logrus.FieldLogger

	// Verbose logs one line per processed tile at info level instead of debug.
	Verbose bool

	// Store, if set, is consulted before decoding a file and updated with
	// every freshly summarized tile.
	Store TileStore
}

// Build summarizes every path in order. Files that fail to decode are
// returned in the skip list; they never abort the batch.
func (b *Builder) Build(paths []string) (*Library, []Skipped) {
	log := b.Logger
	if log == nil {
		log = discardLogger()
	}

	lib := &Library{tiles: make([]Tile, 0, len(paths))}
	var skipped []Skipped

	for _, path := range paths {
		tile, err := b.summarize(log, path)
		if err != nil {
			log.WithField("path", path).WithError(err).Warn("Skipping image")
			skipped = append(skipped, Skipped{Path: path, Err: err})
			continue
		}
		lib.tiles = append(lib.tiles, tile)

		entry := log.WithFields(logrus.Fields{"path": path, "hex": tile.Average.Hex()})
		if b.Verbose {
			entry.Infof("Processed image (RGB: %s) - %s", tile.Average, path)
		} else {
			entry.Debugf("Processed image (RGB: %s) - %s", tile.Average, path)
		}
	}

	if lib.Len() == 0 {
		log.WithField("candidates", len(paths)).Warn(ErrEmptyLibrary.Error())
	}

	return lib, skipped
}

func (b *Builder) summarize(log logrus.FieldLogger, path string) (Tile, error) {
	if b.Store != nil {
		tile, ok, err := b.Store.Lookup(path)
		if err != nil {
			log.WithField("path", path).WithError(err).Warn("Tile cache lookup failed")
		} else if ok && len(tile.Pixels) == ThumbPixels {
			return tile, nil
		}
	}

	tile, err := SummarizeFile(path)
	if err != nil {
		return Tile{}, err
	}

	if b.Store != nil {
		if err := b.Store.Store(tile); err != nil {
			log.WithField("path", path).WithError(err).Warn("Tile cache update failed")
		}
	}
	return tile, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
