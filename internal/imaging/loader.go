package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"path/filepath"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/google/renameio/v2"
	_ "golang.org/x/image/bmp" // Register BMP format decoder
)

// JPEGQuality is the quality used when a mosaic is written as JPEG.
const JPEGQuality = 95

// Open decodes the image stored at path.
//
// The format is detected from the file contents, not the extension. BMP, GIF,
// JPEG and PNG are supported.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// EncoderFor returns the encoder matching the extension of path.
//
// Recognized extensions are ".png", ".jpg", ".jpeg" and ".bmp" (case-insensitive).
func EncoderFor(path string) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(JPEGQuality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}

// OutputPerm is the mode given to a newly written mosaic, before the umask.
// An existing file keeps its mode when it is overwritten.
const OutputPerm = 0o644

// Save encodes img to path using the format implied by the path's extension.
//
// The encoded image is written to a temporary file and renamed into place, so
// a failed Save never leaves a partial file at path.
func Save(path string, img image.Image) error {
	enc, err := EncoderFor(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := renameio.WriteFile(path, buf.Bytes(), OutputPerm); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// ImageCache provides thread-safe caching of loaded images to avoid redundant disk reads.
//
// The tool server keeps one cache for its lifetime so that repeated requests
// against the same target image decode it only once.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it with Open if not cached.
//
// The image is cached using the exact path string provided. Different paths to
// the same file (e.g., relative vs absolute) result in separate cache entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := Open(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes a specific image from the cache by its path.
//
// Files rewritten on disk (a mosaic output, for example) must be evicted before
// they are loaded again.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format implied by the file extension: "png", "jpeg",
	// "bmp", "gif" or "unknown".
	Format string `json:"format"`
}

// GetDimensions returns the dimensions of an image, loading it through cache.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".bmp":
		format = "bmp"
	case ".gif":
		format = "gif"
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}, nil
}
