// Package imaging provides the image primitives the mosaic pipeline is built from.
//
// It wraps github.com/disintegration/imaging for decoding, cropping and
// resampling, and github.com/anthonynsimon/bild for encoding output files.
// All images produced by this package are *image.NRGBA values whose origin is
// (0,0); X increases rightward and Y increases downward.
//
// # Color Representation
//
// Pixel readers (Pixels, Average, AverageRect) work on 8-bit R, G and B
// values and ignore alpha, so every image is treated as opaque. Averages are
// truncated toward zero.
//
// # Resampling
//
// Two filters are used on purpose:
//   - Thumbnail uses Lanczos, for building tile summaries from photographs.
//   - ScaleNearest uses nearest-neighbor, for blowing summaries back up into
//     mosaic cells with hard pixel edges.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are stateless
// and may be called concurrently on different images.
package imaging
