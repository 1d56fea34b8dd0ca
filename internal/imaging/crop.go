package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// CenterSquare crops the longer dimension of img so the result is a square of
// side min(width, height). The offset on the longer axis is |width-height|/2,
// rounded down, so an odd difference leaves the extra pixel on the far edge.
func CenterSquare(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	side, offX, offY := w, 0, 0
	switch {
	case w > h:
		side, offX = h, (w-h)/2
	case h > w:
		offY = (h - w) / 2
	}

	origin := b.Min.Add(image.Pt(offX, offY))
	return imaging.Crop(img, image.Rectangle{Min: origin, Max: origin.Add(image.Pt(side, side))})
}

// TrimToMultiple drops trailing columns and rows so that both dimensions of
// the result are exact multiples of n. The top-left origin is preserved.
//
// If n is not positive or exceeds a dimension the result is empty.
func TrimToMultiple(img image.Image, n int) *image.NRGBA {
	if n <= 0 {
		return &image.NRGBA{}
	}
	b := img.Bounds()
	w := b.Dx() - b.Dx()%n
	h := b.Dy() - b.Dy()%n
	if w == 0 || h == 0 {
		return &image.NRGBA{}
	}
	return imaging.Crop(img, image.Rectangle{Min: b.Min, Max: b.Min.Add(image.Pt(w, h))})
}

// Thumbnail scales img to exactly side×side with a Lanczos filter.
func Thumbnail(img image.Image, side int) *image.NRGBA {
	return imaging.Resize(img, side, side, imaging.Lanczos)
}

// ScaleNearest scales img to exactly side×side with nearest-neighbor
// sampling, keeping hard pixel edges.
func ScaleNearest(img image.Image, side int) *image.NRGBA {
	return imaging.Resize(img, side, side, imaging.NearestNeighbor)
}

// NewCanvas returns an opaque black width×height image.
func NewCanvas(width, height int) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return &image.NRGBA{}
	}
	return imaging.New(width, height, color.NRGBA{0, 0, 0, 255})
}

// Paste copies src onto dst with its top-left corner at pt, replacing the
// destination pixels.
func Paste(dst *image.NRGBA, src image.Image, pt image.Point) {
	sb := src.Bounds()
	draw.Draw(dst, image.Rectangle{Min: pt, Max: pt.Add(sb.Size())}, src, sb.Min, draw.Src)
}
