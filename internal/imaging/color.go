package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an opaque RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color in "#rrggbb" form.
func (c RGBColor) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// String renders the color as "r,g,b".
func (c RGBColor) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// flatten returns img as a non-premultiplied RGBA image. *image.NRGBA values
// are returned as is; anything else is copied into a new image at (0,0).
//
// Palette and grayscale images are expanded to full color. Alpha is not
// composited: pixel readers in this package use the stored R, G and B values
// and ignore the alpha channel, which treats every pixel as opaque.
func flatten(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return imaging.Clone(img)
}

// Pixels returns the RGB values of img in row-major order, dropping alpha.
func Pixels(img image.Image) []RGBColor {
	n := flatten(img)
	b := n.Bounds()
	out := make([]RGBColor, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := n.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, RGBColor{R: n.Pix[i], G: n.Pix[i+1], B: n.Pix[i+2]})
			i += 4
		}
	}
	return out
}

// Average returns the per-channel mean of pixels, truncated toward zero.
//
// An empty slice averages to black.
func Average(pixels []RGBColor) RGBColor {
	if len(pixels) == 0 {
		return RGBColor{}
	}
	var r, g, b uint64
	for _, p := range pixels {
		r += uint64(p.R)
		g += uint64(p.G)
		b += uint64(p.B)
	}
	n := uint64(len(pixels))
	return RGBColor{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

// AverageRect returns the per-channel mean over the pixels of img inside rect,
// truncated toward zero. Pixels of rect outside img are ignored; a rect that
// does not overlap img averages to black.
func AverageRect(img *image.NRGBA, rect image.Rectangle) RGBColor {
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return RGBColor{}
	}

	var r, g, b uint64
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		i := img.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r += uint64(img.Pix[i])
			g += uint64(img.Pix[i+1])
			b += uint64(img.Pix[i+2])
			i += 4
		}
	}
	n := uint64(rect.Dx() * rect.Dy())
	return RGBColor{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

// FromPixels builds a side×side opaque image from row-major RGB values.
//
// It returns an error when len(pixels) != side*side.
func FromPixels(pixels []RGBColor, side int) (*image.NRGBA, error) {
	if side < 0 || len(pixels) != side*side {
		return nil, fmt.Errorf("pixel buffer holds %d values, want %dx%d", len(pixels), side, side)
	}
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for i, p := range pixels {
		img.Pix[i*4] = p.R
		img.Pix[i*4+1] = p.G
		img.Pix[i*4+2] = p.B
		img.Pix[i*4+3] = 0xff
	}
	return img, nil
}
