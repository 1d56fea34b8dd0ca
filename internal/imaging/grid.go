package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
)

// Grid describes a division of an image into square cells of side Cell.
// Cols and Rows count whole cells only; trailing pixels are not part of the grid.
type Grid struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
	Cell int `json:"cell"`
}

// NewGrid returns the grid of cell×cell squares that fits inside bounds.
func NewGrid(bounds image.Rectangle, cell int) Grid {
	if cell <= 0 {
		return Grid{Cell: cell}
	}
	return Grid{Cols: bounds.Dx() / cell, Rows: bounds.Dy() / cell, Cell: cell}
}

// Len is the number of cells in the grid.
func (g Grid) Len() int {
	return g.Cols * g.Rows
}

// Width is the pixel width covered by the grid.
func (g Grid) Width() int {
	return g.Cols * g.Cell
}

// Height is the pixel height covered by the grid.
func (g Grid) Height() int {
	return g.Rows * g.Cell
}

// CellRect returns the pixel rectangle of the cell in column x, row y,
// relative to an image whose origin is (0,0).
func (g Grid) CellRect(x, y int) image.Rectangle {
	return image.Rect(x*g.Cell, y*g.Cell, (x+1)*g.Cell, (y+1)*g.Cell)
}

// GridOverlayResult contains a preview of the sampling grid over an image.
type GridOverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Cols        int    `json:"cols"`
	Rows        int    `json:"rows"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// GridOverlay trims img to a multiple of cell and draws the cell boundaries on it.
// gridColorHex accepts "#RRGGBB" or "#RRGGBBAA"; an unparsable value falls
// back to opaque red.
func GridOverlay(img image.Image, cell int, gridColorHex string) (*GridOverlayResult, error) {
	if cell <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %d", cell)
	}

	gridColor, err := parseHexColor(gridColorHex)
	if err != nil {
		gridColor = color.NRGBA{255, 0, 0, 255}
	}

	result := TrimToMultiple(img, cell)
	grid := NewGrid(result.Bounds(), cell)

	for x := cell; x < grid.Width(); x += cell {
		for y := 0; y < grid.Height(); y++ {
			result.Set(x, y, gridColor)
		}
	}
	for y := cell; y < grid.Height(); y += cell {
		for x := 0; x < grid.Width(); x++ {
			result.Set(x, y, gridColor)
		}
	}

	var buf bytes.Buffer
	if grid.Len() > 0 {
		if err := png.Encode(&buf, result); err != nil {
			return nil, fmt.Errorf("failed to encode image: %w", err)
		}
	}

	return &GridOverlayResult{
		Width:       grid.Width(),
		Height:      grid.Height(),
		Cols:        grid.Cols,
		Rows:        grid.Rows,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080"
func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, err
	}

	switch len(hex) {
	case 6:
		return color.NRGBA{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val), A: 255}, nil
	case 8:
		return color.NRGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length")
	}
}
