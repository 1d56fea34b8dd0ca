package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createStripedImage paints column x with gray level x so crops can be
// located by reading back pixel values.
func createStripedImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 0, 255})
		}
	}
	return img
}

func TestCenterSquare(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantSide      int
		wantX, wantY  uint8 // source coordinates of the crop's top-left pixel
	}{
		{"square", 20, 20, 20, 0, 0},
		{"landscape even", 30, 20, 20, 5, 0},
		{"landscape odd", 31, 20, 20, 5, 0},
		{"portrait even", 20, 40, 20, 0, 10},
		{"portrait odd", 20, 23, 20, 0, 1},
		{"off by one", 21, 20, 20, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := CenterSquare(createStripedImage(tt.width, tt.height))

			b := sq.Bounds()
			if b.Dx() != tt.wantSide || b.Dy() != tt.wantSide {
				t.Fatalf("dimensions: got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantSide, tt.wantSide)
			}
			c := sq.NRGBAAt(0, 0)
			if c.R != tt.wantX || c.G != tt.wantY {
				t.Errorf("origin: got source (%d,%d), want (%d,%d)", c.R, c.G, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCenterSquare_OffsetBounds(t *testing.T) {
	src := createStripedImage(40, 20).SubImage(image.Rect(10, 0, 40, 20))

	sq := CenterSquare(src)
	if sq.Bounds() != image.Rect(0, 0, 20, 20) {
		t.Fatalf("bounds: got %v, want (0,0)-(20,20)", sq.Bounds())
	}
	// 30 wide, offset 5 from x=10
	if c := sq.NRGBAAt(0, 0); c.R != 15 {
		t.Errorf("origin column: got %d, want 15", c.R)
	}
}

func TestTrimToMultiple(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		n             int
		wantW, wantH  int
	}{
		{"exact", 20, 20, 10, 20, 20},
		{"remainder", 25, 37, 10, 20, 30},
		{"one", 7, 3, 1, 7, 3},
		{"too large", 15, 30, 20, 0, 0},
		{"larger than both", 5, 5, 10, 0, 0},
		{"zero", 10, 10, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimToMultiple(createStripedImage(tt.width, tt.height), tt.n)
			if got.Bounds().Dx() != tt.wantW || got.Bounds().Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					got.Bounds().Dx(), got.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestTrimToMultiple_KeepsOrigin(t *testing.T) {
	got := TrimToMultiple(createStripedImage(25, 25), 10)
	if c := got.NRGBAAt(0, 0); c.R != 0 || c.G != 0 {
		t.Errorf("origin: got source (%d,%d), want (0,0)", c.R, c.G)
	}
	if c := got.NRGBAAt(19, 19); c.R != 19 || c.G != 19 {
		t.Errorf("last pixel: got source (%d,%d), want (19,19)", c.R, c.G)
	}
}

func TestThumbnail(t *testing.T) {
	thumb := Thumbnail(createInMemoryImage(100, 100, color.RGBA{60, 120, 180, 255}), 25)

	if thumb.Bounds().Dx() != 25 || thumb.Bounds().Dy() != 25 {
		t.Fatalf("dimensions: got %dx%d, want 25x25", thumb.Bounds().Dx(), thumb.Bounds().Dy())
	}
	if got := Average(Pixels(thumb)); got != (RGBColor{60, 120, 180}) {
		t.Errorf("Average: got %v, want 60,120,180", got)
	}
}

func TestThumbnail_Upscales(t *testing.T) {
	thumb := Thumbnail(createInMemoryImage(5, 5, color.RGBA{1, 2, 3, 255}), 25)
	if thumb.Bounds().Dx() != 25 || thumb.Bounds().Dy() != 25 {
		t.Errorf("dimensions: got %dx%d, want 25x25", thumb.Bounds().Dx(), thumb.Bounds().Dy())
	}
}

func TestScaleNearest_KeepsHardEdges(t *testing.T) {
	scaled := ScaleNearest(createPatternImage(2, 2), 30)

	if scaled.Bounds().Dx() != 30 || scaled.Bounds().Dy() != 30 {
		t.Fatalf("dimensions: got %dx%d, want 30x30", scaled.Bounds().Dx(), scaled.Bounds().Dy())
	}

	tests := []struct {
		x, y int
		want RGBColor
	}{
		{0, 0, RGBColor{255, 0, 0}},
		{14, 14, RGBColor{255, 0, 0}},
		{15, 0, RGBColor{0, 255, 0}},
		{0, 15, RGBColor{0, 0, 255}},
		{29, 29, RGBColor{255, 255, 255}},
	}
	for _, tt := range tests {
		c := scaled.NRGBAAt(tt.x, tt.y)
		if got := (RGBColor{c.R, c.G, c.B}); got != tt.want {
			t.Errorf("pixel (%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNewCanvas(t *testing.T) {
	canvas := NewCanvas(30, 20)
	if canvas.Bounds().Dx() != 30 || canvas.Bounds().Dy() != 20 {
		t.Fatalf("dimensions: got %dx%d, want 30x20", canvas.Bounds().Dx(), canvas.Bounds().Dy())
	}
	if got := canvas.NRGBAAt(15, 10); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("fill: got %v, want opaque black", got)
	}
}

func TestNewCanvas_Empty(t *testing.T) {
	if canvas := NewCanvas(0, 0); !canvas.Bounds().Empty() {
		t.Errorf("bounds: got %v, want empty", canvas.Bounds())
	}
}

func TestPaste(t *testing.T) {
	canvas := NewCanvas(20, 20)
	Paste(canvas, createInMemoryImage(10, 10, color.RGBA{9, 8, 7, 255}), image.Pt(10, 0))

	if got := canvas.NRGBAAt(10, 0); got != (color.NRGBA{9, 8, 7, 255}) {
		t.Errorf("pasted pixel: got %v, want {9 8 7 255}", got)
	}
	if got := canvas.NRGBAAt(9, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("untouched pixel: got %v, want opaque black", got)
	}
	if got := canvas.NRGBAAt(10, 10); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("untouched pixel below: got %v, want opaque black", got)
	}
}
