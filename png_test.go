package img2braille

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/wbrown/img2braille/imageutil"
)

func TestWritePNGEmptyGrid(t *testing.T) {
	t.Parallel()

	p := NewPalette(RGBMethod{})
	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(nil, p, path, PNGOptions{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Empty grid should yield ErrInvalidInput, got %v", err)
	}
	if err := WritePNG([][]Cell{{}}, p, path, PNGOptions{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Empty row should yield ErrInvalidInput, got %v", err)
	}
}

func TestWritePNGGeometricDots(t *testing.T) {
	t.Parallel()

	p := NewPalette(RGBMethod{})
	red := p.Nearest(RGB{R: 255})
	cells := [][]Cell{
		{
			{Rune: DotMask(0xFF).Rune(), Color: red},
			{Rune: ' ', Blank: true},
		},
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(cells, p, path, PNGOptions{Scale: 2}); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	img, err := imageutil.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.Width() != 2*CellWidth*2 || img.Height() != CellHeight*2 {
		t.Fatalf("Expected 8x8 output, got %dx%d", img.Width(), img.Height())
	}

	// Full cell at scale 2: every sub-pixel of the first cell is a dot.
	want := p.Color(red)
	if got := img.GetRGB(0, 0); got != (imageutil.RGB{R: want.R, G: want.G, B: want.B}) {
		t.Errorf("Dot pixel should be the cell color, got %v", got)
	}

	// The blank cell stays untouched.
	if got := img.RGBAAt(2*CellWidth, 0); got.A != 0 {
		t.Errorf("Blank cell should stay transparent, got alpha %d", got.A)
	}
}

func TestWritePNGBackgroundFillsCells(t *testing.T) {
	t.Parallel()

	p := NewPalette(RGBMethod{})
	blue := p.Nearest(RGB{B: 255})
	cells := [][]Cell{
		{{Rune: ' ', Color: blue}},
	}

	path := filepath.Join(t.TempDir(), "out.png")
	opts := PNGOptions{Scale: 3, Background: true}
	if err := WritePNG(cells, p, path, opts); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	img, err := imageutil.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	want := p.Color(blue)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if got := img.GetRGB(x, y); got != (imageutil.RGB{R: want.R, G: want.G, B: want.B}) {
				t.Fatalf("Background cell should be solid, got %v at (%d,%d)", got, x, y)
			}
		}
	}
}
