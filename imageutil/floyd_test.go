package imageutil

import "testing"

// snapLevels quantizes each channel to 0 or 255, a two-level palette.
func snapLevels(c RGB) RGB {
	snap := func(v uint8) uint8 {
		if v >= 128 {
			return 255
		}
		return 0
	}
	return RGB{R: snap(c.R), G: snap(c.G), B: snap(c.B)}
}

func TestFloydSteinbergPaletteColorUnchanged(t *testing.T) {
	img := CreateSolidImage(16, 16, RGB{R: 255, G: 0, B: 255})
	FloydSteinberg(img, nil, snapLevels)

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if got := img.GetRGB(x, y); got != (RGB{R: 255, G: 0, B: 255}) {
				t.Fatalf("Palette color should pass through unchanged, got %v at (%d,%d)", got, x, y)
			}
		}
	}
}

func TestFloydSteinbergOutputIsQuantized(t *testing.T) {
	img := CreateGradientImage(32, 32)
	FloydSteinberg(img, nil, snapLevels)

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.GetRGB(x, y)
			for _, v := range []uint8{c.R, c.G, c.B} {
				if v != 0 && v != 255 {
					t.Fatalf("Channel value %d at (%d,%d) not in palette", v, x, y)
				}
			}
		}
	}
}

func TestFloydSteinbergPreservesGradientBalance(t *testing.T) {
	img := CreateSolidImage(32, 32, RGB{R: 128, G: 128, B: 128})
	FloydSteinberg(img, nil, snapLevels)

	// Error diffusion should scatter the mid-gray into a mix of black
	// and white rather than collapsing to one level.
	white := 0
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if img.GetRGB(x, y).R == 255 {
				white++
			}
		}
	}
	total := img.Width() * img.Height()
	if white == 0 || white == total {
		t.Errorf("Mid-gray should dither to a mix, got %d/%d white", white, total)
	}
}

func TestFloydSteinbergSkipsTransparent(t *testing.T) {
	img := CreateSolidImage(8, 8, RGB{R: 200, G: 200, B: 200})
	img.Pix[img.PixOffset(3, 3)+3] = 0

	FloydSteinberg(img, nil, snapLevels)

	got := img.RGBAAt(3, 3)
	if got.A != 0 {
		t.Errorf("Transparent pixel should keep alpha 0, got %d", got.A)
	}
	if got.R != 200 || got.G != 200 || got.B != 200 {
		t.Errorf("Transparent pixel color should be left alone, got %v", got)
	}
}

func TestFloydSteinbergEdgeMapShape(t *testing.T) {
	img := CreateGradientImage(16, 16)
	edges := NewGrayImage(16, 16)
	for y := 0; y < 16; y++ {
		edges.SetGrayValue(8, y, 255)
	}

	FloydSteinberg(img, edges, snapLevels)

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.GetRGB(x, y)
			for _, v := range []uint8{c.R, c.G, c.B} {
				if v != 0 && v != 255 {
					t.Fatalf("Dampened diffusion must still quantize, got %d at (%d,%d)", v, x, y)
				}
			}
		}
	}
}
