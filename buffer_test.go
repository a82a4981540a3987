package img2braille

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestPixelBufferValidate(t *testing.T) {
	t.Parallel()

	if err := NewPixelBuffer(80, 48).Validate(); err != nil {
		t.Errorf("80x48 buffer should validate, got %v", err)
	}

	bad := []*PixelBuffer{
		NewPixelBuffer(81, 48),
		NewPixelBuffer(80, 47),
		NewPixelBuffer(0, 4),
		{W: 4, H: 4, Pix: make([]RGBA, 3)},
	}
	for _, buf := range bad {
		if err := buf.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%dx%d should fail validation with ErrInvalidInput, got %v",
				buf.W, buf.H, err)
		}
	}
}

func TestBufferFromImage(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 4, 8))
	img.SetRGBA(1, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetRGBA(3, 7, color.RGBA{A: 0})

	buf := BufferFromImage(img)
	if buf.W != 4 || buf.H != 8 {
		t.Fatalf("Expected 4x8 buffer, got %dx%d", buf.W, buf.H)
	}
	if got := buf.At(1, 2); got != (RGBA{10, 20, 30, 255}) {
		t.Errorf("Expected (10,20,30,255) at (1,2), got %v", got)
	}
	if got := buf.At(3, 7); got.A != 0 {
		t.Errorf("Expected transparent sample at (3,7), got %v", got)
	}
}

func TestBufferFromImageNonZeroOrigin(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(10, 10, 14, 18))
	img.SetRGBA(10, 10, color.RGBA{R: 200, A: 255})

	buf := BufferFromImage(img)
	if buf.W != 4 || buf.H != 8 {
		t.Fatalf("Expected 4x8 buffer, got %dx%d", buf.W, buf.H)
	}
	if got := buf.At(0, 0); got.R != 200 {
		t.Errorf("Origin should translate to (0,0), got %v", got)
	}
}
