package img2braille

import (
	"fmt"
	"image"
)

// CellWidth and CellHeight define the sub-pixel grid of one Braille
// character cell.
const (
	CellWidth  = 2
	CellHeight = 4
)

// PixelBuffer is a 2D grid of RGBA samples produced by a Preprocessor.
// The renderer treats it as immutable. Width must be a multiple of
// CellWidth and height a multiple of CellHeight.
type PixelBuffer struct {
	W, H int
	Pix  []RGBA
}

// NewPixelBuffer creates a zeroed buffer of the given dimensions.
func NewPixelBuffer(w, h int) *PixelBuffer {
	return &PixelBuffer{
		W:   w,
		H:   h,
		Pix: make([]RGBA, w*h),
	}
}

// At returns the sample at (x, y). Bounds are not checked.
func (p *PixelBuffer) At(x, y int) RGBA {
	return p.Pix[y*p.W+x]
}

// Set stores a sample at (x, y). Bounds are not checked.
func (p *PixelBuffer) Set(x, y int, c RGBA) {
	p.Pix[y*p.W+x] = c
}

// Validate checks the dimension contract: non-empty, width a multiple
// of CellWidth, height a multiple of CellHeight, and a sample slice of
// matching length.
func (p *PixelBuffer) Validate() error {
	if p.W <= 0 || p.H <= 0 {
		return fmt.Errorf("%w: empty buffer %dx%d", ErrInvalidInput, p.W, p.H)
	}
	if p.W%CellWidth != 0 || p.H%CellHeight != 0 {
		return fmt.Errorf("%w: buffer %dx%d is not a multiple of %dx%d",
			ErrInvalidInput, p.W, p.H, CellWidth, CellHeight)
	}
	if len(p.Pix) != p.W*p.H {
		return fmt.Errorf("%w: %d samples for %dx%d buffer",
			ErrInvalidInput, len(p.Pix), p.W, p.H)
	}
	return nil
}

// BufferFromImage converts a decoded image into a PixelBuffer,
// preserving the alpha channel.
func BufferFromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	buf := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			buf.Set(x-bounds.Min.X, y-bounds.Min.Y, RGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: uint8(a >> 8),
			})
		}
	}
	return buf
}
