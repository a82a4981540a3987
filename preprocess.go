package img2braille

import "fmt"

// DefaultAspectScale compensates for terminal cell geometry. Braille
// sub-pixels are close to square in common fonts, so no correction is
// applied by default.
const DefaultAspectScale = 1.0

// Preprocessor produces the pixel buffer for one rendering call: the
// source image decoded, resized to width*2 by a 4-multiple height, and
// optionally dithered. Implementations guarantee the buffer dimension
// contract by construction.
type Preprocessor interface {
	Prepare(path string, width int, dither bool) (*PixelBuffer, error)
}

// targetGeometry computes the pixel dimensions for a character width,
// preserving the source aspect ratio. The height is forced to the
// nearest multiple of CellHeight, minimum one cell row.
func targetGeometry(srcW, srcH, width int, aspectScale float64) (pw, ph int) {
	pw = width * CellWidth
	aspect := float64(srcW) / float64(srcH)
	ph = int(float64(pw)/aspect*aspectScale + float64(CellHeight)/2)
	ph -= ph % CellHeight
	if ph < CellHeight {
		ph = CellHeight
	}
	return pw, ph
}

// validateWidth rejects non-positive character widths before any
// external work happens.
func validateWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: width %d", ErrInvalidInput, width)
	}
	return nil
}
