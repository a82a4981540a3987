package img2braille

import (
	"fmt"

	"github.com/wbrown/img2braille/imageutil"
)

// NativePreprocessor is a pure Go fallback for systems without
// ImageMagick: stdlib plus x/image decoding, area resampling, mild
// sharpening, and optional edge-aware Floyd-Steinberg dithering against
// the terminal palette.
type NativePreprocessor struct {
	// AspectScale adjusts the derived height; 1.0 keeps the source
	// aspect ratio.
	AspectScale float64

	palette *Palette
}

// NewNativePreprocessor creates a native preprocessor dithering against
// the given palette. A nil palette defaults to the 256-color table with
// RGB distance.
func NewNativePreprocessor(p *Palette) *NativePreprocessor {
	if p == nil {
		p = NewPalette(RGBMethod{})
	}
	return &NativePreprocessor{
		AspectScale: DefaultAspectScale,
		palette:     p,
	}
}

// Prepare decodes, resizes, and optionally dithers the image in
// process.
func (n *NativePreprocessor) Prepare(path string, width int, dither bool) (*PixelBuffer, error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}

	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, path, err)
	}

	pw, ph := targetGeometry(img.Width(), img.Height(), width, n.AspectScale)
	prepared := imageutil.PrepareForBraille(img, pw, ph)

	if dither {
		edges := imageutil.DetectEdges(prepared)
		imageutil.FloydSteinberg(prepared, edges, paletteQuantizer(n.palette))
	}

	return BufferFromImage(prepared.RGBA), nil
}

// paletteQuantizer adapts a Palette to the quantize callback of the
// dithering pass.
func paletteQuantizer(p *Palette) func(imageutil.RGB) imageutil.RGB {
	return func(c imageutil.RGB) imageutil.RGB {
		q := p.Color(p.Nearest(RGB{R: c.R, G: c.G, B: c.B}))
		return imageutil.RGB{R: q.R, G: q.G, B: q.B}
	}
}
