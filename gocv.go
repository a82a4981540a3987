package img2braille

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/wbrown/img2braille/imageutil"
)

// GocvPreprocessor decodes and resizes through OpenCV. It exists for
// formats and interpolation quality the pure Go path does not cover;
// the rest of the pipeline (sharpen, dither) is shared with the native
// backend.
type GocvPreprocessor struct {
	// AspectScale adjusts the derived height; 1.0 keeps the source
	// aspect ratio.
	AspectScale float64

	palette *Palette
}

// NewGocvPreprocessor creates an OpenCV-backed preprocessor dithering
// against the given palette. A nil palette defaults to the 256-color
// table with RGB distance.
func NewGocvPreprocessor(p *Palette) *GocvPreprocessor {
	if p == nil {
		p = NewPalette(RGBMethod{})
	}
	return &GocvPreprocessor{
		AspectScale: DefaultAspectScale,
		palette:     p,
	}
}

// Prepare reads the image with OpenCV, resizes with INTER_AREA, and
// hands off to the shared sharpen/dither pipeline.
func (g *GocvPreprocessor) Prepare(path string, width int, dither bool) (*PixelBuffer, error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}

	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		return nil, fmt.Errorf("%w: %s: could not read image", ErrUnreadableImage, path)
	}
	defer mat.Close()

	pw, ph := targetGeometry(mat.Cols(), mat.Rows(), width, g.AspectScale)

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(mat, &resized, image.Pt(pw, ph), 0, 0, gocv.InterpolationArea)

	// OpenCV Mats are BGR.
	img := imageutil.NewRGBAImage(pw, ph)
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			v := resized.GetVecbAt(y, x)
			img.SetRGB(x, y, imageutil.RGB{R: v[2], G: v[1], B: v[0]})
		}
	}

	img = imageutil.Sharpen(img)
	if dither {
		edges := imageutil.DetectEdges(img)
		imageutil.FloydSteinberg(img, edges, paletteQuantizer(g.palette))
	}

	return BufferFromImage(img.RGBA), nil
}
