package img2braille

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/wbrown/img2braille/imageutil"
)

// PNGOptions configures PNG export of a rendered cell grid.
type PNGOptions struct {
	// FontPath names a TrueType font to rasterize the Braille glyphs
	// with. Empty selects geometric rendering: each dot drawn as a
	// filled square.
	FontPath string
	// Scale is the output pixels per sub-pixel (cell is 2*Scale by
	// 4*Scale). Values below 1 become DefaultPNGScale.
	Scale int
	// Background fills whole cells with their color instead of
	// drawing dots.
	Background bool
}

// DefaultPNGScale is the pixel size of one Braille dot in exported
// PNGs.
const DefaultPNGScale = 4

// WritePNG renders a cell grid to a PNG file, resolving palette
// indices back to RGB through the palette the cells were rendered
// with.
func WritePNG(cells [][]Cell, p *Palette, path string, opts PNGOptions) error {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return fmt.Errorf("%w: empty cell grid", ErrInvalidInput)
	}
	if opts.Scale < 1 {
		opts.Scale = DefaultPNGScale
	}

	cellW := CellWidth * opts.Scale
	cellH := CellHeight * opts.Scale
	rows, cols := len(cells), len(cells[0])
	out := imageutil.NewRGBAImage(cols*cellW, rows*cellH)

	var raster *glyphRaster
	if opts.FontPath != "" && !opts.Background {
		var err error
		raster, err = newGlyphRaster(opts.FontPath, cellW, cellH)
		if err != nil {
			return err
		}
	}

	for cy, row := range cells {
		for cx, cell := range row {
			if cell.Blank {
				continue
			}
			c := p.Color(cell.Color)
			rgb := imageutil.RGB{R: c.R, G: c.G, B: c.B}
			x0, y0 := cx*cellW, cy*cellH

			switch {
			case opts.Background:
				fillRect(out, x0, y0, cellW, cellH, rgb)
			case raster != nil:
				drawGlyph(out, raster.mask(cell.Rune), x0, y0, rgb)
			default:
				drawDots(out, cell.Rune, x0, y0, opts.Scale, rgb)
			}
		}
	}

	return imageutil.SavePNG(out.RGBA, path)
}

// drawDots draws the dot pattern encoded in a Braille glyph as filled
// squares.
func drawDots(out *imageutil.RGBAImage, glyph rune, x0, y0, scale int, c imageutil.RGB) {
	mask := DotMask(glyph - brailleBase)
	for row := 0; row < CellHeight; row++ {
		for col := 0; col < CellWidth; col++ {
			if mask&dotBit[row][col] == 0 {
				continue
			}
			fillRect(out, x0+col*scale, y0+row*scale, scale, scale, c)
		}
	}
}

// drawGlyph paints the rasterized glyph coverage in the cell color.
// The 25% alpha cutoff keeps anti-aliased dot edges from disappearing.
func drawGlyph(out *imageutil.RGBAImage, mask *image.Alpha, x0, y0 int, c imageutil.RGB) {
	bounds := mask.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if mask.AlphaAt(x, y).A > 64 {
				out.SetRGB(x0+x, y0+y, c)
			}
		}
	}
}

func fillRect(out *imageutil.RGBAImage, x0, y0, w, h int, c imageutil.RGB) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			out.SetRGB(x, y, c)
		}
	}
}

// glyphRaster rasterizes Braille runes from a TrueType font into
// cell-sized alpha masks, cached per rune.
type glyphRaster struct {
	ttf   *truetype.Font
	w, h  int
	cache map[rune]*image.Alpha
}

func newGlyphRaster(path string, w, h int) (*glyphRaster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	ttf, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &glyphRaster{
		ttf:   ttf,
		w:     w,
		h:     h,
		cache: make(map[rune]*image.Alpha),
	}, nil
}

// mask returns the alpha coverage of one glyph, rendering and caching
// it on first use.
func (g *glyphRaster) mask(r rune) *image.Alpha {
	if m, ok := g.cache[r]; ok {
		return m
	}

	m := image.NewAlpha(image.Rect(0, 0, g.w, g.h))

	face := truetype.NewFace(g.ttf, &truetype.Options{
		Size:    float64(g.h),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(g.ttf)
	ctx.SetFontSize(float64(g.h))
	ctx.SetClip(m.Bounds())
	ctx.SetDst(m)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	// Center the baseline from the face metrics so row-3 dots are not
	// clipped.
	metrics := face.Metrics()
	ascent := int(metrics.Ascent >> 6)
	descent := int(metrics.Descent >> 6)
	baselineY := (g.h + ascent - descent) / 2

	if _, err := ctx.DrawString(string(r), freetype.Pt(0, baselineY)); err != nil {
		// Leave the mask empty; the cell renders blank.
		m = image.NewAlpha(image.Rect(0, 0, g.w, g.h))
	}

	g.cache[r] = m
	return m
}
