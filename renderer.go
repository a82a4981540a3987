package img2braille

import "strings"

// Default tuning values. DefaultThreshold is the mid-gray luminance
// cutoff for the dot on/off decision.
const (
	DefaultWidth     = 80
	DefaultThreshold = 128
)

// Cell is one rendered character: a glyph and the palette index it is
// drawn with. Blank cells (fully transparent source) carry no color and
// render as an uncolored space.
type Cell struct {
	Rune  rune
	Color ColorIndex
	Blank bool
}

// Renderer converts a PixelBuffer into Braille cells and ANSI lines.
// It is a pure transform: no state survives a call, and rendering the
// same buffer twice yields byte-identical output.
type Renderer struct {
	// Threshold is the luminance cutoff for a sub-pixel dot.
	Threshold uint8
	// Invert complements the dot mask and the cell color.
	Invert bool
	// Background renders cells as colored background blocks rather
	// than colored Braille glyphs.
	Background bool

	palette *Palette
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer. Defaults: Threshold=128, foreground
// mode, no inversion, 256-color palette with RGB distance.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		Threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.palette == nil {
		r.palette = NewPalette(RGBMethod{})
	}
	return r
}

// WithThreshold sets the luminance cutoff for the dot decision.
func WithThreshold(threshold uint8) RendererOption {
	return func(r *Renderer) {
		r.Threshold = threshold
	}
}

// WithInvert enables inversion of the dot mask and cell color.
func WithInvert(invert bool) RendererOption {
	return func(r *Renderer) {
		r.Invert = invert
	}
}

// WithBackground enables background-color render mode.
func WithBackground(background bool) RendererOption {
	return func(r *Renderer) {
		r.Background = background
	}
}

// WithPalette sets the palette used for nearest-color mapping.
func WithPalette(p *Palette) RendererOption {
	return func(r *Renderer) {
		r.palette = p
	}
}

// WithColorMethod builds the palette with the given distance method.
func WithColorMethod(method ColorDistanceMethod) RendererOption {
	return func(r *Renderer) {
		r.palette = NewPalette(method)
	}
}

// Palette returns the palette the renderer maps colors with.
func (r *Renderer) Palette() *Palette {
	return r.palette
}

// RenderCells converts the buffer into a grid of height/4 rows by
// width/2 cells. The buffer dimensions must be exact multiples of the
// 2x4 cell grid or ErrInvalidInput is returned.
func (r *Renderer) RenderCells(buf *PixelBuffer) ([][]Cell, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	rows := buf.H / CellHeight
	cols := buf.W / CellWidth
	cells := make([][]Cell, rows)
	for cy := 0; cy < rows; cy++ {
		cells[cy] = make([]Cell, cols)
		for cx := 0; cx < cols; cx++ {
			cells[cy][cx] = r.renderCell(buf, cx, cy)
		}
	}
	return cells, nil
}

// renderCell computes the glyph and color for one 2x4 cell.
func (r *Renderer) renderCell(buf *PixelBuffer, cx, cy int) Cell {
	mask := cellMask(buf, cx, cy, r.Threshold)
	if r.Invert {
		mask = mask.Invert()
	}

	// Accumulate the mean color of the on sub-pixels and of the whole
	// cell. Transparent sub-pixels are excluded from both.
	var onR, onG, onB, onN int
	var allR, allG, allB, allN int
	for row := 0; row < CellHeight; row++ {
		for col := 0; col < CellWidth; col++ {
			px := buf.At(cx*CellWidth+col, cy*CellHeight+row)
			if px.A < alphaCutoff {
				continue
			}
			allR += int(px.R)
			allG += int(px.G)
			allB += int(px.B)
			allN++
			if mask&dotBit[row][col] != 0 {
				onR += int(px.R)
				onG += int(px.G)
				onB += int(px.B)
				onN++
			}
		}
	}

	if allN == 0 {
		return Cell{Rune: ' ', Blank: true}
	}

	var c RGB
	switch {
	case r.Background:
		// Background mode colors the cell as a whole.
		c = RGB{
			R: uint8(allR / allN),
			G: uint8(allG / allN),
			B: uint8(allB / allN),
		}
	case onN > 0:
		c = RGB{
			R: uint8(onR / onN),
			G: uint8(onG / onN),
			B: uint8(onB / onN),
		}
	default:
		// No dots on; fall back to the cell average so an escape is
		// still well defined.
		c = RGB{
			R: uint8(allR / allN),
			G: uint8(allG / allN),
			B: uint8(allB / allN),
		}
	}
	if r.Invert {
		c = c.Invert()
	}

	glyph := mask.Rune()
	if r.Background {
		glyph = ' '
	}
	return Cell{Rune: glyph, Color: r.palette.Nearest(c)}
}

// RenderLines renders the buffer to one ANSI string per cell row. Each
// line ends with a reset sequence; no color state leaks between lines.
func (r *Renderer) RenderLines(buf *PixelBuffer) ([]string, error) {
	cells, err := r.RenderCells(buf)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(cells))
	for i, row := range cells {
		lines[i] = renderLine(row, r.Background)
	}
	return lines, nil
}

// Render renders the buffer to a single newline-terminated ANSI string.
func (r *Renderer) Render(buf *PixelBuffer) (string, error) {
	lines, err := r.RenderLines(buf)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
