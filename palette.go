package img2braille

// ColorIndex identifies one of the 256 terminal palette entries.
type ColorIndex uint8

// PaletteSize is the number of entries in the terminal palette:
// 16 system colors, a 6x6x6 color cube, and a 24-step grayscale ramp.
const PaletteSize = 256

// systemColors are the RGB values of the 16 system palette entries as
// rendered by xterm. Terminals may theme these, but the mapping has to
// be computed against some fixed table to stay deterministic.
var systemColors = [16]uint32{
	0x000000, 0x800000, 0x008000, 0x808000,
	0x000080, 0x800080, 0x008080, 0xc0c0c0,
	0x808080, 0xff0000, 0x00ff00, 0xffff00,
	0x0000ff, 0xff00ff, 0x00ffff, 0xffffff,
}

// cubeLevels are the channel values of the 6x6x6 color cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// Palette maps RGB colors to terminal palette indices using a
// configurable distance method. The table itself is fixed; a small memo
// map caches exact lookups, mirroring the original tool's per-image
// color cache.
type Palette struct {
	table  [PaletteSize]RGB
	method ColorDistanceMethod
	memo   map[RGB]ColorIndex
}

// NewPalette builds the 256-entry table with the given distance method.
// A nil method defaults to RGBMethod.
func NewPalette(method ColorDistanceMethod) *Palette {
	if method == nil {
		method = RGBMethod{}
	}
	p := &Palette{
		method: method,
		memo:   make(map[RGB]ColorIndex),
	}
	for i, v := range systemColors {
		p.table[i] = RGBFromUint32(v)
	}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p.table[16+36*r+6*g+b] = RGB{
					R: cubeLevels[r],
					G: cubeLevels[g],
					B: cubeLevels[b],
				}
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		p.table[232+i] = RGB{R: v, G: v, B: v}
	}
	return p
}

// Method returns the distance method the palette was built with.
func (p *Palette) Method() ColorDistanceMethod {
	return p.method
}

// Color returns the RGB value of a palette entry.
func (p *Palette) Color(idx ColorIndex) RGB {
	return p.table[idx]
}

// Nearest returns the palette index closest to the given color. The
// scan is over all 256 entries in index order; ties keep the lowest
// index, so the result is deterministic for identical inputs.
func (p *Palette) Nearest(c RGB) ColorIndex {
	if idx, ok := p.memo[c]; ok {
		return idx
	}
	best := ColorIndex(0)
	bestDist := p.method.Distance(c, p.table[0])
	for i := 1; i < PaletteSize; i++ {
		d := p.method.Distance(c, p.table[i])
		if d < bestDist {
			bestDist = d
			best = ColorIndex(i)
		}
	}
	p.memo[c] = best
	return best
}
