package img2braille

import (
	"fmt"
	"io"
)

// SelfTest writes a 256-color capability check to w: the 16 system
// colors, the 6x6x6 color cube, the grayscale ramp, a Braille glyph
// sample, and a small RGB-to-index accuracy table. Every palette index
// appears at least once as a background swatch.
func SelfTest(w io.Writer, p *Palette) {
	if p == nil {
		p = NewPalette(RGBMethod{})
	}

	fmt.Fprintln(w, "256-color terminal support test")

	fmt.Fprintln(w, "\nSystem colors (0-15):")
	for i := 0; i < 16; i++ {
		fmt.Fprintf(w, "%s   %s", BgEscape(ColorIndex(i)), Reset)
		if i == 7 || i == 15 {
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w, "\nColor cube (16-231):")
	for g := 0; g < 6; g++ {
		for r := 0; r < 6; r++ {
			fmt.Fprintf(w, "R%dG%d: ", r, g)
			for b := 0; b < 6; b++ {
				idx := ColorIndex(16 + 36*r + 6*g + b)
				fmt.Fprintf(w, "%s  %s", BgEscape(idx), Reset)
			}
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\nGrayscale ramp (232-255):")
	for i := 232; i < 256; i++ {
		fmt.Fprintf(w, "%s  %s", BgEscape(ColorIndex(i)), Reset)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "\nBraille glyphs:")
	for i := 0; i < 32; i++ {
		fmt.Fprintf(w, "%c ", DotMask(i).Rune())
		if i%16 == 15 {
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w, "\nColor accuracy:")
	probes := []RGB{
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{255, 255, 0},
		{255, 0, 255},
		{0, 255, 255},
	}
	for _, c := range probes {
		idx := p.Nearest(c)
		fmt.Fprintf(w, "%s RGB(%3d,%3d,%3d) -> %3d %s\n",
			BgEscape(idx), c.R, c.G, c.B, idx, Reset)
	}
}
