package img2braille

// brailleBase is the first code point of the Unicode Braille Patterns
// block; adding an 8-bit dot mask selects the glyph.
const brailleBase = 0x2800

// DotMask is an 8-bit Braille dot pattern in standard dot order:
// bits 0-2 are rows 0-2 of the left column, bits 3-5 are rows 0-2 of
// the right column, and bits 6 and 7 are row 3 left and right.
type DotMask uint8

// dotBit maps a (row, column) sub-pixel position to its mask bit.
var dotBit = [CellHeight][CellWidth]DotMask{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Rune returns the Braille glyph for the mask. Mask 0x00 is U+2800,
// the blank Braille cell, and 0xFF is U+28FF, the full cell.
func (m DotMask) Rune() rune {
	return rune(brailleBase + int(m))
}

// Invert returns the bitwise complement of the mask. Inverting twice
// reproduces the original pattern.
func (m DotMask) Invert() DotMask {
	return ^m
}

// cellMask computes the dot mask for the 2x4 cell whose top-left
// sub-pixel is (cx*CellWidth, cy*CellHeight). A sub-pixel is on when
// it is opaque and its luminance reaches the threshold. Transparent
// sub-pixels never set a dot.
func cellMask(buf *PixelBuffer, cx, cy int, threshold uint8) DotMask {
	var mask DotMask
	for row := 0; row < CellHeight; row++ {
		for col := 0; col < CellWidth; col++ {
			px := buf.At(cx*CellWidth+col, cy*CellHeight+row)
			if px.A < alphaCutoff {
				continue
			}
			if px.RGB().Luminance() >= int(threshold) {
				mask |= dotBit[row][col]
			}
		}
	}
	return mask
}

// alphaCutoff is the minimum alpha for a sub-pixel to participate in
// dot and color decisions.
const alphaCutoff = 128
