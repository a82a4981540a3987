package img2braille

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255.
type RGB struct {
	R, G, B uint8
}

// RGBA is an RGB color with an 8-bit alpha channel. It is the sample
// type of a PixelBuffer; alpha 0 means fully transparent.
type RGBA struct {
	R, G, B, A uint8
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// ToUint32 packs an RGB color into a 32-bit unsigned integer as 0xRRGGBB.
func (c RGB) ToUint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBFromUint32 unpacks a 0xRRGGBB value into an RGB color.
func RGBFromUint32(v uint32) RGB {
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Invert returns the channel-wise complement of the color.
func (c RGB) Invert() RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Luminance returns the Rec. 709 luminance of the color in the range
// [0, 255]. Integer math, scaled by 10000 to avoid floating point in
// the per-subpixel hot path.
func (c RGB) Luminance() int {
	return (2126*int(c.R) + 7152*int(c.G) + 722*int(c.B)) / 10000
}
