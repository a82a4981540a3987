package imageutil

import "image/color"

// ToGrayscale converts an RGBA image to grayscale using the BT.601
// luminance formula Y = 0.299*R + 0.587*G + 0.114*B. Integer math,
// scaled by 1000.
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
			if lum > 255 {
				lum = 255
			}
			gray.Gray.SetGray(x, y, color.Gray{Y: uint8(lum)})
		}
	}

	return gray
}
