package imageutil

// FloydSteinberg applies Floyd-Steinberg error diffusion in place,
// quantizing each pixel with the supplied function and distributing the
// residual to the unvisited neighbors. If edges is non-nil, diffusion
// is halved at edge pixels so detail does not smear across boundaries.
// Transparent pixels (alpha below 128) are skipped entirely.
func FloydSteinberg(img *RGBAImage, edges *GrayImage, quantize func(RGB) RGB) {
	width, height := img.Width(), img.Height()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if img.RGBAAt(x, y).A < 128 {
				continue
			}
			old := img.GetRGB(x, y)
			quantized := quantize(old)
			img.SetRGBKeepAlpha(x, y, quantized)

			errR := float64(old.R) - float64(quantized.R)
			errG := float64(old.G) - float64(quantized.G)
			errB := float64(old.B) - float64(quantized.B)

			scale := 1.0
			if edges != nil && edges.GetGray(x, y) > 128 {
				scale = 0.5
			}

			diffuse(img, x+1, y, errR, errG, errB, 7.0/16.0*scale)
			diffuse(img, x-1, y+1, errR, errG, errB, 3.0/16.0*scale)
			diffuse(img, x, y+1, errR, errG, errB, 5.0/16.0*scale)
			diffuse(img, x+1, y+1, errR, errG, errB, 1.0/16.0*scale)
		}
	}
}

// diffuse adds a scaled error term to the pixel at (x, y), clamping
// each channel to [0, 255]. Out-of-bounds and transparent pixels are
// ignored.
func diffuse(img *RGBAImage, x, y int, errR, errG, errB, factor float64) {
	if x < 0 || x >= img.Width() || y < 0 || y >= img.Height() {
		return
	}
	if img.RGBAAt(x, y).A < 128 {
		return
	}
	c := img.GetRGB(x, y)
	img.SetRGBKeepAlpha(x, y, RGB{
		R: clampUint8(float64(c.R) + errR*factor),
		G: clampUint8(float64(c.G) + errG*factor),
		B: clampUint8(float64(c.B) + errB*factor),
	})
}
