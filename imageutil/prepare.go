package imageutil

// PrepareForBraille resizes an image to the exact sub-pixel geometry of
// a Braille cell grid and applies mild sharpening so dot thresholding
// keeps fine detail. width and height are the target pixel dimensions
// (characters*2 by rows*4); the caller guarantees the multiples.
func PrepareForBraille(img *RGBAImage, width, height int) *RGBAImage {
	resized := Resize(img, width, height, InterpolationArea)
	return Sharpen(resized)
}

// DetectEdges produces a binary edge map of the image via Canny edge
// detection. The dithering pass uses it to damp error diffusion across
// edges.
func DetectEdges(img *RGBAImage) *GrayImage {
	return CannyDefault(ToGrayscale(img))
}
