package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, the closest pure-Go
	// equivalent to OpenCV's INTER_AREA for downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	InterpolationNearest
)

func scalerFor(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	scalerFor(interp).Scale(dst.RGBA, image.Rect(0, 0, width, height),
		img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeGray resizes a grayscale image to the specified dimensions.
func ResizeGray(img *GrayImage, width, height int, interp Interpolation) *GrayImage {
	dst := NewGrayImage(width, height)
	scalerFor(interp).Scale(dst.Gray, image.Rect(0, 0, width, height),
		img.Gray, img.Bounds(), draw.Src, nil)
	return dst
}
