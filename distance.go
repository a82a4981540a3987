package img2braille

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorDistanceMethod computes the perceptual distance between two RGB
// colors. Implementations must be deterministic: identical inputs yield
// identical distances, so nearest-palette lookups are reproducible.
type ColorDistanceMethod interface {
	Name() string
	Distance(a, b RGB) float64
}

// RGBMethod is squared Euclidean distance in RGB space. It is the
// default method.
type RGBMethod struct{}

func (RGBMethod) Name() string { return "RGB" }

func (RGBMethod) Distance(a, b RGB) float64 {
	dr := float64(int(a.R) - int(b.R))
	dg := float64(int(a.G) - int(b.G))
	db := float64(int(a.B) - int(b.B))
	return dr*dr + dg*dg + db*db
}

// RedmeanMethod is the "redmean" low-cost approximation to perceptual
// color distance. It weights the channels by the mean red level.
type RedmeanMethod struct{}

func (RedmeanMethod) Name() string { return "Redmean" }

func (RedmeanMethod) Distance(a, b RGB) float64 {
	rMean := (float64(a.R) + float64(b.R)) / 2
	dr := float64(int(a.R) - int(b.R))
	dg := float64(int(a.G) - int(b.G))
	db := float64(int(a.B) - int(b.B))
	return (2+rMean/256)*dr*dr + 4*dg*dg + (2+(255-rMean)/256)*db*db
}

// LABMethod measures distance in the CIE-L*a*b* color space.
type LABMethod struct{}

func (LABMethod) Name() string { return "LAB" }

func (LABMethod) Distance(a, b RGB) float64 {
	ca := colorful.Color{
		R: float64(a.R) / 255,
		G: float64(a.G) / 255,
		B: float64(a.B) / 255,
	}
	cb := colorful.Color{
		R: float64(b.R) / 255,
		G: float64(b.G) / 255,
		B: float64(b.B) / 255,
	}
	return ca.DistanceLab(cb)
}

// MethodByName resolves a method from its CLI spelling. Unknown names
// return false.
func MethodByName(name string) (ColorDistanceMethod, bool) {
	switch name {
	case "rgb", "RGB":
		return RGBMethod{}, true
	case "redmean", "Redmean":
		return RedmeanMethod{}, true
	case "lab", "LAB":
		return LABMethod{}, true
	}
	return nil, false
}
