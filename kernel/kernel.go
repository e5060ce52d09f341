// Package kernel holds the interpolation weight functions used by the
// resampler. Every function takes the signed distance between a sample
// position and a source pixel center and returns 0 at and beyond its
// support radius.
package kernel

import (
	"math"
)

// DefaultCubicA is the conventional cubic convolution coefficient.
const DefaultCubicA = -1.0

// Filter pairs a weight function with its support radius.
type Filter struct {
	// Apply returns the weight for a signed distance.
	Apply func(float64) float64
	// Range outside (-Support,Support) is zero.
	Support float64
}

// NearestWeight is the box function. The resampler implements nearest
// neighbour by rounding the sample position instead of evaluating this.
func NearestWeight(d float64) float64 {
	if math.Abs(d) < 0.5 {
		return 1
	}
	return 0
}

// BilinearWeight is the triangle function.
func BilinearWeight(d float64) float64 {
	d = math.Abs(d)
	if d < 1 {
		return 1 - d
	}
	return 0
}

// CubicWeight returns the two-piece cubic convolution kernel
//
//	(a+2)|d|³ - (a+3)|d|² + 1      for 0 <= |d| < 1
//	a|d|³ - 5a|d|² + 8a|d| - 4a    for 1 <= |d| < 2
//	0                              for |d| >= 2
func CubicWeight(a float64) func(float64) float64 {
	return func(d float64) float64 {
		d = math.Abs(d)
		switch {
		case d < 1:
			return cubicInner(a, d)
		case d < 2:
			return cubicOuter(a, d)
		}
		return 0
	}
}

func cubicInner(a, d float64) float64 {
	return ((a+2)*d-(a+3))*d*d + 1
}

func cubicOuter(a, d float64) float64 {
	return ((a*d-5*a)*d+8*a)*d - 4*a
}

var (
	BoxFilter      = Filter{Apply: NearestWeight, Support: 0.5}
	TriangleFilter = Filter{Apply: BilinearWeight, Support: 1}
)

// CubicFilter returns the cubic convolution filter for coefficient a.
func CubicFilter(a float64) Filter {
	return Filter{Apply: CubicWeight(a), Support: 2}
}
