// Package lut implements point operations through 256 entry lookup tables.
package lut

import (
	"math"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/raster"
)

// Table maps every 8-bit sample value to its replacement.
type Table [256]uint8

// Build evaluates op for every sample value and clamps the results to
// [0,255].
func Build(op func(int) int) Table {
	var t Table
	if op == nil {
		return Identity()
	}
	for v := range t {
		t[v] = clamp(op(v))
	}
	return t
}

// Apply returns a new raster with every sample mapped through t. All
// channels use the same table.
func Apply(r *raster.Raster, t Table) (*raster.Raster, error) {
	if err := errors.NilParam(r); err != nil {
		return nil, err
	}
	out := r.Clone()
	if err := t.ApplyInPlace(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyInPlace overwrites the samples of r.
func (t *Table) ApplyInPlace(r *raster.Raster) error {
	if err := errors.NilParam(t, r); err != nil {
		return err
	}
	s := r.Samples()
	for i, v := range s {
		s[i] = t[v]
	}
	return nil
}

// Compose returns the table applying t first, then u.
func (t Table) Compose(u Table) Table {
	var c Table
	for v := range c {
		c[v] = u[t[v]]
	}
	return c
}

func clamp(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

func Identity() Table {
	var t Table
	for v := range t {
		t[v] = uint8(v)
	}
	return t
}

// Multiply scales samples by f, truncating toward zero.
func Multiply(f float64) Table {
	return Build(func(v int) int { return int(float64(v) * f) })
}

func Invert() Table {
	return Build(func(v int) int { return 255 - v })
}

// Threshold maps samples below t to 0 and the rest to 255.
func Threshold(t int) Table {
	return Build(func(v int) int {
		if v < t {
			return 0
		}
		return 255
	})
}

// BrightnessContrast computes v*contrast + brightness, rounded.
func BrightnessContrast(contrast, brightness float64) Table {
	return Build(func(v int) int { return int(math.Round(float64(v)*contrast + brightness)) })
}

// Gamma applies 255*(v/255)^(1/g). Non-positive g yields the identity.
func Gamma(g float64) Table {
	if g <= 0 || math.IsNaN(g) {
		return Identity()
	}
	return Build(func(v int) int { return int(math.Round(255 * math.Pow(float64(v)/255, 1/g))) })
}
