package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	rsz "github.com/srlehn/pnmscale/resize"
)

func init() {
	for name, f := range map[string]resize.InterpolationFunction{
		`nfnt-nearest`:  resize.NearestNeighbor,
		`nfnt-bilinear`: resize.Bilinear,
		`nfnt-bicubic`:  resize.Bicubic,
		`nfnt-mitchell`: resize.MitchellNetravali,
		`nfnt-lanczos`:  resize.Lanczos3,
	} {
		f := f // per-iteration copy, go 1.21 loop semantics
		rsz.Register(name, func() rsz.Resizer { return &Resizer{Interp: f} })
	}
}

// Resizer uses "github.com/nfnt/resize"
type Resizer struct {
	Interp resize.InterpolationFunction
}

var _ rsz.Resizer = (*Resizer)(nil)

// Resize with the zero value Interp uses nearest neighbour.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := rsz.Check(img, size); err != nil {
		return nil, err
	}
	m := resize.Resize(uint(size.X), uint(size.Y), img, r.Interp)
	return m, nil
}
