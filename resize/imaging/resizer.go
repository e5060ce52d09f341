package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/pnmscale/resize"
)

func init() {
	for name, f := range map[string]imaging.ResampleFilter{
		`imaging-nearest`:     imaging.NearestNeighbor,
		`imaging-linear`:      imaging.Linear,
		`imaging-catmull-rom`: imaging.CatmullRom,
		`imaging-lanczos`:     imaging.Lanczos,
	} {
		f := f // per-iteration copy, go 1.21 loop semantics
		resize.Register(name, func() resize.Resizer { return &Resizer{Filter: f} })
	}
}

// Resizer uses "github.com/disintegration/imaging". The zero Filter is
// nearest neighbour.
type Resizer struct {
	Filter imaging.ResampleFilter
}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	return imaging.Resize(img, size.X, size.Y, r.Filter), nil
}
