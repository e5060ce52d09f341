package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/pnmscale/resize"
)

func init() {
	for name, f := range map[string]transform.ResampleFilter{
		`bild-nearest`:     transform.NearestNeighbor,
		`bild-linear`:      transform.Linear,
		`bild-mitchell`:    transform.MitchellNetravali,
		`bild-catmull-rom`: transform.CatmullRom,
		`bild-lanczos`:     transform.Lanczos,
	} {
		f := f // per-iteration copy, go 1.21 loop semantics
		resize.Register(name, func() resize.Resizer { return &Resizer{Filter: f} })
	}
}

// Resizer uses "github.com/anthonynsimon/bild/transform". The zero Filter
// is nearest neighbour.
type Resizer struct {
	Filter transform.ResampleFilter
}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	m := transform.Resize(img, size.X, size.Y, r.Filter)
	return m, nil
}
