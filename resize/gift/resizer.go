package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/pnmscale/resize"
)

func init() {
	for name, rs := range map[string]gift.Resampling{
		`gift-nearest`: gift.NearestNeighborResampling,
		`gift-box`:     gift.BoxResampling,
		`gift-linear`:  gift.LinearResampling,
		`gift-cubic`:   gift.CubicResampling,
		`gift-lanczos`: gift.LanczosResampling,
	} {
		rs := rs // per-iteration copy, go 1.21 loop semantics
		resize.Register(name, func() resize.Resizer { return &Resizer{Resampling: rs} })
	}
}

// Resizer uses "github.com/disintegration/gift"
type Resizer struct {
	Resampling gift.Resampling
}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	rs := r.Resampling
	if rs == nil {
		rs = gift.LanczosResampling
	}
	m := image.NewNRGBA(image.Rectangle{Max: image.Point{X: size.X, Y: size.Y}})
	gift.New(gift.Resize(size.X, size.Y, rs)).Draw(m, img)
	return m, nil
}
