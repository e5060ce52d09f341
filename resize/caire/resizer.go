// Package caire resizes by seam carving, removing or inserting the
// lowest energy paths instead of interpolating. Content aware resizing is
// useful as a visual contrast to the interpolating backends.
package caire

import (
	"image"
	"image/draw"

	"github.com/esimov/caire"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/resize"
)

func init() {
	resize.Register(`caire-seam-carving`, func() resize.Resizer { return &Resizer{} })
}

type Resizer struct {
	// BlurRadius and SobelThreshold tune the energy map, defaults 1 and 4.
	BlurRadius     int
	SobelThreshold int
}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	p := &caire.Processor{
		BlurRadius:     r.BlurRadius,
		SobelThreshold: r.SobelThreshold,
		NewWidth:       size.X,
		NewHeight:      size.Y,
		FaceDetect:     false,
		ShapeType:      "circle",
	}
	if p.BlurRadius == 0 {
		p.BlurRadius = 1
	}
	if p.SobelThreshold == 0 {
		p.SobelThreshold = 4
	}
	nimg, ok := img.(*image.NRGBA)
	if !ok {
		b := img.Bounds()
		nimg = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nimg, nimg.Bounds(), img, b.Min, draw.Src)
	}
	m, err := p.Resize(nimg)
	if err != nil {
		return nil, errors.New(err)
	}
	return m, nil
}
