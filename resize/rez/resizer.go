package rez

import (
	"image"
	"image/draw"

	"github.com/bamiaux/rez"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/raster"
	"github.com/srlehn/pnmscale/resize"
)

func init() {
	resize.Register(`rez-bilinear`, func() resize.Resizer { return &Resizer{Filter: rez.NewBilinearFilter()} })
	resize.Register(`rez-bicubic`, func() resize.Resizer { return &Resizer{Filter: rez.NewBicubicFilter()} })
	resize.Register(`rez-lanczos`, func() resize.Resizer { return &Resizer{Filter: rez.NewLanczosFilter(3)} })
}

// Resizer uses "github.com/bamiaux/rez"
type Resizer struct {
	Filter rez.Filter
}

var _ resize.Resizer = (*Resizer)(nil)

// Resize converts the source to *image.Gray or *image.RGBA first, rez
// needs matching input and output types.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	filter := r.Filter
	if filter == nil {
		filter = rez.NewBilinearFilter()
	}
	rect := image.Rect(0, 0, size.X, size.Y)
	var src, dst image.Image
	switch it := img.(type) {
	case *raster.Raster:
		src = it.Image()
	case *image.Gray, *image.RGBA:
		src = it
	default:
		m := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
		draw.Draw(m, m.Bounds(), img, img.Bounds().Min, draw.Src)
		src = m
	}
	if _, isGray := src.(*image.Gray); isGray {
		dst = image.NewGray(rect)
	} else {
		dst = image.NewRGBA(rect)
	}
	if err := rez.Convert(dst, src, filter); err != nil {
		return nil, errors.New(err)
	}
	return dst, nil
}
