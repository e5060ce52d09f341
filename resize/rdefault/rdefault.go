// Package rdefault picks a resizer by source type: opaque images go through
// the native cubic convolution resampler, images with transparency through
// x/image/draw, which keeps the alpha channel.
package rdefault

import (
	"image"

	"github.com/srlehn/pnmscale/internal/consts"
	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/kernel"
	"github.com/srlehn/pnmscale/raster"
	"github.com/srlehn/pnmscale/resize"
	"github.com/srlehn/pnmscale/resize/native"
	"github.com/srlehn/pnmscale/resize/xdraw"
)

func init() {
	resize.Register(`default`, func() resize.Resizer { return &Resizer{} })
}

type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	switch it := img.(type) {
	case *raster.Raster, *image.Gray, *image.YCbCr:
		return native.New(kernel.CubicConvolution).Resize(img, size)
	case interface{ Opaque() bool }:
		if it.Opaque() {
			return native.New(kernel.CubicConvolution).Resize(img, size)
		}
	}
	return xdraw.CatmullRom().Resize(img, size)
}
