// Package native adapts the resample package to the resize.Resizer
// interface.
package native

import (
	"context"
	"image"

	"github.com/srlehn/pnmscale/kernel"
	"github.com/srlehn/pnmscale/raster"
	"github.com/srlehn/pnmscale/resample"
	"github.com/srlehn/pnmscale/resize"
)

func init() {
	for _, k := range kernel.Kinds() {
		k := k // per-iteration copy, go 1.21 loop semantics
		resize.Register(`native-`+k.String(), func() resize.Resizer { return New(k) })
	}
}

// Resizer scales with the given kernel. The result is a *raster.Raster,
// alpha is dropped.
type Resizer struct {
	Kind    kernel.Kind
	Options []resample.Option
}

var _ resize.Resizer = (*Resizer)(nil)

func New(k kernel.Kind, opts ...resample.Option) *Resizer {
	return &Resizer{Kind: k, Options: opts}
}

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return r.ResizeContext(context.Background(), img, size)
}

func (r *Resizer) ResizeContext(ctx context.Context, img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	src, ok := img.(*raster.Raster)
	if !ok {
		var err error
		if src, err = raster.FromImage(img, 0); err != nil {
			return nil, err
		}
	}
	dst, err := resample.ResampleTo(ctx, src, size.X, size.Y, r.Kind, r.Options...)
	if err != nil {
		return nil, err
	}
	return dst, nil
}
