// Package pnmscale is the pipeline facade: decode a PNM file, resample it
// and encode the result.
//
//	r, v, err := pnmscale.DecodeFile(`in.pgm`)
//	out, err := pnmscale.Resample(r, pnmscale.ScaleFactor{X: 2, Y: 2}, kernel.CubicConvolution)
//	err = pnmscale.EncodeFile(out, v, `out.pgm`)
package pnmscale

import (
	"context"

	"github.com/srlehn/pnmscale/internal/logx"
	"github.com/srlehn/pnmscale/kernel"
	"github.com/srlehn/pnmscale/pnm"
	"github.com/srlehn/pnmscale/raster"
	"github.com/srlehn/pnmscale/resample"
)

type (
	ScaleFactor = resample.ScaleFactor
	Option      = resample.Option
)

// DecodeFile reads a binary PNM file.
func DecodeFile(path string) (*raster.Raster, pnm.Variant, error) {
	return pnm.DecodeFile(path)
}

// Resample scales r by the given factors.
func Resample(r *raster.Raster, scale ScaleFactor, k kernel.Kind, opts ...Option) (*raster.Raster, error) {
	return resample.Resample(r, scale, k, opts...)
}

// EncodeFile writes r as variant v.
func EncodeFile(r *raster.Raster, v pnm.Variant, path string) error {
	return pnm.EncodeFile(r, v, path)
}

// Scale runs the whole pipeline, the output keeps the input variant.
// Bi-level input is scaled as gray and thresholded again on encoding.
func Scale(ctx context.Context, in, out string, scale ScaleFactor, k kernel.Kind, opts ...Option) error {
	s, err := resample.Resolve(opts...)
	if err != nil {
		return err
	}
	r, v, err := DecodeFile(in)
	if err != nil {
		return err
	}
	logx.Debug(`decoded`, s, `path`, in, `variant`, v, `width`, r.Width(), `height`, r.Height())

	res, err := resample.ResampleContext(ctx, r, scale, k, opts...)
	if err != nil {
		return err
	}
	if err := EncodeFile(res, v, out); err != nil {
		return err
	}
	logx.Info(`scaled`, s, `in`, in, `out`, out, `kernel`, k.String(), `width`, res.Width(), `height`, res.Height())
	return nil
}
