// Package resample scales rasters along X and Y independently with
// nearest neighbour, bilinear or cubic convolution interpolation.
//
// Destination pixel (dx, dy) samples the source at (dx/scale.X, dy/scale.Y).
// Every channel is interpolated on its own, results are rounded half away
// from zero and clamped to [0,255]. The source raster is never modified.
package resample

import (
	"context"
	"errors"
	"math"

	errorsx "github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/internal/logx"
	"github.com/srlehn/pnmscale/kernel"
	"github.com/srlehn/pnmscale/raster"
)

var (
	ErrInvalidScale      = errors.New(`resample: invalid scale factor`)
	ErrDimensionOverflow = errors.New(`resample: output dimensions overflow`)
)

// ScaleFactor holds the per-axis magnification. 1 is the identity.
type ScaleFactor struct {
	X, Y float64
}

// Uniform scales both axes by f.
func Uniform(f float64) ScaleFactor { return ScaleFactor{X: f, Y: f} }

func (f ScaleFactor) valid() bool {
	return f.X > 0 && f.Y > 0 && !math.IsInf(f.X, 0) && !math.IsInf(f.Y, 0)
}

// OutputSize returns floor(width*X) and floor(height*Y).
func (f ScaleFactor) OutputSize(width, height int) (int, int, error) {
	if !f.valid() {
		// also rejects NaN
		return 0, 0, errorsx.Mark(ErrInvalidScale, `%vx%v`, f.X, f.Y)
	}
	w, err := scaledLen(width, f.X)
	if err != nil {
		return 0, 0, err
	}
	h, err := scaledLen(height, f.Y)
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// 2^63 as float64, the first value not representable as int64
const maxIntFloat = float64(1 << 63)

func scaledLen(n int, f float64) (int, error) {
	v := math.Floor(float64(n) * f)
	switch {
	case v < 1:
		return 0, errorsx.Mark(ErrInvalidScale, `%d*%v is below one pixel`, n, f)
	case v >= maxIntFloat || v > float64(math.MaxInt):
		return 0, errorsx.Mark(ErrDimensionOverflow, `%d*%v`, n, f)
	}
	return int(v), nil
}

// Resample returns a new raster of size floor(w*scale.X) x floor(h*scale.Y).
func Resample(src *raster.Raster, scale ScaleFactor, k kernel.Kind, opts ...Option) (*raster.Raster, error) {
	return ResampleContext(context.Background(), src, scale, k, opts...)
}

// ResampleContext is Resample with cancellation, checked once per output row.
func ResampleContext(ctx context.Context, src *raster.Raster, scale ScaleFactor, k kernel.Kind, opts ...Option) (*raster.Raster, error) {
	if err := errorsx.NilParam(ctx, src); err != nil {
		return nil, err
	}
	w, h, err := scale.OutputSize(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	return resample(ctx, src, w, h, scale, k, opts)
}

// ResampleTo scales src to exactly width x height. The scale factors are
// width/src.Width() and height/src.Height().
func ResampleTo(ctx context.Context, src *raster.Raster, width, height int, k kernel.Kind, opts ...Option) (*raster.Raster, error) {
	if err := errorsx.NilParam(ctx, src); err != nil {
		return nil, err
	}
	if width < 1 || height < 1 {
		return nil, errorsx.Mark(ErrInvalidScale, `target size %dx%d`, width, height)
	}
	scale := ScaleFactor{
		X: float64(width) / float64(src.Width()),
		Y: float64(height) / float64(src.Height()),
	}
	return resample(ctx, src, width, height, scale, k, opts)
}

func resample(ctx context.Context, src *raster.Raster, w, h int, scale ScaleFactor, k kernel.Kind, opts []Option) (*raster.Raster, error) {
	if !k.Valid() {
		return nil, errorsx.Mark(kernel.ErrUnknownKind, `%d`, k)
	}
	s, err := Resolve(opts...)
	if err != nil {
		return nil, err
	}
	n, ok := raster.ByteLen(w, h, src.Channels())
	if !ok {
		return nil, errorsx.Mark(ErrDimensionOverflow, `%dx%dx%d`, w, h, src.Channels())
	}
	if s.MemoryLimit > 0 && n > s.MemoryLimit {
		return nil, errorsx.Mark(ErrDimensionOverflow, `output needs %d bytes, limit is %d`, n, s.MemoryLimit)
	}
	dst, err := raster.New(w, h, src.Channels())
	if err != nil {
		return nil, errorsx.MarkWrap(ErrDimensionOverflow, err, `allocating %dx%d`, w, h)
	}

	e := newEngine(src, dst, scale, k, s)
	_, err = logx.TimeIt2(func() (struct{}, error) {
		return struct{}{}, e.run(ctx)
	}, `resample`, s,
		`kernel`, k.String(),
		`src`, [2]int{src.Width(), src.Height()},
		`dst`, [2]int{w, h},
		`channels`, src.Channels(),
		`workers`, s.Workers,
	)
	if err != nil {
		return nil, err
	}
	return dst, nil
}

func toSample(v float64) uint8 {
	v = math.Round(v)
	switch {
	case v >= 255:
		return 255
	case v > 0:
		return uint8(v)
	}
	// negative and NaN
	return 0
}

func clampi(x, lo, hi int) int {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}
