// Package convert changes the channel layout of rasters.
package convert

import (
	"math"

	"github.com/srlehn/pnmscale/internal/consts"
	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/raster"
)

// Luma weights of the gray conversion.
const (
	WeightR = 0.3
	WeightG = 0.59
	WeightB = 0.11
)

// Luma returns the rounded weighted sum of an RGB triple.
func Luma(r, g, b uint8) uint8 {
	v := math.Round(WeightR*float64(r) + WeightG*float64(g) + WeightB*float64(b))
	return uint8(min(v, consts.MaxSample))
}

// ToGray returns a single-channel copy. Gray input is cloned.
func ToGray(r *raster.Raster) (*raster.Raster, error) {
	if err := errors.NilParam(r); err != nil {
		return nil, err
	}
	if r.Channels() == consts.ChannelsGray {
		return r.Clone(), nil
	}
	out, err := raster.New(r.Width(), r.Height(), consts.ChannelsGray)
	if err != nil {
		return nil, err
	}
	src, dst := r.Samples(), out.Samples()
	for i := range dst {
		p := src[i*3 : i*3+3]
		dst[i] = Luma(p[0], p[1], p[2])
	}
	return out, nil
}

// ToColor replicates the gray channel into R, G and B. Color input is
// cloned.
func ToColor(r *raster.Raster) (*raster.Raster, error) {
	if err := errors.NilParam(r); err != nil {
		return nil, err
	}
	if r.Channels() == consts.ChannelsColor {
		return r.Clone(), nil
	}
	out, err := raster.New(r.Width(), r.Height(), consts.ChannelsColor)
	if err != nil {
		return nil, err
	}
	dst := out.Samples()
	for i, v := range r.Samples() {
		dst[i*3], dst[i*3+1], dst[i*3+2] = v, v, v
	}
	return out, nil
}

// ToBilevel converts to gray and maps samples below threshold to 0 and the
// rest to 255.
func ToBilevel(r *raster.Raster, threshold uint8) (*raster.Raster, error) {
	out, err := ToGray(r)
	if err != nil {
		return nil, err
	}
	s := out.Samples()
	for i, v := range s {
		if v < threshold {
			s[i] = 0
		} else {
			s[i] = 255
		}
	}
	return out, nil
}

// To converts r to the given channel count.
func To(r *raster.Raster, channels int) (*raster.Raster, error) {
	switch channels {
	case consts.ChannelsGray:
		return ToGray(r)
	case consts.ChannelsColor:
		return ToColor(r)
	}
	return nil, errors.Mark(raster.ErrChannels, `%d`, channels)
}
