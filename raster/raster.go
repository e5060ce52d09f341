// Package raster provides the in-memory pixel buffer shared by the codec,
// the resampler and the point operations.
//
// A Raster owns a contiguous slice of 8-bit samples, stored row by row with
// interleaved channels (1 for grayscale, 3 for RGB). The length of the slice
// always equals Width*Height*Channels; the constructors refuse anything else.
package raster

import (
	"errors"
	"math/bits"
)

var (
	ErrInvalidDimensions = errors.New(`raster: invalid dimensions`)
	ErrChannels          = errors.New(`raster: unsupported channel count`)
	ErrSampleCount       = errors.New(`raster: sample count does not match dimensions`)
)

// Raster is an owned 8-bit pixel buffer.
type Raster struct {
	width    int
	height   int
	channels int
	samples  []uint8
}

// New allocates a zeroed raster.
func New(width, height, channels int) (*Raster, error) {
	n, err := checkDims(width, height, channels)
	if err != nil {
		return nil, err
	}
	return &Raster{
		width:    width,
		height:   height,
		channels: channels,
		samples:  make([]uint8, n),
	}, nil
}

// FromSamples takes ownership of samples; the caller must not modify the
// slice afterwards.
func FromSamples(width, height, channels int, samples []uint8) (*Raster, error) {
	n, err := checkDims(width, height, channels)
	if err != nil {
		return nil, err
	}
	if len(samples) != n {
		return nil, wrapf(ErrSampleCount, `%dx%dx%d needs %d samples, got %d`, width, height, channels, n, len(samples))
	}
	return &Raster{
		width:    width,
		height:   height,
		channels: channels,
		samples:  samples,
	}, nil
}

func checkDims(width, height, channels int) (int, error) {
	if channels != 1 && channels != 3 {
		return 0, wrapf(ErrChannels, `%d`, channels)
	}
	if width <= 0 || height <= 0 {
		return 0, wrapf(ErrInvalidDimensions, `%dx%d`, width, height)
	}
	n, ok := ByteLen(width, height, channels)
	if !ok {
		return 0, wrapf(ErrInvalidDimensions, `%dx%dx%d overflows`, width, height, channels)
	}
	return n, nil
}

// ByteLen returns width*height*channels and false if the product does not
// fit into an int or any factor is negative.
func ByteLen(width, height, channels int) (int, bool) {
	if width < 0 || height < 0 || channels < 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(width), uint64(height))
	if hi != 0 {
		return 0, false
	}
	hi, lo = bits.Mul64(lo, uint64(channels))
	if hi != 0 || lo > uint64(maxInt) {
		return 0, false
	}
	return int(lo), true
}

const maxInt = int(^uint(0) >> 1)

func (r *Raster) Width() int    { return r.width }
func (r *Raster) Height() int   { return r.height }
func (r *Raster) Channels() int { return r.channels }

// Len is the number of samples.
func (r *Raster) Len() int { return len(r.samples) }

// Stride is the number of samples per row.
func (r *Raster) Stride() int { return r.width * r.channels }

// Samples returns the backing sample slice. It must not be resliced.
func (r *Raster) Samples() []uint8 { return r.samples }

// Row returns the samples of row y.
func (r *Raster) Row(y int) []uint8 {
	if y < 0 || y >= r.height {
		return nil
	}
	s := r.Stride()
	return r.samples[y*s : (y+1)*s : (y+1)*s]
}

// Offset is the index of channel c of pixel (x, y) in Samples.
func (r *Raster) Offset(x, y, c int) int {
	return (y*r.width+x)*r.channels + c
}

func (r *Raster) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < r.width && y < r.height
}

// Sample returns channel c of pixel (x, y). It panics when out of bounds,
// just like slice indexing.
func (r *Raster) Sample(x, y, c int) uint8 {
	if !r.InBounds(x, y) || c < 0 || c >= r.channels {
		panic(`raster: sample index out of range`)
	}
	return r.samples[r.Offset(x, y, c)]
}

func (r *Raster) SetSample(x, y, c int, v uint8) {
	if !r.InBounds(x, y) || c < 0 || c >= r.channels {
		panic(`raster: sample index out of range`)
	}
	r.samples[r.Offset(x, y, c)] = v
}

// Clone returns a deep copy.
func (r *Raster) Clone() *Raster {
	if r == nil {
		return nil
	}
	s := make([]uint8, len(r.samples))
	copy(s, r.samples)
	return &Raster{width: r.width, height: r.height, channels: r.channels, samples: s}
}

// Equal reports whether both rasters have the same shape and samples.
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.width != o.width || r.height != o.height || r.channels != o.channels {
		return false
	}
	for i := range r.samples {
		if r.samples[i] != o.samples[i] {
			return false
		}
	}
	return true
}

// MeanAbsDiff is the mean absolute sample difference of two rasters of the
// same shape.
func MeanAbsDiff(a, b *Raster) (float64, error) {
	if a == nil || b == nil {
		return 0, wrapf(ErrInvalidDimensions, `nil raster`)
	}
	if a.width != b.width || a.height != b.height || a.channels != b.channels {
		return 0, wrapf(ErrInvalidDimensions, `shape %dx%dx%d vs %dx%dx%d`,
			a.width, a.height, a.channels, b.width, b.height, b.channels)
	}
	var sum uint64
	for i := range a.samples {
		d := int(a.samples[i]) - int(b.samples[i])
		if d < 0 {
			d = -d
		}
		sum += uint64(d)
	}
	return float64(sum) / float64(len(a.samples)), nil
}
