package raster_test

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/raster"
)

func TestNewRejectsBadShapes(t *testing.T) {
	tests := map[string]struct {
		w, h, c int
		want    error
	}{
		"zero width":    {0, 4, 1, raster.ErrInvalidDimensions},
		"negative":      {4, -1, 1, raster.ErrInvalidDimensions},
		"two channels":  {4, 4, 2, raster.ErrChannels},
		"four channels": {4, 4, 4, raster.ErrChannels},
		"overflow":      {math.MaxInt / 2, 4, 3, raster.ErrInvalidDimensions},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := raster.New(tc.w, tc.h, tc.c)
			assert.Nil(t, r)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestFromSamplesLength(t *testing.T) {
	_, err := raster.FromSamples(2, 2, 3, make([]uint8, 11))
	assert.True(t, errors.Is(err, raster.ErrSampleCount))

	r, err := raster.FromSamples(2, 2, 3, make([]uint8, 12))
	require.NoError(t, err)
	assert.Equal(t, 12, r.Len())
	assert.Equal(t, 6, r.Stride())
}

func TestSampleAccess(t *testing.T) {
	r, err := raster.FromSamples(3, 2, 3, []uint8{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 11, 12, 13, 14, 15, 16, 17, 18,
	})
	require.NoError(t, err)
	assert.Equal(t, uint8(14), r.Sample(1, 1, 1))
	assert.Equal(t, []uint8{10, 11, 12, 13, 14, 15, 16, 17, 18}, r.Row(1))
	assert.Nil(t, r.Row(2))
	assert.Panics(t, func() { r.Sample(3, 0, 0) })

	r.SetSample(2, 0, 2, 99)
	assert.Equal(t, uint8(99), r.Samples()[8])
}

func TestCloneIsIndependent(t *testing.T) {
	r, err := raster.FromSamples(2, 1, 1, []uint8{1, 2})
	require.NoError(t, err)
	c := r.Clone()
	require.True(t, r.Equal(c))
	c.SetSample(0, 0, 0, 7)
	assert.False(t, r.Equal(c))
	assert.Equal(t, uint8(1), r.Sample(0, 0, 0))
}

func TestImageAdapter(t *testing.T) {
	r, err := raster.FromSamples(2, 1, 3, []uint8{255, 0, 0, 0, 0, 255})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 1), r.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, r.At(0, 0))
	assert.Equal(t, color.RGBA{}, r.At(5, 5))

	m := r.Image()
	back, err := raster.FromImage(m, 3)
	require.NoError(t, err)
	assert.True(t, r.Equal(back))

	gray, err := raster.FromImage(r, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, gray.Channels())
}

func TestFromImageSubImage(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range g.Pix {
		g.Pix[i] = uint8(i)
	}
	sub := g.SubImage(image.Rect(1, 1, 3, 3))
	r, err := raster.FromImage(sub, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Channels())
	assert.Equal(t, []uint8{5, 6, 9, 10}, r.Samples())
}

func TestMeanAbsDiff(t *testing.T) {
	a, _ := raster.FromSamples(2, 1, 1, []uint8{10, 20})
	b, _ := raster.FromSamples(2, 1, 1, []uint8{14, 10})
	d, err := raster.MeanAbsDiff(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, d, 1e-9)

	c, _ := raster.New(1, 1, 1)
	_, err = raster.MeanAbsDiff(a, c)
	assert.Error(t, err)
}
