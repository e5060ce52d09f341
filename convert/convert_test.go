package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/pnmscale/convert"
	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/raster"
)

func TestLuma(t *testing.T) {
	tests := map[string]struct {
		r, g, b uint8
		want    uint8
	}{
		"black": {0, 0, 0, 0},
		"white": {255, 255, 255, 255},
		"red":   {255, 0, 0, 77},
		"green": {0, 255, 0, 150},
		"blue":  {0, 0, 255, 28},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, convert.Luma(tc.r, tc.g, tc.b))
		})
	}
}

func TestRoundTripChannels(t *testing.T) {
	g, err := raster.FromSamples(3, 1, 1, []uint8{0, 128, 255})
	require.NoError(t, err)
	c, err := convert.ToColor(g)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 128, 128, 128, 255, 255, 255}, c.Samples())

	back, err := convert.ToGray(c)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))

	same, err := convert.To(g, 1)
	require.NoError(t, err)
	assert.True(t, g.Equal(same))
	assert.NotSame(t, g, same)

	_, err = convert.To(g, 2)
	assert.True(t, errors.Is(err, raster.ErrChannels))
}

func TestToBilevel(t *testing.T) {
	c, err := raster.FromSamples(2, 1, 3, []uint8{200, 200, 200, 10, 20, 30})
	require.NoError(t, err)
	b, err := convert.ToBilevel(c, 128)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Channels())
	assert.Equal(t, []uint8{255, 0}, b.Samples())

	_, err = convert.ToBilevel(nil, 1)
	assert.Error(t, err)
}
