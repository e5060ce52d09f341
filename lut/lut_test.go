package lut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/lut"
	"github.com/srlehn/pnmscale/raster"
)

func TestBuildClamps(t *testing.T) {
	tab := lut.Build(func(v int) int { return v*3 - 100 })
	assert.Equal(t, uint8(0), tab[0])
	assert.Equal(t, uint8(0), tab[33])
	assert.Equal(t, uint8(2), tab[34])
	assert.Equal(t, uint8(255), tab[200])
	assert.Equal(t, lut.Identity(), lut.Build(nil))
}

func TestMultiply(t *testing.T) {
	tab := lut.Multiply(1.9)
	assert.Equal(t, uint8(0), tab[0])
	// 10*1.9 = 19, 99*1.9 = 188.1 truncated
	assert.Equal(t, uint8(19), tab[10])
	assert.Equal(t, uint8(188), tab[99])
	assert.Equal(t, uint8(255), tab[135])
}

func TestStockTables(t *testing.T) {
	tests := map[string]struct {
		tab  lut.Table
		in   uint8
		want uint8
	}{
		"invert":          {lut.Invert(), 10, 245},
		"threshold below": {lut.Threshold(128), 127, 0},
		"threshold at":    {lut.Threshold(128), 128, 255},
		"brightness":      {lut.BrightnessContrast(1, 20), 250, 255},
		"contrast":        {lut.BrightnessContrast(2, -128), 100, 72},
		"gamma identity":  {lut.Gamma(1), 77, 77},
		"gamma brighten":  {lut.Gamma(2.2), 128, 186},
		"gamma invalid":   {lut.Gamma(0), 5, 5},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.tab[tc.in])
		})
	}
}

func TestApply(t *testing.T) {
	src, err := raster.FromSamples(2, 1, 3, []uint8{0, 1, 2, 253, 254, 255})
	require.NoError(t, err)
	out, err := lut.Apply(src, lut.Invert())
	require.NoError(t, err)
	assert.Equal(t, []uint8{255, 254, 253, 2, 1, 0}, out.Samples())
	// source untouched
	assert.Equal(t, uint8(0), src.Samples()[0])

	_, err = lut.Apply(nil, lut.Identity())
	assert.Error(t, err)

	inv := lut.Invert()
	assert.Error(t, inv.ApplyInPlace(nil))
	require.NoError(t, inv.ApplyInPlace(src))
	assert.Equal(t, uint8(255), src.Samples()[0])
}

func TestCompose(t *testing.T) {
	c := lut.Invert().Compose(lut.Invert())
	assert.Equal(t, lut.Identity(), c)
}

func TestByName(t *testing.T) {
	tab, err := lut.ByName(` Multiply`, 1.9)
	require.NoError(t, err)
	assert.Equal(t, lut.Multiply(1.9), tab)

	_, err = lut.ByName(`sharpen`, 0)
	assert.True(t, errors.Is(err, lut.ErrUnknownOp))
	assert.Contains(t, lut.Names(), `gamma`)
}
