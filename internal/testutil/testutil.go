// Package testutil builds deterministic rasters for tests.
package testutil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/srlehn/pnmscale/internal/pattern"
	"github.com/srlehn/pnmscale/raster"
)

// Noise returns a raster filled with pseudo random samples.
func Noise(t testing.TB, width, height, channels int, seed int64) *raster.Raster {
	t.Helper()
	r, err := raster.New(width, height, channels)
	require.NoError(t, err)
	rnd := rand.New(rand.NewSource(seed))
	rnd.Read(r.Samples())
	return r
}

// Checkerboard alternates black and white one pixel squares.
func Checkerboard(t testing.TB, width, height, channels int) *raster.Raster {
	return Pattern(t, pattern.Checker, width, height, 1, channels)
}

// Gradient is a smooth two axis color ramp.
func Gradient(t testing.TB, width, height, channels int) *raster.Raster {
	return Pattern(t, pattern.Gradient, width, height, 1, channels)
}

func Pattern(t testing.TB, k pattern.Kind, width, height, cell, channels int) *raster.Raster {
	t.Helper()
	img, err := pattern.Draw(k, width, height, cell)
	require.NoError(t, err)
	r, err := raster.FromImage(img, channels)
	require.NoError(t, err)
	return r
}

// Fill returns a raster with every sample set to v.
func Fill(t testing.TB, width, height, channels int, v uint8) *raster.Raster {
	t.Helper()
	r, err := raster.New(width, height, channels)
	require.NoError(t, err)
	s := r.Samples()
	for i := range s {
		s[i] = v
	}
	return r
}
