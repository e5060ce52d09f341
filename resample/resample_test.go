package resample_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/internal/testutil"
	"github.com/srlehn/pnmscale/kernel"
	"github.com/srlehn/pnmscale/raster"
	"github.com/srlehn/pnmscale/resample"
)

func gray(t *testing.T, w, h int, samples ...uint8) *raster.Raster {
	t.Helper()
	r, err := raster.FromSamples(w, h, 1, samples)
	require.NoError(t, err)
	return r
}

func TestIdentityScale(t *testing.T) {
	for _, channels := range []int{1, 3} {
		src := testutil.Noise(t, 7, 5, channels, 42)
		for _, k := range kernel.Kinds() {
			t.Run(k.String(), func(t *testing.T) {
				dst, err := resample.Resample(src, resample.Uniform(1), k)
				require.NoError(t, err)
				assert.True(t, src.Equal(dst), "channels=%d", channels)
				assert.NotSame(t, src, dst)
			})
		}
	}
}

func TestOutputSize(t *testing.T) {
	tests := map[string]struct {
		scale resample.ScaleFactor
		w, h  int
	}{
		"double":       {resample.Uniform(2), 10, 6},
		"fractional":   {resample.ScaleFactor{X: 1.5, Y: 1.25}, 7, 3},
		"independent":  {resample.ScaleFactor{X: 3, Y: 1}, 15, 3},
		"downscale":    {resample.Uniform(0.5), 2, 1},
		"third":        {resample.ScaleFactor{X: 1.0 / 3, Y: 1}, 1, 3},
		"long decimal": {resample.ScaleFactor{X: 2.99, Y: 2.01}, 14, 6},
	}
	src := testutil.Noise(t, 5, 3, 3, 1)
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for _, k := range kernel.Kinds() {
				dst, err := resample.Resample(src, tc.scale, k)
				require.NoError(t, err)
				assert.Equal(t, tc.w, dst.Width(), "%s", k)
				assert.Equal(t, tc.h, dst.Height(), "%s", k)
				assert.Equal(t, 3, dst.Channels())
			}
		})
	}
}

func TestBilinearTwoByTwo(t *testing.T) {
	src := gray(t, 2, 2,
		10, 20,
		30, 40,
	)
	dst, err := resample.Resample(src, resample.Uniform(2), kernel.Bilinear)
	require.NoError(t, err)
	require.Equal(t, 4, dst.Width())
	require.Equal(t, 4, dst.Height())

	assert.Equal(t, uint8(10), dst.Sample(0, 0, 0))
	assert.Equal(t, uint8(20), dst.Sample(3, 0, 0))
	assert.Equal(t, uint8(30), dst.Sample(0, 3, 0))
	assert.Equal(t, uint8(40), dst.Sample(3, 3, 0))
	// equal quarter weights of all four neighbours
	assert.Equal(t, uint8(25), dst.Sample(1, 1, 0))
	assert.Equal(t, uint8(15), dst.Sample(1, 0, 0))
	assert.Equal(t, uint8(20), dst.Sample(0, 1, 0))
	assert.Equal(t, []uint8{
		10, 15, 20, 20,
		20, 25, 30, 30,
		30, 35, 40, 40,
		30, 35, 40, 40,
	}, dst.Samples())
}

func TestColorChannelsBlended(t *testing.T) {
	src, err := raster.FromSamples(2, 1, 3, []uint8{
		0, 100, 200,
		100, 200, 0,
	})
	require.NoError(t, err)
	tests := map[string]struct {
		k    kernel.Kind
		want []uint8
	}{
		"bilinear": {
			k: kernel.Bilinear,
			// position 1.5 clamps to the last column
			want: []uint8{0, 100, 200, 50, 150, 100, 100, 200, 0, 100, 200, 0},
		},
		"cubic": {
			k: kernel.CubicConvolution,
			// position 1.5 keeps taps 0 (-0.125) and 1 (0.625), blue clamps to 0
			want: []uint8{0, 100, 200, 50, 150, 100, 100, 200, 0, 125, 225, 0},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			dst, err := resample.Resample(src, resample.ScaleFactor{X: 2, Y: 1}, tc.k)
			require.NoError(t, err)
			require.Equal(t, 3, dst.Channels())
			assert.Equal(t, tc.want, dst.Samples())
		})
	}
}

func TestNearest(t *testing.T) {
	src := gray(t, 2, 1, 10, 20)
	dst, err := resample.Resample(src, resample.ScaleFactor{X: 2, Y: 1}, kernel.Nearest)
	require.NoError(t, err)
	// positions 0, 0.5, 1, 1.5; halves round away from zero, 2 is clamped
	assert.Equal(t, []uint8{10, 20, 20, 20}, dst.Samples())
}

func TestCubicRenormalizesAtBorder(t *testing.T) {
	src := gray(t, 2, 1, 0, 100)
	dst, err := resample.Resample(src, resample.ScaleFactor{X: 2, Y: 1}, kernel.CubicConvolution)
	require.NoError(t, err)
	// position 1.5 keeps taps 0 (-0.125) and 1 (0.625): 62.5/0.5
	assert.Equal(t, []uint8{0, 50, 100, 125}, dst.Samples())

	flat, err := raster.New(6, 4, 3)
	require.NoError(t, err)
	for i := range flat.Samples() {
		flat.Samples()[i] = 77
	}
	for _, f := range []float64{0.4, 1.3, 2, 3.7} {
		out, err := resample.Resample(flat, resample.Uniform(f), kernel.CubicConvolution)
		require.NoError(t, err)
		for _, s := range out.Samples() {
			require.Equal(t, uint8(77), s, "scale %v", f)
		}
	}
}

func TestCubicCoefficient(t *testing.T) {
	src := testutil.Noise(t, 6, 6, 1, 3)
	a1, err := resample.Resample(src, resample.Uniform(2.5), kernel.CubicConvolution)
	require.NoError(t, err)
	a2, err := resample.Resample(src, resample.Uniform(2.5), kernel.CubicConvolution, resample.WithCubicCoefficient(-0.5))
	require.NoError(t, err)
	assert.False(t, a1.Equal(a2))

	_, err = resample.Resample(src, resample.Uniform(2), kernel.CubicConvolution, resample.WithCubicCoefficient(math.NaN()))
	assert.Error(t, err)
}

func TestBoundsSafety(t *testing.T) {
	src := testutil.Checkerboard(t, 9, 7, 3)
	for _, k := range kernel.Kinds() {
		for _, f := range []float64{0.3, 0.77, 1, 1.5, 2.25, 3.7} {
			dst, err := resample.Resample(src, resample.ScaleFactor{X: f, Y: 1 / f * 2}, k)
			require.NoError(t, err, "%s %v", k, f)
			assert.Equal(t, int(math.Floor(9*f)), dst.Width())
		}
	}
}

func TestInvalidScale(t *testing.T) {
	src := testutil.Noise(t, 5, 5, 1, 9)
	tests := map[string]resample.ScaleFactor{
		"zero":          {X: 0, Y: 1},
		"negative":      {X: 2, Y: -1},
		"nan":           {X: math.NaN(), Y: 1},
		"inf":           {X: math.Inf(1), Y: 1},
		"below a pixel": {X: 0.1, Y: 1},
	}
	for name, scale := range tests {
		t.Run(name, func(t *testing.T) {
			dst, err := resample.Resample(src, scale, kernel.Bilinear)
			assert.Nil(t, dst)
			assert.True(t, errors.Is(err, resample.ErrInvalidScale), "got %v", err)
		})
	}
	_, err := resample.ResampleTo(context.Background(), src, 0, 3, kernel.Nearest)
	assert.True(t, errors.Is(err, resample.ErrInvalidScale))
}

func TestDimensionOverflow(t *testing.T) {
	src := gray(t, 1, 1, 0)
	tests := map[string]struct {
		scale resample.ScaleFactor
		opts  []resample.Option
	}{
		"axis":         {resample.ScaleFactor{X: 1e300, Y: 1}, nil},
		"byte length":  {resample.Uniform(1 << 40), nil},
		"memory limit": {resample.Uniform(100), []resample.Option{resample.WithMemoryLimit(1000)}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := resample.Resample(src, tc.scale, kernel.Nearest, tc.opts...)
			assert.True(t, errors.Is(err, resample.ErrDimensionOverflow), "got %v", err)
		})
	}
}

func TestUnknownKind(t *testing.T) {
	src := gray(t, 1, 1, 0)
	_, err := resample.Resample(src, resample.Uniform(2), kernel.Kind(42))
	assert.True(t, errors.Is(err, kernel.ErrUnknownKind))
}

func TestSourceUntouched(t *testing.T) {
	src := testutil.Noise(t, 8, 8, 3, 5)
	orig := src.Clone()
	for _, k := range kernel.Kinds() {
		_, err := resample.Resample(src, resample.Uniform(1.7), k, resample.WithWorkers(3))
		require.NoError(t, err)
	}
	assert.True(t, orig.Equal(src))
}

func TestWorkersMatchSerial(t *testing.T) {
	src := testutil.Noise(t, 37, 23, 3, 11)
	for _, k := range kernel.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			serial, err := resample.Resample(src, resample.ScaleFactor{X: 2.3, Y: 1.9}, k)
			require.NoError(t, err)
			for _, n := range []int{2, 4, 16, 200} {
				parallel, err := resample.Resample(src, resample.ScaleFactor{X: 2.3, Y: 1.9}, k, resample.WithWorkers(n))
				require.NoError(t, err)
				assert.True(t, serial.Equal(parallel), "workers=%d", n)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	src := testutil.Noise(t, 4, 4, 1, 2)
	var calls, last, total int
	_, err := resample.Resample(src, resample.Uniform(2), kernel.Bilinear,
		resample.WithProgress(func(done, all int) {
			calls++
			last, total = done, all
		}))
	require.NoError(t, err)
	assert.Equal(t, 8, calls)
	assert.Equal(t, 8, last)
	assert.Equal(t, 8, total)
}

func TestContextCanceled(t *testing.T) {
	src := testutil.Noise(t, 16, 16, 1, 7)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		dst, err := resample.ResampleContext(ctx, src, resample.Uniform(2), kernel.CubicConvolution, resample.WithWorkers(workers))
		assert.Nil(t, dst)
		assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	}
}

func TestResampleTo(t *testing.T) {
	src := testutil.Noise(t, 10, 10, 3, 8)
	dst, err := resample.ResampleTo(context.Background(), src, 33, 7, kernel.CubicConvolution)
	require.NoError(t, err)
	assert.Equal(t, 33, dst.Width())
	assert.Equal(t, 7, dst.Height())

	_, err = resample.ResampleTo(context.Background(), nil, 3, 3, kernel.Nearest)
	assert.Error(t, err)
}

func TestOptionErrors(t *testing.T) {
	src := gray(t, 1, 1, 0)
	for name, opt := range map[string]resample.Option{
		"workers": resample.WithWorkers(-1),
		"limit":   resample.WithMemoryLimit(-5),
		"cubic":   resample.WithCubicCoefficient(1),
	} {
		_, err := resample.Resample(src, resample.Uniform(1), kernel.Nearest, resample.Options{opt})
		assert.Error(t, err, name)
	}
}
