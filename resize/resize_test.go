package resize_test

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/internal/testutil"
	"github.com/srlehn/pnmscale/raster"
	"github.com/srlehn/pnmscale/resize"
	_ "github.com/srlehn/pnmscale/resize/all"
)

func TestRegistry(t *testing.T) {
	names := resize.Names()
	for _, want := range []string{`default`, `native-cubic`, `xdraw-catmull-rom`, `gift-lanczos`, `nfnt-bicubic`, `bild-linear`, `imaging-lanczos`, `rez-bilinear`, `caire-seam-carving`} {
		assert.Contains(t, names, want)
	}
	r, err := resize.New(`Xdraw_CatmullRom`)
	require.NoError(t, err)
	assert.NotNil(t, r)

	_, err = resize.New(`magic`)
	assert.True(t, errors.Is(err, resize.ErrUnknownResizer))
}

func TestBackendsHonorSize(t *testing.T) {
	src := testutil.Gradient(t, 32, 24, 3)
	size := image.Point{X: 48, Y: 36}
	for _, name := range resize.Names() {
		if strings.HasPrefix(name, `caire`) {
			// seam carving is exercised through the compare command
			continue
		}
		t.Run(name, func(t *testing.T) {
			r, err := resize.New(name)
			require.NoError(t, err)
			m, err := r.Resize(src, size)
			require.NoError(t, err)
			assert.Equal(t, size, m.Bounds().Size())
		})
	}
}

func TestNearestIdentity(t *testing.T) {
	src := testutil.Noise(t, 13, 9, 3, 4)
	for _, name := range []string{`native-nearest`, `native-bilinear`, `native-cubic`, `xdraw-nearest`, `imaging-nearest`, `gift-nearest`} {
		t.Run(name, func(t *testing.T) {
			r, err := resize.New(name)
			require.NoError(t, err)
			m, err := r.Resize(src, image.Point{X: 13, Y: 9})
			require.NoError(t, err)
			back, err := raster.FromImage(m, 3)
			require.NoError(t, err)
			assert.True(t, src.Equal(back))
		})
	}
}

func TestNativeBilinearCloseToXDraw(t *testing.T) {
	src := testutil.Gradient(t, 32, 24, 3)
	size := image.Point{X: 64, Y: 48}
	native, err := resize.New(`native-bilinear`)
	require.NoError(t, err)
	xd, err := resize.New(`xdraw-bilinear`)
	require.NoError(t, err)

	a, err := native.Resize(src, size)
	require.NoError(t, err)
	b, err := xd.Resize(src, size)
	require.NoError(t, err)
	ra, err := raster.FromImage(a, 3)
	require.NoError(t, err)
	rb, err := raster.FromImage(b, 3)
	require.NoError(t, err)
	mad, err := raster.MeanAbsDiff(ra, rb)
	require.NoError(t, err)
	assert.Less(t, mad, 10.0)
}

func TestDefaultKeepsAlpha(t *testing.T) {
	r, err := resize.New(`default`)
	require.NoError(t, err)

	opaque := testutil.Noise(t, 4, 4, 1, 1)
	m, err := r.Resize(opaque, image.Point{X: 8, Y: 8})
	require.NoError(t, err)
	assert.IsType(t, &raster.Raster{}, m)

	translucent := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	translucent.Set(1, 1, color.NRGBA{R: 200, A: 100})
	m, err = r.Resize(translucent, image.Point{X: 8, Y: 8})
	require.NoError(t, err)
	assert.IsType(t, &image.RGBA{}, m)
}

func TestCheck(t *testing.T) {
	src := testutil.Noise(t, 2, 2, 1, 1)
	assert.Error(t, resize.Check(nil, image.Point{X: 1, Y: 1}))
	assert.Error(t, resize.Check(src, image.Point{X: 0, Y: 1}))
	assert.NoError(t, resize.Check(src, image.Point{X: 1, Y: 1}))
}
