package imgio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/pnmscale/imgio"
	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/internal/testutil"
	"github.com/srlehn/pnmscale/pnm"
	"github.com/srlehn/pnmscale/raster"
)

func TestLosslessRoundTrip(t *testing.T) {
	dir := t.TempDir()
	gray := testutil.Noise(t, 9, 4, 1, 1)
	color := testutil.Noise(t, 9, 4, 3, 2)
	tests := map[string]*raster.Raster{
		"a.pgm":  gray,
		"a.ppm":  color,
		"b.pnm":  color,
		"a.png":  gray,
		"b.png":  color,
		"a.bmp":  color,
		"a.tiff": gray,
		"b.tif":  color,
	}
	for name, r := range tests {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, name)
			require.NoError(t, imgio.Save(p, r))
			back, _, err := imgio.Load(p)
			require.NoError(t, err)
			assert.True(t, r.Equal(back), "channels %d vs %d", r.Channels(), back.Channels())
		})
	}
}

func TestLossyFormats(t *testing.T) {
	dir := t.TempDir()
	r := testutil.Gradient(t, 16, 12, 3)
	for _, name := range []string{`a.jpg`, `a.gif`} {
		p := filepath.Join(dir, name)
		require.NoError(t, imgio.Save(p, r))
		back, format, err := imgio.Load(p)
		require.NoError(t, err)
		assert.Equal(t, 16, back.Width())
		assert.Equal(t, 12, back.Height())
		assert.NotEmpty(t, format)
	}
}

func TestBilevelThroughExtension(t *testing.T) {
	r := testutil.Checkerboard(t, 10, 3, 3)
	var buf bytes.Buffer
	require.NoError(t, (&imgio.MultiEncoder{}).Encode(&buf, r, `out.PBM`))
	back, v, err := pnm.DecodeBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, pnm.Bilevel, v)
	assert.Equal(t, uint8(0), back.Sample(0, 0, 0))
	assert.Equal(t, uint8(255), back.Sample(1, 0, 0))
}

func TestDecodeRegisteredPNM(t *testing.T) {
	in := append([]byte("P5\n2 1\n255\n"), 3, 4)
	r, format, err := imgio.Decode(bytes.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, `pgm`, format)
	assert.Equal(t, []uint8{3, 4}, r.Samples())
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	r := testutil.Noise(t, 2, 2, 1, 3)

	err := imgio.Save(filepath.Join(dir, `noext`), r)
	assert.True(t, errors.Is(err, imgio.ErrUnsupportedFormat))

	p := filepath.Join(dir, `a.webp`)
	err = imgio.Save(p, r)
	assert.True(t, errors.Is(err, imgio.ErrUnsupportedFormat))
	_, statErr := os.Stat(p)
	assert.True(t, os.IsNotExist(statErr))

	keep := filepath.Join(dir, `keep.xyz`)
	require.NoError(t, os.WriteFile(keep, []byte(`precious`), 0o600))
	err = imgio.Save(keep, r)
	assert.True(t, errors.Is(err, imgio.ErrUnsupportedFormat))
	b, err := os.ReadFile(keep)
	require.NoError(t, err)
	assert.Equal(t, `precious`, string(b))

	_, _, err = imgio.Decode(bytes.NewReader([]byte(`not an image`)))
	assert.True(t, errors.Is(err, imgio.ErrUnsupportedFormat))

	trunc := filepath.Join(dir, `t.pgm`)
	require.NoError(t, os.WriteFile(trunc, []byte("P5\n4 4\n255\n\x00"), 0o600))
	_, _, err = imgio.Load(trunc)
	assert.True(t, errors.Is(err, pnm.ErrTruncatedInput))
}
