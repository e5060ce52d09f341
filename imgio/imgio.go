// Package imgio loads and saves rasters in any of the supported file
// formats: PNM (pbm, pgm, ppm, pnm), BMP, TIFF, PNG, JPEG and GIF.
// WebP can be read but not written.
package imgio

import (
	"bufio"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	errorsx "github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/pnm"
	"github.com/srlehn/pnmscale/raster"
)

var ErrUnsupportedFormat = errors.New(`imgio: unsupported file format`)

// Encoder writes an image in the format named by fileExt.
type Encoder interface {
	Encode(w io.Writer, img image.Image, fileExt string) error
}

var _ Encoder = (*MultiEncoder)(nil)

// MultiEncoder dispatches on the file extension.
type MultiEncoder struct{}

func (e *MultiEncoder) Encode(w io.Writer, img image.Image, fileExt string) error {
	if err := errorsx.NilParam(w, img); err != nil {
		return err
	}
	fmtStr := Format(fileExt)
	if len(fmtStr) == 0 {
		return errorsx.Mark(ErrUnsupportedFormat, `no file format specified`)
	}
	var err error
	switch fmtStr {
	case `pbm`, `pgm`, `ppm`, `pnm`:
		err = encodePNM(w, img, fmtStr)
	case `bmp`:
		err = bmp.Encode(w, img)
	case `gif`:
		err = gif.Encode(w, img, nil)
	case `png`:
		err = png.Encode(w, img)
	case `tif`, `tiff`:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case `jpg`, `jpeg`:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	default:
		return errorsx.Mark(ErrUnsupportedFormat, `%q`, fmtStr)
	}
	if err != nil {
		return errorsx.New(err)
	}
	return nil
}

// Format returns the lower case extension of a file name or extension,
// without the dot.
func Format(fileExt string) string {
	// allow passing whole filename
	fileExtParts := strings.Split(fileExt, `.`)
	return strings.ToLower(fileExtParts[len(fileExtParts)-1])
}

// Writable reports whether MultiEncoder can encode the extension.
func Writable(fileExt string) bool {
	switch Format(fileExt) {
	case `pbm`, `pgm`, `ppm`, `pnm`, `bmp`, `gif`, `png`, `tif`, `tiff`, `jpg`, `jpeg`:
		return true
	}
	return false
}

// IsPNM reports whether the extension names a portable anymap.
func IsPNM(fileExt string) bool {
	switch Format(fileExt) {
	case `pbm`, `pgm`, `ppm`, `pnm`:
		return true
	}
	return false
}

// encodePNM picks the variant from the extension, "pnm" follows the
// channel count.
func encodePNM(w io.Writer, img image.Image, fmtStr string) error {
	var channels int
	v, err := pnm.ParseVariant(fmtStr)
	if err == nil {
		channels = v.Channels()
	}
	r, err := raster.FromImage(img, channels)
	if err != nil {
		return err
	}
	if fmtStr == `pnm` {
		v = pnm.VariantFor(r)
	}
	return pnm.Encode(w, r, v)
}

// Decode reads any registered image format. The raster channel count follows
// the color model of the decoded image.
func Decode(rd io.Reader) (*raster.Raster, string, error) {
	if err := errorsx.NilParam(rd); err != nil {
		return nil, ``, err
	}
	img, name, err := image.Decode(bufio.NewReader(rd))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ``, errorsx.MarkWrap(ErrUnsupportedFormat, err, `decoding`)
		}
		return nil, ``, errorsx.New(err)
	}
	r, err := raster.FromImage(img, 0)
	if err != nil {
		return nil, ``, err
	}
	return r, name, nil
}

// Load decodes the file at path. PNM files go through the pnm package
// directly so its errors reach the caller unchanged.
func Load(path string) (*raster.Raster, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ``, errorsx.New(err)
	}
	defer f.Close()
	if IsPNM(path) {
		r, v, err := pnm.Decode(f)
		if err != nil {
			return nil, ``, err
		}
		return r, v.Ext(), nil
	}
	return Decode(f)
}

// Save encodes r into path, the format follows the extension. A partially
// written file is removed on failure.
func Save(path string, r *raster.Raster) (err error) {
	if err := errorsx.NilParam(r); err != nil {
		return err
	}
	if len(filepath.Ext(path)) == 0 {
		return errorsx.Mark(ErrUnsupportedFormat, `no extension in %q`, path)
	}
	if !Writable(path) {
		// leave an existing file alone
		return errorsx.Mark(ErrUnsupportedFormat, `cannot write %q`, Format(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return errorsx.New(err)
	}
	defer func() {
		if errClose := f.Close(); errClose != nil && err == nil {
			err = errorsx.New(errClose)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	var img image.Image = r
	if !IsPNM(path) {
		// concrete *image.Gray and *image.RGBA hit the encoders' fast paths
		img = r.Image()
	}
	return (&MultiEncoder{}).Encode(f, img, path)
}
