package pnm

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/raster"
)

// Encode writes r as variant v. Gray and color headers always declare a
// maximum sample value of 255. For bi-level output samples below 128 become
// black.
func Encode(w io.Writer, r *raster.Raster, v Variant) error {
	if err := errors.NilParam(w, r); err != nil {
		return err
	}
	if !v.Valid() {
		return errors.Mark(ErrUnsupportedVariant, `%s`, v)
	}
	if v.Channels() != r.Channels() {
		return errors.Mark(ErrVariantMismatch, `%s needs %d channel(s), raster has %d`, v, v.Channels(), r.Channels())
	}

	bw := bufio.NewWriter(w)
	if v == Bilevel {
		fmt.Fprintf(bw, "P%d\n%d %d\n", int(v), r.Width(), r.Height())
		packBits(bw, r)
	} else {
		fmt.Fprintf(bw, "P%d\n%d %d\n255\n", int(v), r.Width(), r.Height())
		bw.Write(r.Samples())
	}
	// bufio.Writer keeps the first write error
	if err := bw.Flush(); err != nil {
		return errors.New(err)
	}
	return nil
}

// EncodeBytes encodes r into memory.
func EncodeBytes(r *raster.Raster, v Variant) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, r, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeFile writes r to path. A partially written file is removed on
// failure.
func EncodeFile(r *raster.Raster, v Variant, path string) (err error) {
	if err := errors.NilParam(r); err != nil {
		return err
	}
	// fail before truncating an existing file
	if !v.Valid() {
		return errors.Mark(ErrUnsupportedVariant, `%s`, v)
	}
	if v.Channels() != r.Channels() {
		return errors.Mark(ErrVariantMismatch, `%s needs %d channel(s), raster has %d`, v, v.Channels(), r.Channels())
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.New(err)
	}
	defer func() {
		if errClose := f.Close(); errClose != nil && err == nil {
			err = errors.New(errClose)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return Encode(f, r, v)
}

func packBits(bw *bufio.Writer, r *raster.Raster) {
	row := make([]byte, (r.Width()+7)/8)
	for y := 0; y < r.Height(); y++ {
		clear(row)
		for x, s := range r.Row(y) {
			if s < 128 {
				row[x>>3] |= 0x80 >> uint(x&7)
			}
		}
		bw.Write(row)
	}
}
