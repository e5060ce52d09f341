// Package pnm reads and writes the binary portable anymap formats:
// P4 (bi-level), P5 (grayscale) and P6 (RGB color).
//
// The header is ASCII: the signature 'P', the variant digit, then width,
// height and (except for P4) the maximum sample value as decimal numbers.
// Whitespace and '#' comments may appear between the numbers. Exactly one
// whitespace byte separates the last number from the binary payload.
//
// Bi-level images decode into single-channel rasters holding 0 (black, a set
// bit) and 255 (white). Gray and color samples are kept verbatim, they are
// not rescaled by the maximum sample value.
package pnm

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/raster"
)

// Header holds the parsed ASCII header fields.
type Header struct {
	Variant Variant
	Width   int
	Height  int
	MaxVal  int // 1 for bi-level images
}

const (
	maxHeaderValue = 1 << 30
	readChunk      = 1 << 20
)

// Decode reads a complete PNM image from r.
func Decode(r io.Reader) (*raster.Raster, Variant, error) {
	if err := errors.NilParam(r); err != nil {
		return nil, 0, err
	}
	d := &decoder{br: bufio.NewReader(r)}
	if err := d.decodeHeader(); err != nil {
		return nil, 0, err
	}
	img, err := d.decodePayload()
	if err != nil {
		return nil, 0, err
	}
	return img, d.hdr.Variant, nil
}

// DecodeBytes decodes an in-memory PNM file.
func DecodeBytes(b []byte) (*raster.Raster, Variant, error) {
	return Decode(bytes.NewReader(b))
}

// DecodeFile decodes the PNM file at path.
func DecodeFile(path string) (*raster.Raster, Variant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.New(err)
	}
	defer f.Close()
	return Decode(f)
}

// DecodeHeader reads only the header.
func DecodeHeader(r io.Reader) (Header, error) {
	if err := errors.NilParam(r); err != nil {
		return Header{}, err
	}
	d := &decoder{br: bufio.NewReader(r)}
	if err := d.decodeHeader(); err != nil {
		return Header{}, err
	}
	return d.hdr, nil
}

// decoder is freshly constructed for every call.
type decoder struct {
	br  *bufio.Reader
	off int64
	hdr Header
}

func (d *decoder) readByte() (byte, error) {
	b, err := d.br.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, errors.Mark(ErrTruncatedInput, `header ends at offset %d`, d.off)
		}
		return 0, errors.New(err)
	}
	d.off++
	return b, nil
}

func (d *decoder) decodeHeader() error {
	b, err := d.br.ReadByte()
	if err != nil || b != 'P' {
		if err != nil && err != io.EOF {
			return errors.New(err)
		}
		return errors.Mark(ErrFormat, `missing 'P' signature`)
	}
	d.off++
	b, err = d.readByte()
	if err != nil {
		return err
	}
	v := Variant(b) - '0'
	if !v.Valid() {
		return errors.Mark(ErrFormat, `unsupported variant byte %q`, b)
	}
	d.hdr.Variant = v

	if d.hdr.Width, err = d.number(`width`); err != nil {
		return err
	}
	if d.hdr.Height, err = d.number(`height`); err != nil {
		return err
	}
	if d.hdr.Width == 0 || d.hdr.Height == 0 {
		return errors.Mark(ErrHeaderSyntax, `zero dimension %dx%d`, d.hdr.Width, d.hdr.Height)
	}
	if v == Bilevel {
		d.hdr.MaxVal = 1
	} else {
		if d.hdr.MaxVal, err = d.number(`maxval`); err != nil {
			return err
		}
		switch {
		case d.hdr.MaxVal == 0:
			return errors.Mark(ErrHeaderSyntax, `maxval 0`)
		case d.hdr.MaxVal > 255:
			return errors.Mark(ErrUnsupportedVariant, `16-bit samples (maxval %d)`, d.hdr.MaxVal)
		}
	}
	if _, ok := v.PayloadLen(d.hdr.Width, d.hdr.Height); !ok {
		return errors.Mark(ErrHeaderSyntax, `dimensions %dx%d too large`, d.hdr.Width, d.hdr.Height)
	}
	return nil
}

// number reads one decimal header field, skipping leading whitespace and
// comments. The whitespace byte terminating the number is consumed, so after
// the last field the reader is positioned on the payload.
func (d *decoder) number(field string) (int, error) {
	var b byte
	for {
		c, err := d.readByte()
		if err != nil {
			return 0, err
		}
		if isSpace(c) {
			continue
		}
		if c == '#' {
			if err := d.skipComment(); err != nil {
				return 0, err
			}
			continue
		}
		b = c
		break
	}
	if b < '0' || b > '9' {
		return 0, errors.Mark(ErrHeaderSyntax, `%s: unexpected byte %q at offset %d`, field, b, d.off-1)
	}
	n := 0
	for {
		n = n*10 + int(b-'0')
		if n > maxHeaderValue {
			return 0, errors.Mark(ErrHeaderSyntax, `%s: value too large`, field)
		}
		c, err := d.readByte()
		if err != nil {
			return 0, err
		}
		if c >= '0' && c <= '9' {
			b = c
			continue
		}
		if !isSpace(c) {
			return 0, errors.Mark(ErrHeaderSyntax, `%s: unexpected byte %q at offset %d`, field, c, d.off-1)
		}
		return n, nil
	}
}

func (d *decoder) skipComment() error {
	for {
		c, err := d.readByte()
		if err != nil {
			return err
		}
		if c == '\n' || c == '\r' {
			return nil
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func (d *decoder) decodePayload() (*raster.Raster, error) {
	h := d.hdr
	n, _ := h.Variant.PayloadLen(h.Width, h.Height)

	// grow with the data actually present instead of trusting the header
	buf := bytes.NewBuffer(make([]byte, 0, min(n, readChunk)))
	got, err := buf.ReadFrom(io.LimitReader(d.br, int64(n)))
	if err != nil {
		return nil, errors.New(err)
	}
	if got < int64(n) {
		return nil, errors.Mark(ErrTruncatedInput, `%s %dx%d declares %d payload bytes, read %d`,
			h.Variant, h.Width, h.Height, n, got)
	}
	payload := buf.Bytes()

	if h.Variant == Bilevel {
		return unpackBits(payload, h.Width, h.Height)
	}
	return raster.FromSamples(h.Width, h.Height, h.Variant.Channels(), payload)
}

func unpackBits(payload []byte, width, height int) (*raster.Raster, error) {
	r, err := raster.New(width, height, 1)
	if err != nil {
		return nil, err
	}
	rowBytes := (width + 7) / 8
	for y := 0; y < height; y++ {
		src := payload[y*rowBytes : (y+1)*rowBytes]
		dst := r.Row(y)
		for x := range dst {
			if src[x>>3]&(0x80>>uint(x&7)) != 0 {
				dst[x] = 0
			} else {
				dst[x] = 255
			}
		}
	}
	return r, nil
}
