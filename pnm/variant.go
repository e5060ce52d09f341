package pnm

import (
	"strconv"
	"strings"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/raster"
)

// Variant is the binary PNM format tag, the digit after the 'P' signature.
type Variant int

const (
	Bilevel   Variant = 4 // PBM, 1 bit per pixel, 8 pixels per byte
	Grayscale Variant = 5 // PGM, 1 byte per pixel
	Color     Variant = 6 // PPM, 3 interleaved bytes per pixel
)

func (v Variant) String() string {
	if !v.Valid() {
		return `P?(` + strconv.Itoa(int(v)) + `)`
	}
	return `P` + strconv.Itoa(int(v))
}

func (v Variant) Valid() bool { return v >= Bilevel && v <= Color }

// Channels of the decoded raster.
func (v Variant) Channels() int {
	if v == Color {
		return 3
	}
	return 1
}

// Ext is the conventional file extension without dot.
func (v Variant) Ext() string {
	switch v {
	case Bilevel:
		return `pbm`
	case Grayscale:
		return `pgm`
	case Color:
		return `ppm`
	}
	return `pnm`
}

// PayloadLen is the number of payload bytes following the header.
// Bi-level rows are padded to full bytes.
func (v Variant) PayloadLen(width, height int) (int, bool) {
	switch v {
	case Bilevel:
		return raster.ByteLen((width+7)/8, height, 1)
	case Grayscale:
		return raster.ByteLen(width, height, 1)
	case Color:
		return raster.ByteLen(width, height, 3)
	}
	return 0, false
}

// VariantFor returns the byte-per-sample variant matching the raster's
// channel count.
func VariantFor(r *raster.Raster) Variant {
	if r != nil && r.Channels() == 3 {
		return Color
	}
	return Grayscale
}

// ParseVariant accepts "P4".."P6", the bare digit or the extension names
// pbm, pgm and ppm.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, `.`)
	var v Variant
	switch s {
	case `p4`, `4`, `pbm`, `bilevel`:
		v = Bilevel
	case `p5`, `5`, `pgm`, `gray`, `grayscale`:
		v = Grayscale
	case `p6`, `6`, `ppm`, `color`:
		v = Color
	default:
		return 0, errors.Mark(ErrUnsupportedVariant, `%q`, s)
	}
	return v, nil
}
