// Package preview renders rasters on a terminal, either as sixel graphics
// or as colored half block characters.
package preview

import (
	"bufio"
	"context"
	"image/color"
	"io"

	"github.com/mattn/go-sixel"
	"github.com/muesli/termenv"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/kernel"
	"github.com/srlehn/pnmscale/raster"
	"github.com/srlehn/pnmscale/resample"
)

// upper half block, foreground is the top pixel, background the bottom one
const halfBlock = "▀"

// Sixel writes r as a DEC sixel image.
func Sixel(w io.Writer, r *raster.Raster) error {
	if err := errors.NilParam(w, r); err != nil {
		return err
	}
	enc := sixel.NewEncoder(w)
	enc.Dither = true
	if err := enc.Encode(r.Image()); err != nil {
		return errors.New(err)
	}
	return nil
}

// HalfBlock writes two pixel rows per text line. Colors are degraded to
// the given profile, termenv.Ascii prints the bare glyphs.
func HalfBlock(w io.Writer, r *raster.Raster, p termenv.Profile) error {
	if err := errors.NilParam(w, r); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < r.Height(); y += 2 {
		for x := 0; x < r.Width(); x++ {
			s := p.String(halfBlock).Foreground(p.FromColor(r.At(x, y)))
			if y+1 < r.Height() {
				s = s.Background(p.FromColor(r.At(x, y+1)))
			}
			bw.WriteString(s.String())
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.New(err)
	}
	return nil
}

// Fit scales r down with bilinear interpolation so that it is at most
// maxWidth pixels wide, keeping the aspect ratio. aspect stretches the
// height, 0.5 compensates for character cells twice as high as wide when
// every cell shows one pixel row. Smaller rasters are returned unchanged.
func Fit(ctx context.Context, r *raster.Raster, maxWidth int, aspect float64) (*raster.Raster, error) {
	if err := errors.NilParam(ctx, r); err != nil {
		return nil, err
	}
	if aspect <= 0 {
		aspect = 1
	}
	if maxWidth <= 0 || (r.Width() <= maxWidth && aspect == 1) {
		return r, nil
	}
	w := min(r.Width(), maxWidth)
	h := max(1, int(float64(r.Height())*float64(w)/float64(r.Width())*aspect))
	return resample.ResampleTo(ctx, r, w, h, kernel.Bilinear)
}

// Swatch renders a single color as a two cell wide block, used for legends.
func Swatch(c color.Color, p termenv.Profile) string {
	return p.String(`  `).Background(p.FromColor(c)).String()
}
