package raster

import (
	"image"
	"image/color"
	"image/draw"
)

var _ image.Image = (*Raster)(nil)

// ColorModel implements image.Image.
func (r *Raster) ColorModel() color.Model {
	if r.channels == 1 {
		return color.GrayModel
	}
	return color.RGBAModel
}

// Bounds implements image.Image. The origin is always (0, 0).
func (r *Raster) Bounds() image.Rectangle { return image.Rect(0, 0, r.width, r.height) }

// At implements image.Image. Color pixels are fully opaque.
func (r *Raster) At(x, y int) color.Color {
	if !r.InBounds(x, y) {
		if r.channels == 1 {
			return color.Gray{}
		}
		return color.RGBA{}
	}
	i := r.Offset(x, y, 0)
	if r.channels == 1 {
		return color.Gray{Y: r.samples[i]}
	}
	return color.RGBA{R: r.samples[i], G: r.samples[i+1], B: r.samples[i+2], A: 0xff}
}

// Image copies the raster into a *image.Gray or an opaque *image.RGBA.
func (r *Raster) Image() draw.Image {
	if r.channels == 1 {
		m := image.NewGray(r.Bounds())
		copy(m.Pix, r.samples)
		return m
	}
	m := image.NewRGBA(r.Bounds())
	for i, j := 0, 0; i < len(r.samples); i, j = i+3, j+4 {
		m.Pix[j+0] = r.samples[i+0]
		m.Pix[j+1] = r.samples[i+1]
		m.Pix[j+2] = r.samples[i+2]
		m.Pix[j+3] = 0xff
	}
	return m
}

// ChannelsOf guesses the channel count of img: 1 for gray color models,
// 3 otherwise.
func ChannelsOf(img image.Image) int {
	switch it := img.(type) {
	case *Raster:
		return it.channels
	case *image.Gray, *image.Gray16:
		return 1
	}
	if m := img.ColorModel(); m == color.GrayModel || m == color.Gray16Model {
		return 1
	}
	return 3
}

// FromImage converts img into a raster with the given channel count.
// A channel count of 0 picks one via ChannelsOf. Alpha is dropped without
// compositing.
func FromImage(img image.Image, channels int) (*Raster, error) {
	if img == nil {
		return nil, wrapf(ErrInvalidDimensions, `nil image`)
	}
	if channels == 0 {
		channels = ChannelsOf(img)
	}
	b := img.Bounds()
	r, err := New(b.Dx(), b.Dy(), channels)
	if err != nil {
		return nil, err
	}

	switch it := img.(type) {
	case *Raster:
		if it.channels == channels {
			copy(r.samples, it.samples)
			return r, nil
		}
	case *image.Gray:
		if channels == 1 {
			for y := 0; y < r.height; y++ {
				off := it.PixOffset(b.Min.X, b.Min.Y+y)
				copy(r.Row(y), it.Pix[off:off+r.width])
			}
			return r, nil
		}
	case *image.NRGBA:
		if channels == 3 {
			for y := 0; y < r.height; y++ {
				off := it.PixOffset(b.Min.X, b.Min.Y+y)
				row := r.Row(y)
				for x := 0; x < r.width; x++ {
					copy(row[x*3:x*3+3], it.Pix[off+x*4:off+x*4+3])
				}
			}
			return r, nil
		}
	}

	for y := 0; y < r.height; y++ {
		row := r.Row(y)
		for x := 0; x < r.width; x++ {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			if channels == 1 {
				row[x] = color.GrayModel.Convert(c).(color.Gray).Y
				continue
			}
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			row[x*3+0] = n.R
			row[x*3+1] = n.G
			row[x*3+2] = n.B
		}
	}
	return r, nil
}
