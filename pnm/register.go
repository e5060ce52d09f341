package pnm

import (
	"image"
	"image/color"
	"io"
)

func init() {
	for _, v := range []Variant{Bilevel, Grayscale, Color} {
		image.RegisterFormat(v.Ext(), v.String(), decodeImage, DecodeConfig)
	}
}

func decodeImage(r io.Reader) (image.Image, error) {
	img, _, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeConfig returns the color model and dimensions without reading the
// payload.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := DecodeHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	cfg := image.Config{Width: h.Width, Height: h.Height}
	if h.Variant == Color {
		cfg.ColorModel = color.RGBAModel
	} else {
		cfg.ColorModel = color.GrayModel
	}
	return cfg, nil
}
