// Package xdraw provides resizers backed by golang.org/x/image/draw.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/pnmscale/raster"
	"github.com/srlehn/pnmscale/resize"
)

func init() {
	resize.Register(`xdraw-nearest`, NearestNeighbor)
	resize.Register(`xdraw-approx-bilinear`, ApproxBiLinear)
	resize.Register(`xdraw-bilinear`, BiLinear)
	resize.Register(`xdraw-catmull-rom`, CatmullRom)
}

// resizer uses "golang.org/x/image/draw"
type resizer struct {
	scaler draw.Scaler
}

var _ resize.Resizer = (*resizer)(nil)

func NearestNeighbor() resize.Resizer { return &resizer{scaler: draw.NearestNeighbor} }

// ApproxBiLinear is fast with acceptable quality.
func ApproxBiLinear() resize.Resizer { return &resizer{scaler: draw.ApproxBiLinear} }

func BiLinear() resize.Resizer { return &resizer{scaler: draw.BiLinear} }

// CatmullRom is the cubic kernel with a = -0.5, slowest of the four.
func CatmullRom() resize.Resizer { return &resizer{scaler: draw.CatmullRom} }

// Resize keeps gray sources gray, everything else is scaled into RGBA.
func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, size.X, size.Y)
	var dst draw.Image
	if raster.ChannelsOf(img) == 1 {
		dst = image.NewGray(rect)
	} else {
		dst = image.NewRGBA(rect)
	}
	r.scaler.Scale(dst, rect, img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
