// Package pattern draws synthetic images used as test fixtures and by the
// pattern command.
package pattern

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/srlehn/pnmscale/internal/errors"
)

type Kind string

const (
	Checker  Kind = `checker`
	Gradient Kind = `gradient`
	Rings    Kind = `rings`
)

func Kinds() []Kind { return []Kind{Checker, Gradient, Rings} }

// Draw renders the pattern at the given size. cell is the checker square
// size or ring spacing in pixels and is ignored by the gradient.
func Draw(k Kind, width, height, cell int) (image.Image, error) {
	if width < 1 || height < 1 {
		return nil, errors.Errorf(`invalid pattern size %dx%d`, width, height)
	}
	if cell < 1 {
		cell = 1
	}
	switch k {
	case Checker:
		return checker(width, height, cell), nil
	case Gradient:
		return gradient(width, height), nil
	case Rings:
		return rings(width, height, cell), nil
	}
	return nil, errors.Errorf(`unknown pattern %q`, k)
}

func checker(width, height, cell int) image.Image {
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()
	c.SetRGB(0, 0, 0)
	for y := 0; y < height; y += cell {
		for x := 0; x < width; x += cell {
			if (x/cell+y/cell)%2 == 0 {
				c.DrawRectangle(float64(x), float64(y), float64(cell), float64(cell))
			}
		}
	}
	c.Fill()
	return c.Image()
}

// gradient runs red from left to right and blue from top to bottom.
func gradient(width, height int) image.Image {
	c := gg.NewContext(width, height)
	g := gg.NewLinearGradient(0, 0, float64(width), 0)
	g.AddColorStop(0, color.RGBA{A: 255})
	g.AddColorStop(1, color.RGBA{R: 255, A: 255})
	c.SetFillStyle(g)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	v := gg.NewLinearGradient(0, 0, 0, float64(height))
	v.AddColorStop(0, color.RGBA{G: 64, A: 0})
	v.AddColorStop(1, color.RGBA{G: 64, B: 255, A: 160})
	c.SetFillStyle(v)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	return c.Image()
}

// rings are concentric circles around the center, a classic aliasing probe.
func rings(width, height, spacing int) image.Image {
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()
	c.SetRGB(0.1, 0.2, 0.6)
	c.SetLineWidth(math.Max(1, float64(spacing)/2))
	cx, cy := float64(width)/2, float64(height)/2
	maxR := math.Hypot(cx, cy)
	for r := float64(spacing); r < maxR; r += float64(spacing) {
		c.DrawCircle(cx, cy, r)
		c.Stroke()
	}
	return c.Image()
}
