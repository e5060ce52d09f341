package resample

import (
	"context"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/kernel"
	"github.com/srlehn/pnmscale/raster"
)

// rowFunc fills output row dy.
type rowFunc func(dy int, out []uint8)

type engine struct {
	src      *raster.Raster
	dst      *raster.Raster
	row      rowFunc
	workers  int
	progress func(done, total int)
	done     atomic.Int64
}

func newEngine(src, dst *raster.Raster, scale ScaleFactor, k kernel.Kind, s *Settings) *engine {
	e := &engine{
		src:      src,
		dst:      dst,
		workers:  s.Workers,
		progress: s.Progress,
	}
	switch k {
	case kernel.Nearest:
		e.row = nearestRows(src, dst, scale)
	case kernel.Bilinear:
		e.row = bilinearRows(src, dst, scale)
	default:
		e.row = convolveRows(src, dst, scale, kernel.CubicFilter(s.CubicA))
	}
	return e
}

// run spreads contiguous row ranges over the workers. Rows write disjoint
// slices of dst and only read src.
func (e *engine) run(ctx context.Context) error {
	h := e.dst.Height()
	workers := min(e.workers, h)
	if workers <= 1 {
		return e.rows(ctx, 0, h)
	}
	chunk := (h + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < h; start += chunk {
		start := start // per-iteration copy, go 1.21 loop semantics
		end := min(start+chunk, h)
		g.Go(func() error { return e.rows(gctx, start, end) })
	}
	return g.Wait()
}

func (e *engine) rows(ctx context.Context, start, end int) error {
	total := e.dst.Height()
	for dy := start; dy < end; dy++ {
		if err := ctx.Err(); err != nil {
			return errors.New(err)
		}
		e.row(dy, e.dst.Row(dy))
		if e.progress != nil {
			e.progress(int(e.done.Add(1)), total)
		}
	}
	return nil
}

// nearestIndex rounds the sample position of destination index d half away
// from zero and clamps it to [0,n).
func nearestIndex(d int, scale float64, n int) int {
	return clampi(int(math.Round(float64(d)/scale)), 0, n-1)
}

func nearestRows(src, dst *raster.Raster, scale ScaleFactor) rowFunc {
	c := src.Channels()
	xs := make([]int, dst.Width())
	for dx := range xs {
		xs[dx] = nearestIndex(dx, scale.X, src.Width()) * c
	}
	return func(dy int, out []uint8) {
		in := src.Row(nearestIndex(dy, scale.Y, src.Height()))
		for dx, sx := range xs {
			copy(out[dx*c:dx*c+c], in[sx:sx+c])
		}
	}
}

// linearTap holds the two neighbours of a sample position and the weight of
// the second one. Both indices are clamped, so at the far border i0 == i1.
type linearTap struct {
	i0, i1 int
	t      float64
}

func linearTaps(dstN, srcN int, scale float64) []linearTap {
	taps := make([]linearTap, dstN)
	for d := range taps {
		s := float64(d) / scale
		f := math.Floor(s)
		i0 := clampi(int(f), 0, srcN-1)
		taps[d] = linearTap{
			i0: i0,
			i1: min(i0+1, srcN-1),
			t:  math.Min(math.Max(s-float64(i0), 0), 1),
		}
	}
	return taps
}

func lerp(a, b uint8, t float64) float64 {
	return float64(a) + (float64(b)-float64(a))*t
}

func bilinearRows(src, dst *raster.Raster, scale ScaleFactor) rowFunc {
	c := src.Channels()
	xt := linearTaps(dst.Width(), src.Width(), scale.X)
	yt := linearTaps(dst.Height(), src.Height(), scale.Y)
	return func(dy int, out []uint8) {
		ty := yt[dy]
		r0, r1 := src.Row(ty.i0), src.Row(ty.i1)
		for dx, tx := range xt {
			a, b := tx.i0*c, tx.i1*c
			for ch := 0; ch < c; ch++ {
				top := lerp(r0[a+ch], r0[b+ch], tx.t)
				bottom := lerp(r1[a+ch], r1[b+ch], tx.t)
				out[dx*c+ch] = toSample(top + (bottom-top)*ty.t)
			}
		}
	}
}

// tap is one weighted source index.
type tap struct {
	i int
	w float64
}

// window lists the in-bounds taps of one destination index. near is the
// nearest in-bounds source index, used when the weights cancel out.
type window struct {
	taps []tap
	near int
}

// convolutionWindows evaluates f at floor(s)-r+1 .. floor(s)+r for every
// destination index, r being the rounded up support radius. Out-of-bounds
// and zero-weight taps are dropped.
func convolutionWindows(dstN, srcN int, scale float64, f kernel.Filter) []window {
	r := int(math.Ceil(f.Support))
	wins := make([]window, dstN)
	for d := range wins {
		s := float64(d) / scale
		base := int(math.Floor(s))
		win := window{near: clampi(int(math.Round(s)), 0, srcN-1)}
		for i := base - r + 1; i <= base+r; i++ {
			if i < 0 || i >= srcN {
				continue
			}
			if w := f.Apply(s - float64(i)); w != 0 {
				win.taps = append(win.taps, tap{i: i, w: w})
			}
		}
		wins[d] = win
	}
	return wins
}

// weightEpsilon below which a weight sum counts as zero.
const weightEpsilon = 1e-9

func convolveRows(src, dst *raster.Raster, scale ScaleFactor, f kernel.Filter) rowFunc {
	c := src.Channels()
	xw := convolutionWindows(dst.Width(), src.Width(), scale.X, f)
	yw := convolutionWindows(dst.Height(), src.Height(), scale.Y, f)
	return func(dy int, out []uint8) {
		wy := yw[dy]
		for dx, wx := range xw {
			var acc [3]float64
			var sum float64
			for _, ty := range wy.taps {
				in := src.Row(ty.i)
				for _, tx := range wx.taps {
					w := ty.w * tx.w
					sum += w
					p := tx.i * c
					for ch := 0; ch < c; ch++ {
						acc[ch] += w * float64(in[p+ch])
					}
				}
			}
			o := out[dx*c : dx*c+c]
			if math.Abs(sum) < weightEpsilon {
				in := src.Row(wy.near)
				copy(o, in[wx.near*c:wx.near*c+c])
				continue
			}
			for ch := range o {
				o[ch] = toSample(acc[ch] / sum)
			}
		}
	}
}
