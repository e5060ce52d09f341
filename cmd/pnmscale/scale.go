package main

import (
	"errors"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/pnmscale"
	errorsx "github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/internal/logx"
	"github.com/srlehn/pnmscale/imgio"
	"github.com/srlehn/pnmscale/kernel"
	"github.com/srlehn/pnmscale/raster"
	"github.com/srlehn/pnmscale/resample"
	"github.com/srlehn/pnmscale/resize"
	_ "github.com/srlehn/pnmscale/resize/all"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
	f := scaleCmd.Flags()
	f.Float64Var(&scaleXFlag, `x`, 1, `horizontal scale factor`)
	f.Float64Var(&scaleYFlag, `y`, 0, `vertical scale factor (default: same as --x)`)
	f.StringVarP(&scaleKernelFlag, `kernel`, `k`, ``, `interpolation kernel: nearest, bilinear, cubic (default from config)`)
	f.IntVarP(&scaleWorkersFlag, `workers`, `w`, 0, `worker goroutines (default from config)`)
	f.Float64Var(&scaleCubicAFlag, `cubic-a`, kernel.DefaultCubicA, `cubic convolution coefficient a`)
	f.StringVarP(&scaleResizerFlag, `resizer`, `r`, ``, `use a registered resize backend instead (see "compare")`)
	f.BoolVar(&scaleProgressFlag, `progress`, false, `log progress at info level`)
}

var scaleCmd = &cobra.Command{
	Use:   scaleCmdStr,
	Short: `resample an image by per axis scale factors`,
	Long: `Resample an image by per axis scale factors.

` + scaleUsageStr + `

The output size is floor(width*x) by floor(height*y). PNM output keeps the
input variant, other formats follow the output extension. "-" reads PNM
from stdin or writes it to stdout.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(scaleFunc(cmd, args))
	},
}

var (
	scaleCmdStr   = `scale`
	scaleUsageStr = `usage: ` + os.Args[0] + ` ` + scaleCmdStr + ` <in> <out> --x <factor> [--y <factor>] [--kernel <name>]`

	scaleXFlag        float64
	scaleYFlag        float64
	scaleKernelFlag   string
	scaleWorkersFlag  int
	scaleCubicAFlag   float64
	scaleResizerFlag  string
	scaleProgressFlag bool
)

func scaleFunc(cmd *cobra.Command, args []string) command {
	return func(e *env) error {
		in, out := args[0], args[1]
		factor := resample.ScaleFactor{X: scaleXFlag, Y: scaleYFlag}
		if !cmd.Flags().Changed(`y`) {
			factor.Y = factor.X
		}
		k, err := kernelFromFlag(cmd, e)
		if err != nil {
			return err
		}
		opts, err := scaleOptions(cmd, e)
		if err != nil {
			return err
		}

		if len(scaleResizerFlag) > 0 {
			return scaleWithResizer(e, in, out, factor)
		}
		if in != stdio && out != stdio && imgio.IsPNM(in) && imgio.IsPNM(out) {
			return pnmscale.Scale(e.ctx, in, out, factor, k, opts...)
		}

		r, v, err := load(in)
		if err != nil {
			return err
		}
		res, err := resample.ResampleContext(e.ctx, r, factor, k, opts...)
		if err != nil {
			return err
		}
		if err := save(out, res, v); err != nil {
			return err
		}
		logx.Info(`scaled`, e, `in`, in, `out`, out, `kernel`, k.String(), `width`, res.Width(), `height`, res.Height())
		return nil
	}
}

// kernelFromFlag falls back to the configured kernel when --kernel is unset.
func kernelFromFlag(cmd *cobra.Command, e *env) (kernel.Kind, error) {
	name := e.cfg.Kernel
	if cmd.Flags().Changed(`kernel`) {
		name = scaleKernelFlag
	}
	return kernel.ParseKind(name)
}

func scaleOptions(cmd *cobra.Command, e *env) ([]resample.Option, error) {
	workers := e.cfg.Workers
	if cmd.Flags().Changed(`workers`) {
		workers = scaleWorkersFlag
	}
	cubicA := e.cfg.CubicA
	if cmd.Flags().Changed(`cubic-a`) {
		cubicA = scaleCubicAFlag
	}
	opts := []resample.Option{
		resample.WithWorkers(workers),
		resample.WithCubicCoefficient(cubicA),
		resample.WithLogger(e.logger),
		resample.WithMemoryLimit(memoryLimit(e.cfg.MemoryFraction, e)),
	}
	if scaleProgressFlag {
		opts = append(opts, resample.WithProgress(progressLogger(e)))
	}
	// fail on bad flag values before any file is touched
	if _, err := resample.Resolve(opts...); err != nil {
		return nil, err
	}
	return opts, nil
}

// progressLogger logs every tenth of the output rows.
func progressLogger(e *env) func(done, total int) {
	return func(done, total int) {
		if total < 10 || done == total || done%(total/10) == 0 {
			logx.Info(`progress`, e, `rows`, done, `total`, total)
		}
	}
}

var errResizerOutput = errors.New(`resize backend returned no image`)

func scaleWithResizer(e *env, in, out string, factor resample.ScaleFactor) error {
	rs, err := resize.New(scaleResizerFlag)
	if err != nil {
		return err
	}
	r, v, err := load(in)
	if err != nil {
		return err
	}
	w, h, err := factor.OutputSize(r.Width(), r.Height())
	if err != nil {
		return err
	}
	if lim := memoryLimit(e.cfg.MemoryFraction, e); lim > 0 {
		// backends work on 4 channel images
		if n, ok := raster.ByteLen(w, h, 4); !ok || n > lim {
			return errorsx.Mark(resample.ErrDimensionOverflow, `%dx%d exceeds the memory limit`, w, h)
		}
	}
	img, err := logx.TimeIt2(func() (image.Image, error) {
		return rs.Resize(r, image.Pt(w, h))
	}, `resize`, e, `resizer`, scaleResizerFlag, `width`, w, `height`, h)
	if err != nil {
		return err
	}
	if img == nil {
		return errorsx.New(errResizerOutput)
	}
	res, err := raster.FromImage(img, r.Channels())
	if err != nil {
		return err
	}
	return save(out, res, v)
}
