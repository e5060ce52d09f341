package main

import (
	"fmt"
	"image"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/srlehn/pnmscale/internal/logx"
	"github.com/srlehn/pnmscale/raster"
	"github.com/srlehn/pnmscale/resample"
	"github.com/srlehn/pnmscale/resize"
)

func init() {
	rootCmd.AddCommand(compareCmd)
	f := compareCmd.Flags()
	f.Float64Var(&compareXFlag, `x`, 2, `horizontal scale factor`)
	f.Float64Var(&compareYFlag, `y`, 0, `vertical scale factor (default: same as --x)`)
	f.StringVarP(&scaleKernelFlag, `kernel`, `k`, ``, `reference kernel (default from config)`)
	f.StringSliceVar(&compareResizersFlag, `resizers`, nil, `resizers to run (default from config, else all)`)
}

var compareCmd = &cobra.Command{
	Use:   compareCmdStr,
	Short: `compare the registered resize backends`,
	Long: `Scale an image with every registered resize backend and print the mean
absolute sample difference to the native resampler.

usage: ` + os.Args[0] + ` ` + compareCmdStr + ` <in> [--x <factor>] [--y <factor>] [--resizers a,b]`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(compareFunc(cmd, args[0]))
	},
}

var (
	compareCmdStr       = `compare`
	compareXFlag        float64
	compareYFlag        float64
	compareResizersFlag []string

	compareHeadStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	compareNameStyle = lipgloss.NewStyle().Width(26)
	compareNumStyle  = lipgloss.NewStyle().Width(12).Align(lipgloss.Right)
	compareErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(`9`))
)

type compareResult struct {
	name string
	diff float64
	dur  time.Duration
	err  error
}

func compareFunc(cmd *cobra.Command, in string) command {
	return func(e *env) error {
		factor := resample.ScaleFactor{X: compareXFlag, Y: compareYFlag}
		if !cmd.Flags().Changed(`y`) {
			factor.Y = factor.X
		}
		k, err := kernelFromFlag(cmd, e)
		if err != nil {
			return err
		}
		r, _, err := load(in)
		if err != nil {
			return err
		}
		start := time.Now()
		ref, err := resample.ResampleContext(e.ctx, r, factor, k,
			resample.WithWorkers(e.cfg.Workers),
			resample.WithCubicCoefficient(e.cfg.CubicA),
			resample.WithLogger(e.logger),
			resample.WithMemoryLimit(memoryLimit(e.cfg.MemoryFraction, e)),
		)
		if err != nil {
			return err
		}
		results := []compareResult{{name: `native ` + k.String() + ` (reference)`, dur: time.Since(start)}}

		size := image.Pt(ref.Width(), ref.Height())
		for _, name := range compareNames(cmd, e) {
			if err := e.ctx.Err(); err != nil {
				return err
			}
			results = append(results, compareOne(e, name, r, ref, size))
		}
		fmt.Println(renderCompare(results))
		return nil
	}
}

func compareNames(cmd *cobra.Command, e *env) []string {
	names := compareResizersFlag
	if !cmd.Flags().Changed(`resizers`) && len(e.cfg.CompareResizers) > 0 {
		names = e.cfg.CompareResizers
	}
	if len(names) == 0 {
		return resize.Names()
	}
	return slices.Clone(names)
}

func compareOne(e *env, name string, src, ref *raster.Raster, size image.Point) compareResult {
	res := compareResult{name: name}
	rs, err := resize.New(name)
	if err != nil {
		res.err = err
		return res
	}
	start := time.Now()
	img, err := rs.Resize(src, size)
	res.dur = time.Since(start)
	if err != nil {
		res.err = err
		return res
	}
	got, err := raster.FromImage(img, src.Channels())
	if err != nil {
		res.err = err
		return res
	}
	res.diff, res.err = raster.MeanAbsDiff(ref, got)
	logx.Debug(`compared`, e, `resizer`, name, `diff`, res.diff, `duration`, res.dur)
	return res
}

func renderCompare(results []compareResult) string {
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top,
		compareHeadStyle.Render(compareNameStyle.Render(`resizer`)),
		compareHeadStyle.Render(compareNumStyle.Render(`mean diff`)),
		compareHeadStyle.Render(compareNumStyle.Render(`duration`)),
	)}
	for _, res := range results {
		if res.err != nil {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
				compareNameStyle.Render(res.name), compareErrStyle.Render(` `+res.err.Error())))
			continue
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			compareNameStyle.Render(res.name),
			compareNumStyle.Render(strconv.FormatFloat(res.diff, 'f', 3, 64)),
			compareNumStyle.Render(res.dur.Round(time.Microsecond).String()),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
