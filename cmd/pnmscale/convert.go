package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/pnmscale/convert"
	errorsx "github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/internal/logx"
	"github.com/srlehn/pnmscale/pnm"
	"github.com/srlehn/pnmscale/raster"
)

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertToFlag, `to`, `t`, ``, `target pixel format: gray, color, bilevel (default: unchanged)`)
	convertCmd.Flags().Uint8Var(&convertThresholdFlag, `threshold`, 128, `bilevel threshold, darker samples become black`)
}

var convertCmd = &cobra.Command{
	Use:   convertCmdStr,
	Short: `convert between pixel and file formats`,
	Long: `Convert between pixel formats and between file formats.

usage: ` + os.Args[0] + ` ` + convertCmdStr + ` <in> <out> [--to gray|color|bilevel]

The file format follows the output extension: pbm, pgm, ppm, pnm, png, bmp,
tif(f), jp(e)g or gif.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(convertFunc(args[0], args[1]))
	},
}

var (
	convertCmdStr        = `convert`
	convertToFlag        string
	convertThresholdFlag uint8

	errConvertTarget = errors.New(`unknown target pixel format`)
)

func convertFunc(in, out string) command {
	return func(e *env) error {
		r, v, err := load(in)
		if err != nil {
			return err
		}
		var res *raster.Raster
		switch convertToFlag {
		case ``:
			res = r
		case `gray`, `grayscale`:
			res, err = convert.ToGray(r)
			v = pnm.Grayscale
		case `color`, `rgb`:
			res, err = convert.ToColor(r)
			v = pnm.Color
		case `bilevel`, `bw`:
			res, err = convert.ToBilevel(r, convertThresholdFlag)
			v = pnm.Bilevel
		default:
			return errorsx.Mark(errConvertTarget, `%q`, convertToFlag)
		}
		if err != nil {
			return err
		}
		if err := save(out, res, v); err != nil {
			return err
		}
		logx.Info(`converted`, e, `in`, in, `out`, out, `channels`, res.Channels())
		return nil
	}
}
