package main

import (
	"errors"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	errorsx "github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/preview"
)

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewModeFlag, `mode`, `m`, ``, `sixel or ansi (default from config)`)
	previewCmd.Flags().IntVar(&previewWidthFlag, `width`, 0, `maximum width in cells (default from config)`)
}

var previewCmd = &cobra.Command{
	Use:   previewCmdStr,
	Short: `show an image on the terminal`,
	Long: `Show an image on the terminal, as sixel graphics or colored half blocks.

usage: ` + os.Args[0] + ` ` + previewCmdStr + ` <in> [--mode sixel|ansi] [--width <cells>]`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(previewFunc(cmd, args[0]))
	},
}

var (
	previewCmdStr    = `preview`
	previewModeFlag  string
	previewWidthFlag int

	errPreviewMode = errors.New(`unknown preview mode`)
)

// assumed pixel width of a character cell for sixel output
const sixelCellWidth = 8

func previewFunc(cmd *cobra.Command, in string) command {
	return func(e *env) error {
		mode := e.cfg.PreviewMode
		if cmd.Flags().Changed(`mode`) {
			mode = previewModeFlag
		}
		width := e.cfg.PreviewWidth
		if cmd.Flags().Changed(`width`) {
			width = previewWidthFlag
		}
		r, _, err := load(in)
		if err != nil {
			return err
		}
		switch mode {
		case `sixel`:
			fit, err := preview.Fit(e.ctx, r, width*sixelCellWidth, 1)
			if err != nil {
				return err
			}
			return preview.Sixel(os.Stdout, fit)
		case `ansi`:
			// one cell shows two pixel rows, pixels stay square
			fit, err := preview.Fit(e.ctx, r, width, 1)
			if err != nil {
				return err
			}
			return preview.HalfBlock(os.Stdout, fit, termenv.EnvColorProfile())
		}
		return errorsx.Mark(errPreviewMode, `%q`, mode)
	}
}
