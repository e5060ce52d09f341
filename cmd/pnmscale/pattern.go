package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/pnmscale/internal/consts"
	"github.com/srlehn/pnmscale/internal/logx"
	"github.com/srlehn/pnmscale/internal/pattern"
	"github.com/srlehn/pnmscale/pnm"
	"github.com/srlehn/pnmscale/raster"
)

func init() {
	rootCmd.AddCommand(patternCmd)
	f := patternCmd.Flags()
	f.StringVar(&patternKindFlag, `kind`, string(pattern.Checker), `pattern: `+patternKinds())
	f.IntVar(&patternWidthFlag, `width`, 256, `width in pixels`)
	f.IntVar(&patternHeightFlag, `height`, 256, `height in pixels`)
	f.IntVar(&patternCellFlag, `cell`, 16, `checker square size or ring spacing`)
	f.BoolVar(&patternColorFlag, `color`, true, `color output, --color=false writes gray`)
}

var patternCmd = &cobra.Command{
	Use:   patternCmdStr,
	Short: `write a synthetic test image`,
	Long: `Write a synthetic test image.

usage: ` + os.Args[0] + ` ` + patternCmdStr + ` <out> [--kind ` + patternKinds() + `] [--width <px>] [--height <px>]`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(patternFunc(args[0]))
	},
}

var (
	patternCmdStr     = `pattern`
	patternKindFlag   string
	patternWidthFlag  int
	patternHeightFlag int
	patternCellFlag   int
	patternColorFlag  bool
)

func patternKinds() string {
	var names []string
	for _, k := range pattern.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, `|`)
}

func patternFunc(out string) command {
	return func(e *env) error {
		img, err := pattern.Draw(pattern.Kind(patternKindFlag), patternWidthFlag, patternHeightFlag, patternCellFlag)
		if err != nil {
			return err
		}
		channels := consts.ChannelsColor
		if !patternColorFlag {
			channels = consts.ChannelsGray
		}
		r, err := raster.FromImage(img, channels)
		if err != nil {
			return err
		}
		if err := save(out, r, pnm.VariantFor(r)); err != nil {
			return err
		}
		logx.Info(`pattern written`, e, `kind`, patternKindFlag, `out`, out)
		return nil
	}
}
