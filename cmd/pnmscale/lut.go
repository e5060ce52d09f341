package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/pnmscale/internal/logx"
	"github.com/srlehn/pnmscale/lut"
)

func init() {
	rootCmd.AddCommand(lutCmd)
	lutCmd.Flags().StringVarP(&lutOpFlag, `op`, `o`, `identity`, `operation: `+strings.Join(lut.Names(), `, `))
	lutCmd.Flags().Float64VarP(&lutValueFlag, `value`, `v`, 1, `operation parameter (factor, threshold, gamma, ...)`)
}

var lutCmd = &cobra.Command{
	Use:   lutCmdStr,
	Short: `apply a point operation through a lookup table`,
	Long: `Apply a point operation through a 256 entry lookup table to every sample.

usage: ` + os.Args[0] + ` ` + lutCmdStr + ` <in> <out> --op <name> --value <v>`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(lutFunc(args[0], args[1]))
	},
}

var (
	lutCmdStr    = `lut`
	lutOpFlag    string
	lutValueFlag float64
)

func lutFunc(in, out string) command {
	return func(e *env) error {
		t, err := lut.ByName(lutOpFlag, lutValueFlag)
		if err != nil {
			return err
		}
		r, v, err := load(in)
		if err != nil {
			return err
		}
		if err := t.ApplyInPlace(r); err != nil {
			return err
		}
		if err := save(out, r, v); err != nil {
			return err
		}
		logx.Info(`applied lookup table`, e, `op`, lutOpFlag, `value`, lutValueFlag, `out`, out)
		return nil
	}
}
