package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/srlehn/pnmscale/internal/config"
	"github.com/srlehn/pnmscale/internal/errors"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&configWriteFlag, `write`, false, `write the effective configuration to the config file`)
}

var configCmd = &cobra.Command{
	Use:   configCmdStr,
	Short: `print the effective configuration`,
	Long: `Print the effective configuration as YAML.

usage: ` + os.Args[0] + ` ` + configCmdStr + ` [--write]`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(configFunc)
	},
}

var (
	configCmdStr    = `config`
	configWriteFlag bool
)

func configFunc(e *env) error {
	if configWriteFlag {
		path := configFlag
		if len(path) == 0 {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}
		if err := e.cfg.Save(path); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, `written to `+path)
	}
	b, err := yaml.Marshal(e.cfg)
	if err != nil {
		return errors.New(err)
	}
	_, err = os.Stdout.Write(b)
	return errors.New(err)
}
