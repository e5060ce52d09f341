package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/srlehn/pnmscale/internal/config"
	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/internal/logx"
)

var rootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]),
	Short: "pnmscale resample portable anymap images",
	Long: `pnmscale resamples binary PNM images (P4, P5, P6) with nearest neighbour,
bilinear or cubic convolution interpolation.`,
	SilenceUsage:     true,
	SilenceErrors:    true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors, implies --log-level=debug`)
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	rootCmd.PersistentFlags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, `log-level`, ``, `log level (debug, info, warn, error)`)
	rootCmd.PersistentFlags().StringVarP(&configFlag, `config`, `c`, ``, `config file (default: user config dir)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !silentFlag {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}

var (
	debugFlag      bool
	silentFlag     bool
	logFileFlag    string
	logLevelFlag   string
	configFlag     string
	cpuProfileFlag string
	cpuProfilefunc func(profileFile string) func()
)

// env is handed to every command. It carries the merged configuration and
// the logger built from the persistent flags.
type env struct {
	ctx    context.Context
	cfg    *config.Config
	logger *slog.Logger
}

var _ logx.LoggerProvider = (*env)(nil)

func (e *env) Logger() *slog.Logger {
	if e == nil {
		return nil
	}
	return e.logger
}

type command func(e *env) error

func run(fn command) {
	var err error
	if fn == nil {
		err = errors.NilParam()
	}
	var exitCode int
	var logFile io.Closer
	defer func() {
		if r := recover(); r != nil {
			exitCode = 1
			if !silentFlag {
				if stackFramer, ok := r.(interface{ ErrorStack() string }); ok {
					fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
				} else {
					debug.PrintStack()
				}
			}
		}
		if logFile != nil {
			_ = logFile.Close()
		}
		os.Exit(exitCode)
	}()
	if len(cpuProfileFlag) > 0 && cpuProfilefunc != nil {
		if stop := cpuProfilefunc(cpuProfileFlag); stop != nil {
			defer stop()
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var e *env
	if err == nil {
		e, logFile, err = newEnv(ctx)
	}
	if err == nil {
		err = fn(e)
	}
	if err != nil {
		if len(logFileFlag) > 0 {
			logx.IsErr(err, e, slog.LevelError)
		}
		exitCode = 1
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, err.Error())
			}
		}
	}
}

func newEnv(ctx context.Context) (*env, io.Closer, error) {
	cfgPath := configFlag
	if len(cfgPath) == 0 {
		// no user config dir, run on defaults
		cfgPath, _ = config.DefaultPath()
	}
	cfg := config.Default()
	if len(cfgPath) > 0 {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, nil, err
		}
	}

	lvlStr := cfg.LogLevel
	if len(logLevelFlag) > 0 {
		lvlStr = logLevelFlag
	}
	if debugFlag {
		lvlStr = `debug`
	}
	lvl, err := logx.ParseLevel(lvlStr)
	if err != nil {
		return nil, nil, err
	}

	var (
		w       io.Writer
		logFile io.Closer
	)
	switch {
	case len(logFileFlag) > 0:
		f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, errors.New(err)
		}
		w, logFile = f, f
	case !silentFlag:
		w = os.Stderr
	}

	e := &env{
		ctx:    ctx,
		cfg:    cfg,
		logger: logx.NewLogger(w, lvl),
	}
	logx.Debug(`configuration`, e, `path`, cfgPath, `kernel`, cfg.Kernel, `workers`, cfg.Workers)
	return e, logFile, nil
}
