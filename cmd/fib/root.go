package main

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/on-the-ground/fibtable/config"
	"github.com/on-the-ground/fibtable/effects/log"
	"github.com/on-the-ground/fibtable/fib"
	"github.com/on-the-ground/fibtable/observe"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *zap.Logger
	// set by setup, run by teardown in reverse order
	closers []func() error
}

func newApp() *app {
	return &app{v: config.New()}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "fib",
		Short:         "Generalized Fibonacci calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.Bool("metrics", false, "print calculator metrics to stdout on exit")
	mustBind(a.v, config.ConfigLogLevel, flags.Lookup("log-level"))
	mustBind(a.v, config.ConfigLogFormat, flags.Lookup("log-format"))
	mustBind(a.v, config.ConfigMetricsEnabled, flags.Lookup("metrics"))

	root.AddCommand(
		newCalcCmd(a),
		newRecursiveCmd(a),
		newPairsCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := cfg.Logger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.logger = logger
	undo := zap.ReplaceGlobals(logger)
	a.closers = append(a.closers, func() error {
		undo()
		return nil
	})

	ctx, endOfLog := log.WithZapEffectHandler(cmd.Context(), cfg.BufferSize, logger)
	a.closers = append(a.closers, func() error {
		endOfLog()
		return nil
	})
	cmd.SetContext(ctx)
	return nil
}

// teardown releases what setup and the subcommands acquired. It runs even
// when the command failed, so queued log entries are always flushed.
func (a *app) teardown() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i]())
	}
	a.closers = nil
	return err
}

// calculator builds a Calculator from the loaded config, wiring metrics when enabled.
func (a *app) calculator(cmd *cobra.Command) (*fib.Calculator, error) {
	opts := []fib.Option{
		fib.WithStart(a.cfg.X, a.cfg.Y),
		fib.WithLogger(a.logger),
	}
	if a.cfg.MetricsEnabled {
		mp, err := observe.NewStdoutMeterProvider(cmd.OutOrStdout())
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error {
			return mp.Shutdown(context.Background())
		})
		metrics, err := observe.NewMetrics(mp.Meter("github.com/on-the-ground/fibtable"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, fib.WithRecorder(metrics))
	}
	return fib.New(opts...), nil
}

// parseInts parses every argument and reports all malformed ones at once.
func parseInts(args []string) ([]int, error) {
	ns := make([]int, 0, len(args))
	var err error
	for _, arg := range args {
		n, perr := strconv.Atoi(arg)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: %q is not an integer", fib.ErrInvalidArgument, arg))
			continue
		}
		ns = append(ns, n)
	}
	return ns, err
}

func printTerm(cmd *cobra.Command, n int, v *big.Int) {
	fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", n, v.String())
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
