// Package cli wires configuration, logging, metrics and storage into the
// schoolnet command tree.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/schoolnet/internal/config"
	"github.com/katalvlaran/schoolnet/internal/logger"
	"github.com/katalvlaran/schoolnet/internal/metrics"
	"github.com/katalvlaran/schoolnet/internal/session"
	"github.com/katalvlaran/schoolnet/storage"
)

// Execute runs the command tree on os.Args and exits with status 1 on error.
func Execute() {
	cmd, done := newRootCmd()
	err := cmd.Execute()
	done()
	if err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	debug      bool

	cfg     config.Config
	metrics *metrics.Registry
	cleanup []func()
}

// newRootCmd builds the command tree. The returned func releases the logger
// and metrics server once execution is over, including on error.
func newRootCmd() (*cobra.Command, func()) {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "schoolnet",
		Short:        "Place schools in a road network so every town can reach one",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		menuCmd(a),
		solveCmd(a),
		checkCmd(a),
		neighborsCmd(a),
		generateCmd(a),
	)
	return cmd, a.close
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	cleanup, err := logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Debug:  a.debug,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cleanup = append(a.cleanup, func() { _ = cleanup() })

	a.metrics = metrics.NewRegistry()
	if addr := cfg.Metrics.Addr; addr != "" {
		ctx, cancel := context.WithCancel(cmd.Context())
		a.cleanup = append(a.cleanup, cancel)
		go func() {
			if err := a.metrics.Serve(ctx, addr); err != nil {
				logger.L().Error("metrics.serve_failed", "addr", addr, "err", err)
			}
		}()
		logger.L().Info("metrics.serving", "addr", addr)
	}

	return nil
}

func (a *app) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
}

func (a *app) sessionDeps() session.Deps {
	return session.Deps{
		Logger:  logger.L(),
		Metrics: a.metrics,
		S3: storage.S3Config{
			Region:    a.cfg.Storage.S3.Region,
			Endpoint:  a.cfg.Storage.S3.Endpoint,
			PathStyle: a.cfg.Storage.S3.PathStyle,
		},
		Trace: a.cfg.Solver.Trace,
	}
}
