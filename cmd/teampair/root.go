package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by all subcommands.
type app struct {
	cfg     config
	verbose bool
	logger  *zap.Logger // built in PersistentPreRunE unless preset
}

func newApp(cfg config) *app {
	return &app{cfg: cfg}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "teampair",
		Short: "Pair team leaders with juniors from two-sided wishlists",
		Long: `teampair forms N two-person teams from N leaders and N juniors.

Each side ranks the other side. A pairing scores the sum of both
partners' ranks, and the tool maximises the harmonic mean of those
scores, so no single pair is left far behind the rest.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setupLogger,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.buildCmd(), a.scoreCmd())

	return root
}

// setupLogger builds a production logger at the configured level.
func (a *app) setupLogger(*cobra.Command, []string) error {
	if a.logger != nil {
		return nil
	}
	level, err := zapcore.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if a.logger, err = zc.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}
