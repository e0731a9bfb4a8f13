package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagLogLevel string
	flagQuiet    bool
)

// NewRootCmd creates the root cobra command for the mlfqsim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mlfqsim",
		Short: "mlfqsim — multi-level feedback queue scheduler simulator",
		Long: "mlfqsim runs multi-level feedback queue scheduling scenarios:\n" +
			"processes drain tier by tier, unfinished work is demoted, and a\n" +
			"periodic boost resets priorities to prevent starvation.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Suppress per-dispatch trace output")

	root.AddCommand(
		newRunCmd(),
	)

	return root
}

// newLogger builds a zap logger for the configured level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
