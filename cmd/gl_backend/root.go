package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/general_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

var flagDebug bool

var rootCmd = &cobra.Command{
	Use:           "gl_backend",
	Short:         "Multi-tenant double-entry general ledger",
	Long:          "Chart of accounts, accounting periods, journal entries and ledger reports over PostgreSQL.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if flagDebug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// bootstrap loads config and the logger every subcommand needs.
func bootstrap() (*config.Config, *slog.Logger, error) {
	logger := newLogger()
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		return nil, nil, err
	}
	return cfg, logger, nil
}
