package main

import (
	"log/slog"

	"github.com/SscSPs/general_ledger/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(database.MigrateUp)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(database.MigrateDown)
	},
}

func init() {
	migrateCmd.AddCommand(migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(direction database.MigrateDirection) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, direction, logger); err != nil {
		logger.Error("Migration failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}
