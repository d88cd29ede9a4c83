package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"verbrauch/internal/cli"
	"verbrauch/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE:  runMigrate,
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := cli.SetupLogger(cfg)

	if cfg.DataBackend != "sqlite" {
		return fmt.Errorf("migrate requires the sqlite backend, got %q", cfg.DataBackend)
	}
	if err := storage.RunMigrations(cfg.SQLiteDBPath); err != nil {
		return err
	}
	logger.Info("Migrations applied", "path", cfg.SQLiteDBPath)
	return nil
}
