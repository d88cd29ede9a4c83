package main

import (
	"github.com/spf13/cobra"

	"verbrauch/internal/cli"
	"verbrauch/internal/config"
)

var (
	flagDBPath string
	flagPort   string
)

var rootCmd = &cobra.Command{
	Use:   "verbrauch",
	Short: "Household utility-consumption tracker",
	Long: `Verbrauch records electricity, oil, and water bills for one household
and serves per-entry and aggregate statistics over a small HTTP API.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "database file (default from SQLITE_DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagPort, "port", "", "HTTP port (default from PORT)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// loadConfig loads env + config and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cli.LoadEnvFile()
	cfg := config.Load()
	if flagDBPath != "" {
		cfg.SQLiteDBPath = flagDBPath
	}
	if flagPort != "" {
		cfg.Port = flagPort
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
