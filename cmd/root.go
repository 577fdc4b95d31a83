package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/toeiz/internal/config"
	"github.com/abhisek/toeiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "toeiz",
	Short:         "TOEIC practice with generated questions",
	Long:          "toeiz serves a TOEIC practice site whose grammar and reading tests are generated by a language model.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./toeiz.yaml or $HOME/.config/toeiz/toeiz.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TOEIZ_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config and applies --db.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.Database.Path = p
	}
	return cfg, nil
}

// openStore opens the configured database. For SQLite the path comes from
// --db, then the config file or TOEIZ_DB, then the default XDG path.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	sc := cfg.StoreConfig()
	if sc.Driver == store.DriverSQLite {
		if sc.Path == "" {
			p, err := store.DefaultDBPath()
			if err != nil {
				return nil, fmt.Errorf("resolve database path: %w", err)
			}
			sc.Path = p
		} else if err := store.EnsureDir(sc.Path); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	s, err := store.Open(cmd.Context(), sc)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newLogger builds the configured logger writing to stderr.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}
