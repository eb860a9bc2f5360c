package commands

import (
	"context"
	"fmt"
	"os"

	"dhanbad/wellness-admin/internal/config"
	"dhanbad/wellness-admin/internal/logging"
	"dhanbad/wellness-admin/internal/storage"
	"dhanbad/wellness-admin/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wellness",
	Short: "Wellness clinic admin backend",
	Long: `Administrative backend for a small wellness-clinic chain: client
intake, appointment scheduling, plan templates, invoicing and payment
tracking, with CSV and printable-invoice reporting.

All data lives in one locally persisted aggregate; the serve command exposes
it over an HTTP API and the remaining commands operate on it directly.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory containing config.yaml")
}

// openStore loads config, builds the logger and opens the persisted store.
// Callers must Close the returned storage.
func openStore(ctx context.Context) (*store.Store, storage.SnapshotStorage, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}
	st, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open storage: %w", err)
	}
	s, err := store.Open(ctx, st, log)
	if err != nil {
		st.Close()
		return nil, nil, nil, err
	}
	return s, st, log, nil
}
