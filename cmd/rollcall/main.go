// Package main provides the CLI entry point for rollcall.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"rollcall/internal/config"
	"rollcall/internal/logging"
)

const defaultConfigPath = "rollcall.toml"

var (
	configPath string

	cfg    config.Config
	logger *slog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rollcall",
		Short: "Reconcile scanned sign-in sheets against a roster",
		Long: `rollcall reconstructs the sign-in table from an OCR analysis of a
scanned sheet and matches each row against the roster of known identities,
reporting matched, low-confidence, and unmatched entries on both sides.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: rollcall.toml if present)")

	rootCmd.AddCommand(newReconcileCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newRosterCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	var err error
	cfg, err = config.Load(path, explicit)
	if err != nil {
		return err
	}

	logger, err = logging.New(os.Stderr, logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	return err
}
