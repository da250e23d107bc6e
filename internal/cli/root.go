// Package cli defines Cobra command definitions for the silenttrial CLI.
// This file contains the root command, version flag, and help output.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/silenttrial-dev/silenttrial/internal/config"
	applog "github.com/silenttrial-dev/silenttrial/internal/log"
	"github.com/silenttrial-dev/silenttrial/internal/store"
	"github.com/silenttrial-dev/silenttrial/internal/tui"
	"github.com/silenttrial-dev/silenttrial/internal/tui/app"
)

var (
	ephemeral bool
	version   = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "silenttrial",
	Short: "A terminal riddle game of five chambers",
	Long: `The Silent Trial is an interactive narrative puzzle game.
Five chambers, each a logical test disguised as instructions.
Any wrong input means elimination; silence may be an answer.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, kv, logger, closeStore, err := openEnvironment()
		if err != nil {
			return err
		}
		defer closeStore()

		return tui.Run(app.New(cfg, kv, logger), cfg.UI.NoAltScreen)
	},
}

// openEnvironment resolves the data directory and opens the config,
// store and logger the commands share. The returned func closes the
// store.
func openEnvironment() (*config.Config, store.KV, *applog.Logger, func(), error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	cfg, err := config.ReadConfig(dataDir)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	if ephemeral {
		return cfg, store.NewMemory(), nil, func() {}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := store.OpenSQLite(filepath.Join(dataDir, cfg.Storage.Database))
	if err != nil {
		return nil, nil, nil, nil, err
	}

	logger, err := applog.NewLogger(dataDir)
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, nil, err
	}

	return cfg, db, logger, func() { _ = db.Close() }, nil
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Play without touching the save database")

	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(topCmd)
}
