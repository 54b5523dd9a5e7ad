package kcal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/kcal-tui/internal/app"
	"github.com/saadjs/kcal-tui/internal/config"
	"github.com/saadjs/kcal-tui/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local kcal store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		switch cfg.Store {
		case config.StoreSQLite:
			b, err := store.OpenSQLite(cfg.DBPath)
			if err != nil {
				return err
			}
			defer b.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized kcal database at %s\n", cfg.DBPath)
		case config.StoreFile:
			// The data file itself is written on the first save.
			if err := app.EnsureDir(cfg.FilePath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Using kcal data file %s\n", cfg.FilePath)
		default:
			fmt.Fprintln(cmd.OutOrStdout(), "Memory store needs no initialization")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
