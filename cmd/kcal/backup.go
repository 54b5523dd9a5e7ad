package kcal

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/kcal-tui/internal/config"
	"github.com/saadjs/kcal-tui/internal/service"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage backups of the data store",
}

var (
	backupOut    string
	backupDir    string
	restoreFile  string
	restoreForce bool
)

// backupTarget returns the store file and the extension its backups use.
func backupTarget(cmd *cobra.Command) (string, string, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return "", "", err
	}
	switch cfg.Store {
	case config.StoreSQLite:
		return cfg.DBPath, ".db", nil
	case config.StoreFile:
		return cfg.FilePath, ".txt", nil
	}
	return "", "", fmt.Errorf("the %s store has nothing to back up", cfg.Store)
}

func defaultBackupDir(src string) string {
	if backupDir != "" {
		return backupDir
	}
	return filepath.Join(filepath.Dir(src), "backups")
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, ext, err := backupTarget(cmd)
		if err != nil {
			return err
		}
		out := backupOut
		if out == "" {
			out = filepath.Join(defaultBackupDir(src), fmt.Sprintf("kcal-%s%s", time.Now().Format("20060102-150405"), ext))
		}
		info, err := service.CreateBackup(src, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created backup: %s\n", info.Path)
		fmt.Fprintf(cmd.OutOrStdout(), "Checksum: %s\n", info.Checksum)
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, ext, err := backupTarget(cmd)
		if err != nil {
			return err
		}
		items, err := service.ListBackups(defaultBackupDir(src), ext)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "FILE\tSIZE\tCREATED\tCHECKSUM")
		for _, it := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%s\n", it.Path, it.SizeBytes, it.CreatedAt.Format(time.RFC3339), it.Checksum)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the store from a backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		if restoreFile == "" {
			return fmt.Errorf("--file is required")
		}
		dst, _, err := backupTarget(cmd)
		if err != nil {
			return err
		}
		if err := service.RestoreBackup(restoreFile, dst, restoreForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored backup from %s\n", restoreFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupRestoreCmd)

	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup output file path")
	backupCreateCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (used when --out is empty)")
	backupListCmd.Flags().StringVar(&backupDir, "dir", "", "Backup directory (default: backups/ next to the store)")
	backupRestoreCmd.Flags().StringVar(&restoreFile, "file", "", "Backup file path")
	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite the existing store if present")
}
