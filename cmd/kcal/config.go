package kcal

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		values := map[string]string{
			"store":     cfg.Store,
			"db_path":   cfg.DBPath,
			"file_path": cfg.FilePath,
			"log_file":  cfg.LogFile,
			"log_level": cfg.LogLevel,
			"width":     strconv.Itoa(cfg.Width),
			"height":    strconv.Itoa(cfg.Height),
			"bell":      strconv.FormatBool(cfg.Bell),
			"templates": strconv.Itoa(len(cfg.Templates)),
		}
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, values[k])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
