package kcal

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath   string
	dbPath       string
	storeKind    string
	logFile      string
	logLevel     string
	screenWidth  int
	screenHeight int
	bellEnabled  bool
)

var rootCmd = &cobra.Command{
	Use:          "kcal",
	Short:        "kcal tracks calories and macros from your terminal",
	Long:         "kcal is a local-first calorie and macro tracker. Run it without a subcommand to open the interactive day view.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a JSON config file")
	flags.StringVar(&dbPath, "db", "", "Path to SQLite database")
	flags.StringVar(&storeKind, "store", "", "Storage backend: sqlite, file or memory")
	flags.StringVar(&logFile, "log-file", "", "Log file for interactive sessions")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.IntVar(&screenWidth, "width", 0, "Screen grid width in columns")
	flags.IntVar(&screenHeight, "height", 0, "Screen grid height in rows")
	flags.BoolVar(&bellEnabled, "bell", false, "Ring the terminal bell on navigation")
}
