package kcal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/config"
	"github.com/saadjs/kcal-tui/internal/store"
)

// loadConfig layers the flags the user set over file and environment
// configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{ConfigPath: configPath, EnvFile: ".env"})
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store = strings.ToLower(strings.TrimSpace(storeKind))
	}
	if flags.Changed("db") {
		cfg.DBPath = dbPath
		if !flags.Changed("store") {
			cfg.Store = config.StoreSQLite
		}
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("width") {
		cfg.Width = screenWidth
	}
	if flags.Changed("height") {
		cfg.Height = screenHeight
	}
	if flags.Changed("bell") {
		cfg.Bell = bellEnabled
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// storePath is the file behind the configured backend, or "" for memory.
func storePath(cfg *config.Config) string {
	switch cfg.Store {
	case config.StoreSQLite:
		return cfg.DBPath
	case config.StoreFile:
		return cfg.FilePath
	}
	return ""
}

func openManager(cfg *config.Config) (*store.Manager, error) {
	backend, err := store.Open(cfg.Store, storePath(cfg))
	if err != nil {
		return nil, err
	}
	return store.NewManager(backend), nil
}

// withStore loads the configured store, runs fn and closes the store.
func withStore(cmd *cobra.Command, run func(*config.Config, *store.Manager) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := openManager(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if _, _, _, err := m.LoadAll(cmd.Context()); err != nil {
		return err
	}
	return run(cfg, m)
}

func parseDateOrToday(s string) (calendar.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return calendar.Today(), nil
	}
	d, err := calendar.Parse(s)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("invalid --date %q (expected DD/MM/YYYY or YYYY-MM-DD)", s)
	}
	return d, nil
}
