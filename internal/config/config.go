// Package config resolves kcal's runtime settings.
//
// Sources, later ones win:
//  1. LoadDefaults
//  2. a JSON file (explicit path, or config.json in the app dir when present)
//  3. KCAL_* environment variables, with a .env file as a fallback source
//  4. command-line flags the user actually set (applied by cmd/kcal)
package config

import (
	"fmt"
	"strings"

	"github.com/saadjs/kcal-tui/internal/app"
	"github.com/saadjs/kcal-tui/internal/model"
)

// Store kinds.
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
	StoreMemory = "memory"
)

// Smallest grid every screen fits in. The food form's confirm button sits
// on row 15 and must stay above the tips rule on row Height-3.
const (
	MinWidth  = 60
	MinHeight = 19
)

type Config struct {
	Store    string
	DBPath   string
	FilePath string
	LogFile  string
	LogLevel string
	Width    int
	Height   int
	Bell     bool

	// Templates seed the in-memory template catalog.
	Templates []model.FoodTemplate
}

// LoadDefaults populates c with the default settings. Paths that cannot be
// resolved are left empty and reported by Validate.
func (c *Config) LoadDefaults() {
	c.Store = StoreSQLite
	c.DBPath, _ = app.DefaultDBPath()
	c.FilePath, _ = app.DefaultFilePath()
	c.LogFile, _ = app.DefaultLogPath()
	c.LogLevel = "info"
	c.Width = 80
	c.Height = 24
	c.Bell = false
}

type LoadOptions struct {
	// ConfigPath is an explicit JSON file. A missing explicit file is an error.
	ConfigPath string
	// EnvFile is read as a fallback for KCAL_* variables. Missing is fine.
	EnvFile string
}

// Load builds a Config from defaults, JSON and the environment.
func Load(opts LoadOptions) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, opts.ConfigPath); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, opts.EnvFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store {
	case StoreSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("db path is required for the sqlite store")
		}
	case StoreFile:
		if strings.TrimSpace(c.FilePath) == "" {
			return fmt.Errorf("file path is required for the file store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store %q (want sqlite, file or memory)", c.Store)
	}
	if c.Width < MinWidth || c.Height < MinHeight {
		return fmt.Errorf("screen size %dx%d is below the %dx%d minimum", c.Width, c.Height, MinWidth, MinHeight)
	}
	return nil
}
