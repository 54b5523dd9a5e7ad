package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvStore    = "KCAL_STORE"
	EnvDB       = "KCAL_DB"
	EnvFile     = "KCAL_FILE"
	EnvLogFile  = "KCAL_LOG_FILE"
	EnvLogLevel = "KCAL_LOG_LEVEL"
	EnvBell     = "KCAL_BELL"
	EnvWidth    = "KCAL_WIDTH"
	EnvHeight   = "KCAL_HEIGHT"
)

// parseEnv overlays cfg with KCAL_* variables. Non-empty values in the
// process environment take precedence over the same keys in envFile.
func parseEnv(cfg *Config, envFile string) error {
	dotenv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("read env file: %w", err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	for key, dst := range map[string]*string{
		EnvStore:    &cfg.Store,
		EnvDB:       &cfg.DBPath,
		EnvFile:     &cfg.FilePath,
		EnvLogFile:  &cfg.LogFile,
		EnvLogLevel: &cfg.LogLevel,
	} {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	for key, dst := range map[string]*int{EnvWidth: &cfg.Width, EnvHeight: &cfg.Height} {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse %s: %w", key, err)
		}
		*dst = n
	}
	if v, ok := lookup(EnvBell); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvBell, err)
		}
		cfg.Bell = b
	}
	return nil
}
