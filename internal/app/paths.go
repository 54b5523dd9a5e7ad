package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName   = "kcal"
	dbFileName   = "kcal.db"
	dataFileName = "kcal_data.txt"
	logFileName  = "kcal.log"
	configName   = "config.json"
)

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func inConfigDir(name string) (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func DefaultDBPath() (string, error) {
	return inConfigDir(dbFileName)
}

// DefaultFilePath is where the flat-file store keeps its records.
func DefaultFilePath() (string, error) {
	return inConfigDir(dataFileName)
}

func DefaultLogPath() (string, error) {
	return inConfigDir(logFileName)
}

func DefaultConfigPath() (string, error) {
	return inConfigDir(configName)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
