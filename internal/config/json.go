package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/saadjs/kcal-tui/internal/app"
	"github.com/saadjs/kcal-tui/internal/model"
)

// JSONConfig is the on-disk shape. Pointer fields distinguish "absent"
// from a zero value.
type JSONConfig struct {
	Store     *string        `json:"store"`
	DBPath    *string        `json:"db_path"`
	FilePath  *string        `json:"file_path"`
	LogFile   *string        `json:"log_file"`
	LogLevel  *string        `json:"log_level"`
	Width     *int           `json:"width"`
	Height    *int           `json:"height"`
	Bell      *bool          `json:"bell"`
	Templates []JSONTemplate `json:"templates"`
}

type JSONTemplate struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Carbs    int    `json:"carbs"`
	Protein  int    `json:"protein"`
	Fat      int    `json:"fat"`
}

func parseJSON(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		p, err := app.DefaultConfigPath()
		if err != nil {
			return nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	jc.apply(cfg)
	return nil
}

func (jc JSONConfig) apply(cfg *Config) {
	setString(&cfg.Store, jc.Store)
	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.FilePath, jc.FilePath)
	setString(&cfg.LogFile, jc.LogFile)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.Width != nil {
		cfg.Width = *jc.Width
	}
	if jc.Height != nil {
		cfg.Height = *jc.Height
	}
	if jc.Bell != nil {
		cfg.Bell = *jc.Bell
	}
	for _, t := range jc.Templates {
		cfg.Templates = append(cfg.Templates, model.FoodTemplate{
			Name:     model.TruncateName(t.Name),
			Calories: t.Calories,
			Carbs:    t.Carbs,
			Protein:  t.Protein,
			Fat:      t.Fat,
		})
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
