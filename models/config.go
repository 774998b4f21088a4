// Package models defines data structures for configuration and preprocessing results.
package models

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultLabelFields is the ordered list of item fields consulted before
// falling back to the page title.
var DefaultLabelFields = []string{
	"model",
	"model name",
	"product model",
	"model number",
	"product name",
	"part",
	"product description",
}

// DefaultUnits are the measurement suffixes stripped together with their number.
var DefaultUnits = []string{
	"inch", "in", "cm", "mm", "ms", "dc", "kg", "gb", `g?hz`, `days?`, `months?`, `years?`,
}

// DefaultNoiseTerms are listing words that carry no identifying value.
var DefaultNoiseTerms = []string{
	"led", "lcd", "monitor", "vga", "hdmi",
	`(?:windows|win)\s*(?:\d{1,2}|vista|xp)*`,
	"pixel", "display", "touch", "touchscreen", "touchmonitor", "screen", "widescreen",
	"tft", "tv", "cable", "port", "desktop", "ios", "apple", "ebay",
	"new", "shop", "free", "item", `colou?r`,
}

// Config holds the pipeline configuration.
// Values come from config.yaml and are overridden by CLI flags.
type Config struct {
	RootDir    string `yaml:"root_dir"`
	ResultsDir string `yaml:"results_dir"`
	Workers    int    `yaml:"workers"`

	LabelFields []string `yaml:"label_fields"`
	Units       []string `yaml:"units"`
	NoiseTerms  []string `yaml:"noise_terms"`

	// MinModelTokenLen is the length a mixed letter/digit token must exceed
	// to be kept as part of a model name.
	MinModelTokenLen int `yaml:"min_model_token_len"`

	// CommonWordPercentage is the share of a source's items a word must
	// appear in (by count) to be pruned.
	CommonWordPercentage float64 `yaml:"common_word_percentage"`
	CommonWordMinCount   int     `yaml:"common_word_min_count"`

	DBPath   string `yaml:"db_path"`
	CacheDir string `yaml:"cache_dir"`
	MaxAge   string `yaml:"max_age"`
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		RootDir:              "data",
		ResultsDir:           "results",
		Workers:              4,
		LabelFields:          append([]string(nil), DefaultLabelFields...),
		Units:                append([]string(nil), DefaultUnits...),
		NoiseTerms:           append([]string(nil), DefaultNoiseTerms...),
		MinModelTokenLen:     3,
		CommonWordPercentage: 0.02,
		CommonWordMinCount:   2,
		MaxAge:               "24h",
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.CommonWordPercentage < 0 || c.CommonWordPercentage > 1 {
		return fmt.Errorf("common_word_percentage must be within [0, 1], got %v", c.CommonWordPercentage)
	}
	if len(c.LabelFields) == 0 {
		return errors.New("label_fields must not be empty")
	}
	return nil
}
