// Package config handles loading and saving homograf options.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the options file read from the working directory when no
// --config flag is given.
const DefaultFile = "homograf.yaml"

// Options holds everything that controls a run.
type Options struct {
	DataPath           string  `yaml:"data"`                 // CSV file or directory of heteronyms_*.csv
	OutDir             string  `yaml:"out_dir"`              // Figures directory
	IncludeSingleSense bool    `yaml:"include_single_sense"` // Chart words with a single sense too
	TopWords           int     `yaml:"top_words"`            // Bars per language panel, 0 = all
	MaxCards           int     `yaml:"max_cards"`            // Words on the card figure
	DPI                float64 `yaml:"dpi"`                  // Pixels per inch of the rendered figures
	LogLevel           string  `yaml:"log_level"`            // debug, info, warn, error
}

// Default returns the built-in options.
func Default() Options {
	return Options{
		DataPath: "data",
		OutDir:   "figures",
		TopWords: 0,
		MaxCards: 12,
		DPI:      100,
		LogLevel: "info",
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.DataPath == "" {
		return fmt.Errorf("data path must not be empty")
	}
	if o.OutDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if o.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %v", o.DPI)
	}
	if o.TopWords < 0 {
		return fmt.Errorf("top_words must not be negative, got %d", o.TopWords)
	}
	if o.MaxCards < 0 {
		return fmt.Errorf("max_cards must not be negative, got %d", o.MaxCards)
	}
	return nil
}

// Load reads options from a YAML file. Keys missing from the file keep
// their default values.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return opts, nil
}

// Save writes options to a YAML file, creating its directory if needed.
func Save(path string, opts Options) error {
	out, err := yaml.Marshal(&opts)
	if err != nil {
		return fmt.Errorf("marshaling options: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
