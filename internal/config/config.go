package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Output  Output  `yaml:"output"`
	Chart   Chart   `yaml:"chart"`
	Compare Compare `yaml:"compare"`
}

// Output controls the composite comparison figure.
type Output struct {
	Path     string  `yaml:"path"`
	DPI      int     `yaml:"dpi"`
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`
	Show     bool    `yaml:"show"`
}

type Chart struct {
	BarWidthPt  float64 `yaml:"bar_width_pt"`
	TitleSizePt float64 `yaml:"title_size_pt"`
}

// Compare controls the per-domain MCTS vs A* figures.
type Compare struct {
	OutDir      string  `yaml:"out_dir"`
	Parallel    int     `yaml:"parallel"`
	DPI         int     `yaml:"dpi"`
	WidthIn     float64 `yaml:"width_in"`
	HeightIn    float64 `yaml:"height_in"`
	TitleSizePt float64 `yaml:"title_size_pt"`
}

// Default returns the settings used when no config file is present.
func Default() *Config {
	return &Config{
		Output: Output{
			Path:     "comparison_plots.png",
			DPI:      300,
			WidthIn:  18,
			HeightIn: 20,
			Show:     true,
		},
		Chart: Chart{
			BarWidthPt:  20,
			TitleSizePt: 14,
		},
		Compare: Compare{
			OutDir:      "plots",
			Parallel:    1,
			DPI:         100,
			WidthIn:     6.4,
			HeightIn:    4.8,
			TitleSizePt: 16,
		},
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults
// unless the caller named the file explicitly.
func LoadOrDefault(path string, explicit bool) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks cfg after flag or environment overrides were applied.
func Validate(cfg *Config) error {
	return validate(cfg)
}

func validate(cfg *Config) error {
	if cfg.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	if cfg.Output.DPI < 1 {
		return fmt.Errorf("output.dpi must be at least 1")
	}
	if cfg.Output.WidthIn <= 0 || cfg.Output.HeightIn <= 0 {
		return fmt.Errorf("output size must be positive")
	}
	if cfg.Chart.BarWidthPt <= 0 {
		return fmt.Errorf("chart.bar_width_pt must be positive")
	}
	if cfg.Chart.TitleSizePt <= 0 {
		return fmt.Errorf("chart.title_size_pt must be positive")
	}
	if cfg.Compare.OutDir == "" {
		cfg.Compare.OutDir = "."
	}
	if cfg.Compare.Parallel < 1 {
		cfg.Compare.Parallel = 1
	}
	if cfg.Compare.DPI < 1 {
		return fmt.Errorf("compare.dpi must be at least 1")
	}
	if cfg.Compare.WidthIn <= 0 || cfg.Compare.HeightIn <= 0 {
		return fmt.Errorf("compare size must be positive")
	}
	if cfg.Compare.TitleSizePt <= 0 {
		return fmt.Errorf("compare.title_size_pt must be positive")
	}
	return nil
}
