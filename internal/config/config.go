// Package config loads the run configuration from defaults, environment
// variables (prefix GOALSTATS) and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of all environment variables,
// e.g. GOALSTATS_OUTPUT_DIR.
const EnvPrefix = "GOALSTATS"

// Config represents the complete configuration of a run.
type Config struct {
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// OutputConfig controls where and what is written.
type OutputConfig struct {
	Dir      string `yaml:"dir" envconfig:"DIR" default:"outputs" validate:"required"`
	DPI      int    `yaml:"dpi" envconfig:"DPI" default:"300" validate:"min=50,max=1200"`
	Workbook bool   `yaml:"workbook" envconfig:"WORKBOOK" default:"true"`
}

// AnalysisConfig selects the dataset and the binning.
type AnalysisConfig struct {
	// Dataset is a YAML dataset file. Empty selects the built-in
	// 2011 season.
	Dataset    string `yaml:"dataset" envconfig:"DATASET"`
	ClassWidth int    `yaml:"class_width" envconfig:"CLASS_WIDTH" default:"5" validate:"gt=0"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=json text"`
}

// Load builds the configuration: defaults and environment variables
// first, then the YAML file at path (if path is not empty) on top.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFromFile overlays the values present in the YAML file onto cfg.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

var validate = validator.New()

// Validate checks all fields of c.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]error, len(verrs))
		for i, fe := range verrs {
			msgs[i] = fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config validation failed: %w", errors.Join(msgs...))
	}
	return fmt.Errorf("config validation failed: %w", err)
}
