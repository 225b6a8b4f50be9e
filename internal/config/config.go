// Package config loads runtime configuration for a pulsar run.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a pulsar run.
// Values are populated from .pulsar.yaml, PULSAR_* env vars, and CLI flags.
type Config struct {
	// Root is the output directory under which pattern scaffolds are written.
	Root string `mapstructure:"root"`
	// Threshold is the completeness gate: destinations already holding this
	// many files are skipped.
	Threshold int `mapstructure:"threshold"`
	// CatalogPaths lists TOML catalog files or directories loaded in
	// addition to (or, with builtin disabled, instead of) the built-ins.
	CatalogPaths []string `mapstructure:"catalog_paths"`
	// Builtin controls whether the built-in pattern catalogs are included.
	Builtin bool `mapstructure:"builtin"`
	// Telemetry is the JSONL event file path; empty disables telemetry.
	Telemetry string `mapstructure:"telemetry"`
	Verbose   bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("root", "patterns")
	viper.SetDefault("threshold", 3)
	viper.SetDefault("catalog_paths", []string{})
	viper.SetDefault("builtin", true)
	viper.SetDefault("telemetry", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
