// Package config loads the benchmark harness configuration.
//
// Loading order (lowest to highest priority):
//  1. Default values (in code), mirroring the original harness: sizes 1..19,
//     weights 1..100, results.csv.
//  2. An optional YAML file.
//  3. PATHBENCH_* environment variables.
//
// Command-line flags are applied by the caller after Load, then Validate runs
// again.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/openpath/tsp"
)

// Environment selects logging defaults.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// ErrInvalidConfig is wrapped by every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// envPrefix namespaces every environment override.
const envPrefix = "PATHBENCH_"

// Config drives one harness run.
type Config struct {
	MinSize     int         `yaml:"min_size"`
	MaxSize     int         `yaml:"max_size"`
	Seed        int64       `yaml:"seed"`
	MinWeight   int         `yaml:"min_weight"`
	MaxWeight   int         `yaml:"max_weight"`
	Trials      int         `yaml:"trials"`
	Parallelism int         `yaml:"parallelism"`
	CSVPath     string      `yaml:"csv_path"`
	MetricsPath string      `yaml:"metrics_path"`
	Environment Environment `yaml:"environment"`
	LogLevel    string      `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MinSize:     1,
		MaxSize:     19,
		Seed:        1,
		MinWeight:   1,
		MaxWeight:   100,
		Trials:      1,
		Parallelism: 1,
		CSVPath:     "results.csv",
		Environment: Development,
		LogLevel:    "info",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile overlays the YAML document at path. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %q: %w: %w", path, ErrInvalidConfig, err)
	}

	return nil
}

// loadEnv overlays PATHBENCH_* variables.
func (c *Config) loadEnv() error {
	ints := map[string]*int{
		"MIN_SIZE":    &c.MinSize,
		"MAX_SIZE":    &c.MaxSize,
		"MIN_WEIGHT":  &c.MinWeight,
		"MAX_WEIGHT":  &c.MaxWeight,
		"TRIALS":      &c.Trials,
		"PARALLELISM": &c.Parallelism,
	}
	for key, dst := range ints {
		val, ok := os.LookupEnv(envPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return fmt.Errorf("%s%s=%q: %w", envPrefix, key, val, ErrInvalidConfig)
		}
		*dst = n
	}

	if val, ok := os.LookupEnv(envPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED=%q: %w", envPrefix, val, ErrInvalidConfig)
		}
		c.Seed = n
	}
	if val, ok := os.LookupEnv(envPrefix + "CSV_PATH"); ok {
		c.CSVPath = val
	}
	if val, ok := os.LookupEnv(envPrefix + "METRICS_PATH"); ok {
		c.MetricsPath = val
	}
	if val, ok := os.LookupEnv(envPrefix + "ENVIRONMENT"); ok {
		c.Environment = Environment(strings.ToLower(strings.TrimSpace(val)))
	}
	if val, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = strings.ToLower(strings.TrimSpace(val))
	}

	return nil
}

// Validate checks ranges and cross-field constraints.
func (c *Config) Validate() error {
	switch {
	case c.MinSize < 0:
		return fmt.Errorf("min_size %d < 0: %w", c.MinSize, ErrInvalidConfig)
	case c.MaxSize < c.MinSize:
		return fmt.Errorf("max_size %d < min_size %d: %w", c.MaxSize, c.MinSize, ErrInvalidConfig)
	case c.MaxSize > tsp.MaxExactCities:
		return fmt.Errorf("max_size %d exceeds exact solver limit %d: %w", c.MaxSize, tsp.MaxExactCities, ErrInvalidConfig)
	case c.MinWeight < 0 || c.MaxWeight < c.MinWeight:
		return fmt.Errorf("weights [%d,%d]: %w", c.MinWeight, c.MaxWeight, ErrInvalidConfig)
	case c.Trials < 1:
		return fmt.Errorf("trials %d < 1: %w", c.Trials, ErrInvalidConfig)
	case c.Parallelism < 1:
		return fmt.Errorf("parallelism %d < 1: %w", c.Parallelism, ErrInvalidConfig)
	}

	switch c.Environment {
	case Development, Production:
	default:
		return fmt.Errorf("environment %q: %w", c.Environment, ErrInvalidConfig)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidConfig)
	}

	return nil
}
