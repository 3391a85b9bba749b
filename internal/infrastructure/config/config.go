package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/Tania526-sudo/goit-algo-hw-06/internal/infrastructure/telemetry"
)

// EnvPrefix prefixes every environment override, e.g. ADDRESSBOOK_LOG_LEVEL
const EnvPrefix = "ADDRESSBOOK_"

// DefaultPath is the optional YAML file read by Load when no path is given
const DefaultPath = "configs/config.yaml"

type Config struct {
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level"`

	Metrics MetricsConfig `koanf:"metrics"`
	Tracing TracingConfig `koanf:"tracing"`
}

type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	MeterName string `koanf:"meter_name"`
}

type TracingConfig struct {
	Enabled     bool   `koanf:"enabled"`
	ServiceName string `koanf:"service_name"`
}

// Defaults returns the configuration used when nothing overrides it
func Defaults() *Config {
	return &Config{
		Version:     "dev",
		Environment: "development",
		LogLevel:    "info",
		Metrics: MetricsConfig{
			Enabled:   true,
			MeterName: "addressbook",
		},
		Tracing: TracingConfig{
			Enabled:     true,
			ServiceName: "addressbook-demo",
		},
	}
}

// Load layers defaults, the YAML file at path and ADDRESSBOOK_ environment
// variables. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path == "" {
		path = DefaultPath
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}

	// Single underscores separate nesting levels, so ADDRESSBOOK_METRICS_METER_NAME
	// needs the known two-word keys mapped back explicitly.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var compoundKeys = []string{"log_level", "meter_name", "service_name"}

func envKey(s string) string {
	key := strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
	for _, compound := range compoundKeys {
		key = strings.Replace(key, strings.Replace(compound, "_", ".", -1), compound, -1)
	}
	return key
}

// Validate checks values that would otherwise fail later at startup
func (c *Config) Validate() error {
	if _, err := telemetry.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	if c.Metrics.Enabled && c.Metrics.MeterName == "" {
		return fmt.Errorf("metrics.meter_name is required when metrics are enabled")
	}
	return nil
}
