// Package config loads svckit configuration from YAML files and environment
// variables via viper, with optional .env support through godotenv.
package config

import (
	"github.com/skillsenselab/svckit/logger"
	"github.com/skillsenselab/svckit/validation"
)

// Config is the toolkit configuration an embedding application loads once
// and fans out to the svckit packages.
type Config struct {
	Name      string          `yaml:"name" mapstructure:"name" validate:"required"`
	Logging   logger.Config   `yaml:"logging" mapstructure:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
	Debug     DebugConfig     `yaml:"debug" mapstructure:"debug"`
}

// TelemetryConfig configures the observability package.
type TelemetryConfig struct {
	Enabled        bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint       string  `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure       bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate     float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	IntervalSecond int     `yaml:"interval_seconds" mapstructure:"interval_seconds" validate:"gte=0"`
}

// DebugConfig configures the introspection endpoint.
type DebugConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// ApplyDefaults applies default values across all sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "svckit"
	}
	c.Logging.ApplyDefaults()
	if c.Telemetry.Endpoint == "" {
		c.Telemetry.Endpoint = "localhost:4318"
	}
	if c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1.0
	}
	if c.Telemetry.IntervalSecond == 0 {
		c.Telemetry.IntervalSecond = 15
	}
	if c.Debug.Path == "" {
		c.Debug.Path = "/debug/registry"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}
