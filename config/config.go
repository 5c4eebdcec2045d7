// Package config provides YAML configuration loading for the esgflow CLI:
// archive location, content generator settings and logging options.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete esgflow configuration.
type Config struct {
	Archive   ArchiveConfig   `yaml:"archive"`
	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ArchiveConfig configures where sealed packages are stored.
type ArchiveConfig struct {
	// Dir is the directory of the file archive.
	Dir string `yaml:"dir"`
}

// GeneratorConfig configures the content-generation capability.
type GeneratorConfig struct {
	// Provider selects the backend: "deterministic", "openai" or "anthropic".
	Provider string `yaml:"provider"`
	// Model is the provider model identifier (ignored for deterministic).
	Model string `yaml:"model"`
	// APIKey overrides the provider's environment credential when set.
	APIKey string `yaml:"api_key"`
	// Temperature controls randomness (0.0-1.0).
	Temperature float64 `yaml:"temperature"`
	// MaxTokens caps the completion length.
	MaxTokens int64 `yaml:"max_tokens"`
	// Timeout bounds each stage execution, including generator calls.
	Timeout Duration `yaml:"timeout"`
}

// Duration wraps time.Duration so YAML accepts values like "30s" or "2m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration { return time.Duration(d) }

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is json or text.
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults: a local file
// archive, the deterministic generator and JSON info logging.
func DefaultConfig() *Config {
	return &Config{
		Archive: ArchiveConfig{Dir: "archive"},
		Generator: GeneratorConfig{
			Provider:    "deterministic",
			Model:       "",
			Temperature: 0.7,
			MaxTokens:   2048,
			Timeout:     Duration(2 * time.Minute),
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Archive.Dir == "" {
		return fmt.Errorf("archive.dir is required")
	}
	switch c.Generator.Provider {
	case "deterministic", "openai", "anthropic":
	default:
		return fmt.Errorf("generator.provider must be deterministic, openai or anthropic")
	}
	if c.Generator.Temperature < 0 || c.Generator.Temperature > 1 {
		return fmt.Errorf("generator.temperature must be between 0 and 1")
	}
	if c.Generator.Timeout < 0 {
		return fmt.Errorf("generator.timeout must not be negative")
	}
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text")
	}
	return nil
}

// Load reads configuration from a YAML file layered over the defaults. A
// missing path returns the defaults unchanged; an unreadable or invalid file
// is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
