// Package config loads the YAML configuration of sample-typer.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"sample-typer/internal/render"
	"sample-typer/internal/suggest"
)

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = ".sample-typer.yaml"

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config is the configuration file.
type Config struct {
	Version string `yaml:"version"`
	// Targets are the documentation languages annotations are rendered for.
	Targets []string `yaml:"targets"`
	// Strict fails a run when a sample uses an unsupported type.
	Strict bool `yaml:"strict"`
	// FailOnTypeErrors fails a run when a sample does not type-check.
	FailOnTypeErrors bool `yaml:"failOnTypeErrors"`
	// ShowUnknown lists bindings whose type could not be determined.
	ShowUnknown bool `yaml:"showUnknown"`
	// Concurrency bounds the number of samples checked at once.
	Concurrency int `yaml:"concurrency"`
	// Format is one of table, json or yaml.
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Load loads path, or DefaultFile when path is empty. A missing DefaultFile
// yields Default(); a missing explicit path is an error.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}

	cfg, err := LoadFile(DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = "1"
	}

	if len(c.Targets) == 0 {
		for _, t := range render.Targets {
			c.Targets = append(c.Targets, t.String())
		}
	}

	if c.Concurrency <= 0 {
		c.Concurrency = 4
	}

	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = FormatTable
	}
}

// Validate checks targets and format.
func (c *Config) Validate() error {
	if _, err := render.ParseTargets(c.Targets); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	switch c.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		hint := suggest.Hint(c.Format, []string{FormatTable, FormatJSON, FormatYAML})
		return fmt.Errorf("invalid config: unknown format %q%s", c.Format, hint)
	}

	return nil
}

// RenderTargets returns the parsed Targets.
func (c *Config) RenderTargets() ([]render.Target, error) {
	return render.ParseTargets(c.Targets)
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes a Config to the given path.
func WriteFile(c *Config, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
