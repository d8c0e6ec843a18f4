// Package config loads user defaults for the winlist CLI. The enumeration
// core never reads configuration.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// NoLayer disables the default layer filter.
const NoLayer = -1

// Config holds CLI defaults. Flags given on the command line take
// precedence over these values.
type Config struct {
	Format   string      `yaml:"format"`
	LogLevel string      `yaml:"log_level"`
	Serve    ServeConfig `yaml:"serve"`
	List     ListConfig  `yaml:"list"`
}

// ServeConfig holds defaults for `winlist serve`.
type ServeConfig struct {
	Transport string `yaml:"transport"`
	Port      int    `yaml:"port"`
}

// ListConfig holds defaults for `winlist list`.
type ListConfig struct {
	Layer int `yaml:"layer"` // NoLayer = all layers
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Format:   "text",
		LogLevel: "info",
		Serve: ServeConfig{
			Transport: "stdio",
			Port:      8080,
		},
		List: ListConfig{
			Layer: NoLayer,
		},
	}
}

// Validate checks values that YAML decoding cannot.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("format: unknown value %q (expected text, yaml, or json)", c.Format)
	}
	switch c.Serve.Transport {
	case "stdio", "streamable-http":
	default:
		return fmt.Errorf("serve.transport: unknown value %q (expected stdio or streamable-http)", c.Serve.Transport)
	}
	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port: %d out of range 1-65535", c.Serve.Port)
	}
	if c.List.Layer < NoLayer {
		return fmt.Errorf("list.layer: %d is invalid (use %d for all layers)", c.List.Layer, NoLayer)
	}
	return nil
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "winlist", "config.yaml"), nil
}

// Load reads the configuration from the standard location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration at path, overlaying it on the
// defaults. A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	if err := decodeStrictYAML(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}
