// Package cli holds the configuration and wiring shared by the hyperdoc
// command-line interface.
package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration, read from ~/.hyperdoc/config.yaml.
type Config struct {
	// Headers are added to every request (e.g. Authorization).
	Headers map[string]string `yaml:"headers"`

	// Store selects where history and bookmarks live.
	Store StoreConfig `yaml:"store"`
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	// Backend is "file" (default) or "redis".
	Backend string `yaml:"backend"`

	// Dir is the file backend's directory. Defaults to the config dir.
	Dir string `yaml:"dir"`

	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home dir: %w", err)
	}
	return filepath.Join(home, ".hyperdoc"), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: "file",
			Redis: RedisConfig{
				Address: "localhost:6379",
			},
		},
	}
}

// Load reads the configuration file at path, falling back to defaults when
// the file is absent. Unknown fields are rejected so typos surface early.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "file"
	}
	return cfg, nil
}
