package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LsConfig holds default values for the ls subcommand's flags. Explicit
// command-line flags always override these.
type LsConfig struct {
	// All includes hidden (dotfile) entries
	All bool `yaml:"all"`

	// Long selects the multi-field listing format
	Long bool `yaml:"long"`

	// HumanReadable scales sizes with binary-unit suffixes
	HumanReadable bool `yaml:"human_readable"`

	// Sort is the default sort key: name, time, or size
	Sort string `yaml:"sort"`

	// Reverse inverts the sort direction
	Reverse bool `yaml:"reverse"`

	// Color is the default color mode: never, auto, or always
	Color string `yaml:"color"`
}

// Config represents the coreutils configuration file.
type Config struct {
	Ls LsConfig `yaml:"ls"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Ls: LsConfig{
			All:           false,
			Long:          false,
			HumanReadable: false,
			Sort:          "name",
			Reverse:       false,
			Color:         "auto",
		},
	}
}

// DefaultPath returns the location of the configuration file:
// $XDG_CONFIG_HOME/coreutils/config.yaml, falling back to
// ~/.config/coreutils/config.yaml. Returns "" when no home directory can be
// determined, which callers treat as "no config file".
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "coreutils", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "coreutils", "config.yaml")
}

// LoadConfig loads configuration from the specified file path.
// If the path is empty or the file doesn't exist, returns default
// configuration without error. A file that exists but cannot be read or
// parsed, or that contains invalid enum values, is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Ls.Sort {
	case "name", "time", "size":
	default:
		return fmt.Errorf("ls.sort must be name, time, or size (got %q)", c.Ls.Sort)
	}
	switch c.Ls.Color {
	case "never", "auto", "always":
	default:
		return fmt.Errorf("ls.color must be never, auto, or always (got %q)", c.Ls.Color)
	}
	return nil
}
