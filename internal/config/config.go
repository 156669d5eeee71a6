// Package config provides configuration file parsing for textsentiment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appName = "textsentiment"

	// EnvDBPath overrides DatabasePath when set.
	EnvDBPath = "TEXTSENTIMENT_DB"
)

// Config holds the settings read from config.yaml.
type Config struct {
	DatabasePath string `yaml:"database_path"`
	LogLevel     string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat    string `yaml:"log_format"` // console or json
	ListenAddr   string `yaml:"listen_addr"`
	ChartHeight  int    `yaml:"chart_height"`
}

// Dir returns the textsentiment config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/textsentiment if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the built-in configuration. DatabasePath is left empty
// and resolved by DBPath.
func Default() *Config {
	return &Config{
		LogLevel:    "warn",
		LogFormat:   "console",
		ListenAddr:  "127.0.0.1:8080",
		ChartHeight: 10,
	}
}

// Load reads the YAML config at path. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.DatabasePath = v
	}
}

// Validate checks field values that would otherwise fail later.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (must be debug, info, warn or error)", c.LogLevel)
	}
	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log_format %q (must be console or json)", c.LogFormat)
	}
	if c.ChartHeight < 0 {
		return fmt.Errorf("invalid chart_height: %d (must not be negative)", c.ChartHeight)
	}
	return nil
}

// DBPath returns DatabasePath, or ~/.textsentiment/text_analysis.db when
// unset. The parent directory is created if missing.
func (c *Config) DBPath() (string, error) {
	if c.DatabasePath != "" {
		return c.DatabasePath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	dataDir := filepath.Join(home, "."+appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", appName, err)
	}

	return filepath.Join(dataDir, "text_analysis.db"), nil
}
