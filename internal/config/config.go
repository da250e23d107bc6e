// Package config handles reading and writing the game's config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	Storage StorageConfig `yaml:"storage"`
	Trial   TrialConfig   `yaml:"trial"`
	UI      UIConfig      `yaml:"ui"`
}

// StorageConfig controls where saves and the leaderboard live.
type StorageConfig struct {
	Database string `yaml:"database"` // file name inside the data dir
}

// TrialConfig holds gameplay tuning.
type TrialConfig struct {
	// Chamber1GraceSeconds is how long Chamber 1 waits for silence
	// before it resolves. The puzzle is balanced around 8.
	Chamber1GraceSeconds int `yaml:"chamber1_grace_seconds"`
}

// UIConfig controls terminal presentation.
type UIConfig struct {
	// NoAltScreen renders inline instead of taking over the screen.
	NoAltScreen bool `yaml:"no_alt_screen"`
}

const configFile = "config.yaml"

// DataDir returns the directory holding config, database and log,
// honoring SILENTTRIAL_DATA as an override.
func DataDir() (string, error) {
	if dir := os.Getenv("SILENTTRIAL_DATA"); dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(base, "silenttrial"), nil
}

// ReadConfig reads config.yaml from dir. A missing file yields the
// defaults rather than an error; malformed YAML is an error.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// WriteConfig writes cfg to config.yaml in dir.
// Creates the directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Storage: StorageConfig{
			Database: "trial.db",
		},
		Trial: TrialConfig{
			Chamber1GraceSeconds: 8,
		},
		UI: UIConfig{},
	}
}

// applyDefaults fills fields an older config file may not carry.
func applyDefaults(cfg *Config) {
	if cfg.Storage.Database == "" {
		cfg.Storage.Database = "trial.db"
	}
	if cfg.Trial.Chamber1GraceSeconds <= 0 {
		cfg.Trial.Chamber1GraceSeconds = 8
	}
}
