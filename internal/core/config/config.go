// Package config resolves where bmark keeps its files. The database path
// comes from, in order of precedence: the --dbpath flag, the config file,
// and finally the XDG data directory. Keeping the path an explicit value
// threaded through every entry point lets tests run against isolated
// temporary stores.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/abhay/bmark/internal/core"
)

// Config holds user-tunable settings loaded from the YAML config file.
type Config struct {
	// DBPath is the path to the SQLite database file. Empty means use
	// the XDG default.
	DBPath string `yaml:"db_path"`
}

// DefaultConfigPath returns the config file location.
// On Linux: ~/.config/bmark/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, core.AppName, "config.yaml")
}

// DefaultDBPath returns the database location used when neither the flag
// nor the config file provides one.
// On Linux: ~/.local/share/bmark/bmark.db
func DefaultDBPath() string {
	return filepath.Join(xdg.DataHome, core.AppName, core.DBFileName)
}

// Load reads the config file at path. A missing file is not an error and
// yields the zero config, so a fresh install works without any setup
// beyond `bmark setup`.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// ResolveDBPath picks the database path from the flag value, the config
// file, or the XDG default, in that order.
func ResolveDBPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	cfg, err := Load(DefaultConfigPath())
	if err != nil {
		return "", err
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return DefaultDBPath(), nil
}
