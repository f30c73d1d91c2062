package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultDebounceMs = 1000

type Config struct {
	// DataDir holds the saved list, history and log file.
	DataDir string `yaml:"data_dir"`
	// DebounceMs is the autosave quiet period in milliseconds.
	DebounceMs int `yaml:"debounce_ms"`
	// Theme applied when no saved customization exists yet.
	Theme string `yaml:"theme"`
}

func Default() Config {
	return Config{
		DataDir:    defaultDataDir(),
		DebounceMs: defaultDebounceMs,
		Theme:      "ocean",
	}
}

// DefaultPath returns the config file location under the user config
// directory, falling back to a project-local dotted dir.
func DefaultPath() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "bucketlist", "config.yaml")
	}
	return filepath.Join(".bucketlist", "config.yaml")
}

func defaultDataDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "bucketlist")
	}
	return ".bucketlist"
}

// Load reads the config at path, filling unset fields with defaults.
// A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.DebounceMs <= 0 {
		cfg.DebounceMs = defaultDebounceMs
	}
	if cfg.Theme == "" {
		cfg.Theme = "ocean"
	}
	return cfg, nil
}

// WriteDefault creates a config file with default settings.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
