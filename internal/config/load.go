package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the config file meshtool looks for.
const FileName = "meshtool.yaml"

// EnvPath names an environment variable holding a config file path. It is
// consulted when -config is not given.
const EnvPath = "MESHTOOL_CONFIG"

// Load builds the configuration from defaults, then the first config file
// found, then flags, and validates the result.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		cfg.Source = path
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists where Load looks for a config file, in order: the
// MESHTOOL_CONFIG path, the working directory, then ConfigDir.
func SearchPaths() []string {
	var paths []string
	if env := os.Getenv(EnvPath); env != "" {
		paths = append(paths, env)
	}
	return append(paths, FileName, filepath.Join(ConfigDir(), FileName))
}

// findConfigFile returns the first existing SearchPaths entry, or "".
func findConfigFile() string {
	for _, path := range SearchPaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Mundimonium")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Mundimonium")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "mundimonium")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "mundimonium")
	}
}

// loadFromFile merges the YAML file at path over cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
