package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "glyph3d.yaml"

// Load loads configuration with priority: defaults < file. An explicit path
// must exist; with an empty path the standard locations are searched and a
// missing file is not an error. Command-line flags are applied by the caller.
func Load(path string) (*Config, string, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return cfg, "", nil
	}

	if err := loadFromFile(cfg, path); err != nil {
		return nil, path, fmt.Errorf("loading config from %s: %w", path, err)
	}
	return cfg, path, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		FileName,
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
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
		return filepath.Join(home, "Library", "Application Support", "glyph3d")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "glyph3d")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "glyph3d")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "glyph3d")
	}
}

// loadFromFile merges a YAML file over the values already in cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
