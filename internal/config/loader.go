package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the menu definitions.
// Search order: customPath -> ~/.piemenu/menus.yaml -> ./configs/menus.yaml -> embedded default
func Load(customPath string) (File, error) {
	var f File

	// A custom path must work; everything else falls through silently.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return f, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return f, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return f, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("menus.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &f); err == nil {
				return f, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/menus.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &f); err == nil {
			return f, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMenusYAML, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse embedded default config: %w", err)
	}
	return f, nil
}

// LoadFile parses a specific menus.yaml without any fallback, for the
// validate command.
func LoadFile(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return f, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".piemenu", filename)
}
