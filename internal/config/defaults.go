package config

import (
	_ "embed"
)

//go:embed defaults/menus.yaml
var defaultMenusYAML []byte

// DefaultYAML returns the embedded default menu definitions, used by the
// validate command to show a working example.
func DefaultYAML() []byte {
	return defaultMenusYAML
}
