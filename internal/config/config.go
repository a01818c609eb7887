// Package config provides YAML-based menu definition loading and
// validation for the piemenu launcher.
package config

import (
	"github.com/mkravt/piemenu/internal/menu"
)

// File is the top-level structure of a menus.yaml file.
type File struct {
	Menus []Menu `yaml:"menus"`
}

// Menu defines one named radial menu. Hotkey is an optional short alias,
// handy for window-manager bindings ("piemenu show w").
type Menu struct {
	ID     string `yaml:"id"`
	Hotkey string `yaml:"hotkey,omitempty"`
	Items  []Item `yaml:"items"`
}

// Item defines one entry of a menu. Exactly one of Exec, URI, Print or
// Items may be set; nested Items turn the entry into a submenu.
type Item struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon,omitempty"`

	// Angle pins the item to a direction in degrees within [0, 360).
	// Omitted items are distributed evenly.
	Angle *float64 `yaml:"angle,omitempty"`

	Exec  string `yaml:"exec,omitempty"`
	URI   string `yaml:"uri,omitempty"`
	Print string `yaml:"print,omitempty"`

	Items []Item `yaml:"items,omitempty"`
}

// FindMenu returns the menu with the given ID or hotkey, or false.
func (f *File) FindMenu(id string) (Menu, bool) {
	for _, m := range f.Menus {
		if m.ID == id {
			return m, true
		}
	}
	for _, m := range f.Menus {
		if m.Hotkey != "" && m.Hotkey == id {
			return m, true
		}
	}
	return Menu{}, false
}

// ToTree converts a menu definition into the runtime menu tree. The menu's
// ID becomes the root label, so item paths read "<menu>/<item>/...".
func (m Menu) ToTree() *menu.Item {
	root := &menu.Item{Label: m.ID}
	root.Children = toChildren(m.Items)
	return root
}

func toChildren(items []Item) []*menu.Item {
	children := make([]*menu.Item, len(items))
	for i, it := range items {
		child := &menu.Item{
			Label:      it.Label,
			Icon:       it.Icon,
			FixedAngle: it.Angle,
		}
		switch {
		case len(it.Items) > 0:
			child.Children = toChildren(it.Items)
		case it.Exec != "":
			child.Action, child.Arg = "exec", it.Exec
		case it.URI != "":
			child.Action, child.Arg = "uri", it.URI
		case it.Print != "":
			child.Action, child.Arg = "print", it.Print
		}
		children[i] = child
	}
	return children
}
