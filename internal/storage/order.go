package storage

import (
	"fmt"

	"github.com/mkravt/piemenu/internal/menu"
)

// ApplyOrders rearranges every level of the tree according to the orders
// persisted for the menu, so drag-and-drop arrangements survive restarts.
// Levels without a saved order are left as configured.
func (s *Store) ApplyOrders(menuID string, root *menu.Item) error {
	return s.applyOrders(menuID, root.Label, root)
}

func (s *Store) applyOrders(menuID, path string, node *menu.Item) error {
	labels, err := s.LoadOrder(menuID, path)
	if err != nil {
		return fmt.Errorf("order for %q: %w", path, err)
	}
	if len(labels) > 0 {
		node.Children = menu.Reorder(node.Children, labels)
	}
	for _, child := range node.Children {
		if !child.IsSubmenu() {
			continue
		}
		if err := s.applyOrders(menuID, path+"/"+child.Label, child); err != nil {
			return err
		}
	}
	return nil
}
