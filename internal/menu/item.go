// Package menu provides the radial menu tree and the pure navigation and
// reordering logic over it. It contains no external dependencies
// (especially no Bubble Tea); the platform layer renders its state.
package menu

import (
	"github.com/mkravt/piemenu/internal/layout"
)

// Item is a node in a menu tree. Nodes with children are submenus; leaves
// carry an action executed when the item is activated.
type Item struct {
	Label string
	Icon  string

	// Action is the registered action type (e.g. "exec"); empty for
	// submenus.
	Action string
	// Arg is the action's argument, e.g. the command line to run.
	Arg string

	// FixedAngle pins the item to a direction in degrees. Nil means the
	// item is placed by even distribution.
	FixedAngle *float64

	Children []*Item
}

// IsSubmenu reports whether activating the item opens another ring.
func (it *Item) IsSubmenu() bool {
	return len(it.Children) > 0
}

// Clone deep-copies the item and its subtree. Navigation mutates trees on
// drop, so concurrent sessions over the same menu each work on a clone.
func (it *Item) Clone() *Item {
	clone := *it
	if it.FixedAngle != nil {
		a := *it.FixedAngle
		clone.FixedAngle = &a
	}
	if len(it.Children) > 0 {
		clone.Children = make([]*Item, len(it.Children))
		for i, c := range it.Children {
			clone.Children[i] = c.Clone()
		}
	}
	return &clone
}

// layoutItems converts a child list to the layout package's view of it.
func layoutItems(children []*Item) []layout.Item {
	items := make([]layout.Item, len(children))
	for i, c := range children {
		items[i] = layout.Item{FixedAngle: c.FixedAngle}
	}
	return items
}

// Path joins item labels into a stable identifier like "root/edit/copy",
// used for usage recording and order persistence.
func Path(labels ...string) string {
	path := ""
	for i, l := range labels {
		if i > 0 {
			path += "/"
		}
		path += l
	}
	return path
}

// Walk visits every item of the tree depth-first, resolving angles level by
// level: each submenu's children see the submenu's own angle plus 180° as
// their parent direction. The visitor receives the item's slash-joined path
// and its resolved angle; returning an error aborts the walk.
func Walk(root *Item, fn func(path string, item *Item, angle float64) error) error {
	return walk(root, root.Label, nil, fn)
}

func walk(node *Item, path string, parentAngle *float64, fn func(string, *Item, float64) error) error {
	angles, err := layout.AssignAngles(layoutItems(node.Children), parentAngle)
	if err != nil {
		return err
	}
	for i, child := range node.Children {
		childPath := path + "/" + child.Label
		if err := fn(childPath, child, angles[i]); err != nil {
			return err
		}
		if child.IsSubmenu() {
			back := layout.Normalize(angles[i] + 180)
			if err := walk(child, childPath, &back, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reorder rearranges children so that labels found in order come first, in
// that order. Children not named keep their relative order and follow at
// the end. Used to apply a persisted drag-and-drop arrangement.
func Reorder(children []*Item, order []string) []*Item {
	byLabel := make(map[string]*Item, len(children))
	for _, c := range children {
		if _, dup := byLabel[c.Label]; !dup {
			byLabel[c.Label] = c
		}
	}

	result := make([]*Item, 0, len(children))
	taken := make(map[*Item]bool, len(children))
	for _, label := range order {
		if c, ok := byLabel[label]; ok && !taken[c] {
			result = append(result, c)
			taken[c] = true
		}
	}
	for _, c := range children {
		if !taken[c] {
			result = append(result, c)
		}
	}
	return result
}
