package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MenuAction represents a semantic menu action, abstracted from physical
// key presses.
type MenuAction int

const (
	MenuActionNone     MenuAction = iota
	MenuActionNext                // Right/Down arrow, Tab - hover the next item clockwise
	MenuActionPrev                // Left/Up arrow, Shift+Tab - hover the previous item
	MenuActionSelect              // Enter, Space - activate the hovered item
	MenuActionBack                // Esc, Backspace - up one level, quit at the root
	MenuActionCancel              // Same keys while dragging - abandon the drag
	MenuActionQuit                // Q, Ctrl+C - close the menu without selecting
)

// String returns a human-readable name for the action.
func (a MenuAction) String() string {
	switch a {
	case MenuActionNone:
		return "None"
	case MenuActionNext:
		return "Next"
	case MenuActionPrev:
		return "Prev"
	case MenuActionSelect:
		return "Select"
	case MenuActionBack:
		return "Back"
	case MenuActionCancel:
		return "Cancel"
	case MenuActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyMapper translates Bubble Tea key messages to menu actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a menu action. While a drag is in
// flight the back keys cancel it instead of leaving the level.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, dragging bool) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "esc", "backspace", "b":
		if dragging {
			return MenuActionCancel
		}
		return MenuActionBack
	case "right", "down", "tab", "l", "j":
		return MenuActionNext
	case "left", "up", "shift+tab", "h", "k":
		return MenuActionPrev
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
