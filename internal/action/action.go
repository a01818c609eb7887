// Package action provides a global registry for menu item actions.
// Actions register themselves in init() functions, allowing the platform
// to execute items without hardcoded dependencies on every action type.
package action

import (
	"fmt"
	"sort"
	"sync"
)

// Action performs the effect behind a leaf menu item.
type Action interface {
	// Type returns the config key that selects this action (e.g. "exec").
	Type() string

	// Run performs the action with the item's argument. It must not block
	// on the launched effect; the menu closes right after activation.
	Run(arg string) error
}

var (
	actions = make(map[string]Action)
	mu      sync.RWMutex
)

// Register adds an action to the registry.
// Typically called from an action's init() function.
// Panics if an action with the same type is already registered.
func Register(a Action) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := actions[a.Type()]; exists {
		panic(fmt.Sprintf("action: type %q already registered", a.Type()))
	}
	actions[a.Type()] = a
}

// Lookup returns the action for the given type.
func Lookup(typ string) (Action, error) {
	mu.RLock()
	defer mu.RUnlock()

	a, ok := actions[typ]
	if !ok {
		return nil, fmt.Errorf("action: unknown type %q", typ)
	}
	return a, nil
}

// Exists checks if an action with the given type is registered.
func Exists(typ string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := actions[typ]
	return ok
}

// Types returns all registered action types, sorted.
func Types() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(actions))
	for typ := range actions {
		result = append(result, typ)
	}
	sort.Strings(result)
	return result
}
