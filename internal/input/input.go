package input

import (
	"fmt"
	"sort"

	"cubecam/internal/config"
)

// Action represents a logical camera action, not a physical key
type Action int

// Action constants using iota
const (
	ActionExit Action = iota
	ActionZoomIn
	ActionZoomOut
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionExit:         "exit",
	ActionZoomIn:       "zoom_in",
	ActionZoomOut:      "zoom_out",
	ActionMoveForward:  "move_forward",
	ActionMoveBackward: "move_backward",
	ActionMoveLeft:     "move_left",
	ActionMoveRight:    "move_right",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction returns the action with the given config name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Bindings maps physical keys to logical actions
type Bindings struct {
	keyToActions map[Key][]Action
}

// NewBindings creates empty bindings
func NewBindings() *Bindings {
	return &Bindings{keyToActions: make(map[Key][]Action)}
}

// DefaultBindings binds the default key table.
func DefaultBindings() *Bindings {
	b, err := BindingsFromConfig(config.Default().Keys)
	if err != nil {
		panic(err)
	}
	return b
}

// BindingsFromConfig builds bindings from action -> key names.
func BindingsFromConfig(keys config.Keys) (*Bindings, error) {
	b := NewBindings()

	// sorted for a stable action order on keys bound more than once
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		for _, keyName := range keys[name] {
			key, err := ParseKey(keyName)
			if err != nil {
				return nil, fmt.Errorf("binding %s: %w", name, err)
			}
			b.BindKey(key, action)
		}
	}
	return b, nil
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., Escape and Q)
func (b *Bindings) BindKey(key Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	for _, a := range b.keyToActions[key] {
		if a == action {
			return
		}
	}
	b.keyToActions[key] = append(b.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (b *Bindings) UnbindKey(key Key) {
	delete(b.keyToActions, key)
}

// Actions returns the actions bound to key.
func (b *Bindings) Actions(key Key) []Action {
	return b.keyToActions[key]
}
