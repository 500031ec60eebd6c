package input

import (
	"testing"

	"cubecam/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()

	cases := map[Key]Action{
		KeyEscape: ActionExit,
		"Q":       ActionExit,
		"J":       ActionZoomOut,
		"K":       ActionZoomIn,
		"W":       ActionMoveForward,
		"S":       ActionMoveBackward,
		"A":       ActionMoveLeft,
		"D":       ActionMoveRight,
	}
	for key, action := range cases {
		assert.Equal(t, []Action{action}, b.Actions(key), "key %s", key)
	}
	assert.Empty(t, b.Actions("Z"))
}

func TestBindKey(t *testing.T) {
	b := NewBindings()
	b.BindKey(KeyUp, ActionMoveForward)
	b.BindKey(KeyUp, ActionMoveForward)
	b.BindKey(KeyUp, ActionZoomIn)
	b.BindKey(KeyUp, ActionCount)
	b.BindKey(KeyUp, -1)

	assert.Equal(t, []Action{ActionMoveForward, ActionZoomIn}, b.Actions(KeyUp))

	b.UnbindKey(KeyUp)
	assert.Empty(t, b.Actions(KeyUp))
}

func TestBindingsFromConfigErrors(t *testing.T) {
	_, err := BindingsFromConfig(config.Keys{"jump": {"Space"}})
	assert.ErrorContains(t, err, "unknown action")

	_, err = BindingsFromConfig(config.Keys{"exit": {"Hyper"}})
	assert.ErrorContains(t, err, "unknown key")
}

func TestParseAction(t *testing.T) {
	for a := Action(0); a < ActionCount; a++ {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	assert.Equal(t, "Action(42)", Action(42).String())
}

func TestParseKey(t *testing.T) {
	for _, name := range []string{"A", "Z", "0", "9", "F1", "F12", "Escape", "Space", "Left"} {
		k, err := ParseKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, Key(name), k)
	}
	for _, name := range []string{"", "a", "F13", "Esc"} {
		_, err := ParseKey(name)
		assert.Error(t, err, name)
	}
}
