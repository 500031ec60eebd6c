package platform

import (
	"testing"

	"cubecam/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateKey(t *testing.T) {
	cases := map[glfw.Key]input.Key{
		glfw.KeyW:      "W",
		glfw.KeyA:      "A",
		glfw.KeyZ:      "Z",
		glfw.Key0:      "0",
		glfw.Key9:      "9",
		glfw.KeyF1:     "F1",
		glfw.KeyF12:    "F12",
		glfw.KeyEscape: input.KeyEscape,
		glfw.KeyUp:     input.KeyUp,
		glfw.KeyF13:    input.KeyUnknown,
		glfw.KeyMenu:   input.KeyUnknown,
	}
	for code, want := range cases {
		assert.Equal(t, want, translateKey(code), "key %d", code)
	}
}

func TestTranslatedKeysParse(t *testing.T) {
	for _, code := range []glfw.Key{glfw.KeyQ, glfw.Key5, glfw.KeyF7, glfw.KeySpace, glfw.KeyTab} {
		name := translateKey(code)
		parsed, err := input.ParseKey(string(name))
		require.NoError(t, err)
		assert.Equal(t, name, parsed)
	}
}

func TestOnlyPressStartsAPress(t *testing.T) {
	assert.True(t, isPress(glfw.Press))
	assert.False(t, isPress(glfw.Repeat))
	assert.False(t, isPress(glfw.Release))
}
