package platform

import (
	"fmt"

	"cubecam/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var namedKeys = map[glfw.Key]input.Key{
	glfw.KeyEscape: input.KeyEscape,
	glfw.KeySpace:  input.KeySpace,
	glfw.KeyEnter:  input.KeyEnter,
	glfw.KeyTab:    input.KeyTab,
	glfw.KeyUp:     input.KeyUp,
	glfw.KeyDown:   input.KeyDown,
	glfw.KeyLeft:   input.KeyLeft,
	glfw.KeyRight:  input.KeyRight,
}

// translateKey maps a GLFW key code onto the names used by key bindings.
func translateKey(k glfw.Key) input.Key {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return input.Key(string(rune('A' + int(k-glfw.KeyA))))
	case k >= glfw.Key0 && k <= glfw.Key9:
		return input.Key(string(rune('0' + int(k-glfw.Key0))))
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return input.Key(fmt.Sprintf("F%d", int(k-glfw.KeyF1)+1))
	}
	if name, ok := namedKeys[k]; ok {
		return name
	}
	return input.KeyUnknown
}

// isPress reports whether a key action starts a press. Repeats generated
// while a key is held are not presses.
func isPress(action glfw.Action) bool {
	return action == glfw.Press
}
