// Package platform owns the GLFW window and feeds its events to the input
// dispatcher.
package platform

import (
	"fmt"
	"time"

	"cubecam/internal/config"
	"cubecam/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window wraps a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	win *glfw.Window
}

// Setup creates the window. glfw.Init must have been called on the locked
// main thread.
func Setup(cfg config.Window) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.MakeContextCurrent()

	// Disable V-Sync; frames are paced by the loop
	glfw.SwapInterval(0)
	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		win.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}

	return &Window{win: win}, nil
}

// Bind routes key, cursor and framebuffer events to d. An Exit from a key
// press marks the window for closing.
func (w *Window) Bind(d *input.Dispatcher) {
	w.win.SetKeyCallback(func(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if !isPress(action) {
			return
		}
		if d.HandleKey(translateKey(key), true) == input.Exit {
			win.SetShouldClose(true)
		}
	})

	w.win.SetCursorPosCallback(func(win *glfw.Window, xpos, ypos float64) {
		d.HandleCursorPos(xpos, ypos)
	})

	w.win.SetFramebufferSizeCallback(func(win *glfw.Window, width, height int) {
		d.HandleResize(width, height)
	})
}

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// WaitEventsTimeout processes pending events, sleeping up to timeout for
// new ones.
func (w *Window) WaitEventsTimeout(timeout time.Duration) {
	if timeout <= 0 {
		glfw.PollEvents()
		return
	}
	glfw.WaitEventsTimeout(timeout.Seconds())
}

func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

// FramebufferSize is the drawable size in pixels, which differs from the
// window size on high-DPI displays.
func (w *Window) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

func (w *Window) Destroy() { w.win.Destroy() }
