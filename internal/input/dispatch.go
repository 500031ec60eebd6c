package input

import "cubecam/internal/graphics"

// Control tells the event loop what to do after an event.
type Control int

const (
	Continue Control = iota
	Exit
	Resize
)

func (c Control) String() string {
	switch c {
	case Continue:
		return "continue"
	case Exit:
		return "exit"
	case Resize:
		return "resize"
	}
	return "unknown"
}

// Viewporter reconfigures the drawable area. graphics.Device satisfies it.
type Viewporter interface {
	Viewport(x, y, width, height int32)
}

// Dispatcher turns window events into camera commands.
//
// Movement happens once per key press. Holding a key does not keep moving
// the camera; it has to be pressed again. OS key repeat is not a press.
type Dispatcher struct {
	camera   *graphics.Camera
	viewport Viewporter
	bindings *Bindings

	lastX float64
	lastY float64
}

func NewDispatcher(camera *graphics.Camera, viewport Viewporter, bindings *Bindings) *Dispatcher {
	return &Dispatcher{
		camera:   camera,
		viewport: viewport,
		bindings: bindings,
	}
}

// HandleKey runs the actions bound to key on a press. Releases are ignored.
func (d *Dispatcher) HandleKey(key Key, pressed bool) Control {
	if !pressed {
		return Continue
	}
	for _, action := range d.bindings.Actions(key) {
		if d.apply(action) == Exit {
			return Exit
		}
	}
	return Continue
}

func (d *Dispatcher) apply(action Action) Control {
	switch action {
	case ActionExit:
		return Exit
	case ActionZoomIn:
		d.camera.ZoomIn()
	case ActionZoomOut:
		d.camera.ZoomOut()
	case ActionMoveForward:
		d.camera.MoveForward()
	case ActionMoveBackward:
		d.camera.MoveBackward()
	case ActionMoveLeft:
		d.camera.MoveLeft()
	case ActionMoveRight:
		d.camera.MoveRight()
	}
	return Continue
}

// HandleMouseDelta rotates the camera by a raw motion delta. Screen y grows
// downwards, so it is inverted: moving the mouse up looks up.
func (d *Dispatcher) HandleMouseDelta(dx, dy float64) Control {
	d.camera.Rotate(float32(dx), float32(-dy))
	return Continue
}

// HandleCursorPos converts absolute cursor positions into motion deltas. The
// first sample only records the position.
func (d *Dispatcher) HandleCursorPos(x, y float64) Control {
	if d.camera.FirstMouse {
		d.lastX, d.lastY = x, y
		d.camera.FirstMouse = false
		return Continue
	}
	dx, dy := x-d.lastX, y-d.lastY
	d.lastX, d.lastY = x, y
	return d.HandleMouseDelta(dx, dy)
}

// HandleResize updates the camera projection and the GPU viewport. A zero
// sized framebuffer (minimised window) changes nothing.
func (d *Dispatcher) HandleResize(width, height int) Control {
	if width <= 0 || height <= 0 {
		return Continue
	}
	d.camera.SetViewport(width, height)
	d.viewport.Viewport(0, 0, int32(width), int32(height))
	return Resize
}
