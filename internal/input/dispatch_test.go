package input

import (
	"testing"

	"cubecam/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type viewportCall struct{ x, y, w, h int32 }

type fakeViewport struct{ calls []viewportCall }

func (f *fakeViewport) Viewport(x, y, w, h int32) {
	f.calls = append(f.calls, viewportCall{x, y, w, h})
}

func newDispatcher() (*Dispatcher, *graphics.Camera, *fakeViewport) {
	cam := graphics.NewCamera(1024, 768)
	vp := &fakeViewport{}
	return NewDispatcher(cam, vp, DefaultBindings()), cam, vp
}

func TestHandleKeyExit(t *testing.T) {
	d, _, _ := newDispatcher()
	assert.Equal(t, Exit, d.HandleKey(KeyEscape, true))
	assert.Equal(t, Exit, d.HandleKey("Q", true))
	assert.Equal(t, Continue, d.HandleKey(KeyEscape, false))
}

func TestHandleKeyMovesOncePerPress(t *testing.T) {
	d, cam, _ := newDispatcher()
	cam.UpdateSpeed(0.5)
	start := cam.Position()

	assert.Equal(t, Continue, d.HandleKey("W", true))
	moved := cam.Position()
	assert.InDelta(t, float64(start.Z()-3), moved.Z(), 1e-5)

	// release does not move
	d.HandleKey("W", false)
	assert.Equal(t, moved, cam.Position())

	d.HandleKey("S", true)
	assert.True(t, start.ApproxEqualThreshold(cam.Position(), 1e-5))

	d.HandleKey("D", true)
	assert.InDelta(t, 3.0, cam.Position().X(), 1e-5)
	d.HandleKey("A", true)
	assert.InDelta(t, 0.0, cam.Position().X(), 1e-5)
}

func TestHandleKeyZoom(t *testing.T) {
	d, cam, _ := newDispatcher()

	d.HandleKey("K", true)
	assert.Equal(t, float32(46), cam.FOV())
	d.HandleKey("J", true)
	d.HandleKey("J", true)
	assert.Equal(t, float32(44), cam.FOV())
	d.HandleKey("J", false)
	assert.Equal(t, float32(44), cam.FOV())
}

func TestHandleKeyUnbound(t *testing.T) {
	d, cam, _ := newDispatcher()
	view := cam.View()
	assert.Equal(t, Continue, d.HandleKey("Z", true))
	assert.Equal(t, view, cam.View())
}

func TestHandleMouseDeltaInvertsY(t *testing.T) {
	d, cam, _ := newDispatcher()

	// moving the mouse up (negative screen dy) looks up
	d.HandleMouseDelta(0, -50)
	assert.Greater(t, cam.Front().Y(), float32(0))

	d.HandleMouseDelta(0, 100)
	assert.Less(t, cam.Front().Y(), float32(0))
}

func TestHandleCursorPos(t *testing.T) {
	d, cam, _ := newDispatcher()
	initial := cam.Front()

	// first sample only primes the position
	d.HandleCursorPos(500, 400)
	assert.False(t, cam.FirstMouse)
	assert.Equal(t, initial, cam.Front())

	d.HandleCursorPos(590, 400)
	want := graphics.NewCamera(1024, 768)
	want.Rotate(90, 0)
	assert.True(t, want.Front().ApproxEqualThreshold(cam.Front(), 1e-5))
	assert.True(t, want.View().ApproxEqualThreshold(cam.View(), 1e-5))
}

func TestHandleResize(t *testing.T) {
	d, cam, vp := newDispatcher()

	assert.Equal(t, Resize, d.HandleResize(800, 600))
	assert.Equal(t, []viewportCall{{0, 0, 800, 600}}, vp.calls)
	want := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	assert.True(t, want.ApproxEqualThreshold(cam.Projection(), 1e-6))

	assert.Equal(t, Continue, d.HandleResize(0, 0))
	assert.Len(t, vp.calls, 1)
	w, h := cam.Viewport()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}
