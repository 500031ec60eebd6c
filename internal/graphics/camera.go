package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	mouseSensitivity = 0.2
	maxPitch         = 89.0
	minFOV           = 1.0
	maxFOV           = 65.0
	speedPerSecond   = 6.0

	nearPlane = 0.1
	farPlane  = 100.0
)

// Camera handles the view and projection matrices. Both are recomputed on
// every mutation, so they always reflect the current state.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3

	yaw   float32
	pitch float32
	fov   float32
	speed float32

	width  int
	height int

	view       mgl32.Mat4
	projection mgl32.Mat4

	// FirstMouse is set until the first cursor sample has been seen
	FirstMouse bool
}

// NewCamera returns a camera at (0, 0, 3) looking down -Z.
func NewCamera(width, height int) *Camera {
	c := &Camera{
		position:   mgl32.Vec3{0, 0, 3},
		up:         mgl32.Vec3{0, 1, 0},
		yaw:        -90.0,
		pitch:      0.0,
		fov:        45.0,
		speed:      0.05,
		width:      width,
		height:     height,
		FirstMouse: true,
	}
	c.updateFront()
	c.updateView()
	c.updateProjection()
	return c
}

// Rotate applies a mouse delta to yaw and pitch.
func (c *Camera) Rotate(dx, dy float32) {
	c.yaw += dx * mouseSensitivity
	c.pitch += dy * mouseSensitivity

	// Constrain pitch
	if c.pitch > maxPitch {
		c.pitch = maxPitch
	}
	if c.pitch < -maxPitch {
		c.pitch = -maxPitch
	}

	c.updateFront()
	c.updateView()
}

func (c *Camera) MoveForward() {
	c.position = c.position.Add(c.front.Mul(c.speed))
	c.updateView()
}

func (c *Camera) MoveBackward() {
	c.position = c.position.Sub(c.front.Mul(c.speed))
	c.updateView()
}

// MoveLeft strafes along front x up. up stays the world up and is not
// re-orthogonalised against front.
func (c *Camera) MoveLeft() {
	c.position = c.position.Sub(c.right().Mul(c.speed))
	c.updateView()
}

func (c *Camera) MoveRight() {
	c.position = c.position.Add(c.right().Mul(c.speed))
	c.updateView()
}

// SetViewport updates the dimensions and the projection. Empty viewports
// (a minimised window) keep the previous projection.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
	c.updateProjection()
}

func (c *Camera) ZoomIn() {
	if c.fov < maxFOV {
		c.fov++
		c.updateProjection()
	}
}

func (c *Camera) ZoomOut() {
	if c.fov > minFOV {
		c.fov--
		c.updateProjection()
	}
}

// UpdateSpeed scales movement by the frame time so it is frame-rate independent.
func (c *Camera) UpdateSpeed(dt float32) {
	c.speed = speedPerSecond * dt
}

func (c *Camera) View() mgl32.Mat4 { return c.view }
func (c *Camera) Projection() mgl32.Mat4 { return c.projection }
func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Up() mgl32.Vec3 { return c.up }
func (c *Camera) FOV() float32 { return c.fov }
func (c *Camera) Speed() float32 { return c.speed }

// Viewport returns the current viewport size in pixels.
func (c *Camera) Viewport() (int, int) { return c.width, c.height }

func (c *Camera) right() mgl32.Vec3 {
	return c.front.Cross(c.up).Normalize()
}

func (c *Camera) updateFront() {
	y := float64(mgl32.DegToRad(c.yaw))
	p := float64(mgl32.DegToRad(c.pitch))
	fx := float32(math.Cos(y) * math.Cos(p))
	fy := float32(math.Sin(p))
	fz := float32(math.Sin(y) * math.Cos(p))
	c.front = mgl32.Vec3{fx, fy, fz}.Normalize()
}

func (c *Camera) updateView() {
	c.view = mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *Camera) updateProjection() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, nearPlane, farPlane)
}
