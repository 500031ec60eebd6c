package renderer

import (
	"fmt"
	"time"

	"cubecam/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// background is the clear colour, #1b1e2b.
var background = mgl32.Vec4{27.0 / 255.0, 30.0 / 255.0, 43.0 / 255.0, 1.0}

// rotationAxis is the axis every instance spins around.
var rotationAxis = mgl32.Vec3{1, 1, 0}.Normalize()

// Renderer draws the cube instances from its camera's point of view
type Renderer struct {
	dev      graphics.Device
	program  Program
	textures []uint32
	geometry uint32
	surface  Surface
	camera   *graphics.Camera

	instances []mgl32.Vec3

	start     time.Time
	lastFrame float32
	deltaTime float32
	since     func(time.Time) time.Duration
}

// New creates a renderer with a fresh camera for the given viewport. The
// handles stay owned by the caller; instances is copied.
func New(dev graphics.Device, program Program, textures []uint32, geometry uint32, surface Surface, instances []mgl32.Vec3, width, height int) *Renderer {
	return &Renderer{
		dev:       dev,
		program:   program,
		textures:  append([]uint32(nil), textures...),
		geometry:  geometry,
		surface:   surface,
		camera:    graphics.NewCamera(width, height),
		instances: append([]mgl32.Vec3(nil), instances...),
		start:     time.Now(),
		since:     time.Since,
	}
}

// DrawFrame renders and presents one frame.
func (r *Renderer) DrawFrame() {
	now := float32(r.since(r.start).Seconds())
	r.deltaTime = now - r.lastFrame
	if r.deltaTime < 0 {
		r.deltaTime = 0
	}
	r.lastFrame = now

	r.camera.UpdateSpeed(r.deltaTime)

	r.program.Use()
	r.dev.PolygonMode(graphics.FrontAndBack, graphics.Fill)
	r.clearWindow()
	r.setUniforms()
	r.bindTextures()

	r.dev.BindVertexArray(r.geometry)
	r.drawInstances(now)
	r.dev.BindVertexArray(0)

	r.surface.SwapBuffers()
}

func (r *Renderer) clearWindow() {
	r.dev.ClearColor(background[0], background[1], background[2], background[3])
	r.dev.Clear(graphics.ColorBufferBit | graphics.DepthBufferBit)
}

func (r *Renderer) setUniforms() {
	r.program.SetMatrix4("projection", r.camera.Projection())
	r.program.SetMatrix4("view", r.camera.View())
	for i := range r.textures {
		r.program.SetInt(samplerName(i), int32(i))
	}
}

func (r *Renderer) bindTextures() {
	for i, texture := range r.textures {
		r.dev.ActiveTexture(graphics.Texture0 + uint32(i))
		r.dev.BindTexture(graphics.Texture2D, texture)
	}
}

func (r *Renderer) drawInstances(t float32) {
	for _, pos := range r.instances {
		r.program.SetMatrix4("model", ModelMatrix(pos, t))
		r.dev.DrawArrays(graphics.Triangles, 0, graphics.CubeVertexCount)
	}
}

// ModelMatrix places an instance at pos, rotated by angle radians around (1, 1, 0).
func ModelMatrix(pos mgl32.Vec3, angle float32) mgl32.Mat4 {
	model := mgl32.Ident4()
	model = model.Mul4(mgl32.Translate3D(pos[0], pos[1], pos[2]))
	return model.Mul4(mgl32.HomogRotate3D(angle, rotationAxis))
}

// samplerName returns the uniform bound to texture unit i: texture1, texture2, ...
func samplerName(i int) string {
	return fmt.Sprintf("texture%d", i+1)
}

// Camera returns the camera instance
func (r *Renderer) Camera() *graphics.Camera {
	return r.camera
}

// DeltaTime returns the seconds between the last two frames.
func (r *Renderer) DeltaTime() float32 {
	return r.deltaTime
}

// Instances returns a copy of the instance placements.
func (r *Renderer) Instances() []mgl32.Vec3 {
	return append([]mgl32.Vec3(nil), r.instances...)
}
