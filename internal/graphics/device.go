package graphics

import "github.com/go-gl/mathgl/mgl32"

// GL enum values used by the renderer. They match the OpenGL constants so a
// backend can pass them straight through.
const (
	Triangles    uint32 = 0x0004
	FrontAndBack uint32 = 0x0408
	Fill         uint32 = 0x1B02
	DepthTest    uint32 = 0x0B71

	ColorBufferBit uint32 = 0x4000
	DepthBufferBit uint32 = 0x0100

	VertexShader   uint32 = 0x8B31
	FragmentShader uint32 = 0x8B30

	ArrayBuffer uint32 = 0x8892
	StaticDraw  uint32 = 0x88E4

	Texture2D        uint32 = 0x0DE1
	Texture0         uint32 = 0x84C0
	TextureWrapS     uint32 = 0x2802
	TextureWrapT     uint32 = 0x2803
	TextureMinFilter uint32 = 0x2801
	TextureMagFilter uint32 = 0x2800
	UnpackAlignment  uint32 = 0x0CF5

	Repeat int32 = 0x2901
	Linear int32 = 0x2601

	RGB  uint32 = 0x1907
	RGBA uint32 = 0x1908
)

// Device is the GPU capability the renderer, programs and resource loaders
// issue their commands through. The OpenGL implementation lives in
// internal/graphics/opengl; gltest.Recorder records calls for tests.
type Device interface {
	Enable(capability uint32)
	Viewport(x, y, width, height int32)
	PolygonMode(face, mode uint32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)

	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, x, y, z float32)
	UniformMatrix4(location int32, m mgl32.Mat4)

	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target, texture uint32)
	TexParameteri(target, pname uint32, param int32)
	PixelStorei(pname uint32, param int32)
	TexImage2D(target uint32, internalFormat int32, width, height int32, format uint32, pixels []byte)
	GenerateMipmap(target uint32)
	DeleteTexture(texture uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	DeleteBuffer(buffer uint32)
	// VertexAttribPointer describes a float attribute; stride and offset are in bytes.
	VertexAttribPointer(index uint32, size int32, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	DrawArrays(mode uint32, first, count int32)
}
