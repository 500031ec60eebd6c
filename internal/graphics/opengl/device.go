// Package opengl implements graphics.Device on top of the OpenGL 4.1 core
// bindings. All methods must be called from the thread that owns the context.
package opengl

import (
	"fmt"
	"strings"

	"cubecam/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Device issues commands to the current OpenGL context.
type Device struct{}

var _ graphics.Device = Device{}

// Init loads the GL function pointers for the current context.
func Init() (Device, error) {
	if err := gl.Init(); err != nil {
		return Device{}, fmt.Errorf("failed to initialise OpenGL: %w", err)
	}
	return Device{}, nil
}

// Version returns the GL version string of the current context.
func (Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (Device) Enable(capability uint32) { gl.Enable(capability) }

func (Device) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (Device) PolygonMode(face, mode uint32) { gl.PolygonMode(face, mode) }

func (Device) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (Device) Clear(mask uint32) { gl.Clear(mask) }

func (Device) CreateShader(kind uint32) uint32 { return gl.CreateShader(kind) }

func (Device) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Device) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Device) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Device) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Device) CreateProgram() uint32 { return gl.CreateProgram() }

func (Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (Device) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Device) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Device) UseProgram(program uint32) { gl.UseProgram(program) }

func (Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Device) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (Device) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (Device) Uniform3f(location int32, x, y, z float32) { gl.Uniform3f(location, x, y, z) }

func (Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (Device) GenTexture() uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	return texture
}

func (Device) ActiveTexture(unit uint32) { gl.ActiveTexture(unit) }

func (Device) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }

func (Device) TexParameteri(target, pname uint32, param int32) { gl.TexParameteri(target, pname, param) }

func (Device) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }

func (Device) TexImage2D(target uint32, internalFormat int32, width, height int32, format uint32, pixels []byte) {
	gl.TexImage2D(target, 0, internalFormat, width, height, 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (Device) GenerateMipmap(target uint32) { gl.GenerateMipmap(target) }

func (Device) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

func (Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Device) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (Device) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (Device) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (Device) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (Device) BufferData(target uint32, data []float32, usage uint32) {
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (Device) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (Device) VertexAttribPointer(index uint32, size int32, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, stride, gl.PtrOffset(offset))
}

func (Device) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Device) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }
