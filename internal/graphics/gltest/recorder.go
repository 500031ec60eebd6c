// Package gltest provides a graphics.Device that records calls instead of
// issuing GPU commands.
package gltest

import (
	"strings"

	"cubecam/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Call is one recorded device call.
type Call struct {
	Name string
	Args []any
}

// Recorder implements graphics.Device. Handles are allocated from a single
// counter starting at 1, so 0 always means "none".
type Recorder struct {
	Calls []Call

	// FailCompile makes CompileShader fail for sources containing this text.
	FailCompile string
	// FailLink makes every LinkProgram fail.
	FailLink bool

	next      uint32
	sources   map[uint32]string
	compiled  map[uint32]bool
	linked    map[uint32]bool
	locations map[int32]string
	names     map[string]int32

	// Current uniform values by name, for the program last made current.
	Ints     map[string]int32
	Floats   map[string]float32
	Vectors  map[string]mgl32.Vec3
	Matrices map[string]mgl32.Mat4
}

var _ graphics.Device = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{
		sources:   make(map[uint32]string),
		compiled:  make(map[uint32]bool),
		linked:    make(map[uint32]bool),
		locations: make(map[int32]string),
		names:     make(map[string]int32),
		Ints:      make(map[string]int32),
		Floats:    make(map[string]float32),
		Vectors:   make(map[string]mgl32.Vec3),
		Matrices:  make(map[string]mgl32.Mat4),
	}
}

// Named returns the recorded calls with the given name, in order.
func (r *Recorder) Named(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times name was called.
func (r *Recorder) Count(name string) int {
	return len(r.Named(name))
}

// Names returns the sequence of call names.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Name
	}
	return out
}

// Reset forgets recorded calls but keeps allocated handles and uniform state.
func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) handle() uint32 {
	r.next++
	return r.next
}

func (r *Recorder) Enable(capability uint32) { r.record("Enable", capability) }
func (r *Recorder) Viewport(x, y, width, height int32) { r.record("Viewport", x, y, width, height) }
func (r *Recorder) PolygonMode(face, mode uint32) { r.record("PolygonMode", face, mode) }
func (r *Recorder) ClearColor(cr, cg, cb, ca float32) { r.record("ClearColor", cr, cg, cb, ca) }
func (r *Recorder) Clear(mask uint32) { r.record("Clear", mask) }

func (r *Recorder) CreateShader(kind uint32) uint32 {
	id := r.handle()
	r.record("CreateShader", kind)
	return id
}

func (r *Recorder) ShaderSource(shader uint32, source string) {
	r.sources[shader] = source
	r.record("ShaderSource", shader)
}

func (r *Recorder) CompileShader(shader uint32) {
	r.compiled[shader] = r.FailCompile == "" || !strings.Contains(r.sources[shader], r.FailCompile)
	r.record("CompileShader", shader)
}

func (r *Recorder) ShaderCompiled(shader uint32) bool { return r.compiled[shader] }

func (r *Recorder) ShaderInfoLog(shader uint32) string {
	if r.compiled[shader] {
		return ""
	}
	return "0:1(1): error: syntax error"
}

func (r *Recorder) DeleteShader(shader uint32) { r.record("DeleteShader", shader) }

func (r *Recorder) CreateProgram() uint32 {
	id := r.handle()
	r.record("CreateProgram")
	return id
}

func (r *Recorder) AttachShader(program, shader uint32) { r.record("AttachShader", program, shader) }

func (r *Recorder) LinkProgram(program uint32) {
	r.linked[program] = !r.FailLink
	r.record("LinkProgram", program)
}

func (r *Recorder) ProgramLinked(program uint32) bool { return r.linked[program] }

func (r *Recorder) ProgramInfoLog(program uint32) string {
	if r.linked[program] {
		return ""
	}
	return "error: linking failed"
}

func (r *Recorder) UseProgram(program uint32) { r.record("UseProgram", program) }
func (r *Recorder) DeleteProgram(program uint32) { r.record("DeleteProgram", program) }

func (r *Recorder) UniformLocation(program uint32, name string) int32 {
	r.record("UniformLocation", program, name)
	if loc, ok := r.names[name]; ok {
		return loc
	}
	loc := int32(len(r.names))
	r.names[name] = loc
	r.locations[loc] = name
	return loc
}

func (r *Recorder) Uniform1i(location int32, v int32) {
	r.Ints[r.locations[location]] = v
	r.record("Uniform1i", r.locations[location], v)
}

func (r *Recorder) Uniform1f(location int32, v float32) {
	r.Floats[r.locations[location]] = v
	r.record("Uniform1f", r.locations[location], v)
}

func (r *Recorder) Uniform3f(location int32, x, y, z float32) {
	r.Vectors[r.locations[location]] = mgl32.Vec3{x, y, z}
	r.record("Uniform3f", r.locations[location], x, y, z)
}

func (r *Recorder) UniformMatrix4(location int32, m mgl32.Mat4) {
	r.Matrices[r.locations[location]] = m
	r.record("UniformMatrix4", r.locations[location], m)
}

func (r *Recorder) GenTexture() uint32 {
	id := r.handle()
	r.record("GenTexture")
	return id
}

func (r *Recorder) ActiveTexture(unit uint32) { r.record("ActiveTexture", unit) }
func (r *Recorder) BindTexture(target, texture uint32) { r.record("BindTexture", target, texture) }

func (r *Recorder) TexParameteri(target, pname uint32, param int32) {
	r.record("TexParameteri", target, pname, param)
}

func (r *Recorder) PixelStorei(pname uint32, param int32) { r.record("PixelStorei", pname, param) }

func (r *Recorder) TexImage2D(target uint32, internalFormat int32, width, height int32, format uint32, pixels []byte) {
	r.record("TexImage2D", target, internalFormat, width, height, format, len(pixels))
}

func (r *Recorder) GenerateMipmap(target uint32) { r.record("GenerateMipmap", target) }
func (r *Recorder) DeleteTexture(texture uint32) { r.record("DeleteTexture", texture) }
func (r *Recorder) BindVertexArray(vao uint32) { r.record("BindVertexArray", vao) }
func (r *Recorder) DeleteVertexArray(vao uint32) { r.record("DeleteVertexArray", vao) }
func (r *Recorder) BindBuffer(target, buf uint32) { r.record("BindBuffer", target, buf) }
func (r *Recorder) DeleteBuffer(buffer uint32) { r.record("DeleteBuffer", buffer) }
func (r *Recorder) EnableVertexAttribArray(i uint32) { r.record("EnableVertexAttribArray", i) }

func (r *Recorder) GenVertexArray() uint32 {
	id := r.handle()
	r.record("GenVertexArray")
	return id
}

func (r *Recorder) GenBuffer() uint32 {
	id := r.handle()
	r.record("GenBuffer")
	return id
}

func (r *Recorder) BufferData(target uint32, data []float32, usage uint32) {
	r.record("BufferData", target, len(data), usage)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, stride int32, offset int) {
	r.record("VertexAttribPointer", index, size, stride, offset)
}

func (r *Recorder) DrawArrays(mode uint32, first, count int32) {
	r.record("DrawArrays", mode, first, count)
}
