package graphics

import (
	"fmt"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// Program represents a linked shader program on a Device.
//
// Compile and link diagnostics are always logged. A non-strict program keeps
// running with ID 0 when its sources do not build, which draws nothing but
// keeps the loop alive; a strict program reports the failure as an error.
type Program struct {
	ID uint32

	dev          Device
	vertexPath   string
	fragmentPath string
	strict       bool
	locations    map[string]int32
}

// LoadProgram reads the vertex and fragment sources and builds a program.
// Unreadable files are always an error.
func LoadProgram(dev Device, vertexPath, fragmentPath string, strict bool) (*Program, error) {
	p := &Program{
		dev:          dev,
		vertexPath:   vertexPath,
		fragmentPath: fragmentPath,
		strict:       strict,
	}
	id, err := p.build()
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.locations = make(map[string]int32)
	return p, nil
}

// Reload rebuilds the program from the same files. The current program stays
// in use unless the new one compiles and links.
func (p *Program) Reload() error {
	vertexSrc, fragmentSrc, err := p.readSources()
	if err != nil {
		return err
	}
	id, err := compileProgram(p.dev, vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}
	if p.ID != 0 {
		p.dev.DeleteProgram(p.ID)
	}
	p.ID = id
	p.locations = make(map[string]int32)
	return nil
}

// Use activates the shader program
func (p *Program) Use() {
	p.dev.UseProgram(p.ID)
}

// SetBool sets a boolean uniform
func (p *Program) SetBool(name string, value bool) {
	var intValue int32
	if value {
		intValue = 1
	}
	p.dev.Uniform1i(p.location(name), intValue)
}

// SetInt sets an integer uniform
func (p *Program) SetInt(name string, value int32) {
	p.dev.Uniform1i(p.location(name), value)
}

// SetFloat sets a float uniform
func (p *Program) SetFloat(name string, value float32) {
	p.dev.Uniform1f(p.location(name), value)
}

// SetVector3 sets a vector3 uniform
func (p *Program) SetVector3(name string, v mgl32.Vec3) {
	p.dev.Uniform3f(p.location(name), v[0], v[1], v[2])
}

// SetMatrix4 sets a 4x4 matrix uniform
func (p *Program) SetMatrix4(name string, m mgl32.Mat4) {
	p.dev.UniformMatrix4(p.location(name), m)
}

// Delete releases the GPU program.
func (p *Program) Delete() {
	if p.ID != 0 {
		p.dev.DeleteProgram(p.ID)
		p.ID = 0
	}
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := p.dev.UniformLocation(p.ID, name)
	p.locations[name] = loc
	return loc
}

func (p *Program) build() (uint32, error) {
	vertexSrc, fragmentSrc, err := p.readSources()
	if err != nil {
		return 0, err
	}
	id, err := compileProgram(p.dev, vertexSrc, fragmentSrc)
	if err != nil {
		if p.strict {
			return 0, err
		}
		log.Printf("shader program %s + %s unusable, continuing without it: %v", p.vertexPath, p.fragmentPath, err)
		return 0, nil
	}
	return id, nil
}

func (p *Program) readSources() (string, string, error) {
	vertexSource, err := os.ReadFile(p.vertexPath)
	if err != nil {
		return "", "", fmt.Errorf("could not read vertex shader file: %w", err)
	}
	fragmentSource, err := os.ReadFile(p.fragmentPath)
	if err != nil {
		return "", "", fmt.Errorf("could not read fragment shader file: %w", err)
	}
	return string(vertexSource), string(fragmentSource), nil
}

func compileProgram(dev Device, vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(dev, vertexSrc, VertexShader)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer dev.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(dev, fragmentSrc, FragmentShader)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer dev.DeleteShader(fragmentShader)

	program := dev.CreateProgram()
	dev.AttachShader(program, vertexShader)
	dev.AttachShader(program, fragmentShader)
	dev.LinkProgram(program)

	if !dev.ProgramLinked(program) {
		msg := dev.ProgramInfoLog(program)
		log.Printf("ERROR::SHADER::PROGRAM::LINKING_FAILED\n%s", msg)
		dev.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %s", msg)
	}
	return program, nil
}

func compileShader(dev Device, source string, shaderType uint32) (uint32, error) {
	shader := dev.CreateShader(shaderType)
	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)

	if !dev.ShaderCompiled(shader) {
		msg := dev.ShaderInfoLog(shader)
		log.Printf("ERROR::SHADER::COMPILATION_FAILED\n%s", msg)
		dev.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %s", msg)
	}
	return shader, nil
}
