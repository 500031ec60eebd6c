package graphics_test

import (
	"os"
	"path/filepath"
	"testing"

	"cubecam/internal/graphics"
	"cubecam/internal/graphics/gltest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vertexSrc   = "#version 330 core\nvoid main() { gl_Position = vec4(0.0); }\n"
	fragmentSrc = "#version 330 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"
)

func writeShaders(t *testing.T, vertex, fragment string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	vp := filepath.Join(dir, "vertex.glsl")
	fp := filepath.Join(dir, "fragment.glsl")
	require.NoError(t, os.WriteFile(vp, []byte(vertex), 0o644))
	require.NoError(t, os.WriteFile(fp, []byte(fragment), 0o644))
	return vp, fp
}

func TestLoadProgram(t *testing.T) {
	dev := gltest.NewRecorder()
	vp, fp := writeShaders(t, vertexSrc, fragmentSrc)

	p, err := graphics.LoadProgram(dev, vp, fp, false)
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, 2, dev.Count("CompileShader"))
	assert.Equal(t, 1, dev.Count("LinkProgram"))
	assert.Equal(t, 2, dev.Count("DeleteShader"))

	shaders := dev.Named("CreateShader")
	require.Len(t, shaders, 2)
	assert.Equal(t, graphics.VertexShader, shaders[0].Args[0])
	assert.Equal(t, graphics.FragmentShader, shaders[1].Args[0])
}

func TestLoadProgramMissingFile(t *testing.T) {
	dev := gltest.NewRecorder()
	_, err := graphics.LoadProgram(dev, filepath.Join(t.TempDir(), "nope.glsl"), "also-missing", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, dev.Calls)
}

func TestLoadProgramCompileFailurePermissive(t *testing.T) {
	dev := gltest.NewRecorder()
	dev.FailCompile = "broken"
	vp, fp := writeShaders(t, vertexSrc, "broken"+fragmentSrc)

	p, err := graphics.LoadProgram(dev, vp, fp, false)
	require.NoError(t, err)
	assert.Zero(t, p.ID)
	assert.Zero(t, dev.Count("LinkProgram"))

	// uniforms still go through without a usable program
	p.Use()
	p.SetInt("texture1", 0)
	assert.Equal(t, uint32(0), dev.Named("UseProgram")[0].Args[0])
}

func TestLoadProgramStrict(t *testing.T) {
	dev := gltest.NewRecorder()
	dev.FailCompile = "broken"
	vp, fp := writeShaders(t, "broken"+vertexSrc, fragmentSrc)

	_, err := graphics.LoadProgram(dev, vp, fp, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vertex shader")
}

func TestLoadProgramLinkFailure(t *testing.T) {
	dev := gltest.NewRecorder()
	dev.FailLink = true
	vp, fp := writeShaders(t, vertexSrc, fragmentSrc)

	_, err := graphics.LoadProgram(dev, vp, fp, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link")
	assert.Equal(t, 1, dev.Count("DeleteProgram"))
}

func TestProgramUniforms(t *testing.T) {
	dev := gltest.NewRecorder()
	vp, fp := writeShaders(t, vertexSrc, fragmentSrc)
	p, err := graphics.LoadProgram(dev, vp, fp, false)
	require.NoError(t, err)

	m := mgl32.Translate3D(1, 2, 3)
	p.Use()
	p.SetInt("texture1", 0)
	p.SetInt("texture2", 1)
	p.SetBool("enabled", true)
	p.SetFloat("mix", 0.2)
	p.SetVector3("tint", mgl32.Vec3{0.5, 0.25, 1})
	p.SetMatrix4("model", m)
	p.SetMatrix4("model", m)

	assert.Equal(t, int32(0), dev.Ints["texture1"])
	assert.Equal(t, int32(1), dev.Ints["texture2"])
	assert.Equal(t, int32(1), dev.Ints["enabled"])
	assert.Equal(t, float32(0.2), dev.Floats["mix"])
	assert.Equal(t, mgl32.Vec3{0.5, 0.25, 1}, dev.Vectors["tint"])
	assert.Equal(t, m, dev.Matrices["model"])
	// locations are looked up once per name
	assert.Equal(t, 6, dev.Count("UniformLocation"))
}

func TestProgramReload(t *testing.T) {
	dev := gltest.NewRecorder()
	vp, fp := writeShaders(t, vertexSrc, fragmentSrc)
	p, err := graphics.LoadProgram(dev, vp, fp, false)
	require.NoError(t, err)
	first := p.ID

	require.NoError(t, p.Reload())
	assert.NotEqual(t, first, p.ID)
	assert.Equal(t, first, dev.Named("DeleteProgram")[0].Args[0])

	// a broken edit keeps the last good program
	dev.FailCompile = "broken"
	require.NoError(t, os.WriteFile(fp, []byte("broken"), 0o644))
	good := p.ID
	require.Error(t, p.Reload())
	assert.Equal(t, good, p.ID)
}
