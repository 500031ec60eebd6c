package renderer

import "github.com/go-gl/mathgl/mgl32"

// Program is the shader program a frame is drawn with. *graphics.Program
// satisfies it.
type Program interface {
	Use()
	SetInt(name string, value int32)
	SetMatrix4(name string, m mgl32.Mat4)
}

// Surface presents a finished frame. The platform window satisfies it.
type Surface interface {
	SwapBuffers()
}
