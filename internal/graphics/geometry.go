package graphics

const (
	// CubeVertexCount is the number of vertices drawn per cube: 6 faces of 2 triangles.
	CubeVertexCount = 36
	// cubeStride is the number of floats per vertex: position xyz + texture uv.
	cubeStride = 5
)

// CubeVertices is a unit cube centred on the origin, one textured quad per face.
var CubeVertices = []float32{
	// positions       // texture coords
	-0.5, -0.5, -0.5, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0,

	-0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,

	-0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, 0.5, 1.0, 0.0,

	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,

	-0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,

	-0.5, 0.5, -0.5, 0.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
}

// Geometry holds the GPU handles of an uploaded vertex buffer.
type Geometry struct {
	VAO uint32
	VBO uint32
}

// UploadCube uploads CubeVertices once. Attribute 0 is the position,
// attribute 1 the texture coordinate.
func UploadCube(dev Device) Geometry {
	const floatSize = 4

	vao := dev.GenVertexArray()
	vbo := dev.GenBuffer()

	dev.BindVertexArray(vao)
	dev.BindBuffer(ArrayBuffer, vbo)
	dev.BufferData(ArrayBuffer, CubeVertices, StaticDraw)

	stride := int32(cubeStride * floatSize)
	dev.VertexAttribPointer(0, 3, stride, 0)
	dev.EnableVertexAttribArray(0)
	dev.VertexAttribPointer(1, 2, stride, 3*floatSize)
	dev.EnableVertexAttribArray(1)

	dev.BindBuffer(ArrayBuffer, 0)
	dev.BindVertexArray(0)

	return Geometry{VAO: vao, VBO: vbo}
}

// Delete releases the vertex array and buffer.
func (g Geometry) Delete(dev Device) {
	dev.DeleteBuffer(g.VBO)
	dev.DeleteVertexArray(g.VAO)
}
