package graphics

// PrepareContext sets the state every frame relies on: depth testing and a
// viewport covering the framebuffer.
func PrepareContext(dev Device, width, height int) {
	dev.Enable(DepthTest)
	dev.Viewport(0, 0, int32(width), int32(height))
}
