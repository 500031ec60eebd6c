package graphics_test

import (
	"testing"

	"cubecam/internal/graphics"
	"cubecam/internal/graphics/gltest"

	"github.com/stretchr/testify/assert"
)

func TestPrepareContext(t *testing.T) {
	dev := gltest.NewRecorder()
	graphics.PrepareContext(dev, 1024, 768)

	assert.Equal(t, []string{"Enable", "Viewport"}, dev.Names())
	assert.Equal(t, []any{graphics.DepthTest}, dev.Named("Enable")[0].Args)
	assert.Equal(t, []any{int32(0), int32(0), int32(1024), int32(768)}, dev.Named("Viewport")[0].Args)
}
