package graphics_test

import (
	"path/filepath"
	"testing"

	"cubecam/internal/graphics"
	"cubecam/internal/graphics/gltest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureCacheReusesUploads(t *testing.T) {
	dev := gltest.NewRecorder()
	cache := graphics.NewTextureCache(dev)
	path := writeTestPNG(t)

	first, err := cache.Get(path, 3, false)
	require.NoError(t, err)
	again, err := cache.Get(path, 3, false)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, dev.Count("TexImage2D"))

	// different upload options are a different texture
	flipped, err := cache.Get(path, 4, true)
	require.NoError(t, err)
	assert.NotEqual(t, first, flipped)
	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, 2, dev.Count("TexImage2D"))

	cache.Release()
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, 2, dev.Count("DeleteTexture"))
}

func TestTextureCacheDoesNotCacheFailures(t *testing.T) {
	dev := gltest.NewRecorder()
	cache := graphics.NewTextureCache(dev)

	_, err := cache.Get(filepath.Join(t.TempDir(), "missing.png"), 3, false)
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, 0, dev.Count("GenTexture"))
}
