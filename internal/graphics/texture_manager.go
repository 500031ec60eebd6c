package graphics

import (
	"sync"
)

type textureKey struct {
	path     string
	channels int
	flip     bool
}

// TextureCache uploads each image once per (path, channels, flip) and hands
// out the same texture object for repeated requests.
type TextureCache struct {
	dev      Device
	mu       sync.RWMutex
	textures map[textureKey]uint32
}

func NewTextureCache(dev Device) *TextureCache {
	return &TextureCache{dev: dev, textures: make(map[textureKey]uint32)}
}

// Get returns the cached texture for path, loading it on first use.
func (c *TextureCache) Get(path string, channels int, flip bool) (uint32, error) {
	key := textureKey{path, channels, flip}

	c.mu.RLock()
	if tex, ok := c.textures[key]; ok {
		c.mu.RUnlock()
		return tex, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double check locking
	if tex, ok := c.textures[key]; ok {
		return tex, nil
	}

	tex, err := LoadTexture(c.dev, path, channels, flip)
	if err != nil {
		return 0, err
	}
	c.textures[key] = tex
	return tex, nil
}

// Len is the number of distinct textures uploaded.
func (c *TextureCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.textures)
}

// Release deletes every cached texture.
func (c *TextureCache) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, tex := range c.textures {
		c.dev.DeleteTexture(tex)
		delete(c.textures, key)
	}
}
