// Package assets resolves asset paths from the configuration and watches
// shader sources for changes.
package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"cubecam/internal/config"
)

// Paths are the resolved asset files of a configuration.
type Paths struct {
	VertexShader   string
	FragmentShader string
	Textures       []config.Texture
}

// Resolve joins relative paths onto the asset root.
func Resolve(a config.Assets) Paths {
	p := Paths{
		VertexShader:   join(a.Root, a.VertexShader),
		FragmentShader: join(a.Root, a.FragmentShader),
		Textures:       make([]config.Texture, len(a.Textures)),
	}
	for i, t := range a.Textures {
		t.Path = join(a.Root, t.Path)
		p.Textures[i] = t
	}
	return p
}

func join(root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// Check reports the first asset file that is missing or not a regular file.
func (p Paths) Check() error {
	files := []string{p.VertexShader, p.FragmentShader}
	for _, t := range p.Textures {
		files = append(files, t.Path)
	}
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			return fmt.Errorf("asset %s: %w", f, err)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("asset %s is not a regular file", f)
		}
	}
	return nil
}

// Shaders returns the two shader source paths.
func (p Paths) Shaders() []string {
	return []string{p.VertexShader, p.FragmentShader}
}
