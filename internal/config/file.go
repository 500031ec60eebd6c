package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// Config is the startup configuration, read from a TOML file over Default().
type Config struct {
	Window Window `toml:"window"`
	Assets Assets `toml:"assets"`
	Keys   Keys   `toml:"keys"`
	Scene  Scene  `toml:"scene"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	FPS    int    `toml:"fps"`
}

// Texture describes one image file and how it is uploaded.
type Texture struct {
	Path     string `toml:"path"`
	Channels int    `toml:"channels"`
	Flip     bool   `toml:"flip"`
}

type Assets struct {
	// Root is the directory relative asset paths are resolved against.
	Root           string    `toml:"root"`
	VertexShader   string    `toml:"vertex_shader"`
	FragmentShader string    `toml:"fragment_shader"`
	Textures       []Texture `toml:"textures"`
	// WatchShaders rebuilds the program when a shader file changes.
	WatchShaders bool `toml:"watch_shaders"`
	// StrictShaders turns shader compile and link failures into startup errors.
	StrictShaders bool `toml:"strict_shaders"`
}

// Keys maps action names to the key names that trigger them.
type Keys map[string][]string

type Scene struct {
	Instances []mgl32.Vec3 `toml:"instances"`
}

// DefaultInstances are the ten cube placements of the demo scene.
var DefaultInstances = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "cubecam",
			Width:  1024,
			Height: 768,
			FPS:    60,
		},
		Assets: Assets{
			Root:           "assets",
			VertexShader:   "shaders/vertex.glsl",
			FragmentShader: "shaders/fragment.glsl",
			Textures: []Texture{
				{Path: "textures/container.png", Channels: 3},
				{Path: "textures/awesomeface.png", Channels: 4, Flip: true},
			},
		},
		Keys: Keys{
			"exit":          {"Escape", "Q"},
			"zoom_in":       {"K"},
			"zoom_out":      {"J"},
			"move_forward":  {"W"},
			"move_backward": {"S"},
			"move_left":     {"A"},
			"move_right":    {"D"},
		},
		Scene: Scene{
			Instances: append([]mgl32.Vec3(nil), DefaultInstances...),
		},
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults. Lists (textures, instances) given in the file replace the
// default lists; key bindings replace the defaults per action.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file: %w", err)
	}

	cfg := Default()
	cfg.Assets.Textures = nil
	cfg.Scene.Instances = nil
	cfg.Keys = nil
	if err := Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	def := Default()
	if cfg.Assets.Textures == nil {
		cfg.Assets.Textures = def.Assets.Textures
	}
	if cfg.Scene.Instances == nil {
		cfg.Scene.Instances = def.Scene.Instances
	}
	if cfg.Keys == nil {
		cfg.Keys = Keys{}
	}
	for action, keys := range def.Keys {
		if _, ok := cfg.Keys[action]; !ok {
			cfg.Keys[action] = keys
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals TOML into cfg, rejecting unknown keys.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown settings:\n%s", strict.String())
		}
		return err
	}
	return nil
}

// Validate reports the first setting the program cannot start with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS < MinFPS || c.Window.FPS > MaxFPS {
		return fmt.Errorf("window fps %d must be between %d and %d", c.Window.FPS, MinFPS, MaxFPS)
	}
	if c.Assets.VertexShader == "" || c.Assets.FragmentShader == "" {
		return errors.New("both shader paths are required")
	}
	for i, t := range c.Assets.Textures {
		if t.Path == "" {
			return fmt.Errorf("texture %d has no path", i)
		}
		if t.Channels != 3 && t.Channels != 4 {
			return fmt.Errorf("texture %s: channels must be 3 or 4, got %d", t.Path, t.Channels)
		}
	}
	return nil
}
