package main

import (
	"log"
	"os"
	"runtime"

	"cubecam/internal/assets"
	"cubecam/internal/config"
	"cubecam/internal/game"
	"cubecam/internal/graphics"
	"cubecam/internal/graphics/opengl"
	"cubecam/internal/graphics/renderer"
	"cubecam/internal/input"
	"cubecam/internal/platform"

	"github.com/go-gl/glfw/v3.3/glfw"
	flag "github.com/spf13/pflag"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	config.SetFPSLimit(cfg.Window.FPS)

	paths := assets.Resolve(cfg.Assets)
	if err := paths.Check(); err != nil {
		log.Fatalf("assets: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("failed to initialise GLFW: %v", err)
	}
	defer glfw.Terminate()

	window, err := platform.Setup(cfg.Window)
	if err != nil {
		log.Fatalf("window: %v", err)
	}
	defer window.Destroy()

	dev, err := opengl.Init()
	if err != nil {
		log.Fatalf("opengl: %v", err)
	}
	log.Printf("OpenGL %s", dev.Version())

	fbWidth, fbHeight := window.FramebufferSize()
	graphics.PrepareContext(dev, fbWidth, fbHeight)

	program, err := graphics.LoadProgram(dev, paths.VertexShader, paths.FragmentShader, cfg.Assets.StrictShaders)
	if err != nil {
		log.Fatalf("shaders: %v", err)
	}
	defer program.Delete()

	cache := graphics.NewTextureCache(dev)
	defer cache.Release()
	textures := make([]uint32, 0, len(paths.Textures))
	for _, t := range paths.Textures {
		id, err := cache.Get(t.Path, t.Channels, t.Flip)
		if err != nil {
			log.Fatalf("texture: %v", err)
		}
		textures = append(textures, id)
	}

	cube := graphics.UploadCube(dev)
	defer cube.Delete(dev)

	r := renderer.New(dev, program, textures, cube.VAO, window, cfg.Scene.Instances, fbWidth, fbHeight)

	bindings, err := input.BindingsFromConfig(cfg.Keys)
	if err != nil {
		log.Fatalf("key bindings: %v", err)
	}
	window.Bind(input.NewDispatcher(r.Camera(), dev, bindings))

	app := game.NewApp(window, r)
	if cfg.Assets.WatchShaders {
		watcher, err := assets.Watch(paths.Shaders()...)
		if err != nil {
			log.Fatalf("shader watcher: %v", err)
		}
		defer watcher.Close()
		app.WatchShaders(watcher.Changes(), program)
		log.Printf("watching %v", paths.Shaders())
	}

	app.Run()
}

// loadConfig parses args, loads the config file and applies flag overrides.
// The overridden config is validated again.
func loadConfig(fs *flag.FlagSet, args []string) (config.Config, error) {
	configPath := fs.StringP("config", "c", "", "path to a TOML config file")
	watchShaders := fs.Bool("watch-shaders", false, "reload shaders when their source files change")
	strictShaders := fs.Bool("strict-shaders", false, "abort on shader compile or link errors")
	fps := fs.Int("fps", 0, "frame rate limit (overrides the config)")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return config.Config{}, err
	}
	if fs.Changed("watch-shaders") {
		cfg.Assets.WatchShaders = *watchShaders
	}
	if fs.Changed("strict-shaders") {
		cfg.Assets.StrictShaders = *strictShaders
	}
	if fs.Changed("fps") {
		cfg.Window.FPS = *fps
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
