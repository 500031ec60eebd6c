package game

import (
	"log"
	"time"

	"cubecam/internal/profiling"
)

// Window is the part of the platform window the loop drives. Event callbacks
// run inside WaitEventsTimeout and may mark the window for closing.
type Window interface {
	ShouldClose() bool
	WaitEventsTimeout(timeout time.Duration)
}

// Frame draws and presents one frame.
type Frame interface {
	DrawFrame()
}

// Reloader rebuilds a resource from disk.
type Reloader interface {
	Reload() error
}

type App struct {
	window Window
	frame  Frame
	gate   *FrameGate
	fps    *profiling.FPSCounter
	now    func() time.Time

	shaderChanges <-chan string
	program       Reloader
}

func NewApp(window Window, frame Frame) *App {
	now := time.Now()
	return &App{
		window: window,
		frame:  frame,
		gate:   NewFrameGate(now),
		fps:    profiling.NewFPSCounter(time.Second, now),
		now:    time.Now,
	}
}

// WatchShaders rebuilds program whenever a path arrives on changes.
func (a *App) WatchShaders(changes <-chan string, program Reloader) {
	a.shaderChanges = changes
	a.program = program
}

// Run ticks until the window is marked for closing.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	if now := a.now(); a.gate.Ready(now) {
		a.drawFrame(now)
	}
	a.applyShaderChanges()
	a.window.WaitEventsTimeout(a.gate.Remaining(a.now()))
}

func (a *App) drawFrame(now time.Time) {
	profiling.ResetFrame()

	func() {
		defer profiling.Track("renderer.DrawFrame")()
		a.frame.DrawFrame()
	}()

	// Check if frame took longer than its budget
	if took := a.now().Sub(now); took > a.gate.Budget() {
		log.Printf("Slow frame: %v. Top tasks: %s", took, profiling.TopN(5))
	}

	if fps, ok := a.fps.Frame(now); ok {
		log.Printf("FPS: %d", fps)
	}
}

func (a *App) applyShaderChanges() {
	if a.shaderChanges == nil {
		return
	}
	changed := ""
drain:
	for {
		select {
		case path, ok := <-a.shaderChanges:
			if !ok {
				a.shaderChanges = nil
				break drain
			}
			changed = path
		default:
			break drain
		}
	}
	if changed == "" {
		return
	}

	defer profiling.Track("shaders.Reload")()
	if err := a.program.Reload(); err != nil {
		log.Printf("shader reload after change to %s failed, keeping previous program: %v", changed, err)
		return
	}
	log.Printf("shaders reloaded after change to %s", changed)
}
