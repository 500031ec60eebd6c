package config

import "sync"

// Frame rate limits accepted by the loop.
const (
	MinFPS = 1
	MaxFPS = 240
)

// RuntimeSettings holds settings that may change while the loop is running
type RuntimeSettings struct {
	mu       sync.RWMutex
	fpsLimit int
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit: 60, // default value
}

// GetFPSLimit returns the frame rate the loop draws at
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame rate the loop draws at
func SetFPSLimit(fps int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	// Clamp to reasonable values
	if fps < MinFPS {
		fps = MinFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}

	globalRuntimeSettings.fpsLimit = fps
}
