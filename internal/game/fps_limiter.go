package game

import (
	"cubecam/internal/config"
	"time"
)

// FrameGate enforces the frame budget: a frame may be drawn only once more
// than 1/fps has passed since the previous one. It never blocks.
type FrameGate struct {
	last time.Time
}

// NewFrameGate creates a gate whose first interval starts at now
func NewFrameGate(now time.Time) *FrameGate {
	return &FrameGate{last: now}
}

// Budget returns the minimum interval between two frames.
func (g *FrameGate) Budget() time.Duration {
	return time.Second / time.Duration(config.GetFPSLimit())
}

// Ready reports whether a frame is due and, if so, starts the next interval at now.
func (g *FrameGate) Ready(now time.Time) bool {
	if now.Sub(g.last) <= g.Budget() {
		return false
	}
	g.last = now
	return true
}

// Remaining returns how long until the current budget is used up.
func (g *FrameGate) Remaining(now time.Time) time.Duration {
	r := g.Budget() - now.Sub(g.last)
	if r < 0 {
		return 0
	}
	return r
}
