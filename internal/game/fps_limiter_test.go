package game

import (
	"testing"
	"time"

	"cubecam/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestFrameGate(t *testing.T) {
	defer config.SetFPSLimit(config.GetFPSLimit())
	config.SetFPSLimit(60)

	start := time.Unix(0, 0)
	g := NewFrameGate(start)
	budget := g.Budget()
	assert.InDelta(t, 16.67, float64(budget)/float64(time.Millisecond), 0.01)

	assert.False(t, g.Ready(start))
	assert.False(t, g.Ready(start.Add(10*time.Millisecond)))
	assert.Equal(t, budget-10*time.Millisecond, g.Remaining(start.Add(10*time.Millisecond)))
	// exactly at the budget is not enough
	assert.False(t, g.Ready(start.Add(budget)))

	next := start.Add(17 * time.Millisecond)
	assert.True(t, g.Ready(next))
	// the interval restarts at the draw
	assert.False(t, g.Ready(next.Add(time.Millisecond)))
	assert.Equal(t, budget, g.Remaining(next))
	assert.Equal(t, time.Duration(0), g.Remaining(next.Add(time.Second)))
}

func TestFrameGateFollowsFPSLimit(t *testing.T) {
	defer config.SetFPSLimit(config.GetFPSLimit())

	g := NewFrameGate(time.Unix(0, 0))
	config.SetFPSLimit(30)
	assert.Equal(t, time.Second/30, g.Budget())
	config.SetFPSLimit(120)
	assert.Equal(t, time.Second/120, g.Budget())
}
