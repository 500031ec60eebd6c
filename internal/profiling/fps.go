package profiling

import "time"

// FPSCounter counts frames and reports the rate once per interval.
type FPSCounter struct {
	interval time.Duration
	frames   int
	last     time.Time
}

func NewFPSCounter(interval time.Duration, now time.Time) *FPSCounter {
	return &FPSCounter{interval: interval, last: now}
}

// Frame records one frame. Once interval has passed it returns the frame
// rate over that window and true, and starts a new window.
func (c *FPSCounter) Frame(now time.Time) (int, bool) {
	c.frames++
	elapsed := now.Sub(c.last)
	if elapsed < c.interval {
		return 0, false
	}
	fps := int(float64(c.frames)/elapsed.Seconds() + 0.5)
	c.frames = 0
	c.last = now
	return fps, true
}
