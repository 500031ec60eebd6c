package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight per-frame CPU profiler: sections record into the current frame
// and the loop resets it at the start of each frame.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("renderer.DrawFrame")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// TopN formats the n slowest sections of the current frame, slowest first.
// Example: "renderer.DrawFrame:4.2ms, shaders.Reload:1ms"
func TopN(n int) string {
	type section struct {
		name string
		dur  time.Duration
	}
	ss := Snapshot()
	list := make([]section, 0, len(ss))
	for k, v := range ss {
		list = append(list, section{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, s := range list[:n] {
		parts = append(parts, s.name+":"+formatMs(s.dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops it for whole milliseconds.
func formatMs(d time.Duration) string {
	tenths := d.Microseconds() / 100
	if tenths%10 == 0 {
		return fmt.Sprintf("%dms", tenths/10)
	}
	return fmt.Sprintf("%d.%dms", tenths/10, tenths%10)
}
