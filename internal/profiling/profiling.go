package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight per-frame CPU tracker used for slow-frame diagnostics.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track returns a stop function recording elapsed time under name.
// Usage: defer profiling.Track("picking.NearestBlock")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the current totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// TopN formats the N largest buckets of the current frame, e.g.
// "renderer.Render:4.2ms, glfw.SwapBuffers:1.1ms".
func TopN(n int) string {
	type bucket struct {
		name string
		dur  time.Duration
	}

	mu.Lock()
	list := make([]bucket, 0, len(totals))
	for k, v := range totals {
		list = append(list, bucket{name: k, dur: v})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	if n > len(list) {
		n = len(list)
	}

	parts := make([]string, 0, n)
	for _, b := range list[:n] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", b.name, float64(b.dur.Microseconds())/1000.0))
	}
	return strings.Join(parts, ", ")
}

// SumWithPrefix totals every bucket whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range totals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}
