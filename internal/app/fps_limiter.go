package app

import "time"

// FPSLimiter provides high-precision frame rate limiting with a hybrid
// sleep/spin approach.
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates a new FPS limiter.
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame should start. A limit <= 0 disables the
// limiter.
func (f *FPSLimiter) Wait(limit int) {
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait the final stretch for precision on high caps
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// Resync after a hitch to avoid drift
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
