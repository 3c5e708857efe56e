package rate

import (
	"sync"
	"time"
)

// Debounce returns a wrapper that delays fn until wait has elapsed since the
// most recent call. Repeated calls inside the window reset the timer.
func Debounce(fn func(), wait time.Duration) func() {
	var mu sync.Mutex
	var timer *time.Timer
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, fn)
	}
}

// Throttle returns a wrapper that invokes fn at most once per limit. Calls
// arriving inside the window are dropped.
func Throttle(fn func(), limit time.Duration) func() {
	var mu sync.Mutex
	var last time.Time
	return func() {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()
		if now.Sub(last) < limit {
			return
		}
		last = now
		fn()
	}
}
