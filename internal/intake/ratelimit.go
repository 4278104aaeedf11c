// Package intake provides the public lead-intake bounded context: payload
// validation, anti-bot checks, rate limiting, and the submission pipeline.
package intake

import (
	"sync"
	"time"
)

// FixedWindowLimiter caps requests per key to a fixed count per window.
// It satisfies the handler's Limiter capability.
// State lives in process memory only: a single-instance store does not
// generalize to multi-instance deployment without a shared backing store,
// which is acceptable because exceeding the limit fails soft with a
// rejection and never corrupts state.
type FixedWindowLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	limit   int
	entries map[string]*windowEntry
	now     func() time.Time
}

type windowEntry struct {
	windowStart time.Time
	count       int
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per key
// per window.
func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		window:  window,
		limit:   limit,
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
}

// Allow records one request for key and reports whether it fits the
// current window.
func (l *FixedWindowLimiter) Allow(key string) bool {
	return l.allowAt(key, l.now())
}

func (l *FixedWindowLimiter) allowAt(key string, at time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok || at.Sub(entry.windowStart) >= l.window {
		l.entries[key] = &windowEntry{windowStart: at, count: 1}
		return true
	}
	if entry.count >= l.limit {
		return false
	}
	entry.count++
	return true
}
