package ratelimit

import (
	"context"
	"time"
)

// Entry is the per-identity fixed-window state
type Entry struct {
	Count       int
	WindowStart time.Time
}

// expired reports whether the window that started at e.WindowStart is over at now
func (e Entry) expired(now time.Time, window time.Duration) bool {
	return now.Sub(e.WindowStart) > window
}

// Store keeps fixed-window counters.
type Store interface {
	// Increment performs one fixed-window step for key atomically: a missing or
	// expired entry is reset to {1, now}, otherwise its count is incremented.
	Increment(ctx context.Context, key string, now time.Time, window time.Duration) (Entry, error)
	// Sweep drops entries whose window has expired and returns how many were removed
	Sweep(ctx context.Context, now time.Time, window time.Duration) (int, error)
}
