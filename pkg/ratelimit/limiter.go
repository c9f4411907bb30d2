package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by constructors for non-positive limits or windows
var ErrInvalidConfig = errors.New("ratelimit: invalid config")

// Limiter decides whether a request from identity may proceed.
// Implementations other than FixedWindow (sliding window, token bucket) can be
// swapped in without touching the HTTP layer.
type Limiter interface {
	Allow(ctx context.Context, identity string) (Result, error)
}

// Result describes the outcome of one Allow call
type Result struct {
	Allowed     bool
	Count       int
	Limit       int
	WindowStart time.Time
	ResetAt     time.Time
}

// Remaining returns how many requests are left in the current window
func (r Result) Remaining() int {
	if r.Count >= r.Limit {
		return 0
	}
	return r.Limit - r.Count
}

// FixedWindow counts requests per identity in windows that open on the first
// request after the previous window expired.
//
// Up to 2x limit requests can pass across a window boundary (a burst at the end
// of one window followed by a burst at the start of the next).
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
	prefix string
	now    func() time.Time
}

// Option configures a FixedWindow
type Option func(*FixedWindow)

// WithClock overrides time.Now (tests)
func WithClock(now func() time.Time) Option {
	return func(l *FixedWindow) {
		l.now = now
	}
}

// WithKeyPrefix namespaces identities so several limiters can share one store
func WithKeyPrefix(prefix string) Option {
	return func(l *FixedWindow) {
		l.prefix = prefix
	}
}

// NewFixedWindow creates a fixed-window limiter allowing limit requests per window
func NewFixedWindow(store Store, limit int, window time.Duration, opts ...Option) (*FixedWindow, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is required", ErrInvalidConfig)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidConfig, limit)
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %v", ErrInvalidConfig, window)
	}

	l := &FixedWindow{
		store:  store,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Allow records one request for identity and reports whether it is within the limit
func (l *FixedWindow) Allow(ctx context.Context, identity string) (Result, error) {
	entry, err := l.store.Increment(ctx, l.prefix+identity, l.now(), l.window)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Allowed:     entry.Count <= l.limit,
		Count:       entry.Count,
		Limit:       l.limit,
		WindowStart: entry.WindowStart,
		ResetAt:     entry.WindowStart.Add(l.window),
	}, nil
}

// Limit returns the configured requests per window
func (l *FixedWindow) Limit() int { return l.limit }

// Window returns the configured window length
func (l *FixedWindow) Window() time.Duration { return l.window }
