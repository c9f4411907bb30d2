package ratelimit_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impulse-vlsi-backend/pkg/ratelimit"
)

// fakeClock is a manually advanced clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newLimiter(t *testing.T, limit int, clock *fakeClock) (*ratelimit.FixedWindow, *ratelimit.MemoryStore) {
	t.Helper()
	store := ratelimit.NewMemoryStore(ratelimit.WithSweepInterval(0))
	t.Cleanup(func() { _ = store.Close() })

	l, err := ratelimit.NewFixedWindow(store, limit, time.Minute, ratelimit.WithClock(clock.Now))
	require.NoError(t, err)
	return l, store
}

func TestFixedWindow_Threshold(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	l, store := newLimiter(t, 5, clock)
	start := clock.Now()

	for i := 1; i <= 5; i++ {
		res, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "call %d", i)
		assert.Equal(t, i, res.Count)
		assert.Equal(t, 5-i, res.Remaining())
		clock.Advance(time.Second)
	}

	res, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, res.Allowed, "6th call within the window")
	assert.Equal(t, 0, res.Remaining())
	assert.Equal(t, start.Add(time.Minute), res.ResetAt)

	// exactly at the window edge the window is still open
	clock.Advance(start.Add(60*time.Second).Sub(clock.Now()))
	res, err = l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	// windowStart + 60001ms opens a new window
	clock.Advance(time.Millisecond)
	res, err = l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Count)

	e, ok := store.Get("1.2.3.4")
	require.True(t, ok)
	assert.Equal(t, 1, e.Count)
	assert.Equal(t, clock.Now(), e.WindowStart)
}

func TestFixedWindow_IdentitiesAreIndependent(t *testing.T) {
	ctx := context.Background()
	l, _ := newLimiter(t, 3, newFakeClock())

	for i := 0; i < 3; i++ {
		res, _ := l.Allow(ctx, "a")
		assert.True(t, res.Allowed)
	}
	res, _ := l.Allow(ctx, "a")
	assert.False(t, res.Allowed)

	res, _ = l.Allow(ctx, "b")
	assert.True(t, res.Allowed)
}

// Fixed windows let up to 2x the limit through around a window boundary.
// This is the documented behaviour, not a bug.
func TestFixedWindow_BoundaryBurst(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	l, _ := newLimiter(t, 5, clock)

	// first request opens the window, the burst comes at its very end
	res, _ := l.Allow(ctx, "burst")
	require.True(t, res.Allowed)
	clock.Advance(59 * time.Second)
	allowed := 1
	for i := 0; i < 10; i++ {
		if r, _ := l.Allow(ctx, "burst"); r.Allowed {
			allowed++
		}
	}
	assert.Equal(t, 5, allowed)

	clock.Advance(1001 * time.Millisecond)
	for i := 0; i < 10; i++ {
		if r, _ := l.Allow(ctx, "burst"); r.Allowed {
			allowed++
		}
	}
	// 4 at the end of window one + 5 at the start of window two, ~2 seconds apart
	assert.Equal(t, 10, allowed)
}

func TestFixedWindow_KeyPrefix(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := ratelimit.NewMemoryStore(ratelimit.WithSweepInterval(0))
	defer store.Close()

	contact, err := ratelimit.NewFixedWindow(store, 1, time.Minute, ratelimit.WithClock(clock.Now), ratelimit.WithKeyPrefix("rl:contact:"))
	require.NoError(t, err)
	feedback, err := ratelimit.NewFixedWindow(store, 1, time.Minute, ratelimit.WithClock(clock.Now), ratelimit.WithKeyPrefix("rl:feedback:"))
	require.NoError(t, err)

	r1, _ := contact.Allow(ctx, "ip")
	r2, _ := feedback.Allow(ctx, "ip")
	assert.True(t, r1.Allowed)
	assert.True(t, r2.Allowed)
	assert.Equal(t, 2, store.Len())
}

func TestNewFixedWindow_InvalidConfig(t *testing.T) {
	store := ratelimit.NewMemoryStore(ratelimit.WithSweepInterval(0))
	defer store.Close()

	_, err := ratelimit.NewFixedWindow(store, 0, time.Minute)
	assert.ErrorIs(t, err, ratelimit.ErrInvalidConfig)

	_, err = ratelimit.NewFixedWindow(store, 5, 0)
	assert.ErrorIs(t, err, ratelimit.ErrInvalidConfig)

	_, err = ratelimit.NewFixedWindow(nil, 5, time.Minute)
	assert.ErrorIs(t, err, ratelimit.ErrInvalidConfig)
}

type failingStore struct{}

func (failingStore) Increment(context.Context, string, time.Time, time.Duration) (ratelimit.Entry, error) {
	return ratelimit.Entry{}, errors.New("store down")
}

func (failingStore) Sweep(context.Context, time.Time, time.Duration) (int, error) {
	return 0, nil
}

func TestFixedWindow_StoreError(t *testing.T) {
	l, err := ratelimit.NewFixedWindow(failingStore{}, 5, time.Minute)
	require.NoError(t, err)

	_, err = l.Allow(context.Background(), "x")
	assert.EqualError(t, err, "store down")
}

func TestFixedWindow_ConcurrentSameIdentity(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping race condition test in short mode")
	}

	ctx := context.Background()
	l, store := newLimiter(t, 50, newFakeClock())

	goroutines := 20
	perGoroutine := 10

	var wg sync.WaitGroup
	wg.Add(goroutines)
	var allowed atomic.Int64

	for range goroutines {
		go func() {
			defer wg.Done()
			for range perGoroutine {
				if r, err := l.Allow(ctx, "same"); err == nil && r.Allowed {
					allowed.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), allowed.Load())
	e, ok := store.Get("same")
	require.True(t, ok)
	assert.Equal(t, goroutines*perGoroutine, e.Count, "no lost updates")
}
