package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store in process memory. At most one entry exists per key.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
	// largest window seen by Increment; used by the background sweep
	maxWindow time.Duration

	sweepInterval time.Duration
	now           func() time.Time
	stop          chan struct{}
	closeOnce     sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithSweepInterval sets how often expired entries are removed.
// Set to 0 to disable the background sweep.
func WithSweepInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.sweepInterval = interval
	}
}

// WithStoreClock overrides time.Now for the background sweep
func WithStoreClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.now = now
	}
}

// NewMemoryStore creates an in-memory store. Call Close to stop the sweep.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		entries:       make(map[string]Entry),
		sweepInterval: 5 * time.Minute,
		now:           time.Now,
		stop:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.sweepInterval > 0 {
		go ms.sweepLoop()
	}

	return ms
}

// Increment counts one request for key, starting a fresh window when the
// stored one has expired at now.
func (ms *MemoryStore) Increment(_ context.Context, key string, now time.Time, window time.Duration) (Entry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if window > ms.maxWindow {
		ms.maxWindow = window
	}

	e, ok := ms.entries[key]
	if !ok || e.expired(now, window) {
		e = Entry{Count: 1, WindowStart: now}
	} else {
		e.Count++
	}
	ms.entries[key] = e

	return e, nil
}

// Get returns the entry stored for key
func (ms *MemoryStore) Get(key string) (Entry, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	e, ok := ms.entries[key]
	return e, ok
}

// Set replaces the entry for key
func (ms *MemoryStore) Set(key string, e Entry) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.entries[key] = e
}

// Delete removes key
func (ms *MemoryStore) Delete(key string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.entries, key)
}

// Len returns the number of tracked keys
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return len(ms.entries)
}

// Sweep deletes every entry whose window has expired at now and reports how
// many were removed.
func (ms *MemoryStore) Sweep(_ context.Context, now time.Time, window time.Duration) (int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	removed := 0
	for key, e := range ms.entries {
		if e.expired(now, window) {
			delete(ms.entries, key)
			removed++
		}
	}
	return removed, nil
}

// Close stops the background sweep. Safe to call more than once.
func (ms *MemoryStore) Close() error {
	ms.closeOnce.Do(func() {
		close(ms.stop)
	})
	return nil
}

func (ms *MemoryStore) sweepLoop() {
	ticker := time.NewTicker(ms.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.mu.Lock()
			window := ms.maxWindow
			ms.mu.Unlock()
			if window > 0 {
				_, _ = ms.Sweep(context.Background(), ms.now(), window)
			}
		case <-ms.stop:
			return
		}
	}
}
