package ratelimit

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Lua script for an atomic fixed-window step
// KEYS[1] = counter key
// ARGV[1] = TTL in milliseconds
// Returns: [current_count, pttl_remaining]
var fixedWindowScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
local ttl = redis.call('PTTL', KEYS[1])
if count == 1 or ttl < 0 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
    ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// RedisStore implements Store on Redis so that several replicas share counters.
// Keys expire server-side one millisecond after the window, which matches the
// strict "now - windowStart > window" reset rule.
type RedisStore struct {
	client goredis.Scripter
}

// NewRedisStore creates a store on an existing client
func NewRedisStore(client goredis.Scripter) *RedisStore {
	return &RedisStore{client: client}
}

// Increment runs the fixed-window script for key. The window start is derived
// from the key's remaining TTL, so every replica reports the same value.
func (rs *RedisStore) Increment(ctx context.Context, key string, now time.Time, window time.Duration) (Entry, error) {
	ttlMs := window.Milliseconds() + 1

	result, err := fixedWindowScript.Run(ctx, rs.client, []string{key}, ttlMs).Result()
	if err != nil {
		return Entry{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	// Parse result [count, ttl]
	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return Entry{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	elapsed := time.Duration(ttlMs-ttl) * time.Millisecond
	return Entry{
		Count:       int(count),
		WindowStart: now.Add(-elapsed),
	}, nil
}

// Sweep is a no-op: Redis expires keys on its own
func (rs *RedisStore) Sweep(context.Context, time.Time, time.Duration) (int, error) {
	return 0, nil
}
