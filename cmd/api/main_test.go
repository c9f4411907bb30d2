package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impulse-vlsi-backend/config"
	"impulse-vlsi-backend/internal/domain"
	"impulse-vlsi-backend/pkg/ratelimit"
)

func testConfig() *config.Config {
	return &config.Config{
		ServiceName:                "impulse-vlsi-backend",
		AppEnv:                     "test",
		RateLimitWindowSeconds:     60,
		RateLimitContactThreshold:  5,
		RateLimitCourseThreshold:   5,
		RateLimitFeedbackThreshold: 3,
	}
}

func TestBuildLimiters(t *testing.T) {
	store := ratelimit.NewMemoryStore(ratelimit.WithSweepInterval(0))
	defer store.Close()

	limiters, err := buildLimiters(store, testConfig())
	require.NoError(t, err)
	require.Len(t, limiters, 3)

	ctx := context.Background()
	for range 3 {
		res, err := limiters[domain.FormFeedback].Allow(ctx, "203.0.113.1")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	}
	res, err := limiters[domain.FormFeedback].Allow(ctx, "203.0.113.1")
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	// same identity, separate counter per form
	res, err = limiters[domain.FormContact].Allow(ctx, "203.0.113.1")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 5, res.Limit)
}

func TestBuildLimiters_InvalidThreshold(t *testing.T) {
	store := ratelimit.NewMemoryStore(ratelimit.WithSweepInterval(0))
	defer store.Close()

	cfg := testConfig()
	cfg.RateLimitCourseThreshold = 0

	_, err := buildLimiters(store, cfg)
	assert.ErrorIs(t, err, ratelimit.ErrInvalidConfig)
	assert.Contains(t, err.Error(), string(domain.FormCourseInquiry))
}

func TestRun_ReturnsSetupErrors(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitWindowSeconds = 0

	err := run(cfg)
	assert.ErrorIs(t, err, ratelimit.ErrInvalidConfig)
}
