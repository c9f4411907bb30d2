package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"impulse-vlsi-backend/internal/delivery/http/middleware"
	"impulse-vlsi-backend/internal/domain"
	"impulse-vlsi-backend/pkg/apperror"
	"impulse-vlsi-backend/pkg/ratelimit"
	"impulse-vlsi-backend/pkg/security"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestClientIdentity(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{"first forwarded value", "203.0.113.1, 10.0.0.1", "10.0.0.2:1234", "203.0.113.1"},
		{"single forwarded value", " 203.0.113.2 ", "10.0.0.2:1234", "203.0.113.2"},
		{"empty forwarded falls back", ", 10.0.0.1", "198.51.100.3:443", "198.51.100.3"},
		{"remote address host", "", "198.51.100.4:51234", "198.51.100.4"},
		{"remote address without port", "", "198.51.100.5", "198.51.100.5"},
		{"nothing available", "", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/api/contact", nil)
			c.Request.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				c.Request.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			assert.Equal(t, tt.want, middleware.ClientIdentity(c))
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString(string(domain.KeyRequestID))
		assert.Equal(t, seen, c.Request.Context().Value(domain.KeyRequestID))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(middleware.RequestIDHeader))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", seen)
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (ratelimit.Result, error) {
	return ratelimit.Result{}, errors.New("connection refused")
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	secLog := security.NewSecurityLogger(zap.New(core), "test", "test")

	r := gin.New()
	r.POST("/api/contact", middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Form:    domain.FormContact,
		Limiter: brokenLimiter{},
		Logger:  secLog,
	}), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, 1, logs.FilterMessage(string(security.EventRateLimitStoreDown)).Len())
}

func TestRateLimitMiddleware_Denies(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	clock := func() time.Time { return start.Add(15 * time.Second) }

	store := ratelimit.NewMemoryStore(ratelimit.WithSweepInterval(0))
	defer store.Close()
	limiter, err := ratelimit.NewFixedWindow(store, 2, time.Minute, ratelimit.WithClock(func() time.Time { return start }))
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.POST("/api/feedback", middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Form:    domain.FormFeedback,
		Limiter: limiter,
		Logger:  security.NewSecurityLogger(zap.New(core), "test", "test"),
		KeyFunc: func(*gin.Context) string { return "client-a" },
		Now:     clock,
	}), func(c *gin.Context) {
		assert.Equal(t, "client-a", c.GetString(string(domain.KeyClientID)))
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/feedback", nil))
		return w
	}

	w := do()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "2025-03-01T09:31:00Z", w.Header().Get("X-RateLimit-Reset"))

	assert.Equal(t, http.StatusOK, do().Code)

	w = do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "45", w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"success":false,"message":"Too many requests. Please try again later."}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage(string(security.EventRateLimitTriggered)).Len())
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		c.Error(apperror.BadRequest("Please enter a valid email address"))
	})
	r.GET("/internal", func(c *gin.Context) {
		c.Error(errors.New("dial tcp: i/o timeout"))
	})
	r.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusAccepted, gin.H{"ok": true})
		c.Error(errors.New("late"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Please enter a valid email address"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/internal", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), middleware.GenericErrorMessage)
	assert.NotContains(t, w.Body.String(), "i/o timeout")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.GET("/plain", func(*gin.Context) { panic("boom") })
	r.GET("/form", func(c *gin.Context) {
		c.Set(middleware.FailureMessageKey, "An error occurred while processing your feedback. Please try again later.")
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), middleware.GenericErrorMessage)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/form", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "processing your feedback")
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SecurityHeadersMiddleware(true))
	r.POST("/api/contact", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/v1/swagger/index.html", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'none'")
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/swagger/index.html", nil))
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
}
