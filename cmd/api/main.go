package main

import (
	"context"
	"fmt"
	"impulse-vlsi-backend/config"
	_ "impulse-vlsi-backend/docs" // Important for Swagger
	v1 "impulse-vlsi-backend/internal/delivery/http/v1"
	"impulse-vlsi-backend/internal/domain"
	"impulse-vlsi-backend/internal/form"
	"impulse-vlsi-backend/internal/usecase"
	"impulse-vlsi-backend/pkg/email"
	"impulse-vlsi-backend/pkg/logger"
	"impulse-vlsi-backend/pkg/ratelimit"
	redisclient "impulse-vlsi-backend/pkg/redis"
	"impulse-vlsi-backend/pkg/security"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title           Impulse-VLSI Forms API
// @version         1.0
// @description     Contact, course inquiry and feedback endpoints for the Impulse-VLSI website.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Loggers
	logger.Init(cfg.IsProduction())
	logger.Log.Info("Starting forms backend", "port", cfg.Port, "env", cfg.AppEnv)

	if err := run(cfg); err != nil {
		logger.Log.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

// run owns every resource that needs closing; it returns instead of exiting so
// the deferred cleanup always runs.
func run(cfg *config.Config) error {
	secLog := security.InitSecurityLogger(cfg.ServiceName, cfg.AppEnv)
	defer secLog.Sync()

	// 3. Setup Rate Limit Store
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		store       ratelimit.Store
		storeName   = "memory"
		pingStore   func(context.Context) error
		memoryStore *ratelimit.MemoryStore
		redisClient *redis.Client
	)

	if cfg.UpstashRedisURL != "" {
		var err error
		redisClient, err = redisclient.NewClient(ctx, redisclient.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		})
		if err != nil {
			logger.Log.Warn("Redis unavailable - falling back to in-memory rate limiting", "error", err)
		} else {
			store = ratelimit.NewRedisStore(redisClient)
			storeName = "redis"
			pingStore = func(ctx context.Context) error {
				return redisclient.HealthCheck(ctx, redisClient)
			}
			defer redisClient.Close()
		}
	}
	if store == nil {
		memoryStore = ratelimit.NewMemoryStore(ratelimit.WithSweepInterval(cfg.RateLimitSweepInterval()))
		store = memoryStore
		defer memoryStore.Close()
	}
	logger.Log.Info("Rate limit store ready", "store", storeName)

	// 4. Setup Limiters
	limiters, err := buildLimiters(store, cfg)
	if err != nil {
		return err
	}

	// 5. Setup Email Service
	mailer, err := email.New(ctx, cfg)
	if err != nil {
		logger.Log.Warn("Email service not fully configured - form submissions will fail", "provider", mailer.Name(), "error", err)
	}

	// 6. Setup UseCases
	submissionUC := usecase.NewSubmissionUsecase(form.DefaultRegistry(), usecase.NewEmailNotifier(mailer), usecase.SubmissionOptions{
		OperatorEmail: cfg.ContactEmailTo,
		SendTimeout:   cfg.NotifyTimeout(),
	})
	healthUC := usecase.NewHealthUsecase(mailer, storeName, pingStore)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC:   submissionUC,
		HealthUC:       healthUC,
		Limiters:       limiters,
		SecurityLogger: secLog,
		Config:         cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		return fmt.Errorf("listen failed: %w", err)
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}

// buildLimiters creates one fixed-window limiter per form over a shared store.
// Each form gets its own key prefix so counters never collide.
func buildLimiters(store ratelimit.Store, cfg *config.Config) (map[domain.FormKind]ratelimit.Limiter, error) {
	thresholds := map[domain.FormKind]struct {
		limit  int
		prefix string
	}{
		domain.FormContact:       {cfg.RateLimitContactThreshold, "rl:contact:"},
		domain.FormCourseInquiry: {cfg.RateLimitCourseThreshold, "rl:course:"},
		domain.FormFeedback:      {cfg.RateLimitFeedbackThreshold, "rl:feedback:"},
	}

	limiters := make(map[domain.FormKind]ratelimit.Limiter, len(thresholds))
	for kind, t := range thresholds {
		limiter, err := ratelimit.NewFixedWindow(store, t.limit, cfg.RateLimitWindow(), ratelimit.WithKeyPrefix(t.prefix))
		if err != nil {
			return nil, fmt.Errorf("invalid rate limit configuration for %s: %w", kind, err)
		}
		limiters[kind] = limiter
	}
	return limiters, nil
}
