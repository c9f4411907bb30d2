package domain

import "context"

// HealthStatus is reported by GET /v1/health
type HealthStatus struct {
	Status         string `json:"status"`
	Notifier       string `json:"notifier"`
	NotifierReady  bool   `json:"notifier_ready"`
	RateLimitStore string `json:"rate_limit_store"`
	RateLimitReady bool   `json:"rate_limit_ready"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}
