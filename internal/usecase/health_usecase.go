package usecase

import (
	"context"

	"impulse-vlsi-backend/internal/domain"
	"impulse-vlsi-backend/pkg/email"
)

type healthUsecase struct {
	mailer    email.Sender
	storeName string
	pingStore func(ctx context.Context) error
}

// NewHealthUsecase reports notifier configuration and rate-limit store reachability.
// pingStore may be nil for the in-memory store.
func NewHealthUsecase(mailer email.Sender, storeName string, pingStore func(ctx context.Context) error) domain.HealthUsecase {
	return &healthUsecase{
		mailer:    mailer,
		storeName: storeName,
		pingStore: pingStore,
	}
}

func (u *healthUsecase) Check(ctx context.Context) domain.HealthStatus {
	status := domain.HealthStatus{
		Status:         "ok",
		Notifier:       u.mailer.Name(),
		NotifierReady:  u.mailer.IsConfigured(),
		RateLimitStore: u.storeName,
		RateLimitReady: true,
	}

	if u.pingStore != nil && u.pingStore(ctx) != nil {
		status.RateLimitReady = false
	}
	if !status.NotifierReady || !status.RateLimitReady {
		status.Status = "degraded"
	}

	return status
}
