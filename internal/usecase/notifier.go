package usecase

import (
	"context"
	"time"

	"impulse-vlsi-backend/internal/domain"
	"impulse-vlsi-backend/pkg/email"
	"impulse-vlsi-backend/pkg/metrics"
)

type emailNotifier struct {
	sender email.Sender
}

// NewEmailNotifier adapts an email.Sender to domain.Notifier and records send latency
func NewEmailNotifier(sender email.Sender) domain.Notifier {
	return &emailNotifier{sender: sender}
}

func (n *emailNotifier) Send(ctx context.Context, msg domain.NotificationMessage) error {
	start := time.Now()
	err := n.sender.Send(ctx, email.Message{
		To:       msg.To,
		Subject:  msg.Subject,
		HTMLBody: msg.HTMLBody,
		ReplyTo:  msg.ReplyTo,
		Tag:      msg.Tag,
	})

	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.NotificationDuration.WithLabelValues(n.sender.Name(), result).Observe(time.Since(start).Seconds())

	return err
}
