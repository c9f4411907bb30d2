package usecase

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata" // Asia/Kolkata on hosts without a zoneinfo database

	"impulse-vlsi-backend/internal/domain"
	"impulse-vlsi-backend/internal/form"
	"impulse-vlsi-backend/pkg/metrics"
)

// SubmissionOptions configures NewSubmissionUsecase
type SubmissionOptions struct {
	// OperatorEmail receives the operator copy of every submission
	OperatorEmail string
	// SendTimeout bounds each Notifier call; 0 means no timeout
	SendTimeout time.Duration
	// Now overrides time.Now for email timestamps (tests)
	Now func() time.Time
}

type submissionUsecase struct {
	registry form.Registry
	notifier domain.Notifier
	operator string
	timeout  time.Duration
	location *time.Location
	now      func() time.Time
}

// NewSubmissionUsecase creates the sanitize -> validate -> notify pipeline
func NewSubmissionUsecase(registry form.Registry, notifier domain.Notifier, opts SubmissionOptions) domain.SubmissionUsecase {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.FixedZone("IST", 5*60*60+30*60)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &submissionUsecase{
		registry: registry,
		notifier: notifier,
		operator: opts.OperatorEmail,
		timeout:  opts.SendTimeout,
		location: loc,
		now:      now,
	}
}

// Submit sanitizes and validates raw, then sends the operator copy followed by
// the submitter acknowledgement. Both sends must succeed; a failed operator send
// skips the submitter send. Nothing is retried.
func (uc *submissionUsecase) Submit(ctx context.Context, kind domain.FormKind, raw domain.Submission) (string, error) {
	schema, err := uc.registry.Lookup(kind)
	if err != nil {
		return "", err
	}

	sub := schema.Sanitize(raw)
	if messages := schema.Validate(sub); len(messages) > 0 {
		metrics.FormSubmissions.WithLabelValues(string(kind), metrics.OutcomeInvalid).Inc()
		return "", &domain.ValidationError{Messages: messages}
	}

	operatorMsg, submitterMsg, err := composeMessages(schema, sub, uc.operator, uc.now().In(uc.location))
	if err != nil {
		return "", fmt.Errorf("compose %s messages: %w", kind, err)
	}

	if err := uc.send(ctx, operatorMsg); err != nil {
		metrics.FormSubmissions.WithLabelValues(string(kind), metrics.OutcomeNotifyFailed).Inc()
		return "", fmt.Errorf("%w: operator copy: %w", domain.ErrNotificationFailed, err)
	}
	if err := uc.send(ctx, submitterMsg); err != nil {
		metrics.FormSubmissions.WithLabelValues(string(kind), metrics.OutcomeNotifyFailed).Inc()
		return "", fmt.Errorf("%w: submitter copy: %w", domain.ErrNotificationFailed, err)
	}

	metrics.FormSubmissions.WithLabelValues(string(kind), metrics.OutcomeAccepted).Inc()
	return confirmations[kind], nil
}

func (uc *submissionUsecase) send(ctx context.Context, msg domain.NotificationMessage) error {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	return uc.notifier.Send(ctx, msg)
}

func (uc *submissionUsecase) FailureMessage(kind domain.FormKind) string {
	if msg, ok := failures[kind]; ok {
		return msg
	}
	return failures[domain.FormContact]
}
