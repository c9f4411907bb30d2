package domain

import (
	"context"
	"errors"
	"strings"
)

// FormKind identifies one of the site's submission forms
type FormKind string

const (
	FormContact       FormKind = "contact"
	FormCourseInquiry FormKind = "course_inquiry"
	FormFeedback      FormKind = "feedback"
)

// Submission is a flat field name -> value mapping for a single request.
// It is never persisted.
type Submission map[string]string

// Get returns the value for field, or "" when absent
func (s Submission) Get(field string) string {
	if s == nil {
		return ""
	}
	return s[field]
}

// NotificationMessage is a single outbound message handed to a Notifier
type NotificationMessage struct {
	To       string
	Subject  string
	HTMLBody string
	ReplyTo  string
	// Tag groups messages by purpose (e.g. "contact-operator") for the delivery provider
	Tag string
}

// Notifier delivers notification messages (email provider, dev sink, ...)
type Notifier interface {
	Send(ctx context.Context, msg NotificationMessage) error
}

// SubmissionUsecase runs the sanitize -> validate -> notify pipeline for one form
type SubmissionUsecase interface {
	// Submit processes a raw submission and returns the confirmation text shown to the user
	Submit(ctx context.Context, kind FormKind, raw Submission) (string, error)
	// FailureMessage returns the generic text shown when processing fails for kind
	FailureMessage(kind FormKind) string
}

// ErrUnknownForm is returned when no schema is registered for a FormKind
var ErrUnknownForm = errors.New("unknown form kind")

// ErrNotificationFailed wraps any Notifier failure
var ErrNotificationFailed = errors.New("notification failed")

// ValidationError carries every failed field rule for a submission
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}
