package email

import "errors"

var (
	ErrFailedToSendEmail = errors.New("email: failed to send")
	ErrInvalidConfig     = errors.New("email: invalid config")
	ErrNotConfigured     = errors.New("email service is not configured")
	ErrInvalidMessage    = errors.New("email: invalid message")
)
