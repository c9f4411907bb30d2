package email

import (
	"context"
	"fmt"
	"strings"

	"impulse-vlsi-backend/config"
	"impulse-vlsi-backend/pkg/validation"
)

// Message is a single HTML email
type Message struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"-"`
	ReplyTo  string `json:"reply_to,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

// Validate checks the fields every backend relies on
func (m Message) Validate() error {
	if !validation.IsEmail(m.To) {
		return fmt.Errorf("%w: invalid recipient %q", ErrInvalidMessage, m.To)
	}
	if m.ReplyTo != "" && !validation.IsEmail(m.ReplyTo) {
		return fmt.Errorf("%w: invalid reply-to %q", ErrInvalidMessage, m.ReplyTo)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.HTMLBody) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidMessage)
	}
	return nil
}

// Sender delivers a Message through one provider
type Sender interface {
	Send(ctx context.Context, msg Message) error
	// IsConfigured reports whether the sender has everything it needs to deliver
	IsConfigured() bool
	// Name identifies the backend in logs and health output
	Name() string
}

// New builds the sender selected by cfg.EmailProvider.
// An unconfigured provider still returns a usable Sender whose Send fails with
// ErrNotConfigured, together with the reason.
func New(ctx context.Context, cfg *config.Config) (Sender, error) {
	switch cfg.EmailProvider {
	case "", "smtp":
		s := NewSMTPSender(cfg)
		if !s.IsConfigured() {
			return s, fmt.Errorf("%w: SMTP_USERNAME and SMTP_PASSWORD are required", ErrNotConfigured)
		}
		return s, nil
	case "postmark":
		s, err := NewPostmarkSender(cfg)
		if err != nil {
			return unavailable("postmark"), err
		}
		return s, nil
	case "ses":
		s, err := NewSESSender(ctx, cfg)
		if err != nil {
			return unavailable("ses"), err
		}
		return s, nil
	case "dev":
		return NewDevSender(cfg.DevMailDir, cfg.SMTPFromEmail), nil
	default:
		return unavailable(cfg.EmailProvider), fmt.Errorf("%w: unknown EMAIL_PROVIDER %q", ErrInvalidConfig, cfg.EmailProvider)
	}
}

type unavailableSender struct {
	name string
}

func unavailable(name string) Sender {
	return unavailableSender{name: name}
}

func (u unavailableSender) Send(context.Context, Message) error {
	return ErrNotConfigured
}

func (u unavailableSender) IsConfigured() bool { return false }

func (u unavailableSender) Name() string { return u.name }
