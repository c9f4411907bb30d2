package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"

	"impulse-vlsi-backend/config"
	"impulse-vlsi-backend/pkg/validation"
)

// PostmarkSender sends through Postmark's transactional API
type PostmarkSender struct {
	client *postmark.Client
	from   string
}

// NewPostmarkSender requires both tokens and a valid sender address
func NewPostmarkSender(cfg *config.Config) (*PostmarkSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_ACCOUNT_TOKEN is required", ErrInvalidConfig)
	}
	if !validation.IsEmail(cfg.SMTPFromEmail) {
		return nil, fmt.Errorf("%w: SMTP_FROM_EMAIL must be a valid email address", ErrInvalidConfig)
	}

	return &PostmarkSender{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		from:   cfg.SMTPFromEmail,
	}, nil
}

func (p *PostmarkSender) IsConfigured() bool { return p.client != nil }

func (p *PostmarkSender) Name() string { return "postmark" }

// Send tracks opens and HTML link clicks only
func (p *PostmarkSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := p.client.SendEmail(ctx, postmark.Email{
		From:       p.from,
		ReplyTo:    msg.ReplyTo,
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTMLBody,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
