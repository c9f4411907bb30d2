package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"impulse-vlsi-backend/config"
	"impulse-vlsi-backend/pkg/validation"
)

// SESAPI is the subset of the SES client the sender uses
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESSender sends through Amazon SES using the default AWS credential chain
type SESSender struct {
	client SESAPI
	from   string
}

// NewSESSender loads AWS config for cfg.AWSRegion
func NewSESSender(ctx context.Context, cfg *config.Config) (*SESSender, error) {
	if cfg.AWSRegion == "" {
		return nil, fmt.Errorf("%w: AWS_REGION is required", ErrInvalidConfig)
	}
	if !validation.IsEmail(cfg.SMTPFromEmail) {
		return nil, fmt.Errorf("%w: SMTP_FROM_EMAIL must be a valid email address", ErrInvalidConfig)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %v", ErrInvalidConfig, err)
	}

	return NewSESSenderWithClient(ses.NewFromConfig(awsCfg), cfg.SMTPFromEmail), nil
}

// NewSESSenderWithClient wraps an existing client
func NewSESSenderWithClient(client SESAPI, from string) *SESSender {
	return &SESSender{client: client, from: from}
}

func (s *SESSender) IsConfigured() bool { return s.client != nil }

func (s *SESSender) Name() string { return "ses" }

func (s *SESSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Source: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(msg.HTMLBody), Charset: aws.String("UTF-8")},
			},
		},
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}
	if msg.Tag != "" {
		input.Tags = []types.MessageTag{{Name: aws.String("category"), Value: aws.String(msg.Tag)}}
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}
