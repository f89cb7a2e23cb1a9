// Package mail provides the outbound email sender used by the mail worker.
// It delivers through the Resend API.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"

	"quickbite/config"
	"quickbite/internal/domain/service"
)

// Sender delivers email jobs. The worker depends on this interface so tests
// can substitute a fake.
type Sender interface {
	Send(ctx context.Context, job *service.EmailJob) error
}

// resendSender implements Sender on top of the Resend client.
type resendSender struct {
	client *resend.Client
	from   string
	logger *slog.Logger
}

// NewSender is the constructor for the Resend-backed sender.
func NewSender(cfg *config.Config, logger *slog.Logger) (Sender, error) {
	if cfg.Mail == nil || cfg.Mail.APIKey == "" {
		return nil, errors.New("mail API key must be provided")
	}

	return &resendSender{
		client: resend.NewClient(cfg.Mail.APIKey),
		from:   fmt.Sprintf("%s <%s>", cfg.Mail.FromName, cfg.Mail.FromAddress),
		logger: logger,
	}, nil
}

// Send delivers one email job through the Resend API.
func (s *resendSender) Send(ctx context.Context, job *service.EmailJob) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{job.To},
		Subject: job.Subject,
		Text:    job.Body,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	s.logger.Debug("Email sent", slog.String("to", job.To), slog.String("providerID", sent.Id))

	return nil
}
