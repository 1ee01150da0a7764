package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hireloop/intake/internal/config"
	"github.com/resend/resend-go/v2"
)

// ErrNoCredential is returned when no Resend API key is configured. Sends
// fail closed in that case.
var ErrNoCredential = errors.New("resend api key not configured")

// ResendSender delivers interview invitations through the Resend API.
type ResendSender struct {
	cfg    config.MailConfig
	client *resend.Client
	logger *slog.Logger
}

func NewResendSender(cfg config.MailConfig, logger *slog.Logger) *ResendSender {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ResendSender{cfg: cfg, logger: logger}
	if cfg.APIKey != "" {
		s.client = resend.NewClient(cfg.APIKey)
	}
	return s
}

// Send dispatches a plain-text email. It returns true only when the provider
// accepted the message.
func (s *ResendSender) Send(ctx context.Context, to, subject, body string) (bool, error) {
	if s.client == nil {
		return false, ErrNoCredential
	}

	params := &resend.SendEmailRequest{
		From:    s.cfg.From,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return false, fmt.Errorf("send email: %w", err)
	}

	s.logger.Info("email sent", slog.String("to", to), slog.String("id", sent.Id))
	return true, nil
}
