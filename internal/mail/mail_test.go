package mail_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hireloop/intake/internal/config"
	"github.com/hireloop/intake/internal/mail"
)

func TestSend_WithoutAPIKeyFailsClosed(t *testing.T) {
	s := mail.NewResendSender(config.MailConfig{From: "Intake <onboarding@resend.dev>"}, nil)

	ok, err := s.Send(context.Background(), "jane@co.com", "subject", "body")
	if ok {
		t.Fatalf("expected send to fail without credentials")
	}
	if !errors.Is(err, mail.ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential got %v", err)
	}
}
