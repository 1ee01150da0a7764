package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hireloop/intake/internal/audit"
	"github.com/hireloop/intake/internal/pipeline"
	"github.com/hireloop/intake/pkg/repository/mock"
)

// fakeSender records outgoing invitations.
type fakeSender struct {
	sent []sentMail
	ok   bool
	err  error
}

type sentMail struct {
	to, subject, body string
}

func (f *fakeSender) Send(ctx context.Context, to, subject, body string) (bool, error) {
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	if f.err != nil {
		return false, f.err
	}
	return f.ok, nil
}

func TestDecide_BelowThresholdNoSend(t *testing.T) {
	sender := &fakeSender{ok: true}
	apps := mock.NewApplicationStore()
	d := pipeline.NewDecider(sender, apps, audit.New(mock.NewAuditLog(), nil), "https://example.com/book")

	status, msg := d.Decide(context.Background(), "jane@co.com", 69.99)
	if status {
		t.Fatalf("expected email_status false below threshold")
	}
	if msg != "Candidate did not meet the score threshold." {
		t.Fatalf("unexpected message %q", msg)
	}
	if len(sender.sent) != 0 {
		t.Fatalf("expected no invitation sends got %d", len(sender.sent))
	}
	if len(apps.StatusUpdates) != 0 {
		t.Fatalf("expected no status updates got %v", apps.StatusUpdates)
	}
}

func TestDecide_AtThresholdSendsInvitation(t *testing.T) {
	sender := &fakeSender{ok: true}
	apps := mock.NewApplicationStore()
	d := pipeline.NewDecider(sender, apps, audit.New(mock.NewAuditLog(), nil), "https://example.com/book")

	status, msg := d.Decide(context.Background(), "jane@co.com", 70.0)
	if !status {
		t.Fatalf("expected email_status true at threshold")
	}
	if msg != "Candidate passed eligibility. Invitation sent." {
		t.Fatalf("unexpected message %q", msg)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected exactly one send got %d", len(sender.sent))
	}

	mail := sender.sent[0]
	if mail.to != "jane@co.com" {
		t.Fatalf("unexpected recipient %q", mail.to)
	}
	if mail.subject != "Interview Invitation - Next Steps" {
		t.Fatalf("unexpected subject %q", mail.subject)
	}
	if !strings.Contains(mail.body, "Match Score: 70%") {
		t.Fatalf("expected score in body got %q", mail.body)
	}
	if !strings.Contains(mail.body, "https://example.com/book") {
		t.Fatalf("expected booking link in body got %q", mail.body)
	}

	if len(apps.StatusUpdates) != 1 || apps.StatusUpdates[0] != "jane@co.com" {
		t.Fatalf("expected status update for jane@co.com got %v", apps.StatusUpdates)
	}
}

func TestDecide_FractionalScoreInBody(t *testing.T) {
	sender := &fakeSender{ok: true}
	d := pipeline.NewDecider(sender, mock.NewApplicationStore(), audit.New(mock.NewAuditLog(), nil), "https://example.com/book")

	d.Decide(context.Background(), "jane@co.com", 82.5)
	if len(sender.sent) != 1 {
		t.Fatalf("expected one send got %d", len(sender.sent))
	}
	if !strings.Contains(sender.sent[0].body, "Match Score: 82.5%") {
		t.Fatalf("expected 82.5 in body got %q", sender.sent[0].body)
	}
}

func TestDecide_SendFailureReportsFailedInvite(t *testing.T) {
	sender := &fakeSender{err: errors.New("provider down")}
	apps := mock.NewApplicationStore()
	log := mock.NewAuditLog()
	d := pipeline.NewDecider(sender, apps, audit.New(log, nil), "https://example.com/book")

	status, msg := d.Decide(context.Background(), "jane@co.com", 90)
	if status {
		t.Fatalf("expected email_status false on send failure")
	}
	if msg != "Candidate passed eligibility. Failed to send invitation." {
		t.Fatalf("unexpected message %q", msg)
	}
	if len(apps.StatusUpdates) != 0 {
		t.Fatalf("expected no status update on send failure got %v", apps.StatusUpdates)
	}
	if len(log.Messages) != 1 {
		t.Fatalf("expected 1 audit entry got %d", len(log.Messages))
	}
}

func TestDecide_StatusUpdateFailureStillReportsSent(t *testing.T) {
	sender := &fakeSender{ok: true}
	apps := mock.NewApplicationStore()
	apps.UpdateErr = errors.New("disk full")
	log := mock.NewAuditLog()
	d := pipeline.NewDecider(sender, apps, audit.New(log, nil), "https://example.com/book")

	status, msg := d.Decide(context.Background(), "jane@co.com", 75)
	if !status {
		t.Fatalf("expected email_status true: invitation was delivered")
	}
	if msg != "Candidate passed eligibility. Invitation sent." {
		t.Fatalf("unexpected message %q", msg)
	}
	if len(log.Messages) != 1 {
		t.Fatalf("expected 1 audit entry got %d", len(log.Messages))
	}
}
