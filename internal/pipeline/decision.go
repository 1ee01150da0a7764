package pipeline

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hireloop/intake/internal/audit"
	"github.com/hireloop/intake/pkg/repository"
)

// EligibilityThreshold is the fixed score cutoff gating the invitation side
// effect. No hysteresis, no per-job customization.
const EligibilityThreshold = 70.0

const (
	msgBelowThreshold = "Candidate did not meet the score threshold."
	msgInvited        = "Candidate passed eligibility. Invitation sent."
	msgInviteFailed   = "Candidate passed eligibility. Failed to send invitation."
)

const inviteSubject = "Interview Invitation - Next Steps"

// EmailSender is the external email delivery contract.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) (bool, error)
}

// Decider applies the threshold policy and coordinates the invitation side
// effect. Exactly one invitation attempt is made per run; a failed send is
// not retried.
type Decider struct {
	sender      EmailSender
	apps        repository.ApplicationRepo
	audit       *audit.Trail
	bookingLink string
}

func NewDecider(sender EmailSender, apps repository.ApplicationRepo, trail *audit.Trail, bookingLink string) *Decider {
	return &Decider{sender: sender, apps: apps, audit: trail, bookingLink: bookingLink}
}

// Decide gates on the threshold and, for eligible scores, dispatches the
// invitation and flips the stored email status before reporting success.
func (d *Decider) Decide(ctx context.Context, email string, score float64) (emailStatus bool, message string) {
	if score < EligibilityThreshold {
		return false, msgBelowThreshold
	}

	body := fmt.Sprintf(
		"Congratulations! Based on your application review (Match Score: %s%%), please schedule your interview using the link below:\n%s",
		strconv.FormatFloat(score, 'f', -1, 64), d.bookingLink)

	ok, err := d.sender.Send(ctx, email, inviteSubject, body)
	if err != nil {
		d.audit.Recordf(ctx, "error sending email notification: %v", err)
	}
	if !ok {
		return false, msgInviteFailed
	}

	if err := d.apps.UpdateEmailStatus(ctx, email, true); err != nil {
		d.audit.Recordf(ctx, "error updating email status: %v", err)
	}

	return true, msgInvited
}
