package pipeline

import (
	"context"

	"github.com/hireloop/intake/internal/audit"
	"github.com/hireloop/intake/internal/models"
	"github.com/hireloop/intake/pkg/repository"
)

// Matcher answers whether an identical application has already been recorded.
// Lookups are byte-for-byte: whitespace or casing differences are distinct
// inputs. A storage fault is audited and treated as a miss, so a dedupe
// failure never blocks a legitimate new application.
type Matcher struct {
	apps  repository.ApplicationRepo
	audit *audit.Trail
}

func NewMatcher(apps repository.ApplicationRepo, trail *audit.Trail) *Matcher {
	return &Matcher{apps: apps, audit: trail}
}

// FindExact returns the record for the exact triple, or nil when absent.
func (m *Matcher) FindExact(ctx context.Context, email, resumeText, jobDescription string) *models.Application {
	app, err := m.apps.FindExactApplication(ctx, email, resumeText, jobDescription)
	if err != nil {
		m.audit.Recordf(ctx, "error finding exact application match: %v", err)
		return nil
	}
	return app
}

// FindByResume answers "has this resume ever been seen", independent of job
// description. It serves external query tooling only and plays no role in the
// core decision path.
func (m *Matcher) FindByResume(ctx context.Context, resumeText string) *models.Application {
	app, err := m.apps.FindApplicationByText(ctx, resumeText)
	if err != nil {
		m.audit.Recordf(ctx, "error finding application by text: %v", err)
		return nil
	}
	return app
}
