package repository

import (
	"context"

	"github.com/hireloop/intake/internal/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type ApplicationRepo interface {
	// CreateApplication inserts a new record. When a record with the same
	// (email, resume_text, job_description) triple already exists the insert
	// is a no-op and the returned id is 0.
	CreateApplication(ctx context.Context, a *models.Application) (int64, error)
	FindExactApplication(ctx context.Context, email, resumeText, jobDescription string) (*models.Application, error)
	FindApplicationByText(ctx context.Context, resumeText string) (*models.Application, error)
	UpdateEmailStatus(ctx context.Context, email string, status bool) error
}

type AuditRepo interface {
	AppendError(ctx context.Context, message string) (int64, error)
}

type RecruiterRepo interface {
	CreateRecruiter(ctx context.Context, rec *models.Recruiter) (int64, error)
	GetRecruiterByID(ctx context.Context, id int64) (*models.Recruiter, error)
	GetRecruiterByEmail(ctx context.Context, email string) (*models.Recruiter, error)
}
