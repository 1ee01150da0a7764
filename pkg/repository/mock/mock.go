package mock

import (
	"context"
	"sync"

	"github.com/hireloop/intake/internal/models"
)

// Test helpers and mocks for the repository contracts.

// ApplicationStore is an in-memory ApplicationRepo with error injection.
type ApplicationStore struct {
	mu sync.Mutex

	Apps          []*models.Application
	StatusUpdates []string

	CreateErr error
	FindErr   error
	UpdateErr error
}

func NewApplicationStore() *ApplicationStore {
	return &ApplicationStore{}
}

func (s *ApplicationStore) CreateApplication(ctx context.Context, a *models.Application) (int64, error) {
	if s.CreateErr != nil {
		return 0, s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	hash := models.TripleHash(a.Email, a.ResumeText, a.JobDescription)
	for _, existing := range s.Apps {
		if models.TripleHash(existing.Email, existing.ResumeText, existing.JobDescription) == hash {
			return 0, nil
		}
	}
	cp := *a
	cp.ID = int64(len(s.Apps) + 1)
	s.Apps = append(s.Apps, &cp)
	return cp.ID, nil
}

func (s *ApplicationStore) FindExactApplication(ctx context.Context, email, resumeText, jobDescription string) (*models.Application, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.Apps {
		if a.Email == email && a.ResumeText == resumeText && a.JobDescription == jobDescription {
			return a, nil
		}
	}
	return nil, nil
}

func (s *ApplicationStore) FindApplicationByText(ctx context.Context, resumeText string) (*models.Application, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.Apps {
		if a.ResumeText == resumeText {
			return a, nil
		}
	}
	return nil, nil
}

func (s *ApplicationStore) UpdateEmailStatus(ctx context.Context, email string, status bool) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.StatusUpdates = append(s.StatusUpdates, email)
	for _, a := range s.Apps {
		if a.Email == email {
			a.EmailStatus = status
		}
	}
	return nil
}

// AuditLog captures appended messages for assertions.
type AuditLog struct {
	mu sync.Mutex

	Messages  []string
	AppendErr error
}

func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

func (l *AuditLog) AppendError(ctx context.Context, message string) (int64, error) {
	if l.AppendErr != nil {
		return 0, l.AppendErr
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.Messages = append(l.Messages, message)
	return int64(len(l.Messages)), nil
}

// RecruiterStore is an in-memory RecruiterRepo.
type RecruiterStore struct {
	mu sync.Mutex

	Stored    *models.Recruiter
	CreateErr error
}

func (s *RecruiterStore) CreateRecruiter(ctx context.Context, rec *models.Recruiter) (int64, error) {
	if s.CreateErr != nil {
		return 0, s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Stored = &models.Recruiter{ID: 1, Name: rec.Name, Email: rec.Email, PasswordHash: rec.PasswordHash}
	return 1, nil
}

func (s *RecruiterStore) GetRecruiterByID(ctx context.Context, id int64) (*models.Recruiter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Stored != nil && s.Stored.ID == id {
		return s.Stored, nil
	}
	return nil, nil
}

func (s *RecruiterStore) GetRecruiterByEmail(ctx context.Context, email string) (*models.Recruiter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Stored != nil && s.Stored.Email == email {
		return s.Stored, nil
	}
	return nil, nil
}
