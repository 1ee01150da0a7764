package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hireloop/intake/internal/audit"
	"github.com/hireloop/intake/internal/models"
	"github.com/hireloop/intake/internal/pipeline"
	"github.com/hireloop/intake/pkg/repository/mock"
)

func TestFindByResume(t *testing.T) {
	apps := mock.NewApplicationStore()
	log := mock.NewAuditLog()
	m := pipeline.NewMatcher(apps, audit.New(log, nil))
	ctx := context.Background()

	if got := m.FindByResume(ctx, "resume"); got != nil {
		t.Fatalf("expected nil on miss got %#v", got)
	}

	if _, err := apps.CreateApplication(ctx, &models.Application{Email: "a@b.c", ResumeText: "resume", JobDescription: "job", Score: 42}); err != nil {
		t.Fatalf("CreateApplication error: %v", err)
	}

	got := m.FindByResume(ctx, "resume")
	if got == nil || got.Email != "a@b.c" {
		t.Fatalf("FindByResume wrong result: %#v", got)
	}
}

func TestFindByResume_StorageFaultIsMiss(t *testing.T) {
	apps := mock.NewApplicationStore()
	apps.FindErr = errors.New("storage flake")
	log := mock.NewAuditLog()
	m := pipeline.NewMatcher(apps, audit.New(log, nil))

	if got := m.FindByResume(context.Background(), "resume"); got != nil {
		t.Fatalf("expected nil on storage fault got %#v", got)
	}
	if len(log.Messages) != 1 {
		t.Fatalf("expected 1 audit entry got %v", log.Messages)
	}
}
