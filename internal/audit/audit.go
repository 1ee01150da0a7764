package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hireloop/intake/pkg/repository"
)

// Trail is the append-only error side channel. Every fault the pipeline
// encounters, whether it aborts the run or degrades it, goes through here.
// Recording never fails outward: a broken audit store must not take the
// pipeline down with it.
type Trail struct {
	repo   repository.AuditRepo
	logger *slog.Logger
}

func New(repo repository.AuditRepo, logger *slog.Logger) *Trail {
	if logger == nil {
		logger = slog.Default()
	}
	return &Trail{repo: repo, logger: logger}
}

// Record appends a message to the audit log and mirrors it to the logger.
func (t *Trail) Record(ctx context.Context, message string) {
	t.logger.Error("audit", slog.String("message", message))
	if t.repo == nil {
		return
	}
	if _, err := t.repo.AppendError(ctx, message); err != nil {
		t.logger.Warn("audit append failed", slog.Any("err", err), slog.String("message", message))
	}
}

// Recordf is Record with formatting.
func (t *Trail) Recordf(ctx context.Context, format string, args ...any) {
	t.Record(ctx, fmt.Sprintf(format, args...))
}
