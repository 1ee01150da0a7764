package sqlite

import (
	"log/slog"
	"time"

	"github.com/hireloop/intake/internal/db"
	"github.com/hireloop/intake/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.ApplicationRepo = (*SQLiteRepo)(nil)
var _ repository.AuditRepo = (*SQLiteRepo)(nil)
var _ repository.RecruiterRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
