package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hireloop/intake/internal/models"
)

// CreateApplication inserts a new application row. The UNIQUE index on
// triple_hash makes concurrent submissions of an identical triple collapse to
// a single row; the losing insert returns id 0 with no error.
func (r *SQLiteRepo) CreateApplication(ctx context.Context, a *models.Application) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("application is nil")
	}

	hash := models.TripleHash(a.Email, a.ResumeText, a.JobDescription)
	res, err := r.conn.Exec(ctx, `INSERT INTO applications (email, resume_text, job_description, score, email_status, triple_hash, created) VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT(triple_hash) DO NOTHING`, a.Email, a.ResumeText, a.JobDescription, a.Score, boolToInt(a.EmailStatus), hash, now())
	if err != nil {
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		// triple already recorded
		return 0, nil
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) FindExactApplication(ctx context.Context, email, resumeText, jobDescription string) (*models.Application, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, email, resume_text, job_description, score, email_status, created FROM applications WHERE email = ? AND resume_text = ? AND job_description = ? LIMIT 1`, email, resumeText, jobDescription)
	return scanApplication(row)
}

func (r *SQLiteRepo) FindApplicationByText(ctx context.Context, resumeText string) (*models.Application, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, email, resume_text, job_description, score, email_status, created FROM applications WHERE resume_text = ? LIMIT 1`, resumeText)
	return scanApplication(row)
}

func (r *SQLiteRepo) UpdateEmailStatus(ctx context.Context, email string, status bool) error {
	_, err := r.conn.Exec(ctx, `UPDATE applications SET email_status = ? WHERE email = ?`, boolToInt(status), email)
	return err
}

func scanApplication(row *sql.Row) (*models.Application, error) {
	var a models.Application
	var status int
	if err := row.Scan(&a.ID, &a.Email, &a.ResumeText, &a.JobDescription, &a.Score, &status, &a.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	a.EmailStatus = status != 0
	return &a, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
