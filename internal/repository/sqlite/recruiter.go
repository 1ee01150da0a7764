package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hireloop/intake/internal/models"
)

func (r *SQLiteRepo) CreateRecruiter(ctx context.Context, rec *models.Recruiter) (int64, error) {
	if rec == nil {
		return 0, fmt.Errorf("recruiter is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO recruiters (name, email, password_hash, updated) VALUES (?, ?, ?, ?)`, rec.Name, rec.Email, rec.PasswordHash, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetRecruiterByID(ctx context.Context, id int64) (*models.Recruiter, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, updated FROM recruiters WHERE id = ?`, id)
	return scanRecruiter(row)
}

func (r *SQLiteRepo) GetRecruiterByEmail(ctx context.Context, email string) (*models.Recruiter, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, updated FROM recruiters WHERE email = ?`, email)
	return scanRecruiter(row)
}

func scanRecruiter(row *sql.Row) (*models.Recruiter, error) {
	var rec models.Recruiter
	var pw sql.NullString
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Email, &pw, &rec.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if pw.Valid {
		rec.PasswordHash = pw.String
	}

	return &rec, nil
}
