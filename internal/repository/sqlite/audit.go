package sqlite

import (
	"context"
	"fmt"
)

// AppendError writes an audit entry. The error_logs table is append-only; no
// update or delete paths exist.
func (r *SQLiteRepo) AppendError(ctx context.Context, message string) (int64, error) {
	if message == "" {
		return 0, fmt.Errorf("message is empty")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO error_logs (error_message, created) VALUES (?, ?)`, message, now())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}
