package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Migrate applies the SQL migrations found in the embedded filesystem. It
// creates a `schema_migrations` table to track applied migrations and applies
// any SQL files under `migrations/` that have not yet been recorded.
func Migrate(ctx context.Context, d *DB, migrationFS embed.FS) error {
	if _, err := d.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}
	migDir := "migrations"

	entries, err := fs.ReadDir(migrationFS, migDir)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	// collect .sql files and sort
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(strings.ToLower(name), ".sql") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	for _, fname := range files {
		// use filename (without extension) as migration version key
		version := strings.TrimSuffix(fname, path.Ext(fname))

		var count int
		row := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, version)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("scan migration applied count: %w", err)
		}
		if count > 0 {
			// already applied
			continue
		}

		p := path.Join(migDir, fname)
		b, err := fs.ReadFile(migrationFS, p)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", fname, err)
		}
		if _, err := d.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("exec migration %s: %w", fname, err)
		}

		if _, err := d.Exec(ctx, `INSERT INTO schema_migrations (version, applied) VALUES (?, strftime('%s','now'))`, version); err != nil {
			return fmt.Errorf("record migration %s: %w", fname, err)
		}
	}

	return nil
}
