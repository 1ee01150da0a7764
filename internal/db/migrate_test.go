package db_test

import (
	"context"
	"testing"

	dbfs "github.com/hireloop/intake/db"
	dbpkg "github.com/hireloop/intake/internal/db"
)

func TestMigrate_AppliesSchema(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, "file:migrate_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer d.Close()

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("Migrate error: %v", err)
	}

	// schema should be usable
	if _, err := d.Exec(ctx, `INSERT INTO applications (email, resume_text, job_description, score, email_status, triple_hash, created) VALUES ('a@b.c', 'r', 'j', 50.0, 0, 'h1', 0)`); err != nil {
		t.Fatalf("insert into applications: %v", err)
	}
	if _, err := d.Exec(ctx, `INSERT INTO error_logs (error_message, created) VALUES ('boom', 0)`); err != nil {
		t.Fatalf("insert into error_logs: %v", err)
	}
	if _, err := d.Exec(ctx, `INSERT INTO recruiters (name, email, password_hash, updated) VALUES ('n', 'r@x.y', 'h', 0)`); err != nil {
		t.Fatalf("insert into recruiters: %v", err)
	}

	// duplicate triple hash must be rejected by the unique index
	if _, err := d.Exec(ctx, `INSERT INTO applications (email, resume_text, job_description, score, email_status, triple_hash, created) VALUES ('a@b.c', 'r', 'j', 50.0, 0, 'h1', 0)`); err == nil {
		t.Fatalf("expected unique constraint violation on triple_hash")
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, "file:migrate_idem?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer d.Close()

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("first Migrate error: %v", err)
	}
	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("second Migrate error: %v", err)
	}

	var count int
	row := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`)
	if err := row.Scan(&count); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 recorded migration got %d", count)
	}
}
