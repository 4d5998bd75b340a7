package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent and re-run on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		path       TEXT PRIMARY KEY,
		mtime_ns   INTEGER NOT NULL,
		size       INTEGER NOT NULL,
		scanned_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		path         TEXT NOT NULL REFERENCES documents(path) ON DELETE CASCADE,
		seq          INTEGER NOT NULL,
		checked      INTEGER NOT NULL,
		text         TEXT NOT NULL,
		annotation   TEXT NOT NULL,
		has_schedule INTEGER NOT NULL,
		start_date   TEXT,
		due_date     TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_path_seq ON tasks(path, seq)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
