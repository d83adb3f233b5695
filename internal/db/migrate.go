package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations in order. Statements are idempotent;
// ALTER TABLE duplicates from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Pauses and resumes are JSON arrays of RFC3339 timestamps. The pair
	// count never differs by more than one; the store does not enforce
	// ordering, the timer does.
	`CREATE TABLE IF NOT EXISTS sessions (
		id            TEXT PRIMARY KEY,
		start         TEXT NOT NULL,
		pauses        TEXT NOT NULL DEFAULT '[]',
		resumes       TEXT NOT NULL DEFAULT '[]',
		end_time      TEXT,
		total_seconds INTEGER NOT NULL DEFAULT 0
		              CHECK(total_seconds >= 0)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_start ON sessions(start)`,

	// At most one open session exists; the partial index keeps the
	// recovery lookup cheap regardless of history size.
	`CREATE INDEX IF NOT EXISTS idx_sessions_open ON sessions(end_time) WHERE end_time IS NULL`,
}
