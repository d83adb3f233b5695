package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielhaas/stempel/internal/db"
	"github.com/danielhaas/stempel/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
// Timestamps are stored as RFC3339 UTC strings so string comparison
// matches chronological order; pause/resume logs are JSON arrays.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo on the given
// database handle or transaction.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

const sessionColumns = `id, start, pauses, resumes, end_time, total_seconds`

func (r *SQLiteSessionRepo) Save(ctx context.Context, s *domain.Session) error {
	pauses, err := marshalTimes(s.Pauses)
	if err != nil {
		return fmt.Errorf("encoding pauses: %w", err)
	}
	resumes, err := marshalTimes(s.Resumes)
	if err != nil {
		return fmt.Errorf("encoding resumes: %w", err)
	}

	var end any
	if s.End != nil {
		end = s.End.UTC().Format(time.RFC3339)
	}

	query := `INSERT OR REPLACE INTO sessions (id, start, pauses, resumes, end_time, total_seconds)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.Start.UTC().Format(time.RFC3339),
		pauses,
		resumes,
		end,
		s.TotalSeconds,
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) GetActive(ctx context.Context) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE end_time IS NULL ORDER BY start DESC LIMIT 1`
	s, err := scanSession(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) ListByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Session, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)

	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE start >= ? AND start < ? ORDER BY start`
	rows, err := r.db.QueryContext(ctx, query,
		from.UTC().Format(time.RFC3339),
		to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by month: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListAll(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY start DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteSessionRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions`)
	if err != nil {
		return 0, fmt.Errorf("deleting all sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows affected: %w", err)
	}
	return n, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var s domain.Session
	var startStr, pausesJSON, resumesJSON string
	var endStr sql.NullString

	if err := row.Scan(&s.ID, &startStr, &pausesJSON, &resumesJSON, &endStr, &s.TotalSeconds); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	var err error
	s.Start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start: %w", err)
	}
	s.Pauses, err = unmarshalTimes(pausesJSON)
	if err != nil {
		return nil, fmt.Errorf("parsing pauses: %w", err)
	}
	s.Resumes, err = unmarshalTimes(resumesJSON)
	if err != nil {
		return nil, fmt.Errorf("parsing resumes: %w", err)
	}
	if endStr.Valid && endStr.String != "" {
		end, err := time.Parse(time.RFC3339, endStr.String)
		if err != nil {
			return nil, fmt.Errorf("parsing end: %w", err)
		}
		s.End = &end
	}

	return &s, nil
}

func scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func marshalTimes(ts []time.Time) (string, error) {
	strs := make([]string, len(ts))
	for i, t := range ts {
		strs[i] = t.UTC().Format(time.RFC3339)
	}
	b, err := json.Marshal(strs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalTimes(s string) ([]time.Time, error) {
	var strs []string
	if err := json.Unmarshal([]byte(s), &strs); err != nil {
		return nil, err
	}
	if len(strs) == 0 {
		return nil, nil
	}
	ts := make([]time.Time, len(strs))
	for i, str := range strs {
		t, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}
	return ts, nil
}
