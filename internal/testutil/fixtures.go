package testutil

import (
	"time"

	"github.com/danielhaas/stempel/internal/domain"
	"github.com/google/uuid"
)

// SessionOption mutates a fixture session before it is returned.
type SessionOption func(*domain.Session)

// WithID overrides the generated session ID.
func WithID(id string) SessionOption {
	return func(s *domain.Session) {
		s.ID = id
	}
}

// WithPause appends one pause/resume pair.
func WithPause(pause, resume time.Time) SessionOption {
	return func(s *domain.Session) {
		s.Pauses = append(s.Pauses, pause)
		s.Resumes = append(s.Resumes, resume)
	}
}

// WithOpenPause appends a pause with no matching resume.
func WithOpenPause(pause time.Time) SessionOption {
	return func(s *domain.Session) {
		s.Pauses = append(s.Pauses, pause)
	}
}

// NewOpenSession builds an in-progress session started at the given time.
func NewOpenSession(start time.Time, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		ID:    uuid.New().String(),
		Start: start,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewClosedSession builds a finalized session running from start for the
// given duration, with TotalSeconds derived from the pause log the same
// way the timer derives it at end.
func NewClosedSession(start time.Time, d time.Duration, opts ...SessionOption) *domain.Session {
	s := NewOpenSession(start, opts...)
	end := start.Add(d)
	s.End = &end
	s.TotalSeconds = s.TotalSecondsAt(end)
	return s
}
