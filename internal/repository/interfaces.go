package repository

import (
	"context"
	"time"

	"github.com/danielhaas/stempel/internal/domain"
)

// SessionRepo is the durable store for sessions. The timer upserts the
// single open session through Save and recovers it through GetActive;
// reporting reads finalized sessions through ListByMonth. ListAll, Delete
// and DeleteAll serve the administrative CLI surface only.
type SessionRepo interface {
	Save(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// GetActive returns the most recently started open session, or
	// (nil, nil) when every session is closed.
	GetActive(ctx context.Context) (*domain.Session, error)
	// ListByMonth returns sessions whose start falls within the given
	// calendar month in local time. Order is not guaranteed.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Session, error)
	ListAll(ctx context.Context) ([]*domain.Session, error)
	// Delete removes one session and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
	// DeleteAll removes every session and returns the removed count.
	DeleteAll(ctx context.Context) (int64, error)
}
