package report

import (
	"context"
	"fmt"
	"time"

	"github.com/danielhaas/stempel/internal/domain"
	"github.com/danielhaas/stempel/internal/repository"
)

// Service fetches a month of finalized sessions and aggregates them.
// It holds no state of its own; summaries are recomputed on every call,
// and concurrent calls need no coordination. The repository fetch is the
// only blocking step.
type Service struct {
	sessions repository.SessionRepo
}

func NewService(sessions repository.SessionRepo) *Service {
	return &Service{sessions: sessions}
}

// MonthlySummary returns the report for the given calendar month.
// A fetch failure is reported distinctly from the validation error so
// callers can tell "report temporarily unavailable" from misuse.
func (s *Service) MonthlySummary(ctx context.Context, year int, month time.Month) (*domain.MonthlySummary, error) {
	if month < time.January || month > time.December {
		return nil, ErrInvalidPeriod
	}
	sessions, err := s.sessions.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("fetching sessions for %d-%02d: %w", year, month, err)
	}
	return Monthly(sessions, year, month)
}
