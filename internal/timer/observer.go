package timer

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/danielhaas/stempel/internal/domain"
)

// EventKind names a successful timer transition.
type EventKind string

const (
	EventStarted EventKind = "started"
	EventPaused  EventKind = "paused"
	EventResumed EventKind = "resumed"
	EventEnded   EventKind = "ended"
)

// Event is emitted after every successful transition. Session is a
// detached snapshot; observers may hold it without racing the timer.
type Event struct {
	Kind    EventKind
	Session domain.Session
	At      time.Time
}

// EventObserver receives timer transition events. Observers run
// synchronously after the transition commits and must not call back into
// the timer.
type EventObserver interface {
	ObserveTransition(ctx context.Context, ev Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveTransition(context.Context, Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes transition events to the provided writer as
// structured log lines.
func NewLogObserver(w io.Writer) EventObserver {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveTransition(ctx context.Context, ev Event) {
	o.logger.InfoContext(ctx, "timer_transition",
		"event", string(ev.Kind),
		"session_id", ev.Session.ID,
		"at", ev.At.Format(time.RFC3339),
		"elapsed_seconds", ev.Session.TotalSecondsAt(ev.At),
	)
}
