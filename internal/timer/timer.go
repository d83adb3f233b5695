package timer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/danielhaas/stempel/internal/domain"
	"github.com/danielhaas/stempel/internal/repository"
	"github.com/google/uuid"
)

// Clock supplies the current time. Injected so tests control "now".
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Timer is the single-session lifecycle state machine: Idle → Running ⇄
// Paused → Idle. At most one open session exists; one mutex guards every
// transition and state read, so a transition is either fully applied or
// rejected with no visible partial mutation.
//
// The open session is persisted on every transition. A storage failure
// does not roll back the in-memory transition: the caller gets the error
// and owns the retry (End in particular: the session is already logically
// ended by then).
type Timer struct {
	mu        sync.Mutex
	current   *domain.Session
	store     repository.SessionRepo
	clock     Clock
	observers []EventObserver
}

// New creates a Timer in the Idle state. Observers receive an Event after
// every successful transition.
func New(store repository.SessionRepo, clock Clock, observers ...EventObserver) *Timer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timer{store: store, clock: clock, observers: observers}
}

// Recover adopts an open session left behind by a previous process, so a
// crash while Running or Paused resumes where it left off. No-op when the
// store has no open session or the timer is already active.
func (t *Timer) Recover(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current != nil {
		return nil
	}
	s, err := t.store.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("recovering active session: %w", err)
	}
	t.current = s
	return nil
}

// Start opens a new session. Fails with ErrAlreadyActive while a session
// is open. The session is persisted before the timer adopts it, so a
// failed save leaves the timer Idle.
func (t *Timer) Start(ctx context.Context) (*domain.Session, error) {
	t.mu.Lock()

	if t.current != nil {
		t.mu.Unlock()
		return nil, ErrAlreadyActive
	}

	s := &domain.Session{
		ID:    uuid.New().String(),
		Start: t.clock.Now(),
	}
	if err := t.store.Save(ctx, s); err != nil {
		t.mu.Unlock()
		return nil, fmt.Errorf("saving new session: %w", err)
	}
	t.current = s

	snap := s.Clone()
	t.mu.Unlock()

	t.emit(ctx, Event{Kind: EventStarted, Session: *snap, At: snap.Start})
	return snap, nil
}

// Pause appends a pause timestamp. Fails with ErrNotRunning from Idle or
// Paused.
func (t *Timer) Pause(ctx context.Context) (*domain.Session, error) {
	t.mu.Lock()

	if t.current == nil || t.current.IsPaused() {
		t.mu.Unlock()
		return nil, ErrNotRunning
	}

	now := t.clock.Now()
	t.current.Pauses = append(t.current.Pauses, now)
	snap := t.current.Clone()
	err := t.store.Save(ctx, t.current)
	t.mu.Unlock()

	if err != nil {
		return snap, fmt.Errorf("saving paused session: %w", err)
	}
	t.emit(ctx, Event{Kind: EventPaused, Session: *snap, At: now})
	return snap, nil
}

// Resume closes the open pause interval. Fails with ErrNotPaused from
// Idle or Running.
func (t *Timer) Resume(ctx context.Context) (*domain.Session, error) {
	t.mu.Lock()

	if t.current == nil || !t.current.IsPaused() {
		t.mu.Unlock()
		return nil, ErrNotPaused
	}

	now := t.clock.Now()
	t.current.Resumes = append(t.current.Resumes, now)
	snap := t.current.Clone()
	err := t.store.Save(ctx, t.current)
	t.mu.Unlock()

	if err != nil {
		return snap, fmt.Errorf("saving resumed session: %w", err)
	}
	t.emit(ctx, Event{Kind: EventResumed, Session: *snap, At: now})
	return snap, nil
}

// End finalizes the open session and returns the timer to Idle. Ending
// while paused excludes the trailing paused interval without appending a
// synthetic resume. Fails with ErrNotActive from Idle. The finalized
// session is returned even when the save fails; the in-memory transition
// is not rolled back and the caller decides how to re-attempt persistence.
func (t *Timer) End(ctx context.Context) (*domain.Session, error) {
	t.mu.Lock()

	if t.current == nil {
		t.mu.Unlock()
		return nil, ErrNotActive
	}

	now := t.clock.Now()
	s := t.current
	s.End = &now
	s.TotalSeconds = s.TotalSecondsAt(now)
	t.current = nil

	snap := s.Clone()
	err := t.store.Save(ctx, s)
	t.mu.Unlock()

	if err != nil {
		return snap, fmt.Errorf("saving ended session: %w", err)
	}
	t.emit(ctx, Event{Kind: EventEnded, Session: *snap, At: now})
	return snap, nil
}

// State returns a snapshot of the timer. ElapsedSeconds is computed live
// from the pause/resume logs and equals what TotalSeconds would be if End
// were called at this instant.
func (t *Timer) State() domain.TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return domain.TimerState{}
	}
	return domain.TimerState{
		IsRunning:        true,
		IsPaused:         t.current.IsPaused(),
		CurrentSessionID: t.current.ID,
		ElapsedSeconds:   t.current.TotalSecondsAt(t.clock.Now()),
	}
}

func (t *Timer) emit(ctx context.Context, ev Event) {
	for _, obs := range t.observers {
		if obs != nil {
			obs.ObserveTransition(ctx, ev)
		}
	}
}
