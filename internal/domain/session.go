package domain

import "time"

// Session is one tracked work interval. Pauses and Resumes are append-only
// logs of timestamps; the session is fully reconstructable from them.
// A session with a non-nil End is terminal and never mutated again.
type Session struct {
	ID           string
	Start        time.Time
	Pauses       []time.Time
	Resumes      []time.Time
	End          *time.Time
	TotalSeconds int64
}

// IsActive reports whether the session is still open.
func (s *Session) IsActive() bool {
	return s.End == nil
}

// IsPaused reports whether the session is open with an unresumed pause.
func (s *Session) IsPaused() bool {
	return s.IsActive() && len(s.Pauses) > len(s.Resumes)
}

// TotalSecondsAt computes the accounted seconds of the session as of now:
// wall-clock time since Start minus every paused interval. An open pause
// (or, for an ended-while-paused session, the final pause) is closed by
// the end boundary. Never negative.
func (s *Session) TotalSecondsAt(now time.Time) int64 {
	end := now
	if s.End != nil {
		end = *s.End
	}
	total := int64(end.Sub(s.Start).Seconds())

	for i, pause := range s.Pauses {
		pauseEnd := end
		if i < len(s.Resumes) {
			pauseEnd = s.Resumes[i]
		}
		total -= int64(pauseEnd.Sub(pause).Seconds())
	}

	if total < 0 {
		return 0
	}
	return total
}

// Clone returns a deep copy, so holders of a snapshot never observe
// later appends to the pause/resume logs.
func (s *Session) Clone() *Session {
	c := *s
	c.Pauses = append([]time.Time(nil), s.Pauses...)
	c.Resumes = append([]time.Time(nil), s.Resumes...)
	if s.End != nil {
		end := *s.End
		c.End = &end
	}
	return &c
}
