package report

import (
	"errors"
	"sort"
	"time"

	"github.com/danielhaas/stempel/internal/domain"
)

// ErrInvalidPeriod is returned for a month outside 1-12.
var ErrInvalidPeriod = errors.New("month must be between 1 and 12")

// regularSecondsPerWeek is the weekly threshold above which time counts
// as overtime. Applied per week, never across weeks.
const regularSecondsPerWeek int64 = 40 * 3600

// Monthly computes the summary for one calendar month from a set of
// finalized sessions. A session is attributed to the day, week and month
// containing its start in local time; it is never split across a
// midnight or month boundary. Open sessions are ignored. Empty input
// yields an all-zero summary with empty breakdowns.
//
// All accumulation stays in integer seconds; hours become floating point
// only at the final division.
func Monthly(sessions []*domain.Session, year int, month time.Month) (*domain.MonthlySummary, error) {
	if month < time.January || month > time.December {
		return nil, ErrInvalidPeriod
	}

	attributed := make([]*domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.End == nil {
			continue
		}
		start := s.Start.In(time.Local)
		if start.Year() == year && start.Month() == month {
			attributed = append(attributed, s)
		}
	}
	sort.Slice(attributed, func(i, j int) bool {
		return attributed[i].Start.Before(attributed[j].Start)
	})

	summary := &domain.MonthlySummary{
		Year:            year,
		Month:           month,
		SessionCount:    len(attributed),
		DailyBreakdown:  []domain.DailySummary{},
		WeeklyBreakdown: []domain.WeeklySummary{},
	}

	for _, s := range attributed {
		summary.TotalSeconds += s.TotalSeconds
		if s.TotalSeconds > summary.LongestSessionSeconds {
			summary.LongestSessionSeconds = s.TotalSeconds
		}
	}

	summary.DailyBreakdown = Daily(attributed)
	summary.WeeklyBreakdown = weekly(summary.DailyBreakdown)

	for _, w := range summary.WeeklyBreakdown {
		summary.RegularHours += w.RegularHours
		summary.OvertimeHours += w.OvertimeHours
	}

	return summary, nil
}

// Daily groups sessions by the calendar day of their start in local time.
// Days without sessions are omitted; the result is chronologically
// ascending.
func Daily(sessions []*domain.Session) []domain.DailySummary {
	byDay := make(map[time.Time]*domain.DailySummary)
	for _, s := range sessions {
		if s.End == nil {
			continue
		}
		day := dateOf(s.Start.In(time.Local))
		d, ok := byDay[day]
		if !ok {
			d = &domain.DailySummary{Date: day}
			byDay[day] = d
		}
		d.TotalSeconds += s.TotalSeconds
		d.SessionCount++
	}

	days := make([]domain.DailySummary, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

// weekly groups daily totals into contiguous 7-day spans anchored at the
// first date with a session. These are not ISO calendar weeks: the anchor
// is data-driven, and a span that arithmetically crosses the month
// boundary still belongs wholly to the month that anchored it.
func weekly(days []domain.DailySummary) []domain.WeeklySummary {
	if len(days) == 0 {
		return []domain.WeeklySummary{}
	}

	anchor := days[0].Date

	type bucket struct {
		seconds int64
		count   int
	}
	buckets := make(map[int]*bucket)
	maxIdx := 0
	for _, d := range days {
		idx := daysBetween(anchor, d.Date) / 7
		b, ok := buckets[idx]
		if !ok {
			b = &bucket{}
			buckets[idx] = b
		}
		b.seconds += d.TotalSeconds
		b.count += d.SessionCount
		if idx > maxIdx {
			maxIdx = idx
		}
	}

	weeks := make([]domain.WeeklySummary, 0, len(buckets))
	for idx := 0; idx <= maxIdx; idx++ {
		b, ok := buckets[idx]
		if !ok {
			continue // week gap: no sessions in this 7-day span
		}
		regular := b.seconds
		if regular > regularSecondsPerWeek {
			regular = regularSecondsPerWeek
		}
		overtime := b.seconds - regular

		start := anchor.AddDate(0, 0, idx*7)
		weeks = append(weeks, domain.WeeklySummary{
			WeekStart:     start,
			WeekEnd:       start.AddDate(0, 0, 6),
			TotalHours:    float64(b.seconds) / 3600,
			RegularHours:  float64(regular) / 3600,
			OvertimeHours: float64(overtime) / 3600,
			SessionCount:  b.count,
		})
	}
	return weeks
}

// dateOf truncates a local timestamp to its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b. Rounding absorbs DST
// shifts between local midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours()/24 + 0.5)
}
