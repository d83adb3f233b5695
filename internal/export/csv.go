// Package export writes sessions and monthly summaries as CSV. The core
// hands values over and does not depend on export outcomes.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/danielhaas/stempel/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

// WriteSession writes one session's detail and its pause/resume history.
func WriteSession(w io.Writer, s *domain.Session) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{"session_id", s.ID},
		{"start", s.Start.Local().Format(timestampLayout)},
	}
	if s.End != nil {
		records = append(records, []string{"end", s.End.Local().Format(timestampLayout)})
	}
	records = append(records, []string{"total_time", FormatDuration(s.TotalSeconds)})

	if len(s.Pauses) > 0 {
		records = append(records, []string{}, []string{"event", "time"})
		for i, pause := range s.Pauses {
			records = append(records, []string{"paused", pause.Local().Format(timestampLayout)})
			if i < len(s.Resumes) {
				records = append(records, []string{"resumed", s.Resumes[i].Local().Format(timestampLayout)})
			}
		}
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing session csv: %w", err)
	}
	return nil
}

// WriteMonthlySummary writes monthly totals followed by the daily and
// weekly breakdowns.
func WriteMonthlySummary(w io.Writer, m *domain.MonthlySummary) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{"month", fmt.Sprintf("%d-%02d", m.Year, int(m.Month))},
		{"total_sessions", strconv.Itoa(m.SessionCount)},
		{"total_time", FormatDuration(m.TotalSeconds)},
		{"regular_hours", formatHours(m.RegularHours)},
		{"overtime_hours", formatHours(m.OvertimeHours)},
		{"longest_session", FormatDuration(m.LongestSessionSeconds)},
	}

	if len(m.DailyBreakdown) > 0 {
		records = append(records, []string{}, []string{"date", "total_time", "sessions"})
		for _, d := range m.DailyBreakdown {
			records = append(records, []string{
				d.Date.Format(time.DateOnly),
				FormatDuration(d.TotalSeconds),
				strconv.Itoa(d.SessionCount),
			})
		}
	}

	if len(m.WeeklyBreakdown) > 0 {
		records = append(records, []string{},
			[]string{"week_start", "week_end", "total_hours", "regular_hours", "overtime_hours", "sessions"})
		for _, wk := range m.WeeklyBreakdown {
			records = append(records, []string{
				wk.WeekStart.Format(time.DateOnly),
				wk.WeekEnd.Format(time.DateOnly),
				formatHours(wk.TotalHours),
				formatHours(wk.RegularHours),
				formatHours(wk.OvertimeHours),
				strconv.Itoa(wk.SessionCount),
			})
		}
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing monthly summary csv: %w", err)
	}
	return nil
}

// FormatDuration renders seconds as HH:MM:SS.
func FormatDuration(seconds int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}
