package report

import (
	"math/rand"
	"testing"
	"time"

	"github.com/danielhaas/stempel/internal/domain"
	"github.com/danielhaas/stempel/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nov(day, hour int) time.Time {
	return time.Date(2025, time.November, day, hour, 0, 0, 0, time.Local)
}

func TestMonthly_EmptyInput(t *testing.T) {
	got, err := Monthly(nil, 2025, time.November)
	require.NoError(t, err)

	assert.Equal(t, 2025, got.Year)
	assert.Equal(t, time.November, got.Month)
	assert.Zero(t, got.TotalSeconds)
	assert.Zero(t, got.RegularHours)
	assert.Zero(t, got.OvertimeHours)
	assert.Zero(t, got.SessionCount)
	assert.Zero(t, got.LongestSessionSeconds)
	assert.Empty(t, got.DailyBreakdown)
	assert.Empty(t, got.WeeklyBreakdown)
}

func TestMonthly_InvalidMonth(t *testing.T) {
	_, err := Monthly(nil, 2025, time.Month(0))
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, err = Monthly(nil, 2025, time.Month(13))
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestMonthly_OvertimeSplit(t *testing.T) {
	// Three sessions of 5h, 20h, 20h in the same week: 45h total,
	// 40h regular, 5h overtime.
	sessions := []*domain.Session{
		testutil.NewClosedSession(nov(3, 8), 5*time.Hour),
		testutil.NewClosedSession(nov(4, 8), 20*time.Hour),
		testutil.NewClosedSession(nov(6, 8), 20*time.Hour),
	}

	got, err := Monthly(sessions, 2025, time.November)
	require.NoError(t, err)

	require.Len(t, got.WeeklyBreakdown, 1)
	w := got.WeeklyBreakdown[0]
	assert.Equal(t, 45.0, w.TotalHours)
	assert.Equal(t, 40.0, w.RegularHours)
	assert.Equal(t, 5.0, w.OvertimeHours)
	assert.Equal(t, 3, w.SessionCount)

	assert.Equal(t, 40.0, got.RegularHours)
	assert.Equal(t, 5.0, got.OvertimeHours)
	assert.Equal(t, int64(45*3600), got.TotalSeconds)
	assert.Equal(t, int64(20*3600), got.LongestSessionSeconds)
}

func TestMonthly_OvertimeNeverOffsetsAcrossWeeks(t *testing.T) {
	// Heavy first week (45h), light second week (10h). The light week
	// must not absorb the heavy week's overtime.
	sessions := []*domain.Session{
		testutil.NewClosedSession(nov(3, 0), 45*time.Hour),
		testutil.NewClosedSession(nov(12, 8), 10*time.Hour),
	}

	got, err := Monthly(sessions, 2025, time.November)
	require.NoError(t, err)

	require.Len(t, got.WeeklyBreakdown, 2)
	assert.Equal(t, 5.0, got.WeeklyBreakdown[0].OvertimeHours)
	assert.Equal(t, 0.0, got.WeeklyBreakdown[1].OvertimeHours)
	assert.Equal(t, 50.0, got.RegularHours)
	assert.Equal(t, 5.0, got.OvertimeHours)
}

func TestMonthly_WeeksAnchoredToFirstSessionDate(t *testing.T) {
	// First session on the 5th anchors week one at Nov 5–11; a session
	// on the 12th opens the next span.
	sessions := []*domain.Session{
		testutil.NewClosedSession(nov(5, 9), 2*time.Hour),
		testutil.NewClosedSession(nov(11, 9), 3*time.Hour),
		testutil.NewClosedSession(nov(12, 9), 4*time.Hour),
	}

	got, err := Monthly(sessions, 2025, time.November)
	require.NoError(t, err)

	require.Len(t, got.WeeklyBreakdown, 2)
	assert.Equal(t, nov(5, 0), got.WeeklyBreakdown[0].WeekStart)
	assert.Equal(t, nov(11, 0), got.WeeklyBreakdown[0].WeekEnd)
	assert.Equal(t, 5.0, got.WeeklyBreakdown[0].TotalHours)
	assert.Equal(t, nov(12, 0), got.WeeklyBreakdown[1].WeekStart)
	assert.Equal(t, 4.0, got.WeeklyBreakdown[1].TotalHours)
}

func TestMonthly_DailyAttributionByStartDate(t *testing.T) {
	// A session that runs past midnight is attributed entirely to the
	// day it started.
	sessions := []*domain.Session{
		testutil.NewClosedSession(nov(7, 22), 5*time.Hour),
		testutil.NewClosedSession(nov(8, 10), time.Hour),
		testutil.NewClosedSession(nov(8, 14), time.Hour),
	}

	got, err := Monthly(sessions, 2025, time.November)
	require.NoError(t, err)

	require.Len(t, got.DailyBreakdown, 2)
	assert.Equal(t, nov(7, 0), got.DailyBreakdown[0].Date)
	assert.Equal(t, int64(5*3600), got.DailyBreakdown[0].TotalSeconds)
	assert.Equal(t, 1, got.DailyBreakdown[0].SessionCount)
	assert.Equal(t, nov(8, 0), got.DailyBreakdown[1].Date)
	assert.Equal(t, int64(2*3600), got.DailyBreakdown[1].TotalSeconds)
	assert.Equal(t, 2, got.DailyBreakdown[1].SessionCount)
}

func TestMonthly_IgnoresOpenAndOutOfMonthSessions(t *testing.T) {
	dec := time.Date(2025, time.December, 1, 9, 0, 0, 0, time.Local)
	sessions := []*domain.Session{
		testutil.NewClosedSession(nov(10, 9), 2*time.Hour),
		testutil.NewClosedSession(dec, 8*time.Hour),
		testutil.NewOpenSession(nov(11, 9)),
	}

	got, err := Monthly(sessions, 2025, time.November)
	require.NoError(t, err)

	assert.Equal(t, 1, got.SessionCount)
	assert.Equal(t, int64(2*3600), got.TotalSeconds)
}

func TestMonthly_PausesReduceAccountedTime(t *testing.T) {
	// 07:30–10:00 with a 08:00–08:15 pause: 2h15m accounted.
	s := testutil.NewClosedSession(
		time.Date(2025, time.November, 18, 7, 30, 0, 0, time.Local),
		150*time.Minute,
		testutil.WithPause(
			time.Date(2025, time.November, 18, 8, 0, 0, 0, time.Local),
			time.Date(2025, time.November, 18, 8, 15, 0, 0, time.Local),
		),
	)
	require.Equal(t, int64(8100), s.TotalSeconds)

	got, err := Monthly([]*domain.Session{s}, 2025, time.November)
	require.NoError(t, err)
	assert.Equal(t, int64(8100), got.TotalSeconds)
	assert.Equal(t, int64(8100), got.LongestSessionSeconds)
}

func TestMonthly_Determinism(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewClosedSession(nov(20, 9), 3*time.Hour),
		testutil.NewClosedSession(nov(5, 9), 2*time.Hour),
		testutil.NewClosedSession(nov(5, 14), time.Hour),
	}

	first, err := Monthly(sessions, 2025, time.November)
	require.NoError(t, err)
	second, err := Monthly(sessions, 2025, time.November)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Input order must not matter either.
	reversed := []*domain.Session{sessions[2], sessions[1], sessions[0]}
	third, err := Monthly(reversed, 2025, time.November)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

// TestMonthly_Property_WeeklyInvariants checks, over randomized months of
// sessions, that every week satisfies regular + overtime == total and
// overtime == max(total-40h, 0), and that breakdowns stay chronologically
// ordered and consistent with the monthly totals.
func TestMonthly_Property_WeeklyInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(40)
		sessions := make([]*domain.Session, 0, n)
		for i := 0; i < n; i++ {
			day := rng.Intn(28) + 1
			hour := rng.Intn(20)
			dur := time.Duration(rng.Intn(10*3600)+60) * time.Second
			sessions = append(sessions, testutil.NewClosedSession(nov(day, hour), dur))
		}

		got, err := Monthly(sessions, 2025, time.November)
		require.NoError(t, err)

		var weeklySeconds float64
		var sessionCount int
		for j, w := range got.WeeklyBreakdown {
			assert.InDelta(t, w.TotalHours, w.RegularHours+w.OvertimeHours, 1e-9,
				"trial %d week %d: split must sum to total", trial, j)
			expectedOT := w.TotalHours - 40
			if expectedOT < 0 {
				expectedOT = 0
			}
			assert.InDelta(t, expectedOT, w.OvertimeHours, 1e-9,
				"trial %d week %d: overtime rule", trial, j)
			assert.LessOrEqual(t, w.RegularHours, 40.0, "trial %d week %d", trial, j)
			weeklySeconds += w.TotalHours * 3600
			sessionCount += w.SessionCount

			if j > 0 {
				assert.True(t, got.WeeklyBreakdown[j-1].WeekStart.Before(w.WeekStart),
					"trial %d: weeks must ascend", trial)
			}
		}

		assert.InDelta(t, float64(got.TotalSeconds), weeklySeconds, 0.5,
			"trial %d: weekly totals must cover the month", trial)
		assert.Equal(t, got.SessionCount, sessionCount, "trial %d", trial)

		var dailySeconds int64
		for j, d := range got.DailyBreakdown {
			assert.Positive(t, d.SessionCount, "trial %d: no empty days", trial)
			dailySeconds += d.TotalSeconds
			if j > 0 {
				assert.True(t, got.DailyBreakdown[j-1].Date.Before(d.Date),
					"trial %d: days must ascend", trial)
			}
		}
		assert.Equal(t, got.TotalSeconds, dailySeconds, "trial %d", trial)
	}
}
