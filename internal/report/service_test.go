package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/danielhaas/stempel/internal/report"
	"github.com/danielhaas/stempel/internal/repository"
	"github.com/danielhaas/stempel/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_MonthlySummary_EndToEnd(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)
	svc := report.NewService(repo)

	start := time.Date(2025, time.November, 3, 9, 0, 0, 0, time.Local)
	require.NoError(t, repo.Save(ctx, testutil.NewClosedSession(start, 5*time.Hour)))
	require.NoError(t, repo.Save(ctx, testutil.NewClosedSession(start.AddDate(0, 0, 1), 20*time.Hour)))
	require.NoError(t, repo.Save(ctx, testutil.NewClosedSession(start.AddDate(0, 0, 3), 20*time.Hour)))
	// Neighboring month stays out of the report.
	require.NoError(t, repo.Save(ctx, testutil.NewClosedSession(start.AddDate(0, 1, 0), 3*time.Hour)))

	got, err := svc.MonthlySummary(ctx, 2025, time.November)
	require.NoError(t, err)

	assert.Equal(t, 3, got.SessionCount)
	assert.Equal(t, int64(45*3600), got.TotalSeconds)
	assert.Equal(t, 40.0, got.RegularHours)
	assert.Equal(t, 5.0, got.OvertimeHours)
	assert.Equal(t, int64(20*3600), got.LongestSessionSeconds)
	assert.Len(t, got.DailyBreakdown, 3)
	assert.Len(t, got.WeeklyBreakdown, 1)
}

func TestService_MonthlySummary_InvalidMonthBeforeFetch(t *testing.T) {
	svc := report.NewService(nil)
	_, err := svc.MonthlySummary(context.Background(), 2025, time.Month(0))
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)
}

func TestService_MonthlySummary_EmptyMonth(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLiteSessionRepo(testutil.NewTestDB(t))
	svc := report.NewService(repo)

	got, err := svc.MonthlySummary(ctx, 2025, time.February)
	require.NoError(t, err)
	assert.Zero(t, got.TotalSeconds)
	assert.Empty(t, got.DailyBreakdown)
	assert.Empty(t, got.WeeklyBreakdown)
}
