package domain

import "time"

// DailySummary is the accounted time of one calendar day. Days without
// sessions are omitted from breakdowns entirely.
type DailySummary struct {
	Date         time.Time
	TotalSeconds int64
	SessionCount int
}

// WeeklySummary covers one contiguous 7-day span with the regular/overtime
// split applied. RegularHours + OvertimeHours always equals TotalHours.
type WeeklySummary struct {
	WeekStart     time.Time
	WeekEnd       time.Time
	TotalHours    float64
	RegularHours  float64
	OvertimeHours float64
	SessionCount  int
}

// MonthlySummary is the derived report for one calendar month. It is
// recomputed on every request and never persisted.
type MonthlySummary struct {
	Year                  int
	Month                 time.Month
	TotalSeconds          int64
	RegularHours          float64
	OvertimeHours         float64
	SessionCount          int
	LongestSessionSeconds int64
	DailyBreakdown        []DailySummary
	WeeklyBreakdown       []WeeklySummary
}

// TimerState is a read-only snapshot of the timer for display purposes.
type TimerState struct {
	IsRunning        bool
	IsPaused         bool
	CurrentSessionID string
	ElapsedSeconds   int64
}
