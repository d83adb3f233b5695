package formatter

import (
	"fmt"
	"time"
)

// TruncID shortens a UUID for table display.
func TruncID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// HumanTimestamp renders a timestamp for table display in local time.
func HumanTimestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// HumanDuration renders accounted seconds as "2h 15m" (or "45m", "30s").
func HumanDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// ClockDuration renders accounted seconds as HH:MM:SS for the live view.
func ClockDuration(seconds int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// Hours renders an hour value with two decimals.
func Hours(h float64) string {
	return fmt.Sprintf("%.2fh", h)
}
