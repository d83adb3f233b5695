package formatter

import (
	"fmt"

	"github.com/danielhaas/stempel/internal/domain"
)

// FormatTimerState renders the one-line timer status shown by
// "stempel status".
func FormatTimerState(st domain.TimerState) string {
	switch {
	case !st.IsRunning:
		return Dim("● idle") + "  no active session"
	case st.IsPaused:
		return StyleYellow.Render("● paused") + fmt.Sprintf("  %s tracked  %s",
			Bold(HumanDuration(st.ElapsedSeconds)), Dim(TruncID(st.CurrentSessionID)))
	default:
		return StyleGreen.Render("● running") + fmt.Sprintf("  %s tracked  %s",
			Bold(HumanDuration(st.ElapsedSeconds)), Dim(TruncID(st.CurrentSessionID)))
	}
}
