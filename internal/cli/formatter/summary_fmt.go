package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhaas/stempel/internal/domain"
)

// FormatMonthlySummary renders the full monthly report: totals, daily
// breakdown, weekly breakdown with the overtime split.
func FormatMonthlySummary(m *domain.MonthlySummary) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", m.Month, m.Year)
	b.WriteString(StyleHeader.Render(title))
	b.WriteString("\n\n")

	if m.SessionCount == 0 {
		b.WriteString(Dim("No sessions recorded."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s  %s in %s\n",
		Bold(HumanDuration(m.TotalSeconds)),
		Dim("tracked"),
		fmt.Sprintf("%d sessions", m.SessionCount)))
	b.WriteString(fmt.Sprintf("%s regular  %s overtime  %s longest session\n\n",
		StyleGreen.Render(Hours(m.RegularHours)),
		overtimeStyled(m.OvertimeHours),
		StyleBlue.Render(HumanDuration(m.LongestSessionSeconds))))

	b.WriteString(StyleHeader.Render("DAILY"))
	b.WriteString("\n")
	dailyRows := make([][]string, 0, len(m.DailyBreakdown))
	for _, d := range m.DailyBreakdown {
		dailyRows = append(dailyRows, []string{
			d.Date.Format(time.DateOnly),
			HumanDuration(d.TotalSeconds),
			strconv.Itoa(d.SessionCount),
		})
	}
	b.WriteString(RenderTable([]string{"DATE", "TIME", "SESSIONS"}, dailyRows))
	b.WriteString("\n")

	b.WriteString(StyleHeader.Render("WEEKLY"))
	b.WriteString("\n")
	weeklyRows := make([][]string, 0, len(m.WeeklyBreakdown))
	for _, w := range m.WeeklyBreakdown {
		weeklyRows = append(weeklyRows, []string{
			fmt.Sprintf("%s – %s", w.WeekStart.Format(time.DateOnly), w.WeekEnd.Format(time.DateOnly)),
			Hours(w.TotalHours),
			StyleGreen.Render(Hours(w.RegularHours)),
			overtimeStyled(w.OvertimeHours),
			strconv.Itoa(w.SessionCount),
		})
	}
	b.WriteString(RenderTable([]string{"WEEK", "TOTAL", "REGULAR", "OVERTIME", "SESSIONS"}, weeklyRows))

	return b.String()
}

func overtimeStyled(h float64) string {
	if h > 0 {
		return StyleRed.Render(Hours(h))
	}
	return Dim(Hours(h))
}
