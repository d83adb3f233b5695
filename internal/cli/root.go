package cli

import (
	"time"

	"github.com/danielhaas/stempel/internal/db"
	"github.com/danielhaas/stempel/internal/report"
	"github.com/danielhaas/stempel/internal/repository"
	"github.com/danielhaas/stempel/internal/timer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to the wired collaborators used by CLI commands.
type App struct {
	Timer    *timer.Timer
	Sessions repository.SessionRepo
	Reports  *report.Service
	UoW      db.UnitOfWork

	// IsInteractive reports whether stdin is a terminal; destructive
	// prompts and the live view require it.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "stempel" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "stempel",
		Short:         "Work session timer with regular/overtime accounting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStartCmd(app),
		newPauseCmd(app),
		newResumeCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newWatchCmd(app),
		newReportCmd(app),
		newSessionsCmd(app),
		newExportCmd(app),
	)

	return root
}

// addPeriodFlags registers the shared --year/--month pair, defaulting to
// the current local month.
func addPeriodFlags(fs *pflag.FlagSet, year *int, month *int) {
	now := time.Now()
	fs.IntVar(year, "year", now.Year(), "Report year")
	fs.IntVar(month, "month", int(now.Month()), "Report month (1-12)")
}
