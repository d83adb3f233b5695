package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhaas/stempel/internal/cli/formatter"
	"github.com/danielhaas/stempel/internal/timer"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Timer.Start(context.Background())
			if errors.Is(err, timer.ErrAlreadyActive) {
				fmt.Fprintln(cmd.OutOrStdout(), "Timer is already running.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started session %s at %s\n",
				formatter.TruncID(s.ID), formatter.HumanTimestamp(s.Start))
			return nil
		},
	}
}

func newPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the running session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Timer.Pause(context.Background())
			if errors.Is(err, timer.ErrNotRunning) {
				fmt.Fprintln(cmd.OutOrStdout(), "No running session to pause.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Paused. %s tracked so far.\n",
				formatter.HumanDuration(s.TotalSecondsAt(s.Pauses[len(s.Pauses)-1])))
			return nil
		},
	}
}

func newResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume the paused session",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.Timer.Resume(context.Background())
			if errors.Is(err, timer.ErrNotPaused) {
				fmt.Fprintln(cmd.OutOrStdout(), "Session is not paused.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Resumed.")
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "End the active session and record it",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Timer.End(context.Background())
			if errors.Is(err, timer.ErrNotActive) {
				fmt.Fprintln(cmd.OutOrStdout(), "No active session to stop.")
				return nil
			}
			if err != nil {
				// The session ended in memory but did not reach the
				// store; make the distinction visible.
				return fmt.Errorf("session %s ended (%s tracked) but could not be saved: %w",
					formatter.TruncID(s.ID), formatter.HumanDuration(s.TotalSeconds), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s across session %s.\n",
				formatter.HumanDuration(s.TotalSeconds), formatter.TruncID(s.ID))
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current timer state",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTimerState(app.Timer.State()))
			return nil
		},
	}
}
