package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/danielhaas/stempel/internal/cli/formatter"
	"github.com/danielhaas/stempel/internal/db"
	"github.com/danielhaas/stempel/internal/repository"
	"github.com/spf13/cobra"
)

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect and edit recorded sessions",
	}

	cmd.AddCommand(
		newSessionsListCmd(app),
		newSessionsRemoveCmd(app),
		newSessionsClearCmd(app),
	)

	return cmd
}

func newSessionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListAll(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded.")
				return nil
			}

			headers := []string{"ID", "STARTED", "ENDED", "PAUSES", "TRACKED"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				ended := formatter.Dim("open")
				if s.End != nil {
					ended = formatter.HumanTimestamp(*s.End)
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					formatter.HumanTimestamp(s.Start),
					ended,
					fmt.Sprintf("%d", len(s.Pauses)),
					formatter.HumanDuration(s.TotalSeconds),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newSessionsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <session-id>",
		Short: "Delete one recorded session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			existed, err := app.Sessions.Delete(context.Background(), args[0])
			if err != nil {
				return err
			}
			if !existed {
				fmt.Fprintf(cmd.OutOrStdout(), "No session with ID %s.\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s.\n", formatter.TruncID(args[0]))
			return nil
		},
	}
}

func newSessionsClearCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if !app.interactive() {
					return fmt.Errorf("refusing to clear without --force in a non-interactive shell")
				}
				var confirmed bool
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Delete every recorded session?").
						Description("This cannot be undone.").
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			// Count and delete under one transaction so the reported
			// number matches what was actually removed.
			var removed int64
			err := app.UoW.WithinTx(cmd.Context(), func(ctx context.Context, tx db.DBTX) error {
				var err error
				removed, err = repository.NewSQLiteSessionRepo(tx).DeleteAll(ctx)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d sessions.\n", removed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return cmd
}
