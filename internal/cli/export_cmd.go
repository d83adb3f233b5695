package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/danielhaas/stempel/internal/cli/formatter"
	"github.com/danielhaas/stempel/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var year, month int
	var sessionID, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a monthly summary or a single session as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if sessionID != "" {
				s, err := app.Sessions.GetByID(ctx, sessionID)
				if err != nil {
					return err
				}
				if outPath == "" {
					outPath = fmt.Sprintf("session-%s.csv", s.Start.Local().Format("2006-01-02-15-04"))
				}
				if err := writeFile(outPath, func(f *os.File) error {
					return export.WriteSession(f, s)
				}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported session %s to %s\n",
					formatter.TruncID(s.ID), outPath)
				return nil
			}

			summary, err := app.Reports.MonthlySummary(ctx, year, time.Month(month))
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = fmt.Sprintf("stempel-%d-%02d.csv", year, month)
			}
			if err := writeFile(outPath, func(f *os.File) error {
				return export.WriteMonthlySummary(f, summary)
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d-%02d summary to %s\n", year, month, outPath)
			return nil
		},
	}

	addPeriodFlags(cmd.Flags(), &year, &month)
	cmd.Flags().StringVar(&sessionID, "session", "", "Export one session by ID instead of a monthly summary")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file path")
	return cmd
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
