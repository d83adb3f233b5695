package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielhaas/stempel/internal/cli/formatter"
	"github.com/danielhaas/stempel/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the monthly time-accounting report",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Reports.MonthlySummary(context.Background(), year, time.Month(month))
			if errors.Is(err, report.ErrInvalidPeriod) {
				return fmt.Errorf("invalid month %d: %w", month, err)
			}
			if err != nil {
				return fmt.Errorf("report temporarily unavailable: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMonthlySummary(summary))
			return nil
		},
	}

	addPeriodFlags(cmd.Flags(), &year, &month)
	return cmd
}
