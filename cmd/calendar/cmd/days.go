package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDaysCmd(app *appState) *cobra.Command {
	var dayLayout string

	cmd := &cobra.Command{
		Use:   "days <from> [to]",
		Short: "Count the days between two dates",
		Long: `Count the days between two dates. Both dates are first truncated to
the day layout, so times of day are ignored by default. Without [to] the
exact current time is used and the result may be fractional.`,
		Example: `  calendar days 2023-01-01 2023-01-03
  calendar days 2024-12-24`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			span, err := app.cal.GetTimeToTimeDay(momentArg(args, 0), momentArg(args, 1), dayLayout)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(span.Days, 'f', -1, 64))
			return nil
		},
	}
	cmd.Flags().StringVar(&dayLayout, "day-layout", "", "truncation layout (default \"Y-m-d\")")
	return cmd
}

func newLeapCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "leap [date]",
		Short: "Report whether the year of a date is a leap year",
		Long: `Report whether the year of a date is a leap year. Every year divisible
by four counts, century years included.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leap, err := app.cal.IsIntercalaryYear(momentArg(args, 0))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.yesNo(leap))
			return nil
		},
	}
}

func (a *appState) yesNo(v bool) string {
	if v {
		return a.labels.T(a.locale, "info.yes")
	}
	return a.labels.T(a.locale, "info.no")
}
