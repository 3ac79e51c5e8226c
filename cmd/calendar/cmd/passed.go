package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/calendar/foundation/utils/calendar"
)

type passFunc func(cal *calendar.Calendar, m calendar.Moment, seconds int64) (bool, error)

var passPeriods = map[string]passFunc{
	"year":   func(c *calendar.Calendar, m calendar.Moment, _ int64) (bool, error) { return c.IsPassYear(m) },
	"month":  func(c *calendar.Calendar, m calendar.Moment, _ int64) (bool, error) { return c.IsPassMonth(m) },
	"week":   func(c *calendar.Calendar, m calendar.Moment, _ int64) (bool, error) { return c.IsPassWeek(m) },
	"day":    func(c *calendar.Calendar, m calendar.Moment, _ int64) (bool, error) { return c.IsPassDay(m) },
	"hour":   func(c *calendar.Calendar, m calendar.Moment, _ int64) (bool, error) { return c.IsPassHour(m) },
	"minute": func(c *calendar.Calendar, m calendar.Moment, _ int64) (bool, error) { return c.IsPassMinute(m) },
	"second": (*calendar.Calendar).IsPassSecond,
}

func newPassedCmd(app *appState) *cobra.Command {
	var seconds int64

	cmd := &cobra.Command{
		Use:   "passed <period> <date>",
		Short: "Check whether a date lies at least one period after now",
		Long: `Check whether a date lies at or beyond now plus one period. Period is
one of year, month, week, day, hour, minute, or second together with
--seconds. Months are 30 days; a year is 366 days while the current year
is a leap year.`,
		Example: `  calendar passed day "+36 hours"
  calendar passed second 2030-01-01 --seconds 600`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			period := strings.ToLower(args[0])
			fn, ok := passPeriods[period]
			if !ok {
				return unknownPeriod(period, passPeriods)
			}
			passed, err := fn(app.cal, momentArg(args, 1), seconds)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.yesNo(passed))
			return nil
		},
	}
	cmd.Flags().Int64Var(&seconds, "seconds", 0, "limit in seconds for period \"second\"")
	return cmd
}
