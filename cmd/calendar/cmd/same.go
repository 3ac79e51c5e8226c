package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
	"github.com/msto63/calendar/foundation/utils/calendar"
)

type sameFunc func(cal *calendar.Calendar, a, b calendar.Moment, mode calendar.Mode) (bool, error)

var samePeriods = map[string]sameFunc{
	"year": func(cal *calendar.Calendar, a, b calendar.Moment, _ calendar.Mode) (bool, error) {
		return cal.SameYear(a, b)
	},
	"month":  (*calendar.Calendar).SameMonth,
	"week":   (*calendar.Calendar).SameWeek,
	"day":    (*calendar.Calendar).SameDay,
	"hour":   (*calendar.Calendar).SameHour,
	"minute": (*calendar.Calendar).SameMinute,
	"second": (*calendar.Calendar).SameSecond,
}

func newSameCmd(app *appState) *cobra.Command {
	var (
		coarse bool
		layout string
	)

	cmd := &cobra.Command{
		Use:   "same <period> <a> [b]",
		Short: "Check whether two dates share a period",
		Long: `Check whether two dates share a period. Period is one of year, month,
week, day, hour, minute, second, or "layout" together with --layout.

By default the whole date down to the period must match. With --coarse only
the period's own field is compared, so "same month --coarse" matches May
of any year. "week" compares weekdays. Without [b] the current time is used.`,
		Example: `  calendar same month 2023-05-01 2024-05-20 --coarse
  calendar same day "2024-05-01 08:00:00" "2024-05-01 23:00:00"
  calendar same layout 2024-05-01 --layout "Y-m"`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			period := strings.ToLower(args[0])
			a, b := momentArg(args, 1), momentArg(args, 2)

			var (
				same bool
				err  error
			)
			if period == "layout" {
				if layout == "" {
					return mdwerror.New("period layout needs --layout").
						WithCode(mdwerror.CodeRequiredField).
						WithOperation("cmd.same")
				}
				same, err = app.cal.SameTime(a, layout, b)
			} else {
				fn, ok := samePeriods[period]
				if !ok {
					return unknownPeriod(period, samePeriods)
				}
				mode := calendar.ModeFine
				if coarse {
					mode = calendar.ModeCoarse
				}
				same, err = fn(app.cal, a, b, mode)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), app.yesNo(same))
			return nil
		},
	}
	cmd.Flags().BoolVar(&coarse, "coarse", false, "compare only the period's own field")
	cmd.Flags().StringVar(&layout, "layout", "", "layout compared by period \"layout\"")
	return cmd
}

func unknownPeriod[T any](period string, known map[string]T) error {
	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)
	return mdwerror.Newf("unknown period %q", period).
		WithCode(mdwerror.CodeInvalidInput).
		WithDetail("allowed", strings.Join(names, ", "))
}
