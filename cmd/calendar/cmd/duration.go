package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
)

func newDurationCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "duration <seconds>",
		Short: "Describe a number of seconds in the largest fitting unit",
		Long: `Describe a number of seconds in the largest fitting unit.

Negative values must follow "--" so they are not read as flags.`,
		Example: `  calendar duration 3661 --locale en
  calendar duration -- -5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := parseInt(args[0], "seconds")
			if err != nil {
				return err
			}
			out, ok := app.cal.FormatSecond(seconds, nil)
			if !ok {
				return mdwerror.New("no unit label applies").
					WithCode(mdwerror.CodeValueOutOfRange).
					WithOperation("cmd.duration").
					WithDetail("seconds", seconds)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newLeapYearsCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "leapyears <from-year> <to-year>",
		Short: "Estimate the number of leap years between two years",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseInt(args[0], "from-year")
			if err != nil {
				return err
			}
			to, err := parseInt(args[1], "to-year")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.cal.GetTimeIntercalary(from, to))
			return nil
		},
	}
}

func parseInt(s, name string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, mdwerror.Wrap(err, "expected an integer").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.parseInt").
			WithDetail("argument", name).
			WithDetail("value", s)
	}
	return v, nil
}
