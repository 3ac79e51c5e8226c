package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWeekdayCmd(app *appState) *cobra.Command {
	var labels []string

	cmd := &cobra.Command{
		Use:   "weekday [date]",
		Short: "Print the weekday name of a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ts int64
			if m := momentArg(args, 0); !m.IsNow() {
				t, err := app.cal.DateToTime(args[0], "")
				if err != nil {
					return err
				}
				ts = t
			}

			name, err := app.cal.GetDateWeekName(ts, labels)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&labels, "labels", nil, "weekday labels starting with Sunday, comma separated")
	return cmd
}
