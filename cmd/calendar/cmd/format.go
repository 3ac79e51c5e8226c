package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFormatCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "format <date> [layout]",
		Short: "Render a date with a layout",
		Example: `  calendar format "2024-05-01 13:45:00" "d.m.Y H:i"
  calendar format tomorrow "AY(-)m-d"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout := ""
			if len(args) > 1 {
				layout = args[1]
			}
			out, err := app.cal.Format(momentArg(args, 0), layout)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newParseCmd(app *appState) *cobra.Command {
	var (
		relativeTo string
		layout     string
	)

	cmd := &cobra.Command{
		Use:   "parse <expression>",
		Short: "Convert a date expression to a Unix timestamp",
		Example: `  calendar parse "next monday"
  calendar parse "+1 day" --relative-to 2024-02-28
  calendar parse "3 hours ago" -f "Y-m-d H:i:s"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := app.cal.DateToTime(args[0], relativeTo)
			if err != nil {
				return err
			}
			if layout != "" {
				fmt.Fprintln(cmd.OutOrStdout(), app.cal.GetDate(ts, layout))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatInt(ts, 10))
			return nil
		},
	}
	cmd.Flags().StringVar(&relativeTo, "relative-to", "", "reference date for relative expressions")
	cmd.Flags().StringVarP(&layout, "format", "f", "", "print the result with this layout instead of a timestamp")
	return cmd
}
