package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNowCmd(app *appState) *cobra.Command {
	var layout string

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), app.cal.GetDate(0, layout))
			return nil
		},
	}
	cmd.Flags().StringVarP(&layout, "format", "f", "", "output layout")
	return cmd
}
