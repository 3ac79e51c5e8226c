package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/calendar/foundation/core/log"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	cfgFile   string
	envFile   string
	zone      string
	locale    string
	layout    string
	at        string
	logLevel  string
	logFormat string
	verbose   bool
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	app := &appState{}

	root := &cobra.Command{
		Use:   "calendar",
		Short: "Date and time helper",
		Long: `calendar formats, parses and compares dates in a configured time zone.

Dates are accepted as absolute values ("2024-05-01", "2024-05-01 13:45:00",
"01.05.2024", RFC 3339), Unix timestamps ("@1714567890") or relative
phrases ("tomorrow", "+2 days", "3 hours ago", "next monday").

Layouts use single letters: Y year, m month, d day, H hour, i minute,
s second, w weekday (0 = Sunday). "AY(-)" prints "Y-" only for dates
outside the current year. A backslash escapes the next character.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.setup(cmd, opts); err != nil {
				return err
			}
			app.timer = mdwlog.NewTimer(app.logger, cmd.CommandPath()).
				WithField("zone", app.cal.Zone())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.timer != nil {
				app.timer.Stop()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default: ./calendar.toml, ./config/calendar.toml, ...)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the config")
	flags.StringVar(&opts.zone, "zone", "", "IANA time zone (default: calendar.zone or "+defaultZone+")")
	flags.StringVar(&opts.locale, "locale", "", "label locale: zh, en, de (default: calendar.locale)")
	flags.StringVar(&opts.layout, "layout", "", "default output layout (default: calendar.layout)")
	flags.StringVar(&opts.at, "at", "", "evaluate as if the current time were this date")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: json, text, logfmt")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug logging)")

	root.AddCommand(
		newNowCmd(app),
		newFormatCmd(app),
		newParseCmd(app),
		newWeekdayCmd(app),
		newDurationCmd(app),
		newLeapYearsCmd(app),
		newDaysCmd(app),
		newLeapCmd(app),
		newSameCmd(app),
		newPassedCmd(app),
		newInfoCmd(app),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd, err)
		return err
	}
	return nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
