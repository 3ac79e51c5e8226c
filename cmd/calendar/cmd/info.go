package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/calendar/foundation/utils/calendar"
)

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorMuted   = lipgloss.Color("#94A3B8")
	colorText    = lipgloss.Color("#F8FAFC")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)
)

func newInfoCmd(app *appState) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show zone, current time and locale details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.infoRows()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if plain {
				for _, r := range rows {
					fmt.Fprintf(out, "%s: %s\n", r[0], r[1])
				}
				return nil
			}

			lines := []string{titleStyle.Render(app.labels.T(app.locale, "info.title"))}
			for _, r := range rows {
				lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
					keyStyle.Render(r[0]), valueStyle.Render(r[1])))
			}
			fmt.Fprintln(out, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print key: value lines without styling")
	return cmd
}

func (a *appState) infoRows() ([][2]string, error) {
	weekday, err := a.cal.GetDateWeekName(0, nil)
	if err != nil {
		return nil, err
	}
	leap, err := a.cal.IsIntercalaryYear(calendar.Now())
	if err != nil {
		return nil, err
	}

	t := func(key string) string { return a.labels.T(a.locale, key) }
	return [][2]string{
		{t("info.zone"), a.cal.Zone()},
		{t("info.now"), a.cal.GetDate(0, "")},
		{t("info.weekday"), weekday},
		{t("info.leap_year"), a.yesNo(leap)},
		{"locale", a.locale},
		{"config", firstNonEmpty(a.cfg.FilePath(), "-")},
		{"correlation", a.correlationID},
	}, nil
}
