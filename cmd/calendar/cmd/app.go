package cmd

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/msto63/calendar/foundation/core/config"
	mdwerror "github.com/msto63/calendar/foundation/core/error"
	"github.com/msto63/calendar/foundation/core/i18n"
	mdwlog "github.com/msto63/calendar/foundation/core/log"
	"github.com/msto63/calendar/foundation/utils/calendar"
)

const defaultZone = calendar.DefaultZone

// Keys are namespaced already: calendar.zone reads CALENDAR_ZONE, log.level
// reads LOG_LEVEL.
const envPrefix = ""

var configDefaults = map[string]interface{}{
	"calendar.zone":   defaultZone,
	"calendar.layout": calendar.DefaultLayout,
	"calendar.locale": i18n.DefaultLocale,
	"log.level":       "warn",
	"log.format":      "text",
}

var configRules = config.ValidationRules{
	"calendar.zone":   {Required: true, Type: "string"},
	"calendar.layout": {Type: "string"},
	"calendar.locale": {Type: "string", Pattern: `^[A-Za-z]{2,3}([-_][A-Za-z]{2})?$`},
	"log.level":       {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "fatal"}},
	"log.format":      {Type: "string", OneOf: []string{"json", "text", "logfmt"}},
	"i18n.dir":        {Type: "string"},
}

// appState is built once per invocation before a subcommand runs.
type appState struct {
	cfg           *config.Config
	logger        *mdwlog.Logger
	labels        *i18n.Manager
	cal           *calendar.Calendar
	locale        string
	correlationID string
	timer         *mdwlog.Timer
}

func (a *appState) setup(cmd *cobra.Command, opts *rootOptions) error {
	if err := loadEnvFile(opts.envFile); err != nil {
		return err
	}

	cfg, err := loadConfig(opts.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules).Err(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cmd, cfg, opts)
	if err != nil {
		return err
	}
	a.correlationID = uuid.NewString()
	a.logger = logger.WithCorrelationID(a.correlationID)

	a.labels, err = i18n.New(i18n.Options{
		DefaultLocale: i18n.DefaultLocale,
		LocalesDir:    cfg.GetString("i18n.dir"),
	})
	if err != nil {
		return err
	}

	a.locale = firstNonEmpty(opts.locale, cfg.GetString("calendar.locale"))
	if !a.labels.HasLocale(a.locale) {
		a.logger.Warn("unknown locale, using fallback labels", mdwlog.Fields{"locale": a.locale})
	}

	a.cal, err = a.newCalendar(opts)
	if err != nil {
		return err
	}

	a.logger.Debug("calendar ready", mdwlog.Fields{
		"zone":   a.cal.Zone(),
		"locale": a.locale,
		"config": cfg.FilePath(),
	})
	return nil
}

func (a *appState) newCalendar(opts *rootOptions) (*calendar.Calendar, error) {
	zone := firstNonEmpty(opts.zone, a.cfg.GetString("calendar.zone"))

	unitLabels, err := a.labels.Units(a.locale)
	if err != nil {
		return nil, err
	}
	units, err := calendar.NewUnits(unitLabels...)
	if err != nil {
		return nil, err
	}
	weekdays, err := a.labels.Weekdays(a.locale)
	if err != nil {
		return nil, err
	}

	calOpts := []calendar.Option{
		calendar.WithZone(zone),
		calendar.WithLogger(a.logger),
		calendar.WithLayout(firstNonEmpty(opts.layout, a.cfg.GetString("calendar.layout"))),
		calendar.WithUnits(units),
		calendar.WithWeekLabels(weekdays),
	}

	if opts.at != "" {
		probe, err := calendar.New(calendar.WithZone(zone), calendar.WithLogger(a.logger))
		if err != nil {
			return nil, err
		}
		at, err := probe.ParseTime(opts.at, "")
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid --at value").WithOperation("cmd.setup")
		}
		calOpts = append(calOpts, calendar.WithClock(calendar.NewFixedClock(at)))
	}

	return calendar.New(calOpts...)
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return mdwerror.Wrap(err, "failed to load env file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("cmd.loadEnvFile").
			WithDetail("path", path)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  configDefaults,
		})
	}

	discovery := config.DefaultDiscoveryOptions()
	discovery.EnvPrefix = envPrefix
	discovery.Defaults = configDefaults
	return config.Discover(discovery)
}

func newLogger(cmd *cobra.Command, cfg *config.Config, opts *rootOptions) (*mdwlog.Logger, error) {
	levelName := firstNonEmpty(opts.logLevel, cfg.GetString("log.level"))
	if opts.verbose {
		levelName = "debug"
	}
	level, err := mdwlog.ParseLevel(levelName)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.newLogger")
	}

	format, err := mdwlog.ParseFormat(firstNonEmpty(opts.logFormat, cfg.GetString("log.format")))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.newLogger")
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "calendar",
	}), nil
}

// momentArg maps an optional positional argument to a moment.
func momentArg(args []string, i int) calendar.Moment {
	if i >= len(args) || strings.TrimSpace(args[i]) == "" {
		return calendar.Now()
	}
	return calendar.Expr(args[i])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
