// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, env overrides, discovery and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-08-02 v0.2.0: Switched to testify, added discovery and OneOf coverage

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
)

const tomlFixture = `
[calendar]
zone = "Europe/Berlin"
layout = "AY(-)m-d"
weekdays = ["So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"]

[log]
level = "debug"
verbose = true
cache_ttl = "90s"
retries = 3
`

const yamlFixture = `
calendar:
  zone: Asia/Tokyo
  locale: en
log:
  format: logfmt
`

func noEnv(string) (string, bool) { return "", false }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(writeFile(t, "calendar.toml", tomlFixture))
	require.NoError(t, err)
	cfg.WithEnvLookup(noEnv)

	assert.Equal(t, FormatTOML, cfg.Format())
	assert.Equal(t, "Europe/Berlin", cfg.GetString("calendar.zone"))
	assert.Equal(t, "AY(-)m-d", cfg.GetString("calendar.layout"))
	assert.Equal(t, []string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}, cfg.GetStringSlice("calendar.weekdays"))
	assert.True(t, cfg.GetBool("log.verbose"))
	assert.Equal(t, 3, cfg.GetInt("log.retries"))
	assert.Equal(t, 90*time.Second, cfg.GetDuration("log.cache_ttl"))
	assert.Equal(t, "fallback", cfg.GetString("calendar.missing", "fallback"))
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "calendar.yaml", yamlFixture))
	require.NoError(t, err)
	cfg.WithEnvLookup(noEnv)

	assert.Equal(t, FormatYAML, cfg.Format())
	assert.Equal(t, "Asia/Tokyo", cfg.GetString("calendar.zone"))
	assert.Equal(t, "logfmt", cfg.GetString("log.format"))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValidationFailed))

	_, err = Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))

	_, err = Load(writeFile(t, "broken.toml", "zone = "))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
}

func TestEnvOverride(t *testing.T) {
	cfg, err := LoadWithOptions(writeFile(t, "calendar.toml", tomlFixture), LoadOptions{EnvPrefix: "cal"})
	require.NoError(t, err)

	env := map[string]string{
		"CAL_CALENDAR_ZONE":     "UTC",
		"CAL_CALENDAR_WEEKDAYS": "a, b",
		"CAL_LOG_LEVEL":         "",
	}
	cfg.WithEnvLookup(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})

	assert.Equal(t, "UTC", cfg.GetString("calendar.zone"))
	assert.Equal(t, []string{"a", "b"}, cfg.GetStringSlice("calendar.weekdays"))
	assert.Equal(t, "debug", cfg.GetString("log.level"), "empty variables must not override")
}

func TestDefaultsAndSet(t *testing.T) {
	cfg := Empty("", map[string]interface{}{"calendar.zone": "PRC"}).WithEnvLookup(noEnv)

	assert.True(t, cfg.Has("calendar.zone"))
	assert.Equal(t, "PRC", cfg.GetString("calendar.zone"))

	cfg.Set("calendar.zone", "UTC")
	assert.Equal(t, "UTC", cfg.GetString("calendar.zone"))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "calendar.yaml"), []byte(yamlFixture), 0o600))

	cfg, err := Discover(DiscoveryOptions{Paths: []string{dir}, Filenames: []string{"calendar"}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "calendar.yaml"), cfg.FilePath())

	empty, err := Discover(DiscoveryOptions{
		Paths:    []string{t.TempDir()},
		Defaults: map[string]interface{}{"calendar.zone": "PRC"},
	})
	require.NoError(t, err)
	assert.Equal(t, "PRC", empty.WithEnvLookup(noEnv).GetString("calendar.zone"))

	_, err = Discover(DiscoveryOptions{Paths: []string{t.TempDir()}, Required: true})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))
}

func TestValidate(t *testing.T) {
	cfg, err := LoadFromString(tomlFixture, FormatTOML)
	require.NoError(t, err)
	cfg.WithEnvLookup(noEnv)

	ok := cfg.Validate(ValidationRules{
		"calendar.zone":     {Required: true, Type: "string"},
		"calendar.weekdays": {Type: "[]string"},
		"log.level":         {OneOf: []string{"trace", "debug", "info"}},
		"log.retries":       {Type: "int"},
	})
	assert.True(t, ok.Valid, ok.Errors)
	assert.NoError(t, ok.Err())

	bad := cfg.Validate(ValidationRules{
		"calendar.locale": {Required: true},
		"log.level":       {OneOf: []string{"error"}},
		"calendar.zone":   {Pattern: `^[A-Z]+$`},
	})
	assert.False(t, bad.Valid)
	require.Len(t, bad.Errors, 3)
	assert.Contains(t, bad.Errors[0], "calendar.locale")
	assert.True(t, mdwerror.HasCode(bad.Err(), mdwerror.CodeInvalidConfig))
}
