// File: i18n_test.go
// Title: Locale Label Tests
// Description: Tests for embedded locales, directory overrides and fallback.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-08-02 v0.2.0: Rewritten for calendar label sets

package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
)

func TestEmbeddedLocales(t *testing.T) {
	m, err := New(Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"de", "en", "zh"}, m.AvailableLocales())
	assert.Equal(t, "zh", m.DefaultLocale())

	units, err := m.Units("zh")
	require.NoError(t, err)
	assert.Equal(t, []string{"秒", "分钟", "小时", "天", "周", "月", "年"}, units)

	days, err := m.Weekdays("de")
	require.NoError(t, err)
	assert.Equal(t, "Sonntag", days[0])
	assert.Equal(t, "Samstag", days[6])

	assert.Equal(t, "Leap year", m.T("en", "info.leap_year"))
	assert.Equal(t, "ja", m.T("de", "info.yes"))
}

func TestFallbackChain(t *testing.T) {
	m, err := New(Options{DefaultLocale: "en"})
	require.NoError(t, err)

	assert.Equal(t, "Zeitzone", m.T("de_AT", "info.zone"), "regional locale falls back to base language")
	assert.Equal(t, "Zone", m.T("fr", "info.zone"), "unknown locale falls back to default")
	assert.Equal(t, "info.missing", m.T("en", "info.missing"))
}

func TestLocalesDirOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.yaml"), []byte(`
weekdays: [dim, lun, mar, mer, jeu, ven, sam]
units:
  second: s
  minute: min
  hour: h
  day: j
  week: sem
  month: mois
  year: an
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.toml"), []byte(`weekdays = ["a", "b"]`), 0o600))

	m, err := New(Options{LocalesDir: dir})
	require.NoError(t, err)
	assert.True(t, m.HasLocale("fr"))

	units, err := m.Units("fr-FR")
	require.NoError(t, err)
	assert.Equal(t, "an", units[6])

	_, err = m.Weekdays("bad")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
}

func TestMissingDirectory(t *testing.T) {
	_, err := New(Options{LocalesDir: filepath.Join(t.TempDir(), "nope")})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))
}

func TestNormalizeLocale(t *testing.T) {
	tests := map[string]string{
		"zh_cn":   "zh-CN",
		"EN":      "en",
		"de-at":   "de-AT",
		"":        "",
		"english": "",
	}
	for input, want := range tests {
		assert.Equal(t, want, NormalizeLocale(input), input)
	}

	language, country := SplitLocale("pt_br")
	assert.Equal(t, "pt", language)
	assert.Equal(t, "BR", country)
}
