// File: i18n.go
// Title: Locale Label Manager
// Description: Implements the Manager that loads locale files and resolves
//              labels with fallback.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-08-02 v0.2.0: Embedded locales, Units and Weekdays lookups

package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
)

//go:embed locales
var embeddedLocales embed.FS

// DefaultLocale is the locale whose labels match the calendar defaults
const DefaultLocale = "zh"

// UnitNames lists the unit label keys in ascending order of duration
var UnitNames = []string{"second", "minute", "hour", "day", "week", "month", "year"}

// Options defines configuration options for the manager
type Options struct {
	DefaultLocale string // Locale used when a lookup misses (default: zh)
	LocalesDir    string // Optional directory whose files override embedded ones
}

// Manager holds the loaded locales
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	translations  map[string]map[string]interface{}
}

// New creates a manager from the embedded locales plus options.LocalesDir
func New(options Options) (*Manager, error) {
	defaultLocale := NormalizeLocale(options.DefaultLocale)
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}

	m := &Manager{
		defaultLocale: defaultLocale,
		translations:  make(map[string]map[string]interface{}),
	}

	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, mdwerror.Wrap(err, "embedded locales unavailable").
			WithCode(mdwerror.CodeInternal).
			WithOperation("i18n.New")
	}
	if err := m.loadFS(sub); err != nil {
		return nil, err
	}

	if strings.TrimSpace(options.LocalesDir) != "" {
		if _, err := os.Stat(options.LocalesDir); err != nil {
			return nil, mdwerror.Wrap(err, "locales directory not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("i18n.New").
				WithDetail("directory", options.LocalesDir)
		}
		if err := m.loadFS(os.DirFS(options.LocalesDir)); err != nil {
			return nil, err
		}
	}

	if _, ok := m.translations[m.defaultLocale]; !ok {
		return nil, mdwerror.New(fmt.Sprintf("default locale '%s' not found", m.defaultLocale)).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.New")
	}

	return m, nil
}

// loadFS loads every locale file at the root of fsys. Files for a locale that
// is already loaded replace it.
func (m *Manager) loadFS(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return mdwerror.Wrap(err, "failed to read locales").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("i18n.loadFS")
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		locale := NormalizeLocale(strings.TrimSuffix(name, filepath.Ext(name)))
		if locale == "" {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return mdwerror.Wrap(err, "failed to read locale file").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("i18n.loadFS").
				WithDetail("file", name)
		}

		data := make(map[string]interface{})
		if ext == ".toml" {
			err = toml.Unmarshal(content, &data)
		} else {
			err = yaml.Unmarshal(content, &data)
		}
		if err != nil {
			return mdwerror.Wrap(err, "failed to parse locale file").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("i18n.loadFS").
				WithDetail("file", name)
		}

		m.mu.Lock()
		m.translations[locale] = data
		m.mu.Unlock()
	}

	return nil
}

// T returns the string stored under key for locale, falling back along the
// locale chain. Missing keys yield the key itself.
func (m *Manager) T(locale, key string) string {
	if value, ok := m.lookup(locale, key).(string); ok {
		return value
	}
	return key
}

// List returns the string list stored under key for locale
func (m *Manager) List(locale, key string) ([]string, error) {
	raw := m.lookup(locale, key)
	if raw == nil {
		return nil, mdwerror.New("label list not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.List").
			WithDetail("locale", locale).
			WithDetail("key", key)
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, mdwerror.New("label entry is not a list").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("i18n.List").
			WithDetail("key", key)
	}

	result := make([]string, len(items))
	for i, item := range items {
		result[i] = fmt.Sprintf("%v", item)
	}
	return result, nil
}

// Weekdays returns the seven weekday names, Sunday first
func (m *Manager) Weekdays(locale string) ([]string, error) {
	days, err := m.List(locale, "weekdays")
	if err != nil {
		return nil, err
	}
	if len(days) != 7 {
		return nil, mdwerror.New(fmt.Sprintf("expected 7 weekday names, got %d", len(days))).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("i18n.Weekdays").
			WithDetail("locale", locale)
	}
	return days, nil
}

// Units returns the unit labels in UnitNames order
func (m *Manager) Units(locale string) ([]string, error) {
	labels := make([]string, len(UnitNames))
	for i, name := range UnitNames {
		value, ok := m.lookup(locale, "units."+name).(string)
		if !ok {
			return nil, mdwerror.New("unit label not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("i18n.Units").
				WithDetail("locale", locale).
				WithDetail("unit", name)
		}
		labels[i] = value
	}
	return labels, nil
}

// HasLocale reports whether locale (normalized) was loaded
func (m *Manager) HasLocale(locale string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.translations[NormalizeLocale(locale)]
	return ok
}

// AvailableLocales returns the loaded locales in sorted order
func (m *Manager) AvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// DefaultLocale returns the fallback locale
func (m *Manager) DefaultLocale() string {
	return m.defaultLocale
}

func (m *Manager) lookup(locale, key string) interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, candidate := range m.fallbackChain(locale) {
		data, ok := m.translations[candidate]
		if !ok {
			continue
		}
		if value := nestedValue(data, key); value != nil {
			return value
		}
	}
	return nil
}

func (m *Manager) fallbackChain(locale string) []string {
	chain := make([]string, 0, 3)
	if normalized := NormalizeLocale(locale); normalized != "" {
		chain = append(chain, normalized)
		if language, country := SplitLocale(normalized); country != "" {
			chain = append(chain, language)
		}
	}
	return append(chain, m.defaultLocale)
}

func nestedValue(data map[string]interface{}, key string) interface{} {
	parts := strings.Split(key, ".")
	current := data
	for i, part := range parts {
		value, ok := current[part]
		if !ok {
			return nil
		}
		if i == len(parts)-1 {
			return value
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}
