// File: locale.go
// Title: Locale Helpers
// Description: Normalization and splitting of locale identifiers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-01-25
// Modified: 2025-01-25
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation

package i18n

import (
	"strings"
)

// NormalizeLocale normalizes a locale string: "zh_cn" -> "zh-CN", "EN" -> "en".
// Invalid input yields an empty string.
func NormalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		return ""
	}

	parts := strings.Split(strings.ReplaceAll(locale, "_", "-"), "-")

	language := parts[0]
	if len(language) != 2 && len(language) != 3 {
		return ""
	}

	if len(parts) > 1 && len(parts[1]) == 2 {
		return language + "-" + strings.ToUpper(parts[1])
	}

	return language
}

// SplitLocale splits a locale into language and country parts
func SplitLocale(locale string) (language, country string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}

	parts := strings.Split(normalized, "-")
	language = parts[0]
	if len(parts) > 1 {
		country = parts[1]
	}
	return language, country
}
