// Package i18n provides localized label sets for calendar output.
//
// Package: i18n
// Title: Localized Labels
// Description: Loads locale files (TOML or YAML) from an embedded set and an
//              optional directory. Each locale carries the unit names used by
//              duration formatting, the seven weekday names (Sunday first) and
//              a handful of display strings. Lookups fall back from a regional
//              locale to its base language and then to the default locale.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML message catalogs
// - 2025-08-02 v0.2.0: Embedded calendar locales, typed unit and weekday lookups
//
// Locale file layout (en.toml):
//
//	weekdays = ["Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"]
//
//	[units]
//	second = " sec"
//	minute = " min"
//	...
//
//	[info]
//	zone = "Zone"
package i18n
