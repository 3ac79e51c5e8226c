// Package config loads TOML and YAML configuration files with environment
// variable overrides.
//
// Package: config
// Title: Configuration Management
// Description: Reads a configuration file (format detected from the extension),
//              exposes dot-notation getters with defaults, lets environment
//              variables override any key and validates values against simple
//              rules. Used by the calendar command to pick zone, layout and
//              locale.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-02 v0.2.0: Removed file watching and caches, added OneOf rules
//
// Example configuration (calendar.toml):
//
//	[calendar]
//	zone   = "Europe/Berlin"
//	layout = "AY(-)m-d H:i"
//	locale = "de"
//
//	[log]
//	level  = "debug"
//	format = "logfmt"
//
// With EnvPrefix "CALENDAR", the variable CALENDAR_CALENDAR_ZONE overrides
// calendar.zone.
package config
