// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for the first matching
//              configuration file and loads it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-08-02 v0.2.0: Optional discovery falls back to Empty with defaults

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search
	Filenames  []string               // Base filenames without extension
	Extensions []string               // Extensions to try in order
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Defaults applied to the result
	Required   bool                   // Fail when no file is found
}

// DefaultDiscoveryOptions returns discovery options for the calendar command
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./config"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "calendar"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"calendar", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "",
		Required:   false,
	}
}

// FindConfigFile returns the first existing candidate path
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := candidatePaths(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", mdwerror.New("no configuration file found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", strings.Join(candidates, ", "))
}

// Discover finds and loads a configuration file. When none exists and the
// file is optional, an empty configuration with defaults is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return Empty(options.EnvPrefix, options.Defaults), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "found config file but failed to load it").
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

func candidatePaths(options DiscoveryOptions) []string {
	paths := options.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	filenames := options.Filenames
	if len(filenames) == 0 {
		filenames = []string{"config"}
	}
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml"}
	}

	result := make([]string, 0, len(paths)*len(filenames)*len(extensions))
	for _, path := range paths {
		for _, filename := range filenames {
			for _, ext := range extensions {
				result = append(result, filepath.Join(path, filename+ext))
			}
		}
	}
	return result
}
