// File: validation.go
// Title: Configuration Validation
// Description: Rule based validation of configuration values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-08-02 v0.2.0: Added OneOf, validation no longer writes defaults

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	mdwerror "github.com/msto63/calendar/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // "string", "int", "bool" or "[]string"
	Pattern  string   // Regex the string value must match
	OneOf    []string // Allowed string values (case-insensitive)
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into a structured error, nil when valid
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("configuration validation failed: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate")
}

// Validate validates the configuration against the provided rules. Errors
// are reported in key order.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	c.mu.RLock()
	value := c.getValue(key)
	envValue, fromEnv := c.getEnvValue(key)
	c.mu.RUnlock()

	if fromEnv {
		value = envValue
	}

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if rule.Type != "" && !fromEnv {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if rule.Pattern != "" {
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' pattern validation requires string value", key)
		}
		regex, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("invalid regex pattern for field '%s': %w", key, err)
		}
		if !regex.MatchString(str) {
			return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, str, rule.Pattern)
		}
	}

	if len(rule.OneOf) > 0 {
		str := fmt.Sprintf("%v", value)
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(str, allowed) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' value '%s' must be one of %s", key, str, strings.Join(rule.OneOf, ", "))
	}

	return nil
}

func validateType(key string, value interface{}, expectedType string) error {
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
	case "int":
		switch v := value.(type) {
		case int, int64:
		case float64:
			if v != float64(int64(v)) {
				return fmt.Errorf("field '%s' must be an integer, got float with decimal places", key)
			}
		default:
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	case "[]string":
		switch v := value.(type) {
		case []string:
		case []interface{}:
			for _, item := range v {
				if _, ok := item.(string); !ok {
					return fmt.Errorf("field '%s' must be a slice of strings", key)
				}
			}
		default:
			return fmt.Errorf("field '%s' must be a slice of strings, got %T", key, value)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", expectedType)
	}
	return nil
}
