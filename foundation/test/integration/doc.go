// Package integration provides integration tests for the calendar foundation.
//
// Package: integration
// Title: Foundation Integration Tests
// Description: Verifies the interaction between the foundation modules:
//              configuration feeding the calendar, locale label sets feeding
//              unit tables, structured errors crossing module boundaries and
//              calendar debug output reaching the logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration test suite
// - 2025-08-02 v0.2.0: Rewritten around the calendar package
//
// Test Categories:
//
// Module Integration Tests (module_integration_test.go):
// - Configuration to calendar setup
// - Locale labels to unit tables and weekday names
// - Error codes preserved through wrapping across packages
// - Calendar logging through the structured logger
//
// Performance Tests (performance_test.go):
// - Formatting, parsing and duration rendering benchmarks
// - Concurrent use of a shared calendar
//
// Usage:
//
//	go test ./test/integration/...
//	go test -bench=. ./test/integration/...
package integration
