// Package logging assembles structured slog loggers and formatting helpers used
// across quotefmt.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so workbench actions can tag log
// lines with a correlation ID. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Logs are written to stderr by default so stdout stays reserved for
// formatted output.
package logging
