// Package logging assembles structured slog loggers and formatting helpers used
// across Lectern.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so generator and export code can
// tag log lines with slot indexes, topic types, and session IDs. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
package logging
