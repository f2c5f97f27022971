// Package logging assembles structured slog loggers and formatting helpers used
// across levain.
//
// It owns the console and JSON handlers, the level and output plumbing, and
// helpers that tag records with a component name and a per-invocation session
// ID. A no-op logger is provided for tests and wiring code that cannot fail.
//
// Logs go to stderr (and an optional file) so that command output on stdout
// stays clean for piping.
package logging
