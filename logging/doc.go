// Package logging builds the log/slog loggers used across axiom.
// Applications log JSON so reconciliation events can be collected; the command line
// tool logs human readable text to stderr.
package logging
