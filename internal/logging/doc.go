// Package logging assembles structured slog loggers and formatting helpers used
// across textprep.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and tags records with the component that emitted them and the
// batch run they belong to. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so both pipelines emit
// log lines with the same shape.
package logging
