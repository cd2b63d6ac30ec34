// Package logging assembles structured slog loggers and formatting helpers used
// across trackmux.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so orchestration code can tag log
// lines with the run correlation ID and the current phase. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Logs go to stderr by default; stdout carries the run report and the output
// of streamed child processes.
package logging
