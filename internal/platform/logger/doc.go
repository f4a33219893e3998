// Package logger provides structured logging functionality for the
// application, built on log/slog with JSON output and context-scoped
// logger propagation.
package logger
