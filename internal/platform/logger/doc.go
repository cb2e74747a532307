// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured logging
// with configurable level and output format, and carries request-scoped loggers
// through context.Context.
package logger
