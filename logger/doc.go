// Package logger provides structured logging for svckit built on zerolog.
//
// The registry and observability packages log through this facade so that
// embedding applications can swap level, format and destination from one
// Config. A Nop logger is available for tests and for consumers that want
// the registry silent.
package logger
