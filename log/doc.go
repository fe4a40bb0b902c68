// Package log provides a thin structured logging layer over log/slog.
//
// A [Logger] wraps a slog.Logger with the package's configuration:
// minimum [Level] (including a trace level below debug), output [Format]
// (text or JSON), timestamp layout, caller info, and optional colorized
// pretty printing for terminals.
//
// The zero Logger is valid and discards everything, so library code can
// accept a Logger without nil checks. The package also maintains a default
// logger writing to standard error, reconfigured with [Config] and used by
// the package-level Debug, Info, Warn, and Error functions.
package log
