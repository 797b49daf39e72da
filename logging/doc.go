// Package logging provides a minimal logging interface and adapters for toolcheck.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that checkers, judges and the batch runner use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - EvalLogger with evaluation specific helpers (checks, judge calls, runs)
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	ev := toolcheck.New(func(o *toolcheck.Options) { o.Logger = logger })
package logging
