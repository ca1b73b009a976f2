// Package logging provides a minimal logging interface and adapters for
// goalmesh.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the server and its components use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - ServerLogger with action/goal contextual helpers
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	srv, err := goalmesh.New("countdown", func(o *goalmesh.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
