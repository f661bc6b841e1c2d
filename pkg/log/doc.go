// Package log provides the logging abstraction used by glotctl
// components.
//
// The Logger interface can be implemented by any logging library. A
// zerolog-backed implementation and a no-op logger for tests are
// provided:
//
//	logger := log.NewZerologLogger(zerolog.New(os.Stderr))
//	logger := log.NewNoopLogger()
package log
