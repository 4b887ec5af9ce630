// Package logging assembles structured slog loggers and formatting helpers used
// across cdidc.
//
// It owns the console and JSON handlers and the level/output plumbing. Logs are
// written to stderr (plus an optional file) and never to stdout, which is
// reserved for disc identifiers so that `cdidc -b` stays scriptable. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
package logging
