// Package logging provides structured logging for anitya components.
//
// It wraps the standard library slog package with shared defaults:
// JSON output to stderr, module/version context on every record,
// LOG_LEVEL environment configuration and source location tracking on
// debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("anitya", version)
//
//	    slog.Info("checking project", "project", "curl", "scheme", "rpm")
//	    slog.Error("check failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("anityad", "v1.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// The LOG_LEVEL environment variable controls verbosity when no
// explicit level is given:
//
//	LOG_LEVEL=debug anitya check --config projects.yaml
//
// Supported levels, case-insensitive: DEBUG, INFO (default), WARN or
// WARNING, ERROR.
package logging
