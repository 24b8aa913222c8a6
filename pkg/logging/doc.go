// Package logging provides structured logging utilities shared by the
// cookierc CLI and library packages.
//
// It wraps the standard library slog package with project defaults:
// JSON output to stderr, module/version context on every entry,
// LOG_LEVEL environment-based configuration, and source location
// tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("cookierc", version)
//
//	    slog.Info("loading record", "path", path)
//	    slog.Error("load failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cookierc", version, "debug")
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given (debug, info, warn, error; default info):
//
//	LOG_LEVEL=debug cookierc show .cookiecutterrc
package logging
