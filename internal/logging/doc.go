// Package logging centralizes slog construction for scriptscan.
//
// Two output formats are supported: a compact console format for
// interactive use and JSON for machine consumption. Loggers write to
// stderr by default so the scan report on stdout stays parseable.
package logging
