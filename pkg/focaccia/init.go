// Package focaccia provides keyboard navigation and focus management for
// accessible UI surfaces: roving tab stops, typeahead matching, screen reader
// announcements, and modal focus traps.
//
// The package is renderer-agnostic. Hosts supply Element and Document
// implementations for whatever actually holds focus (DOM nodes behind a
// bridge, SDL widgets, terminal cells) and feed key events through one of the
// input adapters (sdlinput, evdevinput, teainput) or by constructing Events
// directly.
package focaccia

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/focaccia/pkg/focaccia/internal"
	"github.com/BrandonKowalski/focaccia/pkg/focaccia/internal/locale"
)

// Init applies global configuration: logging and announcement languages.
// Call once before constructing controllers. Safe to skip entirely when the
// defaults (error-level logging to stdout, English announcements) suffice.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv("FOCACCIA_DEBUG") != "" {
		internal.SetLogLevel(slog.LevelDebug)
	} else if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if len(options.Languages) > 0 {
		locale.SetLanguages(options.Languages...)
	}
}

// Close flushes and releases the log file. Call before program exit.
func Close() {
	internal.CloseLogger()
}

// GetLogger returns the package logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetMessageBytes loads additional announcement translations from TOML bytes.
// path supplies the virtual filename whose extension and language tag the
// loader uses (e.g., "it.toml").
func SetMessageBytes(data []byte, path string) error {
	return locale.LoadMessageBytes(data, path)
}
