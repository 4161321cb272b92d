// Package logging assembles the structured slog loggers used by the
// txt2epub command.
//
// It owns the console and JSON handlers and the level and format plumbing.
// The "auto" format picks the console handler when the output is a terminal
// and JSON otherwise, so piped runs stay machine-readable.
package logging
