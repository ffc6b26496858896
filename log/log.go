package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	charmlog "charm.land/log/v2"
)

// Level represents the minimum severity a handler reports.
type Level string

const (
	// LevelDebug reports everything.
	LevelDebug Level = "debug"
	// LevelInfo reports info and above.
	LevelInfo Level = "info"
	// LevelWarn reports warnings and errors.
	LevelWarn Level = "warn"
	// LevelError reports errors only.
	LevelError Level = "error"
)

// Format represents the log output format.
type Format string

const (
	// FormatText outputs human-readable, styled logs.
	FormatText Format = "text"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// ParseLevel parses a log level string and returns the corresponding
// [Level].
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	return "", ErrUnknownLogLevel
}

// ParseFormat parses a log format string and returns the corresponding
// [Format].
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains([]Format{FormatText, FormatLogfmt, FormatJSON}, f) {
		return f, nil
	}

	return "", ErrUnknownLogFormat
}

// GetAllLevelStrings returns the accepted level strings in increasing
// severity.
func GetAllLevelStrings() []string {
	return []string{string(LevelDebug), string(LevelInfo), string(LevelWarn), string(LevelError)}
}

// GetAllFormatStrings returns the accepted format strings.
func GetAllFormatStrings() []string {
	return []string{string(FormatText), string(FormatLogfmt), string(FormatJSON)}
}

// NewLogger creates a charm logger writing to w with the specified level
// and format. Timestamps are omitted: the tools here are short-lived CLIs
// where they add noise, not context.
func NewLogger(w io.Writer, level Level, format Format) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmLevel(level),
		Formatter:       charmFormatter(format),
		ReportTimestamp: false,
	})
}

// NewHandler creates a [slog.Handler] with the specified level and format,
// rendering through the charm logger so [log/slog] records and direct
// logger calls share one sink.
func NewHandler(w io.Writer, level Level, format Format) slog.Handler {
	return NewLogger(w, level, format)
}

// NewHandlerFromStrings creates a [slog.Handler] by strings.
func NewHandlerFromStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	logFmt, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, logFmt), nil
}

func charmLevel(level Level) charmlog.Level {
	switch level {
	case LevelDebug:
		return charmlog.DebugLevel
	case LevelWarn:
		return charmlog.WarnLevel
	case LevelError:
		return charmlog.ErrorLevel
	case LevelInfo:
	}

	return charmlog.InfoLevel
}

func charmFormatter(format Format) charmlog.Formatter {
	switch format {
	case FormatLogfmt:
		return charmlog.LogfmtFormatter
	case FormatJSON:
		return charmlog.JSONFormatter
	case FormatText:
	}

	return charmlog.TextFormatter
}
