package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// New creates a structured logger writing to w.
//
// Parameters:
//   - w: the destination
//   - level: the minimum level, case-insensitive
//   - format: text or json
//
// Returns:
//   - *slog.Logger: the logger
//   - error: an error if the level or format is unknown
//
// Example:
//
//	logger, err := log.New(os.Stderr, "debug", log.FormatText)
//	if err != nil {
//	  return err
//	}
//	logger.Info("connected")
func New(w io.Writer, level string, format Format) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case FormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", format)
	}
}

func parseLevel(level string) (slog.Level, error) {
	switch Level(strings.ToUpper(level)) {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo, "":
		return slog.LevelInfo, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ErrorHandler returns the default connection failure handler.
// It logs the error and leaves the decision to abort to the caller.
func ErrorHandler(logger *slog.Logger) func(error) {
	return func(err error) {
		logger.LogAttrs(context.Background(), slog.LevelError, "database connection failed",
			slog.Any("error", err),
		)
	}
}
