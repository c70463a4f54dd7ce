package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

// Interface is the logging behaviour consumers depend upon.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	// The log level of the logger
	Level string
	// Path of a file to append log records to. Empty disables the file.
	Path string
	// Any additional writers the log handler should write to.
	AdditionalWriters []io.Writer
}

// Logger wraps slog, keeping a bounded history of the records it has emitted
// for display within the terminal UI.
type Logger struct {
	logger *slog.Logger
	writer *writer
	file   *os.File
}

// NewLogger constructs Logger. The terminal is owned by the UI, so records
// only go to the in-memory history, the optional file, and any additional
// writers.
func NewLogger(opts Options) (*Logger, error) {
	logger := &Logger{writer: &writer{max: maxMessages}}

	writers := append([]io.Writer{logger.writer}, opts.AdditionalWriters...)
	if opts.Path != "" {
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		logger.file = f
		writers = append(writers, f)
	}

	level, ok := levels[opts.Level]
	if !ok {
		level = levels[DefaultLevel]
	}
	handler := slog.NewTextHandler(
		io.MultiWriter(writers...),
		&slog.HandlerOptions{Level: level},
	)
	logger.logger = slog.New(handler)

	return logger, nil
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

func (l *Logger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

func (l *Logger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// With returns a logger whose records carry the given attributes.
func (l *Logger) With(args ...any) Interface {
	return &Logger{logger: l.logger.With(args...), writer: l.writer}
}

// Messages lists the log messages received thus far, oldest first.
func (l *Logger) Messages() []Message {
	return l.writer.list()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
