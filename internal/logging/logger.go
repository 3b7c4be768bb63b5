package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the level, format and sinks of the logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json or console
	File   string // optional path, rotated by lumberjack
	Env    string
}

// New constructs a zerolog logger. Defaults to JSON at info level on stdout.
// When a file is configured, records go to both stdout and the rotated file.
func New(opts Options) (zerolog.Logger, io.Closer) {
	return NewWithWriter(opts, os.Stdout)
}

// NewWithWriter is New with an explicit console writer, used by tests.
func NewWithWriter(opts Options, out io.Writer) (zerolog.Logger, io.Closer) {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level))); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}

	if strings.ToLower(strings.TrimSpace(opts.Format)) == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 7,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = zerolog.MultiLevelWriter(out, rotated)
		closer = rotated
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", "shareit").
		Str("env", opts.Env).
		Logger()

	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
