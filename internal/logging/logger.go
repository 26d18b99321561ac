// Package logging builds the zerolog logger used across lsnote.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"

	"github.com/bral/lsnote/internal/config"
)

// New returns a logger configured from cfg and the debug flag, plus a
// closer for the rotating log file (a no-op when file logging is off).
//
// Without a log file, logs go to stderr in debug mode and nowhere otherwise.
// With a log file, logs always go to the file and are mirrored to stderr in
// debug mode.
func New(debug bool, cfg config.LogConfig) (zerolog.Logger, io.Closer) {
	var output io.Writer = io.Discard
	var closer io.Closer = nopCloser{}

	if debug {
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	if cfg.File != "" {
		fileLogger := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays, // days
			Compress:   cfg.Compress,
		}
		closer = fileLogger
		if debug {
			output = io.MultiWriter(fileLogger, output)
		} else {
			output = fileLogger
		}
	}

	return NewLogger(debug, output), closer
}

// NewLogger creates a zerolog logger writing to output at info level, or
// debug level when debug is set.
func NewLogger(debug bool, output io.Writer) zerolog.Logger {
	if output == nil {
		output = os.Stderr
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
