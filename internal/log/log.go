// Package log configures the process-wide slog logger for the CLI.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	charmlog "charm.land/log/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs the default slog logger and returns it. With a log file
// the records are written as JSON through a rotating writer; otherwise
// they go to console in a human readable form.
func Setup(console io.Writer, logFile string, debug bool) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var (
		handler slog.Handler
		closer  io.Closer = nopCloser{}
	)
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o700); err != nil {
			return nil, nil, err
		}
		logRotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // Max size in MB
			MaxBackups: 0,  // Number of backups
			MaxAge:     30, // Days
			Compress:   false,
		}
		handler = slog.NewJSONHandler(logRotator, &slog.HandlerOptions{Level: level})
		closer = logRotator
	} else {
		charmLevel := charmlog.InfoLevel
		if debug {
			charmLevel = charmlog.DebugLevel
		}
		handler = charmlog.NewWithOptions(console, charmlog.Options{
			Level:           charmLevel,
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "abortguard",
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
