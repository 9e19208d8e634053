package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config holds logger configuration
type Config struct {
	Level      string    // debug, info, warn, error
	JSONFormat bool      // JSON lines instead of key=value text
	Output     io.Writer // defaults to stderr; stdout carries the report
}

// DefaultConfig returns a quiet configuration that only reports problems
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Output: os.Stderr,
	}
}

// ParseLevel converts a config level name into a logrus level
func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "", "warn", "warning":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.WarnLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// New creates a logger for the given configuration
func New(config Config) (*logrus.Logger, error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)

	if config.Output != nil {
		logger.SetOutput(config.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if config.JSONFormat {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}

	return logger, nil
}

// Discard returns a logger that drops everything, for tests and library use
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
