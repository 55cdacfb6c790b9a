// Package logger owns the process-wide zerolog setup: global level, output
// format and time encoding. Components receive a zerolog.Logger value from
// bootstrap; the package-level event helpers exist for code that runs before
// dependency wiring, such as main.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel names a verbosity level in configuration form.
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

// zerologLevel maps the configuration name onto zerolog's level, falling back
// to info for unknown names.
func (l LogLevel) zerologLevel() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Config selects how log output is produced.
type Config struct {
	Level  LogLevel
	Pretty bool      // human-readable console output instead of JSON
	Output io.Writer // defaults to os.Stdout
}

var defaultLogger zerolog.Logger

// Configure applies the configuration globally and returns the configured
// logger for injection into the application components.
func Configure(cfg Config) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(cfg.Level.zerologLevel())

	var writer io.Writer = cfg.Output
	if cfg.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: time.RFC3339,
		}
	}

	defaultLogger = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = defaultLogger
	return defaultLogger
}

// Debug starts a debug-level event on the default logger.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts an info-level event on the default logger.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a warn-level event on the default logger.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts an error-level event on the default logger.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// Fatal starts a fatal-level event on the default logger.
func Fatal() *zerolog.Event {
	return defaultLogger.Fatal()
}

func init() {
	// Pretty info logging until bootstrap applies the real configuration.
	Configure(Config{
		Level:  InfoLevel,
		Pretty: true,
	})
}
