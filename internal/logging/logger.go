// Package logging provides structured logging for savemsg.
// It uses zerolog for structured JSON logging and supports log rotation.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps zerolog.Logger with lifecycle management for the log file.
type Logger struct {
	zerolog.Logger
	fileWriter io.WriteCloser
}

// Config holds logging configuration
type Config struct {
	// LogFile is the path to the log file
	LogFile string
	// Verbosity level: 0=ERROR+WARN, 1=INFO (-v), 2=DEBUG (-vv)
	Verbosity int
	// ConsoleOutput enables console output to stderr
	ConsoleOutput bool
}

// DefaultLogFile returns the default log file path (savemsg.log next to the binary)
func DefaultLogFile() string {
	exe, err := os.Executable()
	if err != nil {
		return "savemsg.log"
	}
	return filepath.Join(filepath.Dir(exe), "savemsg.log")
}

// levelFilterWriter wraps an io.Writer and filters based on log level
type levelFilterWriter struct {
	w     io.Writer
	level zerolog.Level
}

func (lfw levelFilterWriter) Write(p []byte) (n int, err error) {
	return lfw.w.Write(p)
}

func (lfw levelFilterWriter) WriteLevel(level zerolog.Level, p []byte) (n int, err error) {
	if level >= lfw.level {
		return lfw.w.Write(p)
	}
	return len(p), nil
}

// New creates a new Logger with the given configuration.
// It sets up file logging with rotation and optional console output.
func New(cfg Config) (*Logger, error) {
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile()
	}

	// Rotates when max size is reached, keeps 7 backups, max age 7 days
	fileLogger := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 7,
		MaxAge:     7, // days
		Compress:   false,
		LocalTime:  true,
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	var writers []io.Writer

	// File writer always logs DEBUG and above (everything)
	writers = append(writers, levelFilterWriter{w: fileLogger, level: zerolog.DebugLevel})

	if cfg.ConsoleOutput {
		consoleLevel := zerolog.WarnLevel // Default: ERROR + WARN
		switch {
		case cfg.Verbosity == 1:
			consoleLevel = zerolog.InfoLevel // -v: INFO and above
		case cfg.Verbosity >= 2:
			consoleLevel = zerolog.DebugLevel // -vv: DEBUG and above
		}

		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		}

		writers = append(writers, levelFilterWriter{w: consoleWriter, level: consoleLevel})
	}

	multi := zerolog.MultiLevelWriter(writers...)
	logger := zerolog.New(multi).With().Timestamp().Logger()

	return &Logger{
		Logger:     logger,
		fileWriter: fileLogger,
	}, nil
}

// Close closes the log file writer
func (l *Logger) Close() error {
	if l.fileWriter != nil {
		return l.fileWriter.Close()
	}
	return nil
}

// Global logger instance
var globalLogger *Logger

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	logger, err := New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	globalLogger = logger
	return nil
}

// Get returns the global logger
func Get() *Logger {
	if globalLogger == nil {
		// Create a default logger if not initialized
		globalLogger, _ = New(Config{
			LogFile:       DefaultLogFile(),
			Verbosity:     0,
			ConsoleOutput: false,
		})
	}
	return globalLogger
}

// Close closes the global logger
func Close() error {
	if globalLogger != nil {
		return globalLogger.Close()
	}
	return nil
}

// Debug logs a debug message using the global logger
func Debug() *zerolog.Event {
	return Get().Logger.Debug()
}

// Info logs an info message using the global logger
func Info() *zerolog.Event {
	return Get().Logger.Info()
}

// Warn logs a warning message using the global logger
func Warn() *zerolog.Event {
	return Get().Logger.Warn()
}

// Error logs an error message using the global logger
func Error() *zerolog.Event {
	return Get().Logger.Error()
}
