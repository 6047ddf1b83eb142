// Package logger provides a small leveled logger shared by the game systems.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	// DEBUG level for verbose development information
	DEBUG LogLevel = iota
	// INFO level for general operational information
	INFO
	// WARN level for warning conditions
	WARN
	// ERROR level for error conditions
	ERROR
)

// String returns the string representation of a LogLevel
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a flag value like "debug" into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger writes prefixed messages at or above a minimum level.
// Children created with WithPrefix share the parent's output and lock.
type Logger struct {
	level  LogLevel
	prefix string
	out    *output
}

type output struct {
	mu      sync.Mutex
	logger  *log.Logger
	logFile *os.File
	now     func() time.Time
}

// New creates a new Logger writing to stdout
func New(level LogLevel, prefix string) *Logger {
	return &Logger{
		level:  level,
		prefix: prefix,
		out: &output{
			logger: log.New(os.Stdout, "", 0),
			now:    time.Now,
		},
	}
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	l := New(ERROR+1, "")
	l.out.logger.SetOutput(io.Discard)
	return l
}

// WithPrefix returns a child logger with its own component prefix.
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{level: l.level, prefix: prefix, out: l.out}
}

// SetOutput sets the output destination for the logger and all its children
func (l *Logger) SetOutput(w io.Writer) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	l.out.logger.SetOutput(w)
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

// Level returns the minimum level that is written.
func (l *Logger) Level() LogLevel {
	return l.level
}

// SetFile mirrors output into the given file in addition to stdout.
// An empty name restores stdout-only logging.
func (l *Logger) SetFile(filename string) error {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()

	if l.out.logFile != nil {
		l.out.logFile.Close()
		l.out.logFile = nil
	}

	if filename == "" {
		l.out.logger.SetOutput(os.Stdout)
		return nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.out.logFile = f
	l.out.logger.SetOutput(io.MultiWriter(os.Stdout, f))
	return nil
}

// Close releases the log file if one is open.
func (l *Logger) Close() error {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	if l.out.logFile == nil {
		return nil
	}
	err := l.out.logFile.Close()
	l.out.logFile = nil
	return err
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.out.mu.Lock()
	defer l.out.mu.Unlock()

	timestamp := l.out.now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	if l.prefix == "" {
		l.out.logger.Printf("[%s] [%s] %s", timestamp, level.String(), message)
		return
	}
	l.out.logger.Printf("[%s] [%s] %s: %s", timestamp, level.String(), l.prefix, message)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}
