// Package logging provides leveled structured logging for the CLI.
//
// Loggers write human-readable text by default and JSON when asked, carry
// optional structured fields, and are safe for concurrent use. Subprocess
// invocations get their own helper, see invocation.go.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents a logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelNone disables all logging
	LevelNone
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level, defaulting to Info
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Format represents the output format
type Format int

const (
	// FormatText outputs human-readable text
	FormatText Format = iota
	// FormatJSON outputs machine-readable JSON
	FormatJSON
)

// Fields is a map of structured log fields
type Fields map[string]interface{}

// Entry is a single rendered log record
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Fields    Fields    `json:"fields,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Options configures a Logger
type Options struct {
	Level  Level
	Format Format
	Output io.Writer
}

// Logger writes leveled, structured log entries
type Logger struct {
	mu     sync.Mutex
	level  Level
	format Format
	output io.Writer
}

// DefaultLogger is a package-level logger for convenience
var DefaultLogger = New(Options{Level: LevelWarn, Output: os.Stderr})

// New creates a Logger with the given options
func New(opts Options) *Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	return &Logger{level: opts.Level, format: opts.Format, output: opts.Output}
}

// SetLevel changes the log level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput changes the output writer
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...Fields) { l.log(LevelDebug, msg, nil, fields...) }

// Info logs an info message
func (l *Logger) Info(msg string, fields ...Fields) { l.log(LevelInfo, msg, nil, fields...) }

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...Fields) { l.log(LevelWarn, msg, nil, fields...) }

// Error logs an error message
func (l *Logger) Error(msg string, err error, fields ...Fields) {
	l.log(LevelError, msg, err, fields...)
}

func (l *Logger) log(level Level, msg string, err error, fields ...Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	entry := Entry{
		Timestamp: time.Now(),
		Level:     level.String(),
		Message:   msg,
	}
	if len(fields) > 0 {
		merged := make(Fields)
		for _, f := range fields {
			for k, v := range f {
				merged[k] = v
			}
		}
		entry.Fields = merged
	}
	if err != nil {
		entry.Error = err.Error()
	}

	if l.format == FormatJSON {
		fmt.Fprintln(l.output, formatJSON(entry))
	} else {
		fmt.Fprintln(l.output, formatText(entry))
	}
}

func formatJSON(entry Entry) string {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal log entry: %s"}`, err.Error())
	}
	return string(data)
}

func formatText(entry Entry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s: %s",
		entry.Timestamp.Format("2006-01-02 15:04:05.000"), entry.Level, entry.Message))
	if entry.Error != "" {
		sb.WriteString(fmt.Sprintf(" error=%q", entry.Error))
	}
	// Stable field order keeps text output diffable
	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf(" %s=%v", k, entry.Fields[k]))
	}
	return sb.String()
}

// Package-level convenience functions using DefaultLogger

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...Fields) { DefaultLogger.Debug(msg, fields...) }

// Info logs an info message using the default logger
func Info(msg string, fields ...Fields) { DefaultLogger.Info(msg, fields...) }

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...Fields) { DefaultLogger.Warn(msg, fields...) }

// Error logs an error message using the default logger
func Error(msg string, err error, fields ...Fields) { DefaultLogger.Error(msg, err, fields...) }

// SetLevel sets the level of the default logger
func SetLevel(level Level) { DefaultLogger.SetLevel(level) }
