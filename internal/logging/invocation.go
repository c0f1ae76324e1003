package logging

import (
	"strings"
	"time"
)

// maxStderrField caps how much captured stderr is attached to a log entry.
const maxStderrField = 2000

// InvocationLogger records subprocess invocations for debugging: the exact
// command line, exit status and duration, plus a bounded stderr excerpt.
type InvocationLogger struct {
	logger *Logger
}

// NewInvocationLogger creates an InvocationLogger backed by the given Logger
func NewInvocationLogger(logger *Logger) *InvocationLogger {
	if logger == nil {
		logger = DefaultLogger
	}
	return &InvocationLogger{logger: logger}
}

// LogStart logs the command line about to be spawned
func (il *InvocationLogger) LogStart(argv []string, stdinBytes int) {
	il.logger.Debug("spawning subprocess", Fields{
		"cmd":   strings.Join(argv, " "),
		"stdin": stdinBytes,
	})
}

// LogDone logs the outcome of a completed invocation
func (il *InvocationLogger) LogDone(argv []string, status int, stderr string, elapsed time.Duration) {
	fields := Fields{
		"cmd":      strings.Join(argv, " "),
		"status":   status,
		"duration": elapsed.Round(time.Millisecond).String(),
	}
	if stderr = strings.TrimSpace(stderr); stderr != "" {
		if len(stderr) > maxStderrField {
			stderr = stderr[:maxStderrField] + "...[truncated]"
		}
		fields["stderr"] = stderr
	}
	if status == 0 {
		il.logger.Debug("subprocess finished", fields)
	} else {
		il.logger.Warn("subprocess finished with non-zero status", fields)
	}
}
