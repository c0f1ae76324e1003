package backend

import (
	"os/exec"
	"strings"
	"time"

	"github.com/fabianwinter93/pycodex/internal/logging"
	"github.com/fabianwinter93/pycodex/internal/runner"
)

// ensureAvailable verifies the configured binary resolves on PATH. The
// construction-time result is cached when positive; a negative result is
// re-checked on every call so installing the tool mid-session takes effect.
func (t *tool) ensureAvailable() error {
	if t.available {
		return nil
	}
	if _, err := exec.LookPath(t.bc.CLI); err != nil {
		return &NotFoundError{Backend: t.name, Binary: t.bc.CLI, EnvHint: t.envHint}
	}
	return nil
}

// invoke runs argv with the composed prompt on stdin, recording the
// invocation. Spawn failures surface as errors; exit statuses do not.
func (t *tool) invoke(argv []string, stdin string) (runner.Result, error) {
	il := logging.NewInvocationLogger(t.log)
	il.LogStart(argv, len(stdin))
	start := time.Now()

	res, err := runner.Run(argv, runner.Options{Stdin: &stdin, Timeout: t.backendTimeout})
	if err != nil {
		return res, err
	}
	il.LogDone(argv, res.Status, res.Stderr, time.Since(start))
	return res, nil
}

// failureOutput picks the diagnostic text for an ExecutionError: trimmed
// stderr, falling back to stdout when the tool wrote its complaint there.
func failureOutput(res runner.Result) string {
	if out := strings.TrimSpace(res.Stderr); out != "" {
		return out
	}
	return strings.TrimSpace(res.Stdout)
}

// invocationLog is the Result.Log trace: exact command line plus file log.
func invocationLog(argv []string, fileLog string) string {
	return "cmd=" + strings.Join(argv, " ") + "\n" + fileLog
}
