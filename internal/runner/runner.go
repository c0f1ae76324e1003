// Package runner executes external programs as synchronous child processes,
// capturing output and enforcing an optional timeout.
package runner

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// StatusTimeout is reported when a child is killed because its timeout elapsed.
const StatusTimeout = 124

// Options controls a single child process invocation.
type Options struct {
	// Stdin, when non-nil, is written to the child's standard input and the
	// stream is closed. A nil Stdin leaves the child without input.
	Stdin *string

	// Timeout bounds the child's lifetime. Zero means no timeout.
	Timeout time.Duration

	// Dir is the working directory for the child. Empty means inherit.
	Dir string
}

// Result is the outcome of one invocation. A non-zero Status is a normal
// result, not an error; errors are reserved for spawn failures.
type Result struct {
	Status int
	Stdout string
	Stderr string
}

// Run spawns argv as a child process and blocks until it exits or the
// timeout elapses. On timeout the whole process group is killed and the
// result reports StatusTimeout with whatever output was captured; stderr is
// set to "Timeout expired" when the child produced none of its own.
func Run(argv []string, opts Options) (Result, error) {
	if len(argv) == 0 {
		return Result{}, errors.New("runner: empty command line")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = opts.Dir
	setProcAttr(cmd)

	if opts.Stdin != nil {
		cmd.Stdin = strings.NewReader(*opts.Stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Result{}, err
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	var timeoutCh <-chan time.Time
	if opts.Timeout > 0 {
		timer := time.NewTimer(opts.Timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	select {
	case waitErr := <-done:
		res := Result{
			Status: exitStatus(cmd, waitErr),
			Stdout: stdout.String(),
			Stderr: stderr.String(),
		}
		return res, nil

	case <-timeoutCh:
		killProcess(cmd)
		<-done // reap; buffers are not safe to read until Wait returns
		res := Result{
			Status: StatusTimeout,
			Stdout: stdout.String(),
			Stderr: stderr.String(),
		}
		if res.Stderr == "" {
			res.Stderr = "Timeout expired"
		}
		return res, nil
	}
}

// exitStatus extracts the child's exit code. A child killed by a signal
// reports -1 via ProcessState, which we pass through unchanged.
func exitStatus(cmd *exec.Cmd, waitErr error) int {
	if waitErr == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return exitErr.ExitCode()
	}
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	return -1
}
