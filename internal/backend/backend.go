// Package backend wraps external AI coding-assistant CLIs behind one uniform
// interface. Each supported tool gets its own adapter; adapters are selected
// by name at construction and share the invocation plumbing in invoke.go.
package backend

import (
	"strings"
	"time"

	"github.com/fabianwinter93/pycodex/internal/config"
	"github.com/fabianwinter93/pycodex/internal/executor"
	"github.com/fabianwinter93/pycodex/internal/logging"
)

// Result is the parsed outcome of a generate, explain or edit operation.
type Result struct {
	// Code is the content of the first fenced block, possibly empty
	Code string
	// Text is everything outside the fenced block, possibly empty
	Text string
	// Log records the exact command line and the file-inclusion log
	Log string
}

// Backend is the uniform contract over external tools.
type Backend interface {
	// Generate sends a prompt, optionally augmented with file context
	Generate(prompt string, files []string) (*Result, error)
	// Explain asks the tool to explain a piece of code
	Explain(code string) (*Result, error)
	// Edit asks the tool to rewrite code per the instructions
	Edit(code, instructions string) (*Result, error)
	// ExecCommand runs a shell command through the approval gate
	ExecCommand(command string, safe bool) (executor.CommandResult, error)
}

// Options carries the interactive collaborators an adapter needs.
type Options struct {
	// Confirm asks the user to approve a gated command; nil means default-no
	Confirm func(string) bool
	// Logger receives invocation records; nil uses the package default
	Logger *logging.Logger
}

// New selects a backend adapter by name. The adapter checks binary
// availability at construction and again lazily before each operation, so a
// tool installed after startup is picked up without a restart.
func New(name string, cfg *config.Config, opts Options) (Backend, error) {
	if opts.Logger == nil {
		opts.Logger = logging.DefaultLogger
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "codex":
		return newCodexBackend(cfg, opts), nil
	case "gemini":
		return newGeminiBackend(cfg, opts), nil
	}
	return nil, config.ErrUnknownBackend
}

// tool holds the state shared by all adapters. Immutable after construction;
// concurrent operations on one adapter are independent.
type tool struct {
	name           string
	bc             config.BackendConfig
	envHint        string
	nonInteractive bool
	backendTimeout time.Duration
	commandTimeout time.Duration
	confirm        func(string) bool
	log            *logging.Logger
	available      bool
}

// ExecCommand delegates to the approval gate and then the process runner.
func (t *tool) ExecCommand(command string, safe bool) (executor.CommandResult, error) {
	if err := t.ensureAvailable(); err != nil {
		return executor.CommandResult{}, err
	}
	return executor.ExecShell(command, safe, executor.ParseMode(t.bc.ApprovalMode), executor.ShellOptions{
		NonInteractive: t.nonInteractive,
		Confirm:        t.confirm,
		Timeout:        t.commandTimeout,
		Logger:         t.log,
	})
}
