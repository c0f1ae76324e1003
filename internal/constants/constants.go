// Package constants provides shared constants used across the application
// to avoid circular dependencies between packages.
package constants

import "time"

// Timeout constants used across the application
const (
	// DefaultBackendTimeout bounds a single backend CLI invocation.
	// External tools can reason for a while, so this is generous.
	DefaultBackendTimeout = 300 * time.Second
	// DefaultCommandTimeout is the timeout for gated shell command execution
	DefaultCommandTimeout = 30 * time.Second
)

// Application defaults
const (
	DefaultBackend      = "codex"
	DefaultCodexCLI     = "codex"
	DefaultCodexModel   = "gpt-5-codex"
	DefaultGeminiCLI    = "gemini"
	DefaultGeminiModel  = "gemini-1"
	DefaultApprovalMode = "suggest"
)

// Exit statuses reported for non-error outcomes of the execution core.
// 124 matches the convention of timeout(1); 125 marks a declined command.
const (
	StatusTimeout  = 124
	StatusRejected = 125
)
