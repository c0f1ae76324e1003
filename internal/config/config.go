// Package config loads backend configuration from environment variables, an
// optional YAML config file and built-in defaults, in that precedence order.
// All process-wide lookups live here so the execution core can be tested with
// injected configuration.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/fabianwinter93/pycodex/internal/constants"
)

// Environment variable names. These override any config file value.
const (
	EnvBackend        = "PYCODEX_BACKEND"
	EnvApproval       = "PYCODEX_APPROVAL"
	EnvNonInteractive = "PYCODEX_NONINTERACTIVE"

	EnvCodexCLI       = "PYCODEX_CODEX_CLI"
	EnvCodexModel     = "PYCODEX_CODEX_MODEL"
	EnvCodexSandbox   = "PYCODEX_CODEX_SANDBOX"
	EnvCodexFilesArg  = "PYCODEX_CODEX_FILES_ARG"
	EnvCodexSplitEdit = "PYCODEX_CODEX_SPLIT_EDIT"

	EnvGeminiCLI   = "PYCODEX_GEMINI_CLI"
	EnvGeminiModel = "PYCODEX_GEMINI_MODEL"
)

// Errors
var (
	ErrUnknownBackend = errors.New("unknown backend. Use 'codex' or 'gemini', or set PYCODEX_BACKEND")
)

// BackendConfig holds the settings for one external tool. Immutable after
// Validate; adapters read it, never write it.
type BackendConfig struct {
	// CLI is the binary name or path of the external tool
	CLI string
	// Model is passed via the tool's model flag when non-empty
	Model string
	// ApprovalMode is one of suggest, auto-edit, full-auto. Unrecognized
	// values are treated as suggest by the approval gate.
	ApprovalMode string
	// Sandbox is passed via the tool's sandbox flag when non-empty
	Sandbox string
	// FilesArg and SplitEdit are behavior toggles for the codex tool
	FilesArg  bool
	SplitEdit bool
}

// Config is the application configuration.
type Config struct {
	// Backend is the selected backend name ("codex" or "gemini")
	Backend string

	Codex  BackendConfig
	Gemini BackendConfig

	// NonInteractive marks contexts with no terminal to prompt on
	NonInteractive bool

	// BackendTimeout bounds one backend CLI invocation; zero disables it
	BackendTimeout time.Duration
	// CommandTimeout bounds one gated shell command
	CommandTimeout time.Duration

	// Flags
	Render      bool
	Interactive bool
}

// NewConfig creates an empty Config; call Validate to populate it.
func NewConfig() *Config {
	return &Config{}
}

// Validate fills the configuration from its sources. Fields already set (by
// CLI flags) win over environment variables, which win over the config file,
// which wins over defaults.
func (c *Config) Validate() error {
	// Environment layer
	if c.Backend == "" {
		c.Backend = os.Getenv(EnvBackend)
	}
	approvalEnv := os.Getenv(EnvApproval)
	if c.Codex.ApprovalMode == "" {
		c.Codex.ApprovalMode = approvalEnv
	}
	if c.Gemini.ApprovalMode == "" {
		c.Gemini.ApprovalMode = approvalEnv
	}
	if c.Codex.CLI == "" {
		c.Codex.CLI = os.Getenv(EnvCodexCLI)
	}
	if c.Codex.Model == "" {
		c.Codex.Model = os.Getenv(EnvCodexModel)
	}
	if c.Codex.Sandbox == "" {
		c.Codex.Sandbox = os.Getenv(EnvCodexSandbox)
	}
	if v, ok := os.LookupEnv(EnvCodexFilesArg); ok {
		c.Codex.FilesArg = truthy(v)
	}
	codexSplitEditSet := false
	if v, ok := os.LookupEnv(EnvCodexSplitEdit); ok {
		c.Codex.SplitEdit = truthy(v)
		codexSplitEditSet = true
	}
	if c.Gemini.CLI == "" {
		c.Gemini.CLI = os.Getenv(EnvGeminiCLI)
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = os.Getenv(EnvGeminiModel)
	}
	if os.Getenv(EnvNonInteractive) == "1" {
		c.NonInteractive = true
	}

	// Config file layer fills anything still empty. Load errors are treated
	// as no file: env vars and defaults carry the run.
	if fileConfig, err := LoadConfigFile(); err == nil {
		codexSplitEditSet = c.applyFileConfig(fileConfig, codexSplitEditSet)
	}

	// Defaults layer
	if c.Backend == "" {
		c.Backend = constants.DefaultBackend
	}
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend != "codex" && c.Backend != "gemini" {
		return ErrUnknownBackend
	}
	if c.Codex.CLI == "" {
		c.Codex.CLI = constants.DefaultCodexCLI
	}
	if c.Codex.Model == "" {
		c.Codex.Model = constants.DefaultCodexModel
	}
	if c.Codex.ApprovalMode == "" {
		c.Codex.ApprovalMode = constants.DefaultApprovalMode
	}
	if c.Gemini.CLI == "" {
		c.Gemini.CLI = constants.DefaultGeminiCLI
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = constants.DefaultGeminiModel
	}
	if c.Gemini.ApprovalMode == "" {
		c.Gemini.ApprovalMode = constants.DefaultApprovalMode
	}
	if !codexSplitEditSet {
		c.Codex.SplitEdit = true
	}
	if c.BackendTimeout == 0 {
		c.BackendTimeout = constants.DefaultBackendTimeout
	}
	if c.CommandTimeout == 0 {
		c.CommandTimeout = constants.DefaultCommandTimeout
	}

	return nil
}

// BackendFor returns the BackendConfig for a backend name.
func (c *Config) BackendFor(name string) (BackendConfig, bool) {
	switch strings.ToLower(name) {
	case "codex":
		return c.Codex, true
	case "gemini":
		return c.Gemini, true
	}
	return BackendConfig{}, false
}

// truthy reports whether an env toggle is set to an affirmative value.
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
