package cmd

import (
	"testing"

	"github.com/fabianwinter93/pycodex/internal/backend"
	"github.com/fabianwinter93/pycodex/internal/config"
	"github.com/fabianwinter93/pycodex/internal/executor"
)

// mockBackend implements backend.Backend and records the last call.
type mockBackend struct {
	lastOp      string
	lastPrompt  string
	lastFiles   []string
	lastCommand string
	lastSafe    bool
}

func (m *mockBackend) Generate(prompt string, files []string) (*backend.Result, error) {
	m.lastOp, m.lastPrompt, m.lastFiles = "generate", prompt, files
	return &backend.Result{Text: "ok"}, nil
}

func (m *mockBackend) Explain(code string) (*backend.Result, error) {
	m.lastOp, m.lastPrompt = "explain", code
	return &backend.Result{Text: "ok"}, nil
}

func (m *mockBackend) Edit(code, instructions string) (*backend.Result, error) {
	m.lastOp, m.lastPrompt = "edit", code
	return &backend.Result{Code: code}, nil
}

func (m *mockBackend) ExecCommand(command string, safe bool) (executor.CommandResult, error) {
	m.lastOp, m.lastCommand, m.lastSafe = "exec", command, safe
	return executor.CommandResult{Status: 0}, nil
}

func testApp() (*App, *mockBackend) {
	mock := &mockBackend{}
	app := &App{
		cfg: &config.Config{
			Backend: "codex",
			Codex:   config.BackendConfig{CLI: "codex", Model: "gpt-5-codex", ApprovalMode: "suggest"},
			Gemini:  config.BackendConfig{CLI: "gemini", Model: "gemini-1", ApprovalMode: "suggest"},
		},
		backend: mock,
	}
	return app, mock
}

func TestApplyFlagOverrides(t *testing.T) {
	app, _ := testApp()
	app.modelFlag = "gpt-6"
	app.approvalFlag = "full-auto"

	app.applyFlagOverrides()

	if app.cfg.Codex.Model != "gpt-6" {
		t.Errorf("Codex.Model = %q, want flag value", app.cfg.Codex.Model)
	}
	if app.cfg.Codex.ApprovalMode != "full-auto" {
		t.Errorf("Codex.ApprovalMode = %q, want flag value", app.cfg.Codex.ApprovalMode)
	}
	if app.cfg.Gemini.Model != "gemini-1" {
		t.Errorf("Gemini.Model = %q, flags must only touch the selected backend", app.cfg.Gemini.Model)
	}
}

func TestSelectedBackendConfig(t *testing.T) {
	app, _ := testApp()

	if app.selectedBackendConfig() != &app.cfg.Codex {
		t.Error("expected codex config for backend codex")
	}
	app.cfg.Backend = "gemini"
	if app.selectedBackendConfig() != &app.cfg.Gemini {
		t.Error("expected gemini config for backend gemini")
	}
}

func TestNeedsApproval(t *testing.T) {
	tests := []struct {
		command string
		want    bool
	}{
		// Read-only commands run immediately.
		{"ls", false},
		{"ls -la", false},
		{"git status", false},
		// Anything that can change state goes through the gate.
		{"touch /tmp/marker", true},
		{"rm -rf /tmp/scratch", true},
		{"git push", true},
		{"ls; rm -rf /tmp/scratch", true},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			if got := needsApproval(tt.command); got != tt.want {
				t.Errorf("needsApproval(%q) = %v, want %v", tt.command, got, tt.want)
			}
		})
	}
}

func TestSessionShellEscape(t *testing.T) {
	app, mock := testApp()
	s := &InteractiveSession{app: app}

	s.executor("!ls -la")

	if mock.lastOp != "exec" {
		t.Fatalf("lastOp = %q, want exec", mock.lastOp)
	}
	if mock.lastCommand != "ls -la" {
		t.Errorf("lastCommand = %q, want %q", mock.lastCommand, "ls -la")
	}
	if !mock.lastSafe {
		t.Error("shell escape must go through the approval gate")
	}
}

func TestSessionPlainInputGenerates(t *testing.T) {
	app, mock := testApp()
	s := &InteractiveSession{app: app}

	s.executor("write a fizzbuzz")

	if mock.lastOp != "generate" {
		t.Fatalf("lastOp = %q, want generate", mock.lastOp)
	}
	if mock.lastPrompt != "write a fizzbuzz" {
		t.Errorf("lastPrompt = %q", mock.lastPrompt)
	}
}

func TestSessionMultilineContinuation(t *testing.T) {
	app, mock := testApp()
	s := &InteractiveSession{app: app}

	s.executor("first line\\")
	if mock.lastOp != "" {
		t.Fatalf("continuation line must not trigger a backend call, got %q", mock.lastOp)
	}
	s.executor("second line")

	if mock.lastPrompt != "first line\nsecond line" {
		t.Errorf("lastPrompt = %q, want joined lines", mock.lastPrompt)
	}
}

func TestHandleCommand(t *testing.T) {
	tests := []struct {
		input    string
		wantExit bool
	}{
		{"/exit", true},
		{"/q", true},
		{"/quit", true},
		{"/help", false},
		{"/model", false},
		{"/bogus", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			app, _ := testApp()
			s := &InteractiveSession{app: app}
			if got := s.handleCommand(tt.input); got != tt.wantExit {
				t.Errorf("handleCommand(%q) = %v, want %v", tt.input, got, tt.wantExit)
			}
		})
	}
}

func TestHandleCommandSwitchesBackend(t *testing.T) {
	app, _ := testApp()
	s := &InteractiveSession{app: app}

	s.handleCommand("/backend gemini")
	if app.cfg.Backend != "gemini" {
		t.Errorf("Backend = %q, want gemini", app.cfg.Backend)
	}

	// Unknown backend keeps the previous selection.
	s.handleCommand("/backend copilot")
	if app.cfg.Backend != "gemini" {
		t.Errorf("Backend = %q, unknown name must not stick", app.cfg.Backend)
	}
}

func TestHandleCommandApprovalNormalizes(t *testing.T) {
	app, _ := testApp()
	s := &InteractiveSession{app: app}

	s.handleCommand("/approval FULL-AUTO")
	if got := app.cfg.Codex.ApprovalMode; got != "full-auto" {
		t.Errorf("ApprovalMode = %q, want normalized full-auto", got)
	}

	s.handleCommand("/approval nonsense")
	if got := app.cfg.Codex.ApprovalMode; got != "suggest" {
		t.Errorf("ApprovalMode = %q, unrecognized mode must fall back to suggest", got)
	}
}
