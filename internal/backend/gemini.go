package backend

import (
	"fmt"
	"os/exec"

	"github.com/fabianwinter93/pycodex/internal/config"
	"github.com/fabianwinter93/pycodex/internal/parser"
)

// geminiBackend drives the gemini CLI, which has a differently shaped
// surface: one subcommand per operation and the response on stdout, so no
// instructional templates and no last-message file are needed.
type geminiBackend struct {
	tool
}

func newGeminiBackend(cfg *config.Config, opts Options) *geminiBackend {
	t := tool{
		name:           "gemini",
		bc:             cfg.Gemini,
		envHint:        config.EnvGeminiCLI,
		nonInteractive: cfg.NonInteractive,
		backendTimeout: cfg.BackendTimeout,
		commandTimeout: cfg.CommandTimeout,
		confirm:        opts.Confirm,
		log:            opts.Logger,
	}
	if _, err := exec.LookPath(t.bc.CLI); err == nil {
		t.available = true
	}
	return &geminiBackend{tool: t}
}

func (b *geminiBackend) Generate(prompt string, files []string) (*Result, error) {
	return b.run("generate", prompt, files)
}

func (b *geminiBackend) Explain(code string) (*Result, error) {
	return b.run("explain", code, nil)
}

func (b *geminiBackend) Edit(code, instructions string) (*Result, error) {
	payload := fmt.Sprintf("[INSTRUCTIONS]\n%s\n\n[CODE]\n%s", instructions, code)
	return b.run("edit", payload, nil)
}

// run is the shared invocation path for all three subcommands.
func (b *geminiBackend) run(subcommand, payload string, files []string) (*Result, error) {
	if err := b.ensureAvailable(); err != nil {
		return nil, err
	}

	fileContext, fileLog := ReadFiles(files)
	fullInput := withContext(payload, fileContext)

	argv := []string{b.bc.CLI, subcommand}
	if b.bc.Model != "" {
		argv = append(argv, "--model", b.bc.Model)
	}
	if b.bc.ApprovalMode != "" {
		argv = append(argv, "--approval", b.bc.ApprovalMode)
	}

	res, err := b.invoke(argv, fullInput)
	if err != nil {
		return nil, err
	}
	if res.Status != 0 {
		return nil, &ExecutionError{Backend: b.name, Status: res.Status, Output: failureOutput(res)}
	}

	code, text := parser.Parse(res.Stdout)
	return &Result{Code: code, Text: text, Log: invocationLog(argv, fileLog)}, nil
}
