package backend

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/fabianwinter93/pycodex/internal/config"
	"github.com/fabianwinter93/pycodex/internal/parser"
)

// codexBackend drives the codex CLI. The tool's final response is captured
// through its --output-last-message flag, which writes to a file we name.
type codexBackend struct {
	tool
}

func newCodexBackend(cfg *config.Config, opts Options) *codexBackend {
	t := tool{
		name:           "codex",
		bc:             cfg.Codex,
		envHint:        config.EnvCodexCLI,
		nonInteractive: cfg.NonInteractive,
		backendTimeout: cfg.BackendTimeout,
		commandTimeout: cfg.CommandTimeout,
		confirm:        opts.Confirm,
		log:            opts.Logger,
	}
	if _, err := exec.LookPath(t.bc.CLI); err == nil {
		t.available = true
	}
	return &codexBackend{tool: t}
}

func (b *codexBackend) Generate(prompt string, files []string) (*Result, error) {
	return b.run(prompt, files)
}

func (b *codexBackend) Explain(code string) (*Result, error) {
	return b.run(fmt.Sprintf(explainTemplate, code), nil)
}

func (b *codexBackend) Edit(code, instructions string) (*Result, error) {
	template := editSplitTemplate
	if !b.bc.SplitEdit {
		template = editMergedTemplate
	}
	return b.run(fmt.Sprintf(template, instructions, code), nil)
}

// run is the shared invocation path for generate, explain and edit.
func (b *codexBackend) run(prompt string, files []string) (*Result, error) {
	if err := b.ensureAvailable(); err != nil {
		return nil, err
	}

	var fileContext, fileLog string
	var fileArgs []string
	if b.bc.FilesArg {
		// files_arg mode hands paths to the tool instead of inlining content
		fileArgs = files
		for _, p := range files {
			if fileLog != "" {
				fileLog += "\n"
			}
			fileLog += fmt.Sprintf("Passed file argument: %s", p)
		}
	} else {
		fileContext, fileLog = ReadFiles(files)
	}
	fullPrompt := withContext(prompt, fileContext)

	// Unique per invocation so concurrent calls never collide.
	lastMsgPath := filepath.Join(os.TempDir(), fmt.Sprintf("pycodex-last-msg-%s.txt", uuid.NewString()))
	defer os.Remove(lastMsgPath)

	argv := []string{b.bc.CLI, "exec"}
	if b.bc.Model != "" {
		argv = append(argv, "--model", b.bc.Model)
	}
	argv = append(argv, "--color", "never", "--skip-git-repo-check")
	if b.bc.Sandbox != "" {
		argv = append(argv, "--sandbox", b.bc.Sandbox)
	}
	argv = append(argv, "--output-last-message", lastMsgPath)
	argv = append(argv, fileArgs...)

	res, err := b.invoke(argv, fullPrompt)
	if err != nil {
		return nil, err
	}
	if res.Status != 0 {
		return nil, &ExecutionError{Backend: b.name, Status: res.Status, Output: failureOutput(res)}
	}

	// Older tool versions ignore the output flag; fall back to stdout.
	lastMsg := res.Stdout
	if data, err := os.ReadFile(lastMsgPath); err == nil {
		lastMsg = string(data)
	}

	code, text := parser.Parse(lastMsg)
	return &Result{Code: code, Text: text, Log: invocationLog(argv, fileLog)}, nil
}
