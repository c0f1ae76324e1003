package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/elk-language/go-prompt"
	istrings "github.com/elk-language/go-prompt/strings"

	"github.com/fabianwinter93/pycodex/internal/backend"
	"github.com/fabianwinter93/pycodex/internal/display"
	"github.com/fabianwinter93/pycodex/internal/executor"
)

// InteractiveSession holds the state for an interactive session.
type InteractiveSession struct {
	app         *App
	exitFlag    bool
	inputBuffer []string // Buffer for multiline input
}

// completer provides auto-completion suggestions for slash commands.
func (s *InteractiveSession) completer(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
	text := d.TextBeforeCursor()
	endIndex := d.CurrentRuneIndex()
	w := d.GetWordBeforeCursor()
	startIndex := endIndex - istrings.RuneCountInString(w)

	// Only show suggestions when input starts with "/"
	if !strings.HasPrefix(text, "/") {
		return []prompt.Suggest{}, startIndex, endIndex
	}

	textLower := strings.ToLower(text)

	if strings.HasPrefix(textLower, "/backend ") {
		suggestions := []prompt.Suggest{
			{Text: "codex", Description: "codex CLI backend"},
			{Text: "gemini", Description: "gemini CLI backend"},
		}
		return prompt.FilterHasPrefix(suggestions, w, true), startIndex, endIndex
	}

	if strings.HasPrefix(textLower, "/approval ") {
		suggestions := []prompt.Suggest{
			{Text: "suggest", Description: "Confirm every non-read-only command"},
			{Text: "auto-edit", Description: "Run commands, log what would need approval"},
			{Text: "full-auto", Description: "Run everything without prompting"},
		}
		return prompt.FilterHasPrefix(suggestions, w, true), startIndex, endIndex
	}

	suggestions := []prompt.Suggest{
		{Text: "/backend", Description: "Show/switch backend (current: " + s.app.cfg.Backend + ")"},
		{Text: "/model", Description: "Show/switch model (current: " + s.app.selectedBackendConfig().Model + ")"},
		{Text: "/approval", Description: "Show/switch approval mode"},

		{Text: "/test", Description: "Generate unit tests for a file (e.g., /test app.py)"},
		{Text: "/refactor", Description: "Suggest refactors for a file"},
		{Text: "/doc", Description: "Explain a file's functions and types"},

		{Text: "/help", Description: "Show all available commands"},
		{Text: "/exit", Description: "Exit interactive mode"},

		// Aliases
		{Text: "/q", Description: "Exit (alias)"},
		{Text: "/h", Description: "Help (alias)"},
	}

	return prompt.FilterHasPrefix(suggestions, w, true), startIndex, endIndex
}

// runInteractive starts the interactive REPL. Plain input becomes a generate
// request, "!" runs a shell command, and "/" commands adjust the session.
func (app *App) runInteractive() {
	fmt.Println("pycodex - Interactive Mode")
	fmt.Printf("Backend: %s\n", app.cfg.Backend)
	fmt.Printf("Model: %s\n", app.selectedBackendConfig().Model)
	fmt.Printf("Approval: %s\n", app.selectedBackendConfig().ApprovalMode)
	fmt.Println("Type /help for commands, !cmd for shell, Ctrl+C or Ctrl+D to quit")
	fmt.Println("End a line with \\ for multiline input")
	fmt.Println()

	session := &InteractiveSession{app: app}

	p := prompt.New(
		session.executor,
		prompt.WithCompleter(session.completer),
		prompt.WithPrefix("> "),
		prompt.WithTitle("pycodex"),
		prompt.WithPrefixTextColor(prompt.Green),
		prompt.WithSuggestionBGColor(prompt.DarkBlue),
		prompt.WithSuggestionTextColor(prompt.White),
		prompt.WithSelectedSuggestionBGColor(prompt.Cyan),
		prompt.WithSelectedSuggestionTextColor(prompt.Black),
		prompt.WithDescriptionBGColor(prompt.DarkBlue),
		prompt.WithDescriptionTextColor(prompt.LightGray),
		prompt.WithSelectedDescriptionBGColor(prompt.Cyan),
		prompt.WithSelectedDescriptionTextColor(prompt.Black),
		prompt.WithMaxSuggestion(12),
		prompt.WithCompletionOnDown(),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return session.exitFlag
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(p *prompt.Prompt) bool {
				fmt.Println("\nGoodbye!")
				session.exitFlag = true
				return false
			},
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlD,
			Fn: func(p *prompt.Prompt) bool {
				if p.Buffer().Text() == "" {
					fmt.Println("Goodbye!")
					session.exitFlag = true
				}
				return false
			},
		}),
	)

	p.Run()
}

// executor handles one input line in the REPL.
func (s *InteractiveSession) executor(input string) {
	if s.exitFlag {
		return
	}

	// Handle multiline input with backslash continuation
	if strings.HasSuffix(input, "\\") {
		line := strings.TrimSuffix(input, "\\")
		s.inputBuffer = append(s.inputBuffer, line)
		fmt.Print("... ")
		return
	}
	if len(s.inputBuffer) > 0 {
		s.inputBuffer = append(s.inputBuffer, input)
		input = strings.Join(s.inputBuffer, "\n")
		s.inputBuffer = nil
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	if strings.HasPrefix(input, "/") {
		if s.handleCommand(input) {
			s.exitFlag = true
		}
		return
	}

	// Shell escape. Runs through the approval gate like any other command,
	// so suggest mode still confirms anything not read-only.
	if strings.HasPrefix(input, "!") {
		s.runShell(strings.TrimSpace(strings.TrimPrefix(input, "!")))
		return
	}

	res := s.app.invoke(func() (*backend.Result, error) {
		return s.app.backend.Generate(input, nil)
	})
	s.app.showResult(res)
	fmt.Println()
}

func (s *InteractiveSession) runShell(command string) {
	if command == "" {
		return
	}
	res, err := s.app.backend.ExecCommand(command, true)
	if err != nil {
		display.ShowError(err.Error())
		return
	}
	if res.Stdout != "" {
		fmt.Print(res.Stdout)
	}
	if res.Stderr != "" {
		fmt.Fprint(os.Stderr, res.Stderr)
	}
	if res.Status != 0 {
		fmt.Printf("(exit status %d)\n", res.Status)
	}
}

// handleCommand processes a slash command. Returns true when the session
// should end.
func (s *InteractiveSession) handleCommand(input string) bool {
	parts := strings.Fields(input)
	command := strings.ToLower(parts[0])
	arg := ""
	if len(parts) > 1 {
		arg = strings.Join(parts[1:], " ")
	}

	switch command {
	case "/exit", "/quit", "/q":
		fmt.Println("Goodbye!")
		return true

	case "/help", "/h":
		s.showHelp()

	case "/backend":
		if arg == "" {
			fmt.Printf("Current backend: %s\n", s.app.cfg.Backend)
			return false
		}
		prev := s.app.cfg.Backend
		s.app.cfg.Backend = strings.ToLower(arg)
		if err := s.rebuildBackend(); err != nil {
			s.app.cfg.Backend = prev
			display.ShowError(err.Error())
			return false
		}
		fmt.Printf("Backend changed to: %s\n", s.app.cfg.Backend)

	case "/model":
		if arg == "" {
			fmt.Printf("Current model: %s\n", s.app.selectedBackendConfig().Model)
			return false
		}
		s.app.selectedBackendConfig().Model = arg
		if err := s.rebuildBackend(); err != nil {
			display.ShowError(err.Error())
			return false
		}
		fmt.Printf("Model changed to: %s\n", arg)

	case "/approval":
		if arg == "" {
			fmt.Printf("Current approval mode: %s\n", s.app.selectedBackendConfig().ApprovalMode)
			return false
		}
		s.app.selectedBackendConfig().ApprovalMode = executor.ParseMode(arg).String()
		if err := s.rebuildBackend(); err != nil {
			display.ShowError(err.Error())
			return false
		}
		fmt.Printf("Approval mode changed to: %s\n", s.app.selectedBackendConfig().ApprovalMode)

	case "/test":
		s.runWorkflow(backend.UnitTestPrompt, arg)

	case "/refactor":
		s.runWorkflow(backend.RefactorPrompt, arg)

	case "/doc":
		s.runWorkflow(backend.DocExplainPrompt, arg)

	default:
		fmt.Printf("Unknown command: %s (type /help for commands)\n", command)
	}
	return false
}

// runWorkflow sends one of the canned prompts with a file as context.
func (s *InteractiveSession) runWorkflow(promptText, file string) {
	if file == "" {
		fmt.Println("Usage: /test|/refactor|/doc <file>")
		return
	}
	if _, err := os.Stat(file); err != nil {
		display.ShowError(fmt.Sprintf("cannot read %s: %v", file, err))
		return
	}
	res := s.app.invoke(func() (*backend.Result, error) {
		return s.app.backend.Generate(promptText, []string{file})
	})
	s.app.showResult(res)
	fmt.Println()
}

// rebuildBackend recreates the adapter after a session setting changed.
// Adapters copy their configuration at construction, so edits to cfg only
// take effect through a rebuild.
func (s *InteractiveSession) rebuildBackend() error {
	b, err := backend.New(s.app.cfg.Backend, s.app.cfg, backend.Options{
		Confirm: executor.TerminalConfirmer(os.Stdin, os.Stderr),
	})
	if err != nil {
		return err
	}
	s.app.backend = b
	return nil
}

func (s *InteractiveSession) showHelp() {
	fmt.Println(`Available commands:
  /backend [name]     Show or switch backend (codex, gemini)
  /model [name]       Show or switch the backend model
  /approval [mode]    Show or switch approval mode (suggest, auto-edit, full-auto)
  /test <file>        Generate unit tests for a file
  /refactor <file>    Suggest refactors for a file
  /doc <file>         Explain a file's functions and types
  /help, /h           Show this help
  /exit, /q           Exit

  !<command>          Run a shell command
  <anything else>     Generate code from the prompt
  Lines ending in \   Continue on the next line`)
}
