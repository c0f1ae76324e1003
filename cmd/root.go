// Package cmd implements the CLI commands for pycodex.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fabianwinter93/pycodex/internal/backend"
	"github.com/fabianwinter93/pycodex/internal/config"
	"github.com/fabianwinter93/pycodex/internal/display"
	"github.com/fabianwinter93/pycodex/internal/executor"
	"github.com/fabianwinter93/pycodex/internal/logging"
)

// App holds the application state shared by all commands.
type App struct {
	cfg     *config.Config
	backend backend.Backend
	verbose bool

	// flag values applied to the selected backend after config resolution
	modelFlag    string
	approvalFlag string
}

// NewApp creates a new App instance with default configuration
func NewApp() *App {
	return &App{
		cfg: config.NewConfig(),
	}
}

// Execute runs the root command
func Execute() {
	app := NewApp()

	rootCmd := &cobra.Command{
		Use:   "pycodex",
		Short: "A unified front end for AI coding-assistant CLIs",
		Long: `pycodex wraps external AI coding tools (codex, gemini) behind one
consistent command surface: generate code, explain code, edit code, and run
shell commands through an approval gate.

Examples:
  pycodex generate "binary search in python"
  pycodex generate "add retries" client.py util.py
  pycodex explain server.py
  pycodex edit server.py "add input validation"
  pycodex exec "ls -la"
  pycodex -i                          # Interactive mode
  pycodex -b gemini explain app.py`,
		Run: func(cmd *cobra.Command, args []string) {
			if app.cfg.Interactive {
				if err := app.setup(); err != nil {
					display.ShowError(err.Error())
					os.Exit(1)
				}
				app.runInteractive()
				return
			}
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.cfg.Backend, "backend", "b", "", "Backend to use: codex or gemini")
	rootCmd.PersistentFlags().StringVarP(&app.modelFlag, "model", "m", "", "Model name passed to the backend CLI")
	rootCmd.PersistentFlags().StringVarP(&app.approvalFlag, "approval", "a", "", "Approval mode: suggest, auto-edit, or full-auto")
	rootCmd.PersistentFlags().BoolVarP(&app.cfg.Render, "render", "r", false, "Render responses as markdown")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&app.cfg.NonInteractive, "non-interactive", "n", false, "Never prompt; commands needing approval are rejected")
	rootCmd.Flags().BoolVarP(&app.cfg.Interactive, "interactive", "i", false, "Interactive mode")

	rootCmd.AddCommand(newGenerateCmd(app))
	rootCmd.AddCommand(newExplainCmd(app))
	rootCmd.AddCommand(newEditCmd(app))
	rootCmd.AddCommand(newExecCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves configuration and constructs the selected backend adapter.
// Called from each subcommand's Run, after flag parsing.
func (app *App) setup() error {
	if app.verbose {
		logging.SetLevel(logging.LevelDebug)
	}

	if err := app.cfg.Validate(); err != nil {
		return err
	}

	// Flags beat every other configuration source, including the
	// environment, so they land after Validate.
	app.applyFlagOverrides()

	if app.cfg.Render {
		if err := display.InitRenderer(); err != nil {
			logging.Warn("renderer init failed", logging.Fields{"error": err.Error()})
		}
	}

	b, err := backend.New(app.cfg.Backend, app.cfg, backend.Options{
		Confirm: executor.TerminalConfirmer(os.Stdin, os.Stderr),
	})
	if err != nil {
		return err
	}
	app.backend = b
	return nil
}

func (app *App) applyFlagOverrides() {
	bc := app.selectedBackendConfig()
	if app.modelFlag != "" {
		bc.Model = app.modelFlag
	}
	if app.approvalFlag != "" {
		bc.ApprovalMode = app.approvalFlag
	}
}

// selectedBackendConfig returns the config block for the active backend.
func (app *App) selectedBackendConfig() *config.BackendConfig {
	if app.cfg.Backend == "gemini" {
		return &app.cfg.Gemini
	}
	return &app.cfg.Codex
}
