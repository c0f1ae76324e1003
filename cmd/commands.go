package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fabianwinter93/pycodex/internal/backend"
	"github.com/fabianwinter93/pycodex/internal/display"
	"github.com/fabianwinter93/pycodex/internal/executor"
	"github.com/fabianwinter93/pycodex/internal/logging"
)

func newGenerateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [prompt] [files...]",
		Short: "Generate code from a natural-language prompt",
		Long: `Generate code from a prompt. Any additional arguments are files whose
contents are included as context.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.setup(); err != nil {
				display.ShowError(err.Error())
				os.Exit(1)
			}
			res := app.invoke(func() (*backend.Result, error) {
				return app.backend.Generate(args[0], args[1:])
			})
			app.showResult(res)
		},
	}
}

func newExplainCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [file]",
		Short: "Explain the code in a file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.setup(); err != nil {
				display.ShowError(err.Error())
				os.Exit(1)
			}
			code, err := os.ReadFile(args[0])
			if err != nil {
				display.ShowError(err.Error())
				os.Exit(1)
			}
			res := app.invoke(func() (*backend.Result, error) {
				return app.backend.Explain(string(code))
			})
			app.showResult(res)
		},
	}
}

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file] [instructions]",
		Short: "Edit the code in a file per the instructions",
		Long: `Edit a file's code. The updated code is printed to stdout; the file
itself is never modified.`,
		Args: cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.setup(); err != nil {
				display.ShowError(err.Error())
				os.Exit(1)
			}
			code, err := os.ReadFile(args[0])
			if err != nil {
				display.ShowError(err.Error())
				os.Exit(1)
			}
			instructions := strings.Join(args[1:], " ")
			res := app.invoke(func() (*backend.Result, error) {
				return app.backend.Edit(string(code), instructions)
			})
			app.showResult(res)
		},
	}
}

func newExecCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "exec [command]",
		Short: "Run a shell command through the approval gate",
		Long: `Run a shell command. Commands the risk classifier does not recognize as
read-only go through the configured approval mode; the process exit status
mirrors the command's.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.setup(); err != nil {
				display.ShowError(err.Error())
				os.Exit(1)
			}
			command := strings.Join(args, " ")

			// No spinner here: the approval prompt owns the terminal.
			res, err := app.backend.ExecCommand(command, needsApproval(command))
			if err != nil {
				display.ShowError(err.Error())
				os.Exit(1)
			}
			if res.Stdout != "" {
				fmt.Print(res.Stdout)
			}
			if res.Stderr != "" {
				fmt.Fprint(os.Stderr, res.Stderr)
			}
			if res.Status != 0 {
				os.Exit(res.Status)
			}
		},
	}
}

// needsApproval maps the classifier onto the gate's safe flag. Commands the
// classifier recognizes as read-only run immediately (safe=false); everything
// else goes through the configured approval mode (safe=true).
func needsApproval(command string) bool {
	return executor.ClassifyCommand(command) != executor.RiskSafe
}

// invoke runs one backend call under a spinner and exits on failure.
func (app *App) invoke(call func() (*backend.Result, error)) *backend.Result {
	sp := display.NewSpinner("Thinking...")
	sp.Start()
	res, err := call()
	sp.Stop()
	if err != nil {
		display.ShowError(err.Error())
		os.Exit(1)
	}
	return res
}

// showResult prints a backend result: explanatory text first, then the code
// block. Code goes out plain when rendering is off, so output stays pipeable.
func (app *App) showResult(res *backend.Result) {
	if res.Log != "" {
		logging.Debug("backend invocation", logging.Fields{"log": res.Log})
	}
	if res.Text != "" {
		if app.cfg.Render {
			display.ShowContentRendered(res.Text)
		} else {
			display.ShowContent(res.Text)
		}
	}
	if res.Code != "" {
		if res.Text != "" {
			fmt.Println()
		}
		display.ShowCode(res.Code, "")
	}
}
