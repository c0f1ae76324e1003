package executor

import (
	"time"

	"github.com/fabianwinter93/pycodex/internal/logging"
	"github.com/fabianwinter93/pycodex/internal/runner"
)

// StatusRejected is reported when the user declines a confirmation prompt.
// Rejection is an expected outcome of the approval workflow, not an error.
const StatusRejected = 125

// RejectedMessage is the stderr text of a declined command's result.
const RejectedMessage = "Command not approved by user"

// CommandResult is the outcome of an approval-gated shell execution.
type CommandResult struct {
	Stdout string
	Stderr string
	Status int
}

// ShellOptions carries the collaborators and limits for gated execution.
type ShellOptions struct {
	// NonInteractive marks contexts where no confirmation prompt can be shown
	NonInteractive bool
	// Confirm asks the user to approve a command; nil means default-no
	Confirm func(string) bool
	// Timeout bounds the command's runtime; zero means no timeout
	Timeout time.Duration
	// Logger receives invocation records; nil uses the package default
	Logger *logging.Logger
}

// ExecShell runs a shell command through the approval gate. Declined commands
// return StatusRejected with RejectedMessage; only ErrApprovalRequired and
// spawn failures surface as errors.
func ExecShell(command string, safe bool, mode Mode, o ShellOptions) (CommandResult, error) {
	log := o.Logger
	if log == nil {
		log = logging.DefaultLogger
	}

	decision, err := Authorize(command, safe, mode, o.NonInteractive, o.Confirm)
	if err != nil {
		return CommandResult{}, err
	}
	if decision == Rejected {
		return CommandResult{Status: StatusRejected, Stderr: RejectedMessage}, nil
	}

	if safe && mode == ModeAutoEdit {
		log.Info("auto-edit: command would be executed", logging.Fields{
			"command": command,
			"risk":    RiskDescription(ClassifyCommand(command)),
		})
	}

	argv := []string{"bash", "-lc", command}
	il := logging.NewInvocationLogger(log)
	il.LogStart(argv, 0)
	start := time.Now()

	res, err := runner.Run(argv, runner.Options{Timeout: o.Timeout})
	if err != nil {
		return CommandResult{}, err
	}
	il.LogDone(argv, res.Status, res.Stderr, time.Since(start))

	return CommandResult{Stdout: res.Stdout, Stderr: res.Stderr, Status: res.Status}, nil
}
