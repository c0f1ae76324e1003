// Package executor gates shell command execution behind a configurable
// approval policy and runs authorized commands through the process runner.
package executor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Mode is the approval policy for potentially destructive shell commands.
type Mode int

const (
	// ModeSuggest requires interactive confirmation before a gated command runs
	ModeSuggest Mode = iota
	// ModeAutoEdit runs gated commands, recording that they would be executed
	ModeAutoEdit
	// ModeFullAuto runs gated commands without prompting
	ModeFullAuto
)

// String returns the configuration spelling of the mode
func (m Mode) String() string {
	switch m {
	case ModeAutoEdit:
		return "auto-edit"
	case ModeFullAuto:
		return "full-auto"
	default:
		return "suggest"
	}
}

// ParseMode maps a configuration string to a Mode. Anything unrecognized
// falls back to ModeSuggest, the most conservative policy, so a typo in a
// config file can never silently enable unattended execution.
func ParseMode(s string) Mode {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "auto-edit":
		return ModeAutoEdit
	case "full-auto":
		return ModeFullAuto
	default:
		return ModeSuggest
	}
}

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Execute means the command may run now
	Execute Decision = iota
	// Rejected means the user declined the command
	Rejected
)

// ErrApprovalRequired is returned when suggest mode needs a confirmation but
// no interactive prompt is available. Suggest mode never silently proceeds
// or silently drops a command in unattended contexts; callers must opt into
// auto-edit or full-auto instead.
var ErrApprovalRequired = errors.New(
	"command requires approval in non-interactive mode; use approval mode full-auto or auto-edit for unattended execution")

// Authorize decides whether a shell command may run. The table, in order:
//
//  1. safe == false, or full-auto mode: execute immediately.
//  2. auto-edit mode: execute immediately.
//  3. suggest mode: non-interactive contexts get ErrApprovalRequired;
//     otherwise confirm is asked once, defaulting to no.
func Authorize(command string, safe bool, mode Mode, nonInteractive bool, confirm func(string) bool) (Decision, error) {
	if !safe || mode == ModeFullAuto {
		return Execute, nil
	}
	if mode == ModeAutoEdit {
		return Execute, nil
	}

	if nonInteractive {
		return Rejected, ErrApprovalRequired
	}
	if confirm != nil && confirm(command) {
		return Execute, nil
	}
	return Rejected, nil
}

// TerminalConfirmer returns a confirm function that prompts on w and reads a
// yes/no answer from r. Empty input and EOF both mean no. The prompt carries
// the classifier's risk description so the user sees what they are approving.
func TerminalConfirmer(r io.Reader, w io.Writer) func(string) bool {
	reader := bufio.NewReader(r)
	return func(command string) bool {
		risk := ClassifyCommand(command)
		fmt.Fprintf(w, "Execute command: %s (%s) [y/N]: ", command, RiskDescription(risk))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}
