package executor

import (
	"regexp"
	"strings"
)

// RiskLevel is an advisory classification of a shell command. It annotates
// confirmation prompts and auto-edit log lines; the approval decision table
// alone decides whether a command runs.
type RiskLevel int

const (
	// RiskSafe marks read-only commands
	RiskSafe RiskLevel = iota
	// RiskModifying marks commands that may change system state
	RiskModifying
	// RiskDangerous marks commands that can destroy data or escalate privileges
	RiskDangerous
)

// Read-only commands. Network fetchers like curl and wget are excluded on
// purpose: they can exfiltrate data even without writing anything locally.
var readOnlyCommands = []string{
	"ls", "cat", "pwd", "echo", "head", "tail", "grep", "find",
	"which", "whoami", "date", "wc", "sort", "uniq", "diff",
	"env", "printenv", "df", "du", "ps", "file", "stat",
}

var readOnlyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^git\s+(status|log|diff|branch|show|remote)`),
	regexp.MustCompile(`^go\s+(list|version|env)`),
	regexp.MustCompile(`^pip\s+(list|show|freeze)`),
	regexp.MustCompile(`^npm\s+(list|ls|view|outdated)`),
	regexp.MustCompile(`^docker\s+(ps|images|inspect|logs)`),
}

var destructivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`rm\s+(-[rf]*\s+)?/`),
	regexp.MustCompile(`rm\s+-rf\s+[~$]`),
	regexp.MustCompile(`\bsudo\b`),
	regexp.MustCompile(`dd\s+if=`),
	regexp.MustCompile(`mkfs`),
	regexp.MustCompile(`:\(\)\{`),
	regexp.MustCompile(`(curl|wget).*\|\s*(sh|bash|zsh)`),
	regexp.MustCompile(`>\s*/dev/sd`),
	regexp.MustCompile(`>\s*/etc/`),
	regexp.MustCompile(`chmod.*777`),
}

// chainingPattern matches ;, &&, || and pipes, any of which could hide a
// second command behind an innocuous first one.
var chainingPattern = regexp.MustCompile(`[;&|]{1,2}`)

// ClassifyCommand returns the advisory risk level of a shell command.
func ClassifyCommand(cmd string) RiskLevel {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return RiskDangerous
	}

	for _, pattern := range destructivePatterns {
		if pattern.MatchString(cmd) {
			return RiskDangerous
		}
	}

	if chainingPattern.MatchString(cmd) {
		return RiskModifying
	}

	fields := strings.Fields(cmd)
	for _, name := range readOnlyCommands {
		if fields[0] == name {
			return RiskSafe
		}
	}
	for _, pattern := range readOnlyPatterns {
		if pattern.MatchString(cmd) {
			return RiskSafe
		}
	}

	return RiskModifying
}

// RiskDescription returns a short human-readable label for a risk level.
func RiskDescription(level RiskLevel) string {
	switch level {
	case RiskSafe:
		return "read-only"
	case RiskModifying:
		return "may modify state"
	case RiskDangerous:
		return "potentially destructive"
	default:
		return "unknown"
	}
}
