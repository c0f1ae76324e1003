// Package display handles terminal output: markdown rendering, code
// presentation, and progress spinners.
package display

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/glamour"
)

var renderer *glamour.TermRenderer

// InitRenderer prepares the markdown renderer. Call once before the first
// ShowContentRendered; rendering falls back to plain output if this fails or
// is skipped.
func InitRenderer() error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize markdown renderer: %w", err)
	}
	renderer = r
	return nil
}

// ShowContent prints content as-is.
func ShowContent(content string) {
	fmt.Println(content)
}

// ShowContentRendered prints content as rendered markdown, falling back to
// plain output when no renderer is available.
func ShowContentRendered(content string) {
	if renderer == nil {
		ShowContent(content)
		return
	}
	out, err := renderer.Render(content)
	if err != nil {
		ShowContent(content)
		return
	}
	fmt.Print(out)
}

// ShowCode prints a code block, syntax-highlighted when rendering is on.
func ShowCode(code, lang string) {
	if renderer == nil {
		fmt.Println(code)
		return
	}
	ShowContentRendered(fmt.Sprintf("```%s\n%s\n```", lang, code))
}

// ShowError prints an error message to stderr.
func ShowError(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
}

// Spinner wraps a terminal spinner shown while a backend call is in flight.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a spinner with the given message. It only animates when
// stderr is a terminal-ish destination; Start on a non-TTY is harmless.
func NewSpinner(message string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	return &Spinner{s: s}
}

// Start begins the animation.
func (sp *Spinner) Start() {
	sp.s.Start()
}

// Stop halts the animation and clears the line.
func (sp *Spinner) Stop() {
	sp.s.Stop()
}

// UpdateMessage changes the message shown next to the spinner.
func (sp *Spinner) UpdateMessage(message string) {
	sp.s.Suffix = " " + message
}
