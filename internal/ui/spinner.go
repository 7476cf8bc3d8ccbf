// Package ui holds terminal helpers.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// Spinner wraps briandowns/spinner and is a no-op unless its writer is a
// terminal.
type Spinner struct {
	s       *spinner.Spinner
	enabled bool
}

// IsTerminal reports whether stream is a file attached to an interactive
// terminal.
func IsTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewSpinner creates a spinner that draws on w.
func NewSpinner(w io.Writer, message string) *Spinner {
	if !IsTerminal(w) {
		return &Spinner{}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	return &Spinner{s: s, enabled: true}
}

// Enabled reports whether the spinner draws anything.
func (sp *Spinner) Enabled() bool {
	return sp.enabled
}

func (sp *Spinner) Start() {
	if sp.enabled {
		sp.s.Start()
	}
}

func (sp *Spinner) Stop() {
	if sp.enabled {
		sp.s.Stop()
	}
}

// UpdateMessage changes the spinner message.
func (sp *Spinner) UpdateMessage(message string) {
	if sp.enabled {
		sp.s.Lock()
		sp.s.Suffix = " " + message
		sp.s.Unlock()
	}
}

// Progress shows "message (done/total)".
func (sp *Spinner) Progress(message string, done, total int) {
	sp.UpdateMessage(fmt.Sprintf("%s (%d/%d)", message, done, total))
}
