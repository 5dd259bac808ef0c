// Package clearscreen implements the clear command.
package clearscreen

import (
	"errors"
	"io"

	"golang.org/x/term"

	"github.com/rcarmo/go-minishell/pkg/core"
)

// eraseSequence homes the cursor, erases the display and drops scrollback.
const eraseSequence = "\x1b[H\x1b[2J\x1b[3J"

var errNotTerminal = errors.New("output is not a terminal")

type fder interface {
	Fd() uintptr
}

// isTerminal reports whether w is attached to a terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run clears the terminal. Failing to do so is reported like any other
// command error and never ends the shell. Arguments are ignored.
func Run(stdio *core.Stdio, args []string) int {
	if !isTerminal(stdio.Out) {
		return core.ActionError(stdio, "Failed to clear the screen", errNotTerminal)
	}
	if _, err := io.WriteString(stdio.Out, eraseSequence); err != nil {
		return core.ActionError(stdio, "Failed to clear the screen", err)
	}
	return core.ExitSuccess
}
