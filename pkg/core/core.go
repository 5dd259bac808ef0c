// Package core provides shared functionality for the shell's command handlers.
package core

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes following POSIX conventions
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ErrNotUTF8 is returned when a file read as text is not valid UTF-8.
var ErrNotUTF8 = errors.New("stream did not contain valid UTF-8")

type flusher interface {
	Flush() error
}

// Stdio holds the standard I/O streams for a handler.
// This allows for easy testing by injecting mock streams.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStdio returns Stdio configured with os.Stdin, os.Stdout, os.Stderr.
func DefaultStdio() *Stdio {
	return &Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Errorf writes a formatted error message to stderr.
func (s *Stdio) Errorf(format string, args ...any) {
	fmt.Fprintf(s.Err, format, args...)
}

// Errorln writes a message to stderr with a newline.
func (s *Stdio) Errorln(args ...any) {
	fmt.Fprintln(s.Err, args...)
}

// Printf writes a formatted message to stdout.
func (s *Stdio) Printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

// Print writes a message to stdout.
func (s *Stdio) Print(args ...any) {
	fmt.Fprint(s.Out, args...)
}

// Println writes a message to stdout with a newline.
func (s *Stdio) Println(args ...any) {
	fmt.Fprintln(s.Out, args...)
}

// Flush pushes buffered stdout data to the underlying stream, if any.
func (s *Stdio) Flush() error {
	if f, ok := s.Out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// UsageError prints a usage line and returns ExitUsage.
// The usage text is printed as given, e.g. "Usage: cp [file_src] [file_dest]".
func UsageError(stdio *Stdio, usage string) int {
	stdio.Errorln(usage)
	return ExitUsage
}

// ActionError prints "<action> : <err>" and returns ExitFailure.
func ActionError(stdio *Stdio, action string, err error) int {
	stdio.Errorf("%s : %v\n", action, err)
	return ExitFailure
}
