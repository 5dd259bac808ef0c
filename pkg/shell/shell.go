// Package shell implements the read-parse-dispatch loop of the interactive
// shell and the registry that maps command names to their handlers.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/logging"
)

// ErrInputClosed is returned by Run when standard input reaches end of file.
var ErrInputClosed = errors.New("input closed")

// unsupportedMessage is printed for empty lines and unknown commands.
const unsupportedMessage = "Error: Command not implemented yet."

// Options configures a Shell.
type Options struct {
	Prompt string
	Logger *logging.Logger
	// Exit ends the process. Defaults to os.Exit.
	Exit func(code int)
}

// Shell reads command lines and dispatches them to handlers.
type Shell struct {
	stdio  *core.Stdio
	in     *bufio.Reader
	prompt string
	log    *logging.Logger
	exit   func(code int)
	exited bool
	status int
}

// New creates a Shell bound to stdio.
func New(stdio *core.Stdio, opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	exit := opts.Exit
	if exit == nil {
		exit = os.Exit
	}
	return &Shell{
		stdio:  stdio,
		in:     bufio.NewReader(stdio.In),
		prompt: opts.Prompt,
		log:    logger.With(logging.Fields{"session": uuid.NewString()}),
		exit:   exit,
	}
}

// Status returns the exit status of the last dispatched command.
func (s *Shell) Status() int {
	return s.status
}

// Run prompts, reads and executes lines until the exit command runs or
// reading fails. Command failures never end the loop. A nil return means
// exit was requested and the Exit hook returned.
func (s *Shell) Run() error {
	for {
		s.stdio.Print(s.prompt)
		if err := s.stdio.Flush(); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}

		line, err := s.readLine()
		if err != nil {
			s.log.Error("read input failed", err)
			return fmt.Errorf("read input: %w", err)
		}

		s.Execute(line)
		if s.exited {
			return nil
		}
	}
}

// readLine returns the next line. A final line without a newline is
// returned first; end of input is reported on the following call.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	if !utf8.ValidString(line) {
		return "", core.ErrNotUTF8
	}
	return line, nil
}

// Execute trims, parses and runs a single line and returns the handler's
// exit status. Unknown commands print one error and return ExitFailure.
func (s *Shell) Execute(line string) int {
	line = strings.TrimSpace(line)

	cmd, err := Parse(line)
	if err != nil {
		s.stdio.Errorln(unsupportedMessage)
		s.log.Debug("unsupported command", logging.Fields{"line": line})
		s.status = core.ExitFailure
		return s.status
	}

	args := strings.Fields(line)[1:]
	s.status = s.dispatch(cmd, args)
	s.log.Debug("dispatch", logging.Fields{
		"command": cmd.String(),
		"argc":    len(args),
		"status":  s.status,
	})
	return s.status
}

func (s *Shell) dispatch(cmd Command, args []string) int {
	if cmd == Exit {
		s.exited = true
		s.log.Info("exit requested")
		s.exit(core.ExitSuccess)
		return core.ExitSuccess
	}
	return commands[cmd].run(s.stdio, args)
}
