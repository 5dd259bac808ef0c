// Package config holds the shell's startup settings. Values come only from
// command-line flags; the shell reads no environment variables or files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rcarmo/go-minishell/pkg/logging"
	"github.com/rcarmo/go-minishell/pkg/sandbox"
)

// Defaults
const (
	DefaultPrompt    = "$ "
	DefaultLogLevel  = "none"
	DefaultLogFormat = "text"
)

// Errors
var (
	ErrPromptNewline    = errors.New("prompt must not contain a newline")
	ErrReadOnlyNoAllow  = errors.New("--read-only requires at least one --allow path")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Config holds startup settings.
type Config struct {
	Prompt    string
	LogLevel  string
	LogFormat string
	LogFile   string   // empty means stderr
	LineEdit  bool     // use the line editor when stdin is a terminal
	Allow     []string // sandbox allow-list; empty disables the sandbox
	ReadOnly  bool
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Prompt:    DefaultPrompt,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Validate checks flag combinations and values.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Prompt, "\r\n") {
		return ErrPromptNewline
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogLevel, err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogFormat, err)
	}
	if c.ReadOnly && len(c.Allow) == 0 {
		return ErrReadOnlyNoAllow
	}
	return nil
}

// Sandbox returns the sandbox settings described by the config.
func (c *Config) Sandbox() *sandbox.Config {
	return &sandbox.Config{
		AllowedPaths: append([]string(nil), c.Allow...),
		ReadOnly:     c.ReadOnly,
	}
}

// OpenLogger builds the configured logger. The returned closer releases the
// log file, if one was opened.
func (c *Config) OpenLogger() (*logging.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidLogLevel, err)
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidLogFormat, err)
	}
	if level == logging.LevelNone {
		return logging.Nop(), nopCloser{}, nil
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600) // #nosec G304 -- operator-supplied log path
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f
	}

	return logging.New(logging.Options{Level: level, Format: format, Output: out}), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
