// Command minishell is an interactive shell with a fixed set of built-in
// file and directory commands.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rcarmo/go-minishell/pkg/config"
	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/logging"
	"github.com/rcarmo/go-minishell/pkg/sandbox"
	"github.com/rcarmo/go-minishell/pkg/shell"
)

// App holds the startup state
type App struct {
	cfg   *config.Config
	stdio *core.Stdio
	exit  func(code int)
}

// NewApp creates a new App instance with default configuration
func NewApp(stdio *core.Stdio, exit func(code int)) *App {
	return &App{
		cfg:   config.NewConfig(),
		stdio: stdio,
		exit:  exit,
	}
}

func main() {
	os.Exit(Execute(NewApp(core.DefaultStdio(), os.Exit), os.Args[1:]))
}

// Execute runs the root command with args and returns the process exit
// status: 2 for bad flags, 1 when the shell stops on a read failure.
func Execute(app *App, args []string) int {
	if args == nil {
		args = []string{}
	}
	rootCmd := newRootCmd(app)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		app.stdio.Errorf("minishell: %v\n", err)
		var usageErr usageError
		if errors.As(err, &usageErr) {
			return core.ExitUsage
		}
		return core.ExitFailure
	}
	return core.ExitSuccess
}

func newRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minishell",
		Short: "A minimal interactive shell",
		Long: `minishell reads commands from standard input and runs them one line at a time.

Built-in commands:
  echo cd ls pwd cat cp rm mv mkdir touch clear exit

Examples:
  minishell
  minishell --prompt "> "
  minishell --allow /tmp/work --read-only
  minishell --log-level debug --log-file /tmp/minishell.log`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run()
		},
	}

	rootCmd.Flags().StringVar(&app.cfg.Prompt, "prompt", config.DefaultPrompt, "Prompt printed before each line")
	rootCmd.Flags().StringVar(&app.cfg.LogLevel, "log-level", config.DefaultLogLevel, "Diagnostic log level: debug, info, warn, error, none")
	rootCmd.Flags().StringVar(&app.cfg.LogFormat, "log-format", config.DefaultLogFormat, "Diagnostic log format: text or json")
	rootCmd.Flags().StringVar(&app.cfg.LogFile, "log-file", "", "Append diagnostics to this file instead of stderr")
	rootCmd.Flags().BoolVarP(&app.cfg.LineEdit, "line-edit", "e", false, "Use a line editor with command completion when stdin is a terminal")
	rootCmd.Flags().StringArrayVar(&app.cfg.Allow, "allow", nil, "Restrict file access to this path (repeatable)")
	rootCmd.Flags().BoolVar(&app.cfg.ReadOnly, "read-only", false, "Refuse writes inside allowed paths")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
	rootCmd.SetOut(app.stdio.Out)
	rootCmd.SetErr(app.stdio.Err)

	return rootCmd
}

type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

func (app *App) run() error {
	if err := app.cfg.Validate(); err != nil {
		return usageError{err}
	}
	if err := sandbox.Init(app.cfg.Sandbox()); err != nil {
		return usageError{err}
	}

	logger, closer, err := app.cfg.OpenLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	sh := shell.New(app.stdio, shell.Options{
		Prompt: app.cfg.Prompt,
		Logger: logger,
		Exit: func(code int) {
			_ = closer.Close()
			app.exit(code)
		},
	})
	logStart(logger, app.cfg)

	if app.cfg.LineEdit && app.stdinIsTerminal() {
		return sh.RunInteractive()
	}
	return sh.Run()
}

func (app *App) stdinIsTerminal() bool {
	f, ok := app.stdio.In.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func logStart(logger *logging.Logger, cfg *config.Config) {
	rules := sandbox.Rules()
	allowed := make([]string, 0, len(rules))
	for _, r := range rules {
		allowed = append(allowed, r.Path+":"+r.Permission.String())
	}
	logger.Info("shell started", logging.Fields{
		"line_edit": cfg.LineEdit,
		"sandbox":   allowed,
	})
}
