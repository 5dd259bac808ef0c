package shell

import (
	"errors"
	"sort"
	"strings"

	"github.com/rcarmo/go-minishell/pkg/applets/cat"
	"github.com/rcarmo/go-minishell/pkg/applets/cd"
	"github.com/rcarmo/go-minishell/pkg/applets/clearscreen"
	"github.com/rcarmo/go-minishell/pkg/applets/cp"
	"github.com/rcarmo/go-minishell/pkg/applets/echo"
	"github.com/rcarmo/go-minishell/pkg/applets/ls"
	"github.com/rcarmo/go-minishell/pkg/applets/mkdir"
	"github.com/rcarmo/go-minishell/pkg/applets/mv"
	"github.com/rcarmo/go-minishell/pkg/applets/pwd"
	"github.com/rcarmo/go-minishell/pkg/applets/rm"
	"github.com/rcarmo/go-minishell/pkg/applets/touch"
	"github.com/rcarmo/go-minishell/pkg/core"
)

// ErrUnsupported is returned by Parse for an empty line or an unknown command.
var ErrUnsupported = errors.New("command not supported yet")

// Command identifies one of the shell's built-in commands.
type Command int

const (
	Echo Command = iota
	Cd
	Ls
	Pwd
	Cat
	Cp
	Rm
	Mv
	Mkdir
	Exit
	Touch
	Clear
)

type handlerFunc func(stdio *core.Stdio, args []string) int

type commandInfo struct {
	name    string
	summary string
	run     handlerFunc // nil for commands the shell handles itself
}

var commands = [...]commandInfo{
	Echo:  {"echo", "print arguments", echo.Run},
	Cd:    {"cd", "change directory", cd.Run},
	Ls:    {"ls", "list directory entries", ls.Run},
	Pwd:   {"pwd", "print working directory", pwd.Run},
	Cat:   {"cat", "print file contents", cat.Run},
	Cp:    {"cp", "copy a file", cp.Run},
	Rm:    {"rm", "remove files", rm.Run},
	Mv:    {"mv", "rename a file", mv.Run},
	Mkdir: {"mkdir", "create directories", mkdir.Run},
	Exit:  {"exit", "leave the shell", nil},
	Touch: {"touch", "create an empty file", touch.Run},
	Clear: {"clear", "clear the screen", clearscreen.Run},
}

var byName = func() map[string]Command {
	m := make(map[string]Command, len(commands))
	for i, info := range commands {
		m[info.name] = Command(i)
	}
	return m
}()

// String returns the command's name.
func (c Command) String() string {
	if c < 0 || int(c) >= len(commands) {
		return "unknown"
	}
	return commands[c].name
}

// Summary returns a one-line description of the command.
func (c Command) Summary() string {
	if c < 0 || int(c) >= len(commands) {
		return ""
	}
	return commands[c].summary
}

// Parse selects a command from the first whitespace-separated token of
// line. Matching is exact and case-sensitive.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, ErrUnsupported
	}
	cmd, ok := byName[fields[0]]
	if !ok {
		return 0, ErrUnsupported
	}
	return cmd, nil
}

// Names returns every command name in sorted order.
func Names() []string {
	names := make([]string, 0, len(commands))
	for _, info := range commands {
		names = append(names, info.name)
	}
	sort.Strings(names)
	return names
}
