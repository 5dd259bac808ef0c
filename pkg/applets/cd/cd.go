// Package cd implements the cd command.
package cd

import (
	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/core/fs"
)

const usage = "Usage : cd [directory_to_move]"

// Run changes the process working directory. On failure the directory is
// left as it was.
func Run(stdio *core.Stdio, args []string) int {
	if len(args) != 1 {
		return core.UsageError(stdio, usage)
	}

	if err := fs.Chdir(args[0]); err != nil {
		return core.ActionError(stdio, "Failed to change directory", err)
	}
	return core.ExitSuccess
}
