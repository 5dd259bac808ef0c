// Package mv implements the mv command.
package mv

import (
	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/core/fs"
)

const usage = "Usage: mv [file_src] [file_dest]"

// Run renames args[0] to args[1] with a single rename call, which is atomic
// within one filesystem.
func Run(stdio *core.Stdio, args []string) int {
	if len(args) != 2 {
		return core.UsageError(stdio, usage)
	}

	if err := fs.Rename(args[0], args[1]); err != nil {
		return core.ActionError(stdio, "Failed to rename the file", err)
	}
	return core.ExitSuccess
}
