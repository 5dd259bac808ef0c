// Package cp implements the cp command.
package cp

import (
	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/core/fs"
)

const usage = "Usage: cp [file_src] [file_dest]"

// Run copies the file named by args[0] to the path args[1], replacing the
// destination's content if it exists.
func Run(stdio *core.Stdio, args []string) int {
	if len(args) != 2 {
		return core.UsageError(stdio, usage)
	}

	if err := fs.Copy(args[0], args[1]); err != nil {
		return core.ActionError(stdio, "Failed to copy file", err)
	}

	stdio.Println("File copied successfully")
	return core.ExitSuccess
}
