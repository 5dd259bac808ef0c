// Package touch implements the touch command.
package touch

import (
	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/core/fs"
)

const usage = "Usage: touch [file_name]"

// Run creates the file named by args[0] if it is absent. Existing content is
// never truncated. Arguments after the first are ignored.
func Run(stdio *core.Stdio, args []string) int {
	if len(args) == 0 {
		return core.UsageError(stdio, usage)
	}

	if err := fs.Touch(args[0]); err != nil {
		return core.ActionError(stdio, "Failed to create file", err)
	}

	stdio.Println("File created successfully")
	return core.ExitSuccess
}
