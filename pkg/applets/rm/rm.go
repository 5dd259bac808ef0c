// Package rm implements the rm command.
package rm

import (
	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/core/fs"
)

// Run removes each argument as a regular file. Directories are never
// removed. No arguments is a no-op; a failure does not stop later removals.
func Run(stdio *core.Stdio, args []string) int {
	exitCode := core.ExitSuccess
	for _, path := range args {
		if err := fs.RemoveFile(path); err != nil {
			exitCode = core.ActionError(stdio, "Error when removing the file", err)
		}
	}

	return exitCode
}
