// Package mkdir implements the mkdir command.
package mkdir

import (
	"os"

	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/core/fs"
)

const usage = "Usage : mkdir [folder_name]"

// Run creates one directory level per argument. Missing parents are an
// error; each argument succeeds or fails on its own.
func Run(stdio *core.Stdio, args []string) int {
	if len(args) == 0 {
		return core.UsageError(stdio, usage)
	}

	mode := os.FileMode(0777)
	exitCode := core.ExitSuccess
	for _, dir := range args {
		if err := fs.Mkdir(dir, mode); err != nil {
			exitCode = core.ActionError(stdio, "Failed to create the new folder", err)
			continue
		}
		stdio.Println("Folder created successfully")
	}

	return exitCode
}
