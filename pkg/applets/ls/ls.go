// Package ls implements the ls command.
package ls

import (
	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/core/fs"
)

// Run prints the bare entry names of each directory argument, or of the
// current directory when there are none. Paths are listed independently.
func Run(stdio *core.Stdio, args []string) int {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	exitCode := core.ExitSuccess
	for _, path := range paths {
		if err := listDirectory(stdio, path); err != nil {
			exitCode = core.ExitFailure
		}
	}

	return exitCode
}

func listDirectory(stdio *core.Stdio, path string) error {
	entries, err := fs.ReadDir(path)
	if err != nil {
		stdio.Errorf("Failed to read the content of the directory '%s': %v\n", path, err)
		return err
	}

	for _, e := range entries {
		stdio.Println(e.Name())
	}
	return nil
}
