// Package cat implements the cat command.
package cat

import (
	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/core/fs"
)

const usage = "Usage: cat [file_to_cat]"

// Run prints each named file in order. A file that cannot be read is
// reported and the remaining files are still printed.
func Run(stdio *core.Stdio, args []string) int {
	if len(args) == 0 {
		return core.UsageError(stdio, usage)
	}

	exitCode := core.ExitSuccess
	for _, file := range args {
		content, err := fs.ReadText(file)
		if err != nil {
			stdio.Errorf("Error reading file '%s' : %v\n", file, err)
			exitCode = core.ExitFailure
			continue
		}
		stdio.Println(content)
	}

	return exitCode
}
