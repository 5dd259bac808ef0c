// Package pwd implements the pwd command.
package pwd

import (
	"unicode/utf8"

	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/core/fs"
)

// Run prints the working directory as the kernel reports it at call time.
// Arguments are ignored.
func Run(stdio *core.Stdio, args []string) int {
	dir, err := fs.Getwd()
	if err != nil {
		return core.ActionError(stdio, "Error reading current directory", err)
	}
	if !utf8.ValidString(dir) {
		stdio.Errorln("Unable to convert path to string.")
		return core.ExitFailure
	}

	stdio.Println(dir)
	return core.ExitSuccess
}
