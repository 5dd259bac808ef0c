// Package echo implements the echo command.
package echo

import (
	"strings"

	"github.com/rcarmo/go-minishell/pkg/core"
)

const usage = "Usage : echo [something_to_echo]"

// quoteStripper removes literal quote characters. Arguments arrive already
// split on whitespace, so quotes never group words together.
var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// Run executes the echo command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	if len(args) == 0 {
		return core.UsageError(stdio, usage)
	}

	clean := make([]string, len(args))
	for i, arg := range args {
		clean[i] = quoteStripper.Replace(arg)
	}

	stdio.Println(strings.Join(clean, " "))
	return core.ExitSuccess
}
