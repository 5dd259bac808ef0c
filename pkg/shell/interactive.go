package shell

import (
	"strings"

	"github.com/elk-language/go-prompt"
	istrings "github.com/elk-language/go-prompt/strings"
)

// RunInteractive reads lines through a line editor that completes command
// names. It returns nil after the exit command and ErrInputClosed when the
// user ends input (Ctrl+D on an empty line). The terminal is restored before
// it returns, so the caller performs the actual process exit.
func (s *Shell) RunInteractive() error {
	s.exit = func(int) {}

	p := prompt.New(func(line string) { s.Execute(line) }, s.promptOptions()...)
	p.Run()

	if s.exited {
		return nil
	}
	s.log.Info("line editor closed")
	return ErrInputClosed
}

// promptOptions configures the line editor: command completion, the shell's
// prompt, and an exit checker that stops the editor after the exit command.
func (s *Shell) promptOptions() []prompt.Option {
	return []prompt.Option{
		prompt.WithCompleter(s.complete),
		prompt.WithPrefix(s.prompt),
		prompt.WithTitle("minishell"),
		prompt.WithPrefixTextColor(prompt.Green),
		prompt.WithSuggestionBGColor(prompt.DarkBlue),
		prompt.WithSuggestionTextColor(prompt.White),
		prompt.WithSelectedSuggestionBGColor(prompt.Cyan),
		prompt.WithSelectedSuggestionTextColor(prompt.Black),
		prompt.WithMaxSuggestion(uint16(len(commands))),
		prompt.WithExitChecker(s.exitRequested),
	}
}

func (s *Shell) exitRequested(in string, breakline bool) bool {
	return s.exited
}

// complete suggests command names while the cursor is in the first word.
func (s *Shell) complete(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
	endIndex := d.CurrentRuneIndex()
	w := d.GetWordBeforeCursor()
	startIndex := endIndex - istrings.RuneCountInString(w)
	return suggest(d.TextBeforeCursor(), w), startIndex, endIndex
}

func suggest(before, word string) []prompt.Suggest {
	before = strings.TrimLeft(before, " \t")
	if strings.ContainsAny(before, " \t") {
		return []prompt.Suggest{}
	}

	suggestions := make([]prompt.Suggest, 0, len(commands))
	for _, name := range Names() {
		suggestions = append(suggestions, prompt.Suggest{Text: name, Description: byName[name].Summary()})
	}
	return prompt.FilterHasPrefix(suggestions, word, false)
}
