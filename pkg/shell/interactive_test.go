package shell

import (
	"testing"

	"github.com/elk-language/go-prompt"

	"github.com/rcarmo/go-minishell/pkg/core"
	"github.com/rcarmo/go-minishell/pkg/testutil"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name   string
		before string
		word   string
		want   []string
	}{
		{"prefix", "c", "c", []string{"cat", "cd", "clear", "cp"}},
		{"exact", "mkdir", "mkdir", []string{"mkdir"}},
		{"leading_space", "  ex", "ex", []string{"exit"}},
		{"no_match", "z", "z", nil},
		{"argument_position", "cat fi", "fi", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := suggest(tt.before, tt.word)
			if len(got) != len(tt.want) {
				t.Fatalf("suggest(%q) = %v, want %v", tt.before, got, tt.want)
			}
			for i, s := range got {
				if s.Text != tt.want[i] {
					t.Errorf("suggestion %d = %q, want %q", i, s.Text, tt.want[i])
				}
				if s.Description == "" {
					t.Errorf("suggestion %q has no description", s.Text)
				}
			}
		})
	}
}

func TestPromptOptionsBuildEditor(t *testing.T) {
	stdio, out, _ := testutil.CaptureStdio("")
	var codes []int
	s := New(stdio, Options{Prompt: "> ", Exit: func(code int) { codes = append(codes, code) }})

	opts := s.promptOptions()
	if len(opts) == 0 {
		t.Fatal("no editor options")
	}
	if p := prompt.New(func(line string) { s.Execute(line) }, opts...); p == nil {
		t.Fatal("prompt.New returned nil")
	}

	s.Execute("echo hi")
	testutil.AssertOutput(t, out.String(), "hi\n")
	if s.exitRequested("echo hi", true) {
		t.Error("editor stopped before exit")
	}

	s.Execute("exit")
	if !s.exitRequested("exit", true) {
		t.Error("editor keeps running after exit")
	}
	if len(codes) != 1 || codes[0] != core.ExitSuccess {
		t.Errorf("exit calls = %v, want [0]", codes)
	}
}
