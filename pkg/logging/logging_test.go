package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	l := New(Options{Level: level, Format: format, Output: buf})
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return l
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"off", LevelNone, false},
		{"", LevelNone, false},
		{"verbose", LevelNone, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Errorf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelWarn, FormatText)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("filtered message written: %q", out)
	}
	if !strings.Contains(out, "WARN: shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestNopWritesNothing(t *testing.T) {
	l := Nop()
	if l.Enabled(LevelError) {
		t.Error("Nop logger reports enabled")
	}
	l.Error("nothing", errors.New("boom"))
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelDebug, FormatText)

	l.Error("read failed", errors.New("boom"), Fields{"b": 2, "a": 1})

	want := `[2024-05-01 12:00:00.000] ERROR: read failed error="boom" a=1 b=2` + "\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestJSONFormatWithChildFields(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelDebug, FormatJSON).With(Fields{"session": "abc"})

	l.Debug("dispatch", Fields{"command": "ls"})

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if entry.Message != "dispatch" || entry.Level != "DEBUG" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Fields["session"] != "abc" || entry.Fields["command"] != "ls" {
		t.Errorf("fields = %v", entry.Fields)
	}
}
