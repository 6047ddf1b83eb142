package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestLogger(level LogLevel, prefix string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(level, prefix)
	l.SetOutput(&buf)
	l.out.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	return l, &buf
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(WARN, "GAME")

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected messages below WARN to be dropped, got %q", out)
	}
	if !strings.Contains(out, "[2024-01-01 12:00:00] [WARN] GAME: shown 3") {
		t.Errorf("Expected formatted warn line, got %q", out)
	}
	if !strings.Contains(out, "[ERROR] GAME: shown 4") {
		t.Errorf("Expected error line, got %q", out)
	}
}

func TestWithPrefixSharesOutput(t *testing.T) {
	root, buf := newTestLogger(DEBUG, "GAME")
	child := root.WithPrefix("RUN")

	child.Info("level %d complete", 2)

	if !strings.Contains(buf.String(), "[INFO] RUN: level 2 complete") {
		t.Errorf("Expected child output in parent buffer, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", DEBUG, false},
		{"INFO", INFO, false},
		{"", INFO, false},
		{"warning", WARN, false},
		{"error", ERROR, false},
		{"loud", INFO, true},
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

func TestDiscardWritesNothing(t *testing.T) {
	l := Discard()
	l.Error("nothing %s", "here")
	if l.Level() <= ERROR {
		t.Errorf("Expected discard logger to sit above ERROR, got %v", l.Level())
	}
}
