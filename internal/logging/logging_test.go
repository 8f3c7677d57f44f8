package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelWarn)
	logger.SetOutput(&buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below the level must be dropped, got:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] warn message") {
		t.Errorf("warn message missing, got:\n%s", out)
	}
	if !strings.Contains(out, "[ERROR] error message") {
		t.Errorf("error message missing, got:\n%s", out)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelError)
	logger.SetOutput(&buf)

	logger.Info("before")
	logger.SetLevel(LevelDebug)
	logger.Info("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Error("info logged while level was error")
	}
	if !strings.Contains(out, "after") {
		t.Error("info dropped after lowering the level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("should vanish silently")
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug)
	logger.SetOutput(&buf)

	logger.Info("computed %d events for %s", 11, "sunrise")

	if !strings.Contains(buf.String(), "computed 11 events for sunrise") {
		t.Errorf("format args not applied, got:\n%s", buf.String())
	}
}
