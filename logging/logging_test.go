package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.level, got, tt.want)
		}
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
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf})

	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line")
	l.Error("error line")

	out := buf.String()
	if strings.Contains(out, "debug line") || strings.Contains(out, "info line") {
		t.Errorf("low-level lines were written: %q", out)
	}
	if !strings.Contains(out, "warn line") || !strings.Contains(out, "error line") {
		t.Errorf("expected lines missing: %q", out)
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf, Prefix: "test"})

	l.WithComponent("dialog").WithField("id", 7).Info("opened")

	out := buf.String()
	if !strings.Contains(out, "component=dialog") {
		t.Errorf("component field missing: %q", out)
	}
	if !strings.Contains(out, "id=7") {
		t.Errorf("id field missing: %q", out)
	}
	if !strings.Contains(out, "test: opened") {
		t.Errorf("prefix or message missing: %q", out)
	}
}

func TestLogger_WithFieldDoesNotMutate(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf})

	_ = l.WithField("a", 1)
	l.Info("plain")

	if strings.Contains(buf.String(), "a=1") {
		t.Errorf("WithField mutated the parent logger: %q", buf.String())
	}
}

func TestLogger_Formatting(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf})

	l.Info("count=%d", 42)

	if !strings.Contains(buf.String(), "count=42") {
		t.Errorf("formatted args missing: %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic and must write nothing anywhere.
	NullLogger.Info("ignored")
	NullLogger.WithField("k", "v").Error("ignored")
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}

	var buf bytes.Buffer
	custom := New(Config{Level: LevelDebug, Output: &buf})
	SetDefault(custom)
	defer SetDefault(nil)

	Default().Info("through default")
	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("SetDefault not honored: %q", buf.String())
	}
}
