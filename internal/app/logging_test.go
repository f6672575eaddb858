package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LogLevelDebug, false},
		{"INFO", LogLevelInfo, false},
		{"", LogLevelInfo, false},
		{" warn ", LogLevelWarn, false},
		{"warning", LogLevelWarn, false},
		{"Error", LogLevelError, false},
		{"loud", LogLevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLogLevelString(t *testing.T) {
	if LogLevelWarn.String() != "WARN" {
		t.Errorf("LogLevelWarn = %q", LogLevelWarn.String())
	}
	if LogLevel(99).String() != "UNKNOWN" {
		t.Errorf("LogLevel(99) = %q", LogLevel(99).String())
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "glance"})

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("careful %d", 1)
	log.Error("broken")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below the level were written: %q", out)
	}
	if !strings.Contains(out, "[WARN] glance: careful 1") {
		t.Errorf("missing warning in %q", out)
	}
	if !strings.Contains(out, "[ERROR] glance: broken") {
		t.Errorf("missing error in %q", out)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("got %d lines, want 2", n)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	child := log.WithField("view", "abc").WithComponent("config")
	child.Info("reloaded")

	if out := buf.String(); !strings.Contains(out, "reloaded {component=config, view=abc}") {
		t.Errorf("fields not sorted or missing: %q", out)
	}

	buf.Reset()
	log.Info("plain")
	if strings.Contains(buf.String(), "view=") {
		t.Errorf("parent should not inherit child fields: %q", buf.String())
	}
}

func TestLoggerSharedState(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})
	child := log.WithComponent("app")

	log.SetLevel(LogLevelError)
	child.Warn("hidden")
	if buf.Len() != 0 {
		t.Errorf("child should follow the parent's level: %q", buf.String())
	}
	if child.Level() != LogLevelError {
		t.Errorf("child level = %s, want ERROR", child.Level())
	}

	log.Disable()
	child.Error("hidden")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}

	var other bytes.Buffer
	log.Enable()
	log.SetOutput(&other)
	child.Error("shown")
	if !strings.Contains(other.String(), "shown") {
		t.Errorf("output not redirected: %q", other.String())
	}
}

func TestNullLogger(t *testing.T) {
	log := NewNullLogger()
	log.Error("nothing")
	log.WithField("k", "v").Info("nothing")
}
