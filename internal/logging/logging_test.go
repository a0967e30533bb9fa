package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"", log.InfoLevel},
		{"debug", log.DebugLevel},
		{" WARN ", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"chatty", log.InfoLevel},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		logger := New(&buf, Options{Level: tt.level})
		if got := logger.GetLevel(); got != tt.want {
			t.Errorf("New(%q) level = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestNewReportsUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{Level: "chatty", Logfmt: true})
	if !strings.Contains(buf.String(), "value=chatty") {
		t.Errorf("output %q does not mention the bad level", buf.String())
	}
}

func TestNewLogfmt(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "debug", Prefix: "approach", Logfmt: true})
	logger.Debug("closest approach", "A", 2)
	out := buf.String()
	for _, want := range []string{"level=debug", "prefix=approach", `msg="closest approach"`, "A=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
