package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		logType   string
		level     string
		wantError bool
	}{
		{"json/info", JSON, "info", false},
		{"text/debug", Text, "debug", false},
		{"tint/warn", Tint, "warn", false},
		{"json/error", JSON, "error", false},
		{"invalid level", JSON, "bogus", true},
		{"unknown type", "unknown", "info", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Initialize(&buf, tt.logType, tt.level)
			if (err != nil) != tt.wantError {
				t.Errorf("Initialize(%q, %q) error = %v, wantError = %v", tt.logType, tt.level, err, tt.wantError)
			}
		})
	}
}

func TestInitialize_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := Initialize(&buf, JSON, "info"); err != nil {
		t.Fatal(err)
	}
	slog.Info("stage started", "stage", "locate input")

	got := buf.String()
	if !strings.Contains(got, `"stage":"locate input"`) {
		t.Errorf("expected JSON record in writer, got %q", got)
	}
	if strings.Contains(got, `"source"`) {
		t.Errorf("source should only be added at debug level, got %q", got)
	}
}

func TestInitialize_TintWithoutTerminalHasNoColor(t *testing.T) {
	var buf bytes.Buffer
	if err := Initialize(&buf, Tint, "info"); err != nil {
		t.Fatal(err)
	}
	slog.Info("copied file")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected no ANSI escapes for a non-terminal writer, got %q", buf.String())
	}
}
