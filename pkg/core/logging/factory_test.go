package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	cdsllog "github.com/Sw1zzi/cdsl-visual-tester/pkg/core/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected cdsllog.Level
	}{
		{"trace", cdsllog.LevelTrace},
		{"debug", cdsllog.LevelDebug},
		{"info", cdsllog.LevelInfo},
		{"warn", cdsllog.LevelWarn},
		{"error", cdsllog.LevelError},
		{"off", cdsllog.LevelOff},
		{"bogus", cdsllog.LevelInfo},
		{"", cdsllog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("cdsl")
	if cfg.ServiceName != "cdsl" {
		t.Errorf("ServiceName = %v, want cdsl", cfg.ServiceName)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestNewLogger(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName:       "cdsl-cli",
		Level:             "debug",
		Format:            "json",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	if logger.Name() != "cdsl-cli" {
		t.Errorf("Name() = %v, want cdsl-cli", logger.Name())
	}
	if !logger.IsLevelEnabled(cdsllog.LevelDebug) {
		t.Error("debug level should be enabled")
	}

	logger.Debug("hello")
	for name, buf := range map[string]*bytes.Buffer{"primary": &primary, "extra": &extra} {
		if !strings.Contains(buf.String(), `"message":"hello"`) {
			t.Errorf("%s output = %q, want JSON entry", name, buf.String())
		}
	}
}
