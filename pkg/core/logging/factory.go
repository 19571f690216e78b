// ============================================================================
// CDSL Visual Tester - Combinatorics Problem Front-End
// ============================================================================
//
// Package:     logging
// Description: Factory functions turning configuration strings into loggers
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	cdsllog "github.com/Sw1zzi/cdsl-visual-tester/pkg/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name attached to every entry
	ServiceName string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format: "text" or "json" (default: text)
	Format string

	// Output destination (default: stderr)
	Output io.Writer

	// Additional outputs written alongside Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// NewLogger creates a logger from cfg
func NewLogger(cfg LoggerConfig) *cdsllog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return cdsllog.NewWithConfig(cdsllog.Config{
		Level:  parseLevel(cfg.Level),
		Format: parseFormat(cfg.Format),
		Output: output,
		Name:   cfg.ServiceName,
	})
}

// parseLevel converts a string level, falling back to info
func parseLevel(level string) cdsllog.Level {
	parsed, err := cdsllog.ParseLevel(level)
	if err != nil {
		return cdsllog.LevelInfo
	}
	return parsed
}

func parseFormat(format string) cdsllog.Format {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return cdsllog.FormatJSON
	}
	return cdsllog.FormatText
}
