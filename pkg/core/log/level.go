// ============================================================================
// CDSL Visual Tester - Combinatorics Problem Front-End
// ============================================================================
//
// Package:     log
// Description: Log levels for filtering structured log output
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package log

import "strings"

// Level orders log entries by importance
type Level int

const (
	// LevelTrace is used for token-by-token pipeline traces
	LevelTrace Level = iota

	// LevelDebug provides per-declaration information
	LevelDebug

	// LevelInfo covers run summaries
	LevelInfo

	// LevelWarn indicates recoverable problems in the input
	LevelWarn

	// LevelError represents failures of the surrounding tooling
	LevelError

	// LevelOff disables all output
	LevelOff
)

// String returns the lower-case level name
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelOff:
		return "off"
	default:
		return "unknown"
	}
}

// ShortString returns a three letter representation used by the text formatter
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	default:
		return "???"
	}
}

// ShouldLog returns true if this level passes the given minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelOff || minLevel == LevelOff {
		return false
	}
	return l >= minLevel
}

// ParseLevel accepts full names and three letter abbreviations;
// unknown input yields LevelInfo and a *ParseError
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "information":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "off", "none", "silent":
		return LevelOff, nil
	default:
		return LevelInfo, &ParseError{Input: level, Type: "level"}
	}
}

// ParseError reports an unrecognized level or format name
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level used by the process default logger
func DefaultLevel() Level {
	return LevelWarn
}
