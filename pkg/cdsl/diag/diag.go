// File: diag.go
// Title: CDSL Pipeline Diagnostics
// Description: Non-fatal problem reports shared by the lexer, parser and
//              interpreter. Diagnostics never abort the pipeline; they are
//              collected and handed to the caller next to the result.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial diagnostic model

package diag

import (
	"fmt"
	"strings"
)

// Stage identifies the pipeline stage that produced a diagnostic
type Stage int

const (
	StageLexer Stage = iota
	StageParser
	StageInterpreter
	StagePipeline
)

// String returns the string representation of the stage
func (s Stage) String() string {
	switch s {
	case StageLexer:
		return "lexer"
	case StageParser:
		return "parser"
	case StageInterpreter:
		return "interpreter"
	case StagePipeline:
		return "pipeline"
	default:
		return "unknown"
	}
}

// Severity represents how serious a diagnostic is
type Severity int

const (
	// SeverityInfo marks purely informational notes
	SeverityInfo Severity = iota

	// SeverityWarning marks input that was accepted with a substitution
	SeverityWarning

	// SeverityError marks input whose declaration could not be completed
	SeverityError
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Code categorizes a diagnostic
type Code string

const (
	CodeUnknownToken    Code = "CDSL_UNKNOWN_TOKEN"
	CodeUnexpectedToken Code = "CDSL_UNEXPECTED_TOKEN"
	CodeExpectedToken   Code = "CDSL_EXPECTED_TOKEN"
	CodeUnclosedList    Code = "CDSL_UNCLOSED_LIST"
	CodeIncompleteItem  Code = "CDSL_INCOMPLETE_ITEM"
	CodeUnknownTaskKind Code = "CDSL_UNKNOWN_TASK_KIND"
	CodeUnknownNode     Code = "CDSL_UNKNOWN_NODE"
	CodeInputTooLong    Code = "CDSL_INPUT_TOO_LONG"
)

// DefaultSeverity returns the severity normally used for a code
func DefaultSeverity(code Code) Severity {
	switch code {
	case CodeExpectedToken, CodeUnclosedList, CodeInputTooLong:
		return SeverityError
	case CodeUnknownNode:
		return SeverityInfo
	default:
		return SeverityWarning
	}
}

// Diagnostic is a single non-fatal problem report. Line and Column are
// 1-based; zero means the position is unknown.
type Diagnostic struct {
	Stage    Stage
	Code     Code
	Severity Severity
	Message  string
	Line     int
	Column   int
}

// New creates a diagnostic with the default severity for code
func New(stage Stage, code Code, line, column int, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Stage:    stage,
		Code:     code,
		Severity: DefaultSeverity(code),
		Message:  fmt.Sprintf(format, args...),
		Line:     line,
		Column:   column,
	}
}

// Error implements the error interface
func (d Diagnostic) Error() string {
	var b strings.Builder
	b.WriteString(d.Stage.String())
	if d.Line > 0 {
		fmt.Fprintf(&b, " %d:%d", d.Line, d.Column)
	}
	fmt.Fprintf(&b, ": %s: %s [%s]", d.Severity, d.Message, d.Code)
	return b.String()
}

// List is an ordered collection of diagnostics
type List []Diagnostic

// HasErrors reports whether any diagnostic has error severity
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity >= SeverityError {
			return true
		}
	}
	return false
}

// WithCode returns the diagnostics carrying code
func (l List) WithCode(code Code) List {
	var out List
	for _, d := range l {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

// FromStages returns the diagnostics produced by any of stages
func (l List) FromStages(stages ...Stage) List {
	var out List
	for _, d := range l {
		for _, s := range stages {
			if d.Stage == s {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// Count returns the number of diagnostics at or above severity
func (l List) Count(severity Severity) int {
	n := 0
	for _, d := range l {
		if d.Severity >= severity {
			n++
		}
	}
	return n
}
