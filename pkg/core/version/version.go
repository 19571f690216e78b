// ============================================================================
// CDSL Visual Tester - Combinatorics Problem Front-End
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolkit and its DSL
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Toolkit version
	Toolkit = "0.1.0"

	// Language is the CDSL grammar revision understood by the parser
	Language = "1.0.0"

	// Component versions
	Lexer       = "0.1.0"
	Parser      = "0.1.0"
	Interpreter = "0.1.0"
	Playground  = "0.1.0"
)

// Build metadata, set with -ldflags "-X .../version.Commit=..."
var (
	Commit = "dev"
	Date   = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "interpreter":
		return Interpreter
	case "playground":
		return Playground
	case "language", "cdsl":
		return Language
	default:
		return Toolkit
	}
}

// String renders the version line printed by the CLI
func String() string {
	return fmt.Sprintf("cdsl %s (language %s, commit %s, built %s)", Toolkit, Language, Commit, Date)
}
