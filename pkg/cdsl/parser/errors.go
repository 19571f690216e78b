// File: errors.go
// Title: CDSL Parse Errors
// Description: Error type returned by sub-parsers and converted into
//              diagnostics by the top-level loop.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial parse error type

package parser

import (
	"fmt"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/lexer"
)

// ParseError represents a parsing error with position information
type ParseError struct {
	Code    diag.Code
	Message string
	Token   lexer.Token
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s (near '%s')",
		pe.Token.Line, pe.Token.Column, pe.Message, pe.Token.Value)
}

// Diagnostic converts the error into a parser diagnostic
func (pe *ParseError) Diagnostic() diag.Diagnostic {
	return diag.New(diag.StageParser, pe.Code, pe.Token.Line, pe.Token.Column, "%s", pe.Message)
}
