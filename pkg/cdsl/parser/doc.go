// File: doc.go
// Title: CDSL Parser Package Documentation
// Description: Recursive-descent parser turning CDSL token streams into
//              declaration trees with per-declaration error recovery.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial parser package

/*
Package parser implements the CDSL parser.

The parser consumes the complete token stream produced by the lexer and
returns a PROGRAM node with one child per top-level declaration, in
source order. It never fails: each declaration is parsed by its own
sub-parser, and when one cannot complete its grammar the problem is
recorded as a diagnostic, the partially built node stays in the tree and
the cursor skips forward to the next command keyword.

Basic usage:

	tokens := lexer.Tokenize(text)
	root := parser.Parse(tokens)

With a logger and access to diagnostics:

	p := parser.New(tokens, parser.Options{Logger: logger})
	root := p.Parse()
	for _, d := range p.Diagnostics() {
		fmt.Println(d)
	}

Keyword-derived values are stored in their canonical upper-case spelling
and string literals lose their quotes, so inputs differing only in
keyword case produce identical trees.
*/
package parser
