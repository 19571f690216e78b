// File: parser.go
// Title: CDSL Recursive Descent Parser
// Description: Cursor primitives, top-level dispatch and error recovery.
//              Every declaration is parsed by a sub-parser returning the
//              (possibly partial) node and an error; errors become
//              diagnostics and the cursor resynchronizes to the next
//              command keyword.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/lexer"
	cdsllog "github.com/Sw1zzi/cdsl-visual-tester/pkg/core/log"
)

// Parser implements recursive descent parsing for CDSL. A Parser is
// single-use and not safe for concurrent use.
type Parser struct {
	tokens  []lexer.Token
	current int
	logger  *cdsllog.Logger
	diags   diag.List
}

// Options configures parser behavior
type Options struct {
	Logger *cdsllog.Logger
}

// New creates a parser over tokens
func New(tokens []lexer.Token, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = cdsllog.GetDefault()
	}
	return &Parser{
		tokens: tokens,
		logger: opts.Logger.WithField("component", "cdsl-parser"),
	}
}

// Parse parses tokens with the default logger
func Parse(tokens []lexer.Token) *ast.Node {
	return New(tokens, Options{}).Parse()
}

// Diagnostics returns the problems found by the last Parse call
func (p *Parser) Diagnostics() diag.List {
	return append(diag.List{}, p.diags...)
}

// Parse consumes the whole token stream and returns the PROGRAM node
func (p *Parser) Parse() *ast.Node {
	program := ast.New(ast.KindProgram, ast.Position{Line: 1, Column: 1})

	p.logger.Debug("Starting CDSL parsing", cdsllog.Fields{
		"tokens": len(p.tokens),
	})

	for !p.isAtEnd() {
		start := p.current
		node, err := p.parseDeclaration()
		program.Add(node)
		if err != nil {
			p.report(err)
			p.synchronize()
		}
		if p.current == start {
			// Guarantee forward progress whatever dispatch did.
			p.advance()
		}
	}

	p.logger.Debug("CDSL parsing completed", cdsllog.Fields{
		"declarations": program.Len(),
		"diagnostics":  len(p.diags),
	})
	return program
}

// parseDeclaration dispatches on the current token. It returns a nil node
// for tokens that start no declaration.
func (p *Parser) parseDeclaration() (*ast.Node, error) {
	switch {
	case p.match(lexer.TokenTask):
		return p.parseTaskDeclaration()
	case p.match(lexer.TokenDeck):
		return p.parseDeckDeclaration()
	case p.match(lexer.TokenAlphabet):
		return p.parseAlphabetDeclaration()
	case p.match(lexer.TokenLength):
		return p.parseLengthDeclaration()
	case p.check(lexer.TokenUnique) || p.check(lexer.TokenAllowDuplicates):
		return p.parseUniqueDeclaration()
	case p.match(lexer.TokenTarget):
		return p.parseTargetDeclaration()
	case p.check(lexer.TokenDraw) && (p.checkNext(lexer.TokenLBracket) || isColor(p.peekAt(1).Type)):
		return p.parseBallsDeclaration()
	case p.match(lexer.TokenDraw, lexer.TokenDrawCount):
		return p.parseDrawDeclaration()
	case p.match(lexer.TokenCondition):
		return p.parseCondition()
	case p.match(lexer.TokenCalculate):
		return p.parseCalculate()
	case p.match(lexer.TokenUnknowns):
		return p.parseUnknownsDeclaration()
	case p.match(lexer.TokenSum):
		return p.parseSumDeclaration()
	case p.match(lexer.TokenDomain):
		return p.parseDomainDeclaration()
	case p.match(lexer.TokenConstraints):
		return p.parseConstraintsDeclaration()
	case p.match(lexer.TokenCoefficients):
		return p.parseCoefficientsDeclaration()
	case p.check(lexer.TokenNumbers):
		return p.parseNumbersDeclaration()
	case p.isDigitsLead() && isDivisibilityAttribute(p.peekAt(2).Type):
		return p.parseDivisibilityDeclaration()
	case p.isDigitsLead():
		return p.parseNumbersDeclaration()
	case p.check(lexer.TokenDivisibility):
		return p.parseDivisibilityDeclaration()
	case p.check(lexer.TokenRemainders) || p.check(lexer.TokenDividend) ||
		p.check(lexer.TokenDivisor) || p.check(lexer.TokenRemainder):
		return p.parseRemaindersDeclaration()
	case p.check(lexer.TokenUrn) || p.check(lexer.TokenBalls):
		return p.parseBallsDeclaration()
	case p.check(lexer.TokenLBracket) && isColor(p.peekAt(1).Type):
		return p.parseBallsDeclaration()
	case isColor(p.peek().Type):
		return p.parseBallsDeclaration()
	case p.check(lexer.TokenChess) || p.check(lexer.TokenPieces) ||
		p.check(lexer.TokenBoardHeight) || p.check(lexer.TokenBoardWidth):
		return p.parseChessDeclaration()
	case p.match(lexer.TokenSemicolon):
		return nil, nil
	case p.check(lexer.TokenUnknown):
		tok := p.advance()
		p.addDiag(diag.CodeUnknownToken, tok, "skipping unrecognized input %q", tok.Value)
		return nil, nil
	default:
		tok := p.advance()
		p.addDiag(diag.CodeUnexpectedToken, tok, "skipping %s with no declaration", tok)
		return nil, nil
	}
}

// isDigitsLead reports whether the cursor is at DIGITS <int>
func (p *Parser) isDigitsLead() bool {
	return (p.check(lexer.TokenDigits) || p.check(lexer.TokenNumberLength)) &&
		p.checkNext(lexer.TokenInteger)
}

// commandTokens start a top-level declaration. Sub-parsers stop before
// them and recovery skips forward to them.
var commandTokens = map[lexer.TokenType]bool{
	lexer.TokenTask:            true,
	lexer.TokenDeck:            true,
	lexer.TokenAlphabet:        true,
	lexer.TokenLength:          true,
	lexer.TokenUnique:          true,
	lexer.TokenAllowDuplicates: true,
	lexer.TokenTarget:          true,
	lexer.TokenDraw:            true,
	lexer.TokenCondition:       true,
	lexer.TokenCalculate:       true,
	lexer.TokenUnknowns:        true,
	lexer.TokenSum:             true,
	lexer.TokenDomain:          true,
	lexer.TokenConstraints:     true,
	lexer.TokenCoefficients:    true,
	lexer.TokenDivisibility:    true,
	lexer.TokenRemainders:      true,
	lexer.TokenUrn:             true,
	lexer.TokenBalls:           true,
	lexer.TokenNumbers:         true,
	lexer.TokenChess:           true,
	lexer.TokenPieces:          true,
	lexer.TokenBoardHeight:     true,
	lexer.TokenBoardWidth:      true,
}

// IsCommand reports whether tokens of type tt start a declaration
func IsCommand(tt lexer.TokenType) bool {
	return commandTokens[tt]
}

func (p *Parser) isNextCommand() bool {
	return !p.isAtEnd() && commandTokens[p.peek().Type]
}

// atBlockEnd reports whether an attribute block stops here
func (p *Parser) atBlockEnd() bool {
	return p.isAtEnd() || p.isNextCommand() || p.check(lexer.TokenSemicolon)
}

// synchronize skips tokens until a command keyword or the end of input
func (p *Parser) synchronize() {
	skipped := 0
	for !p.isAtEnd() && !p.isNextCommand() {
		p.advance()
		skipped++
	}
	if skipped > 0 {
		p.logger.Trace("Resynchronized", cdsllog.Fields{
			"skipped": skipped,
			"at":      p.peek().String(),
		})
	}
}

// Cursor primitives

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(tt lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) checkNext(tt lexer.TokenType) bool {
	return p.peekAt(1).Type == tt
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// isAtEnd is true on EOF or past the end of a stream without EOF
func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens) || p.tokens[p.current].Type == lexer.TokenEOF
}

func (p *Parser) peek() lexer.Token {
	return p.peekAt(0)
}

// peekAt looks ahead without consuming; past the end it yields EOF
func (p *Parser) peekAt(offset int) lexer.Token {
	i := p.current + offset
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.eof()
}

func (p *Parser) previous() lexer.Token {
	if p.current == 0 || len(p.tokens) == 0 {
		return p.eof()
	}
	return p.tokens[p.current-1]
}

func (p *Parser) eof() lexer.Token {
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		if last.Type == lexer.TokenEOF {
			return last
		}
		return lexer.Token{Type: lexer.TokenEOF, Line: last.Line + 1, Column: 1}
	}
	return lexer.Token{Type: lexer.TokenEOF, Line: 1, Column: 1}
}

// Diagnostics and errors

func (p *Parser) report(err error) {
	if pe, ok := err.(*ParseError); ok {
		p.diags = append(p.diags, pe.Diagnostic())
	} else {
		p.diags = append(p.diags, diag.New(diag.StageParser, diag.CodeUnexpectedToken, 0, 0, "%v", err))
	}
	p.logger.Debug("Declaration error", cdsllog.Fields{"error": err.Error()})
}

func (p *Parser) addDiag(code diag.Code, tok lexer.Token, format string, args ...interface{}) {
	d := diag.New(diag.StageParser, code, tok.Line, tok.Column, format, args...)
	p.diags = append(p.diags, d)
	p.logger.Debug("Parser diagnostic", cdsllog.Fields{
		"code":    string(code),
		"message": d.Message,
	})
}

// expected builds an error about the current token
func (p *Parser) expected(what string) *ParseError {
	tok := p.peek()
	found := "end of input"
	if !p.isAtEnd() {
		found = tok.String()
	}
	return &ParseError{
		Code:    diag.CodeExpectedToken,
		Message: fmt.Sprintf("expected %s, found %s", what, found),
		Token:   tok,
	}
}

// skipUnexpected records and consumes a token an attribute block cannot use
func (p *Parser) skipUnexpected(block string) {
	tok := p.advance()
	code := diag.CodeUnexpectedToken
	if tok.Type == lexer.TokenUnknown {
		code = diag.CodeUnknownToken
	}
	p.addDiag(code, tok, "unexpected %s in %s block", tok, block)
}

// Literal helpers

func pos(tok lexer.Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column}
}

// intOf converts an INTEGER token
func intOf(tok lexer.Token) (int, error) {
	n, err := strconv.Atoi(tok.Value)
	if err != nil {
		return 0, &ParseError{
			Code:    diag.CodeUnexpectedToken,
			Message: fmt.Sprintf("integer %s out of range", tok.Value),
			Token:   tok,
		}
	}
	return n, nil
}

// matchInt consumes an INTEGER token when present
func (p *Parser) matchInt() (int, bool, error) {
	if !p.match(lexer.TokenInteger) {
		return 0, false, nil
	}
	n, err := intOf(p.previous())
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// matchBool consumes a BOOLEAN token when present
func (p *Parser) matchBool() (bool, bool) {
	if !p.match(lexer.TokenBoolean) {
		return false, false
	}
	return boolOf(p.previous()), true
}

func boolOf(tok lexer.Token) bool {
	v := strings.ToUpper(tok.Value)
	return v == "YES" || v == "TRUE"
}

// unquote removes the quotes of a STRING token
func unquote(tok lexer.Token) string {
	return strings.ReplaceAll(tok.Value, `"`, "")
}

// wordOf renders a token inside free-form text
func wordOf(tok lexer.Token) string {
	if tok.Type == lexer.TokenString {
		return unquote(tok)
	}
	return tok.Text()
}

var comparisonOperators = map[lexer.TokenType]string{
	lexer.TokenEquals:       "=",
	lexer.TokenNotEquals:    "!=",
	lexer.TokenGreater:      ">",
	lexer.TokenLess:         "<",
	lexer.TokenGreaterEqual: ">=",
	lexer.TokenLessEqual:    "<=",
}

// matchComparison consumes a comparison operator and returns its
// canonical spelling ("==" becomes "=")
func (p *Parser) matchComparison() (string, bool) {
	op, ok := comparisonOperators[p.peek().Type]
	if !ok || p.isAtEnd() {
		return "", false
	}
	p.advance()
	return op, true
}

func isColor(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenRed, lexer.TokenBlue, lexer.TokenGreen, lexer.TokenWhite, lexer.TokenBlack:
		return true
	}
	return false
}
