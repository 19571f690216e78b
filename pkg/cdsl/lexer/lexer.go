// File: lexer.go
// Title: CDSL Lexical Analyzer (Tokenizer)
// Description: Converts CDSL problem descriptions into a flat token stream.
//              Text is scanned line by line: the inner scanner yields tokens
//              with line-local columns while the outer loop advances the
//              line counter, so bracketed lists may span lines without any
//              lexer state crossing a line boundary. Lexing never fails;
//              unrecognized character runs become UNKNOWN tokens.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial lexer implementation

package lexer

import (
	"strings"
	"unicode"
)

// CommentPrefix starts a line comment. Only whole lines are comments.
const CommentPrefix = "//"

// Tokenize converts CDSL text into tokens. A non-empty result always ends
// with a single EOF token placed on the line after the last input line.
// Input without any tokens yields an empty slice and no EOF token.
func Tokenize(text string) []Token {
	tokens := []Token{}
	if strings.TrimSpace(text) == "" {
		return tokens
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		s := newLineScanner(line, i+1)
		for {
			tok, ok := s.next()
			if !ok {
				break
			}
			tokens = append(tokens, tok)
		}
	}

	if len(tokens) > 0 {
		tokens = append(tokens, Token{Type: TokenEOF, Line: len(lines) + 1, Column: 1})
	}
	return tokens
}

// lineScanner yields the tokens of one physical line
type lineScanner struct {
	src  []rune
	pos  int
	line int
}

func newLineScanner(line string, lineNumber int) *lineScanner {
	s := &lineScanner{src: []rune(line), line: lineNumber}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, CommentPrefix) {
		s.pos = len(s.src)
	}
	return s
}

// next returns the next token of the line, or false at the end of the line
func (s *lineScanner) next() (Token, bool) {
	for s.pos < len(s.src) && unicode.IsSpace(s.src[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.src) {
		return Token{}, false
	}

	if tok, ok := s.scanString(); ok {
		return tok, true
	}
	if tok, ok := s.scanDigitPosition(); ok {
		return tok, true
	}
	if isDigit(s.src[s.pos]) {
		end := s.pos
		for end < len(s.src) && isDigit(s.src[end]) {
			end++
		}
		return s.emit(TokenInteger, end), true
	}
	if tok, ok := s.scanKeyword(); ok {
		return tok, true
	}
	if tok, ok := s.scanPunctuation(); ok {
		return tok, true
	}
	return s.scanUnknown(), true
}

// emit builds a token from the current position to end and advances
func (s *lineScanner) emit(tt TokenType, end int) Token {
	tok := Token{
		Type:   tt,
		Value:  string(s.src[s.pos:end]),
		Line:   s.line,
		Column: s.pos + 1,
	}
	s.pos = end
	return tok
}

func (s *lineScanner) scanString() (Token, bool) {
	if s.src[s.pos] != '"' {
		return Token{}, false
	}
	for end := s.pos + 1; end < len(s.src); end++ {
		if s.src[end] == '"' {
			return s.emit(TokenString, end+1), true
		}
	}
	return Token{}, false
}

// scanDigitPosition matches a bracketed position such as [3]
func (s *lineScanner) scanDigitPosition() (Token, bool) {
	if s.src[s.pos] != '[' {
		return Token{}, false
	}
	end := s.pos + 1
	for end < len(s.src) && isDigit(s.src[end]) {
		end++
	}
	if end == s.pos+1 || end >= len(s.src) || s.src[end] != ']' {
		return Token{}, false
	}
	return s.emit(TokenDigitPosition, end+1), true
}

func (s *lineScanner) scanKeyword() (Token, bool) {
	if !isWordRune(s.src[s.pos]) {
		return Token{}, false
	}
	for _, p := range phrases {
		if s.matchesAt(p.text) && s.isWholeWord(len(p.text)) {
			return s.emit(p.tokenType, s.pos+len(p.text)), true
		}
	}
	return Token{}, false
}

// matchesAt compares an upper-case phrase against the source ignoring case
func (s *lineScanner) matchesAt(text []rune) bool {
	if s.pos+len(text) > len(s.src) {
		return false
	}
	for i, r := range text {
		if unicode.ToUpper(s.src[s.pos+i]) != r {
			return false
		}
	}
	return true
}

// isWholeWord reports whether the n runes at the current position are
// not glued to neighbouring word characters
func (s *lineScanner) isWholeWord(n int) bool {
	if s.pos > 0 && isWordRune(s.src[s.pos-1]) {
		return false
	}
	end := s.pos + n
	return end >= len(s.src) || !isWordRune(s.src[end])
}

var singleCharTokens = map[rune]TokenType{
	'[': TokenLBracket,
	']': TokenRBracket,
	'(': TokenLParen,
	')': TokenRParen,
	',': TokenComma,
	':': TokenColon,
	';': TokenSemicolon,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMultiply,
	'/': TokenDivide,
	'%': TokenModulo,
	'=': TokenEquals,
	'>': TokenGreater,
	'<': TokenLess,
}

var doubleCharTokens = map[string]TokenType{
	"==": TokenEquals,
	"!=": TokenNotEquals,
	">=": TokenGreaterEqual,
	"<=": TokenLessEqual,
}

func (s *lineScanner) scanPunctuation() (Token, bool) {
	if s.pos+1 < len(s.src) {
		if tt, ok := doubleCharTokens[string(s.src[s.pos:s.pos+2])]; ok {
			return s.emit(tt, s.pos+2), true
		}
	}
	if tt, ok := singleCharTokens[s.src[s.pos]]; ok {
		return s.emit(tt, s.pos+1), true
	}
	return Token{}, false
}

// scanUnknown consumes a maximal run of characters that cannot start or
// delimit anything else, or a single character when the run is empty
func (s *lineScanner) scanUnknown() Token {
	end := s.pos
	for end < len(s.src) && !isUnknownStop(s.src[end]) {
		end++
	}
	if end == s.pos {
		end++
	}
	return s.emit(TokenUnknown, end)
}

func isUnknownStop(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '[', ']', ',', '(', ')', ':', ';', '"':
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
