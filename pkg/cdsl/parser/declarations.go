// File: declarations.go
// Title: CDSL Single-Line Declarations
// Description: Sub-parsers for task, deck, words, draw, condition,
//              calculation and equation declarations. Each is entered
//              with its leading keyword consumed unless noted otherwise.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial declaration parsers

package parser

import (
	"strconv"
	"strings"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/lexer"
)

// Parser-level defaults for values that are syntactically absent
const (
	DefaultDeckType        = "STANDARD"
	DefaultDeckSize        = 52
	DefaultDrawCount       = 1
	DefaultReplacement     = "NO_REPLACEMENT"
	DefaultCalculationType = "PROBABILITY"
	DefaultBoardSize       = 8
	DefaultDividend        = "X"
	DefaultDivisor         = 1
	DefaultRemainder       = 0
)

var taskKinds = []lexer.TokenType{
	lexer.TokenCards, lexer.TokenWords, lexer.TokenNumbers, lexer.TokenEquations,
	lexer.TokenBalls, lexer.TokenDivisibility, lexer.TokenRemainders, lexer.TokenChess,
}

// parseTaskDeclaration parses TASK <kind> ["name"]. A kind word outside the
// known set is kept verbatim for the interpreter to resolve.
func (p *Parser) parseTaskDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindTaskDeclaration, pos(p.previous()))

	switch {
	case p.match(taskKinds...):
		tok := p.previous()
		node.Add(ast.NewValue(ast.KindTaskType, ast.StringValue(tok.Text()), pos(tok)))
	case !p.isAtEnd() && !p.isNextCommand() && !p.check(lexer.TokenString) && !p.check(lexer.TokenSemicolon):
		tok := p.advance()
		node.Add(ast.NewValue(ast.KindTaskType, ast.StringValue(strings.ToUpper(tok.Value)), pos(tok)))
	default:
		return node, p.expected("task kind")
	}

	if p.match(lexer.TokenString) {
		tok := p.previous()
		node.Add(ast.NewValue(ast.KindTaskName, ast.StringValue(unquote(tok)), pos(tok)))
	} else {
		node.Add(ast.NewValue(ast.KindTaskName, ast.StringValue(""), pos(p.peek())))
	}
	return node, nil
}

// parseDeckDeclaration parses DECK [type] [size]
func (p *Parser) parseDeckDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindDeckDeclaration, pos(p.previous()))

	if p.match(lexer.TokenStandard, lexer.TokenFrench, lexer.TokenSpanish, lexer.TokenCustom) {
		tok := p.previous()
		node.Add(ast.NewValue(ast.KindDeckType, ast.StringValue(tok.Text()), pos(tok)))
	} else {
		node.Add(ast.NewValue(ast.KindDeckType, ast.StringValue(DefaultDeckType), pos(p.peek())))
	}

	size, ok, err := p.matchInt()
	if err != nil {
		return node, err
	}
	if !ok {
		size = DefaultDeckSize
	}
	node.Add(ast.NewValue(ast.KindDeckSize, ast.IntValue(size), pos(p.previous())))
	return node, nil
}

// parseAlphabetDeclaration parses ALPHABET "letters"
func (p *Parser) parseAlphabetDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindAlphabetDeclaration, pos(p.previous()))
	if !p.match(lexer.TokenString) {
		return node, p.expected("alphabet string")
	}
	tok := p.previous()
	node.Add(ast.NewValue(ast.KindAlphabet, ast.StringValue(unquote(tok)), pos(tok)))
	return node, nil
}

// parseLengthDeclaration parses LENGTH <int>
func (p *Parser) parseLengthDeclaration() (*ast.Node, error) {
	return p.parseIntDeclaration(ast.KindLengthDeclaration, ast.KindLength, "word length")
}

// parseUnknownsDeclaration parses UNKNOWNS <int>
func (p *Parser) parseUnknownsDeclaration() (*ast.Node, error) {
	return p.parseIntDeclaration(ast.KindUnknownsDeclaration, ast.KindUnknownsCount, "number of unknowns")
}

// parseSumDeclaration parses SUM <int>
func (p *Parser) parseSumDeclaration() (*ast.Node, error) {
	return p.parseIntDeclaration(ast.KindSumDeclaration, ast.KindSumValue, "sum")
}

func (p *Parser) parseIntDeclaration(kind, child, what string) (*ast.Node, error) {
	node := ast.New(kind, pos(p.previous()))
	n, ok, err := p.matchInt()
	if err != nil {
		return node, err
	}
	if !ok {
		return node, p.expected(what)
	}
	node.Add(ast.NewValue(child, ast.IntValue(n), pos(p.previous())))
	return node, nil
}

// parseUniqueDeclaration parses UNIQUE [YES|NO] or ALLOW_DUPLICATES.
// It is entered before the keyword is consumed.
func (p *Parser) parseUniqueDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindUniqueDeclaration, pos(p.peek()))
	p.match(lexer.TokenUnique)

	unique := false
	if b, ok := p.matchBool(); ok {
		unique = b
	} else {
		p.match(lexer.TokenAllowDuplicates)
	}
	node.Add(ast.NewValue(ast.KindUnique, ast.BoolValue(unique), pos(p.previous())))
	return node, nil
}

// parseDrawDeclaration parses DRAW [count] [REPLACEMENT|NO_REPLACEMENT]
func (p *Parser) parseDrawDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindDrawDeclaration, pos(p.previous()))

	count, ok, err := p.matchInt()
	if err != nil {
		return node, err
	}
	if !ok {
		count = DefaultDrawCount
	}
	node.Add(ast.NewValue(ast.KindDrawCount, ast.IntValue(count), pos(p.previous())))

	replacement := DefaultReplacement
	if p.match(lexer.TokenReplacement, lexer.TokenNoReplacement) {
		replacement = p.previous().Text()
	}
	node.Add(ast.NewValue(ast.KindReplacement, ast.StringValue(replacement), pos(p.previous())))
	return node, nil
}

// parseCondition parses CONDITION "text" or CONDITION followed by bare
// words up to the end of the command
func (p *Parser) parseCondition() (*ast.Node, error) {
	node := ast.New(ast.KindCondition, pos(p.previous()))

	if p.match(lexer.TokenString) {
		tok := p.previous()
		node.Add(ast.NewValue(ast.KindConditionExpr, ast.StringValue(unquote(tok)), pos(tok)))
		return node, nil
	}

	start := p.peek()
	var words []string
	for !p.atBlockEnd() {
		words = append(words, wordOf(p.advance()))
	}
	if len(words) == 0 {
		return node, p.expected("condition expression")
	}
	node.Add(ast.NewValue(ast.KindConditionExpr, ast.StringValue(strings.Join(words, " ")), pos(start)))
	return node, nil
}

// parseCalculate parses CALCULATE [PROBABILITY|COMBINATIONS|EXPECTATION]
func (p *Parser) parseCalculate() (*ast.Node, error) {
	node := ast.New(ast.KindCalculate, pos(p.previous()))

	calc := DefaultCalculationType
	if p.match(lexer.TokenProbability, lexer.TokenCombinations, lexer.TokenExpectation) {
		calc = p.previous().Text()
	}
	node.Add(ast.NewValue(ast.KindCalculationType, ast.StringValue(calc), pos(p.previous())))
	return node, nil
}

// parseDomainDeclaration parses DOMAIN "text"
func (p *Parser) parseDomainDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindDomainDeclaration, pos(p.previous()))
	if !p.match(lexer.TokenString) {
		return node, p.expected("domain string")
	}
	tok := p.previous()
	node.Add(ast.NewValue(ast.KindDomain, ast.StringValue(unquote(tok)), pos(tok)))
	return node, nil
}

// parseConstraintsDeclaration parses CONSTRAINTS ["a", "b"] or a single
// string
func (p *Parser) parseConstraintsDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindConstraintsDeclaration, pos(p.previous()))

	if !p.match(lexer.TokenLBracket) {
		if p.match(lexer.TokenString) {
			tok := p.previous()
			node.Add(ast.NewValue(ast.KindConstraint, ast.StringValue(unquote(tok)), pos(tok)))
			return node, nil
		}
		return node, p.expected("constraint list")
	}

	for !p.isAtEnd() && !p.check(lexer.TokenRBracket) && !p.isNextCommand() {
		switch {
		case p.match(lexer.TokenString):
			tok := p.previous()
			node.Add(ast.NewValue(ast.KindConstraint, ast.StringValue(unquote(tok)), pos(tok)))
		case p.match(lexer.TokenComma):
		default:
			p.skipUnexpected("CONSTRAINTS")
		}
	}
	return node, p.closeList("constraint list")
}

// parseCoefficientsDeclaration parses COEFFICIENTS [a, -b, ...] or a
// single integer
func (p *Parser) parseCoefficientsDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindCoefficientsDeclaration, pos(p.previous()))
	start := p.peek()

	// [5] lexes as a single digit position token
	if p.match(lexer.TokenDigitPosition) {
		digits := strings.Trim(p.previous().Value, "[]")
		node.Add(ast.NewValue(ast.KindCoefficients, ast.ListValue([]string{digits}), pos(start)))
		return node, nil
	}

	if !p.match(lexer.TokenLBracket) {
		n, ok, err := p.matchSignedInt()
		if err != nil {
			return node, err
		}
		if !ok {
			return node, p.expected("coefficient list")
		}
		node.Add(ast.NewValue(ast.KindCoefficients, ast.ListValue([]string{strconv.Itoa(n)}), pos(start)))
		return node, nil
	}

	var items []string
	for !p.isAtEnd() && !p.check(lexer.TokenRBracket) && !p.isNextCommand() {
		if p.match(lexer.TokenComma) {
			continue
		}
		n, ok, err := p.matchSignedInt()
		if err != nil {
			p.report(err)
			continue
		}
		if !ok {
			tok := p.advance()
			p.addDiag(diag.CodeIncompleteItem, tok, "coefficient %s is not an integer", tok)
			continue
		}
		items = append(items, strconv.Itoa(n))
	}
	node.Add(ast.NewValue(ast.KindCoefficients, ast.ListValue(items), pos(start)))
	return node, p.closeList("coefficient list")
}

// matchSignedInt consumes [+|-] INTEGER
func (p *Parser) matchSignedInt() (int, bool, error) {
	sign := 1
	if (p.check(lexer.TokenMinus) || p.check(lexer.TokenPlus)) && p.checkNext(lexer.TokenInteger) {
		if p.advance().Type == lexer.TokenMinus {
			sign = -1
		}
	}
	n, ok, err := p.matchInt()
	return sign * n, ok, err
}

// closeList consumes the closing bracket of a list
func (p *Parser) closeList(what string) error {
	if p.match(lexer.TokenRBracket) {
		return nil
	}
	err := p.expected("']' closing " + what)
	err.Code = diag.CodeUnclosedList
	return err
}
