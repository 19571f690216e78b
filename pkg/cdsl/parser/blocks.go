// File: blocks.go
// Title: CDSL Attribute Blocks
// Description: Open-ended attribute blocks for numbers, divisibility,
//              remainders, balls and chess problems. A block loops over
//              its attribute keywords until ';', the next command keyword
//              or the first token it cannot use.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial block parsers

package parser

import (
	"strings"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/lexer"
)

// Operation types recorded for divisibility transformations
const (
	OperationIncrease  = "INCREASE"
	OperationDecrease  = "DECREASE"
	OperationUnchanged = "UNCHANGED"
)

// isDivisibilityAttribute reports whether tt only makes sense inside a
// divisibility block. A DIGITS <int> lead followed by one of these is a
// divisibility problem rather than a numbers problem.
func isDivisibilityAttribute(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenDividesBy, lexer.TokenRule, lexer.TokenFormationRule, lexer.TokenChangeRule,
		lexer.TokenFactor, lexer.TokenTransformation,
		lexer.TokenIncreasesByFactor, lexer.TokenDecreasesByFactor,
		lexer.TokenIncreasesByInteger, lexer.TokenDecreasesByInteger:
		return true
	}
	return false
}

// endBlock finishes an attribute block. A terminating ';' is consumed,
// a command keyword is left for the caller and any other token is
// skipped with a diagnostic.
func (p *Parser) endBlock(block string) {
	switch {
	case p.match(lexer.TokenSemicolon), p.isAtEnd(), p.isNextCommand():
	default:
		p.skipUnexpected(block)
	}
}

// addInt appends an integer attribute, reporting a missing value
func (p *Parser) addInt(node *ast.Node, kind, what string) {
	n, ok, err := p.matchInt()
	if err != nil {
		p.report(err)
		return
	}
	if !ok {
		p.report(p.expected(what))
		return
	}
	node.Add(ast.NewValue(kind, ast.IntValue(n), pos(p.previous())))
}

// addIntOr appends an integer attribute, using def when it is absent
func (p *Parser) addIntOr(node *ast.Node, kind string, def int) {
	n, ok, err := p.matchInt()
	if err != nil {
		p.report(err)
	}
	if !ok {
		n = def
	}
	node.Add(ast.NewValue(kind, ast.IntValue(n), pos(p.previous())))
}

// addFlag appends a boolean attribute that is true unless a boolean
// literal says otherwise
func (p *Parser) addFlag(node *ast.Node, kind string) {
	value := true
	if b, ok := p.matchBool(); ok {
		value = b
	}
	node.Add(ast.NewValue(kind, ast.BoolValue(value), pos(p.previous())))
}

// parseNumbersDeclaration parses [NUMBERS] followed by digit-set
// attributes. It is entered before the leading keyword is consumed.
func (p *Parser) parseNumbersDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindNumbersDeclaration, pos(p.peek()))
	p.match(lexer.TokenNumbers)

	for !p.isAtEnd() {
		switch {
		case p.match(lexer.TokenDigits, lexer.TokenNumberLength):
			p.addInt(node, ast.KindDigits, "digit count")
		case p.match(lexer.TokenMaxDigit):
			p.addInt(node, ast.KindMaxDigit, "maximum digit")
		case p.match(lexer.TokenFirstNotZero):
			p.addFlag(node, ast.KindFirstNotZero)
		case p.match(lexer.TokenDistinct):
			p.addFlag(node, ast.KindDistinct)
		case p.match(lexer.TokenAdjacentDifferent):
			p.addFlag(node, ast.KindAdjacentDifferent)
		case p.match(lexer.TokenOrder):
			if p.match(lexer.TokenAscending, lexer.TokenDescending, lexer.TokenNonDecreasing, lexer.TokenNonIncreasing) {
				tok := p.previous()
				node.Add(ast.NewValue(ast.KindOrder, ast.StringValue(tok.Text()), pos(tok)))
			} else {
				p.report(p.expected("digit order"))
			}
		case p.match(lexer.TokenCompare):
			p.parseComparison(node, "")
		case p.match(lexer.TokenTotal):
			p.parseComparison(node, "=")
		default:
			p.endBlock("NUMBERS")
			return node, nil
		}
	}
	return node, nil
}

// parseComparison parses <positions> <op> <positions>. With fixedOp set
// the operator is implied and an explicit '=' is optional.
func (p *Parser) parseComparison(node *ast.Node, fixedOp string) {
	if left := p.positionList(); len(left) > 0 {
		node.Add(ast.NewValue(ast.KindCompareLeft, ast.ListValue(left), pos(p.previous())))
	} else {
		p.report(p.expected("digit positions"))
		return
	}

	op := fixedOp
	if fixedOp != "" {
		p.match(lexer.TokenEquals)
	} else if o, ok := p.matchComparison(); ok {
		op = o
	} else {
		p.report(p.expected("comparison operator"))
		return
	}
	node.Add(ast.NewValue(ast.KindCompareOperator, ast.StringValue(op), pos(p.previous())))

	if right := p.positionList(); len(right) > 0 {
		node.Add(ast.NewValue(ast.KindCompareRight, ast.ListValue(right), pos(p.previous())))
	} else {
		p.report(p.expected("digit positions"))
	}
}

// positionList consumes [i] [j] or [i] + [j]
func (p *Parser) positionList() []string {
	var positions []string
	for p.check(lexer.TokenDigitPosition) {
		positions = append(positions, p.advance().Value)
		if p.check(lexer.TokenPlus) && p.checkNext(lexer.TokenDigitPosition) {
			p.advance()
		}
	}
	return positions
}

// parseDivisibilityDeclaration parses [DIVISIBILITY] followed by number
// transformation attributes
func (p *Parser) parseDivisibilityDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindDivisibilityDeclaration, pos(p.peek()))
	p.match(lexer.TokenDivisibility)

	for !p.isAtEnd() {
		switch {
		case p.match(lexer.TokenDigits, lexer.TokenNumberLength):
			p.addInt(node, ast.KindDigits, "digit count")
		case p.match(lexer.TokenRule, lexer.TokenFormationRule, lexer.TokenChangeRule):
			p.parseRule(node)
		case p.match(lexer.TokenDividesBy):
			p.addInt(node, ast.KindDivisor, "divisor")
		case p.match(lexer.TokenFactor):
			p.addInt(node, ast.KindFactor, "factor")
		case p.match(lexer.TokenIncreasesByFactor, lexer.TokenIncreasesByInteger, lexer.TokenIncreasing):
			p.addOperation(node, OperationIncrease)
		case p.match(lexer.TokenDecreasesByFactor, lexer.TokenDecreasesByInteger, lexer.TokenDecreasing):
			p.addOperation(node, OperationDecrease)
		case p.match(lexer.TokenUnchanged):
			node.Add(ast.NewValue(ast.KindOperationType, ast.StringValue(OperationUnchanged), pos(p.previous())))
		case p.match(lexer.TokenTransformation):
			if err := p.parseTransformation(node); err != nil {
				return node, err
			}
		case p.match(lexer.TokenDigitPosition):
			tok := p.previous()
			node.Add(ast.NewValue(ast.KindDigitPosition, ast.StringValue(tok.Value), pos(tok)))
		case p.match(lexer.TokenString):
			tok := p.previous()
			node.Add(ast.NewValue(ast.KindConditionExpr, ast.StringValue(unquote(tok)), pos(tok)))
		case p.match(lexer.TokenResult, lexer.TokenResultingNumber, lexer.TokenTimes):
			// Filler words in phrases such as RESULTING_NUMBER DIVIDES_BY 9.
		default:
			p.endBlock("DIVISIBILITY")
			return node, nil
		}
	}
	return node, nil
}

// parseRule collects free-form rule text up to the next attribute
func (p *Parser) parseRule(node *ast.Node) {
	start := p.peek()
	var words []string
	for !p.atBlockEnd() && !isDivisibilityAttribute(p.peek().Type) &&
		!p.check(lexer.TokenDigits) && !p.check(lexer.TokenNumberLength) {
		words = append(words, wordOf(p.advance()))
	}
	if len(words) == 0 {
		p.report(p.expected("rule text"))
		return
	}
	node.Add(ast.NewValue(ast.KindRule, ast.StringValue(strings.Join(words, " ")), pos(start)))
}

// addOperation records the direction of a transformation and its
// optional factor
func (p *Parser) addOperation(node *ast.Node, operation string) {
	node.Add(ast.NewValue(ast.KindOperationType, ast.StringValue(operation), pos(p.previous())))
	n, ok, err := p.matchInt()
	if err != nil {
		p.report(err)
		return
	}
	if ok {
		node.Add(ast.NewValue(ast.KindFactor, ast.IntValue(n), pos(p.previous())))
	}
}

// parseTransformation parses TRANSFORMATION [item ...], a quoted string or
// a run of digit positions. The value joins the items with spaces.
func (p *Parser) parseTransformation(node *ast.Node) error {
	start := p.peek()
	var items []string

	switch {
	case p.match(lexer.TokenLBracket):
		for !p.isAtEnd() && !p.check(lexer.TokenRBracket) && !p.isNextCommand() {
			tok := p.advance()
			if tok.Type != lexer.TokenComma {
				items = append(items, wordOf(tok))
			}
		}
		if len(items) > 0 {
			node.Add(ast.NewValue(ast.KindTransformation, ast.StringValue(strings.Join(items, " ")), pos(start)))
		}
		return p.closeList("transformation list")
	case p.match(lexer.TokenString):
		items = append(items, unquote(p.previous()))
	case p.check(lexer.TokenDigitPosition):
		for p.check(lexer.TokenDigitPosition) {
			items = append(items, p.advance().Value)
		}
	default:
		p.report(p.expected("transformation"))
		return nil
	}
	node.Add(ast.NewValue(ast.KindTransformation, ast.StringValue(strings.Join(items, " ")), pos(start)))
	return nil
}

// parseRemaindersDeclaration parses DIVIDEND / DIVISOR / REMAINDER
// attributes, optionally introduced by REMAINDERS
func (p *Parser) parseRemaindersDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindRemaindersDeclaration, pos(p.peek()))
	p.match(lexer.TokenRemainders)

	for !p.isAtEnd() {
		switch {
		case p.match(lexer.TokenDividend):
			dividend := DefaultDividend
			switch {
			case p.match(lexer.TokenString):
				dividend = unquote(p.previous())
			case p.match(lexer.TokenInteger):
				dividend = p.previous().Value
			case p.match(lexer.TokenVariable):
				dividend = strings.ToUpper(p.previous().Value)
			}
			node.Add(ast.NewValue(ast.KindDividend, ast.StringValue(dividend), pos(p.previous())))
		case p.match(lexer.TokenDivisor):
			p.addIntOr(node, ast.KindDivisor, DefaultDivisor)
		case p.match(lexer.TokenRemainder):
			p.addIntOr(node, ast.KindRemainder, DefaultRemainder)
		default:
			p.endBlock("REMAINDERS")
			return node, nil
		}
	}
	return node, nil
}

// parseBallsDeclaration parses urn contents, drawn balls, the draw type
// and the draw count. It accepts BALLS, URN, DRAW, '[' or a color as
// its first token.
func (p *Parser) parseBallsDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindBallsDeclaration, pos(p.peek()))
	p.match(lexer.TokenBalls)

	// addBalls stores the urn first, later lists are drawn balls
	addBalls := func(c ast.Counts, at lexer.Token) {
		if c.Len() == 0 {
			return
		}
		kind := ast.KindUrnContents
		if node.Child(ast.KindUrnContents) != nil {
			kind = ast.KindDrawBalls
		}
		node.Add(ast.NewValue(kind, ast.CountsValue(c), pos(at)))
	}

	for !p.isAtEnd() {
		switch {
		case p.check(lexer.TokenUrn) && node.Child(ast.KindUrnContents) == nil:
			p.advance()
			start := p.peek()
			switch {
			case p.match(lexer.TokenLBracket):
				c, err := p.parseBallsList()
				addBalls(c, start)
				if err != nil {
					return node, err
				}
			case isColor(p.peek().Type):
				addBalls(p.parseSimpleBalls(), start)
			default:
				p.report(p.expected("urn contents"))
			}
		case p.check(lexer.TokenLBracket) && isColor(p.peekAt(1).Type):
			start := p.advance()
			c, err := p.parseBallsList()
			addBalls(c, start)
			if err != nil {
				return node, err
			}
		case isColor(p.peek().Type):
			start := p.peek()
			addBalls(p.parseSimpleBalls(), start)
		case p.check(lexer.TokenDraw) && node.Child(ast.KindDrawBalls) == nil &&
			(p.checkNext(lexer.TokenLBracket) || isColor(p.peekAt(1).Type) || p.checkNext(lexer.TokenInteger)):
			p.advance()
			start := p.peek()
			switch {
			case p.match(lexer.TokenLBracket):
				c, err := p.parseBallsList()
				if c.Len() > 0 {
					node.Add(ast.NewValue(ast.KindDrawBalls, ast.CountsValue(c), pos(start)))
				}
				if err != nil {
					return node, err
				}
			case isColor(p.peek().Type):
				if c := p.parseSimpleBalls(); c.Len() > 0 {
					node.Add(ast.NewValue(ast.KindDrawBalls, ast.CountsValue(c), pos(start)))
				}
			default:
				p.addInt(node, ast.KindDrawCount, "draw count")
			}
		case p.match(lexer.TokenSequential, lexer.TokenSimultaneous):
			tok := p.previous()
			node.Add(ast.NewValue(ast.KindDrawType, ast.BoolValue(tok.Type == lexer.TokenSequential), pos(tok)))
		case p.check(lexer.TokenInteger):
			p.addInt(node, ast.KindDrawCount, "draw count")
		default:
			p.endBlock("BALLS")
			return node, nil
		}
	}
	return node, nil
}

// parseBallsList parses color counts after '[' up to ']'
func (p *Parser) parseBallsList() (ast.Counts, error) {
	var c ast.Counts
	for !p.isAtEnd() && !p.check(lexer.TokenRBracket) && !p.isNextCommand() {
		switch {
		case p.match(lexer.TokenComma):
		case isColor(p.peek().Type):
			color := p.advance().Text()
			c.Add(color, p.optionalCount())
		default:
			p.skipUnexpected("ball list")
		}
	}
	return c, p.closeList("ball list")
}

// parseSimpleBalls parses an unbracketed run such as RED 3 BLUE 2
func (p *Parser) parseSimpleBalls() ast.Counts {
	var c ast.Counts
	for isColor(p.peek().Type) && !p.isAtEnd() {
		color := p.advance().Text()
		c.Add(color, p.optionalCount())
	}
	return c
}

// optionalCount consumes the count that may follow a list item
func (p *Parser) optionalCount() int {
	n, ok, err := p.matchInt()
	if err != nil {
		p.report(err)
	}
	if !ok {
		return 1
	}
	return n
}

var chessPieces = []lexer.TokenType{
	lexer.TokenChessRook, lexer.TokenChessKnight, lexer.TokenChessBishop,
	lexer.TokenChessQueen, lexer.TokenChessKing, lexer.TokenChessPawn,
	lexer.TokenKing, lexer.TokenQueen, lexer.TokenString,
}

// parseChessDeclaration parses board size, pieces and the attack
// condition, optionally introduced by CHESS
func (p *Parser) parseChessDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindChessDeclaration, pos(p.peek()))
	p.match(lexer.TokenChess)

	for !p.isAtEnd() {
		switch {
		case p.match(lexer.TokenBoardHeight):
			p.addIntOr(node, ast.KindBoardHeight, DefaultBoardSize)
		case p.match(lexer.TokenBoardWidth):
			p.addIntOr(node, ast.KindBoardWidth, DefaultBoardSize)
		case p.match(lexer.TokenPieces):
			if !p.match(lexer.TokenLBracket) {
				p.report(p.expected("'[' after PIECES"))
				continue
			}
			start := p.previous()
			pieces, err := p.parsePiecesList()
			node.Add(ast.NewValue(ast.KindPieces, ast.CountsValue(pieces), pos(start)))
			if err != nil {
				return node, err
			}
		case p.match(lexer.TokenAttacking, lexer.TokenNonAttacking):
			tok := p.previous()
			node.Add(ast.NewValue(ast.KindAttacking, ast.BoolValue(tok.Type == lexer.TokenAttacking), pos(tok)))
		default:
			p.endBlock("CHESS")
			return node, nil
		}
	}
	return node, nil
}

// parsePiecesList parses piece counts after '[' up to ']'. Piece names
// drop their CHESS_ prefix.
func (p *Parser) parsePiecesList() (ast.Counts, error) {
	var c ast.Counts
	for !p.isAtEnd() && !p.check(lexer.TokenRBracket) && !p.isNextCommand() {
		switch {
		case p.match(lexer.TokenComma):
		case p.match(chessPieces...):
			name := pieceName(p.previous())
			c.Add(name, p.optionalCount())
		default:
			tok := p.advance()
			p.match(lexer.TokenInteger)
			p.addDiag(diag.CodeIncompleteItem, tok, "%s is not a chess piece", tok)
		}
	}
	return c, p.closeList("pieces list")
}

func pieceName(tok lexer.Token) string {
	name := tok.Text()
	if tok.Type == lexer.TokenString {
		name = strings.ToUpper(unquote(tok))
	}
	return strings.TrimPrefix(name, "CHESS_")
}
