// File: target.go
// Title: CDSL Target Lists
// Description: TARGET declarations with heterogeneous items: cards,
//              COUNT(...) conditions and bare or quoted conditions.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial target list parser

package parser

import (
	"fmt"
	"strings"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/lexer"
)

var (
	rankLetters = map[string]string{"A": "ACE", "K": "KING", "Q": "QUEEN", "J": "JACK"}
	suitLetters = map[string]string{"H": "HEARTS", "D": "DIAMONDS", "C": "CLUBS", "S": "SPADES"}
)

var wordConditions = []lexer.TokenType{
	lexer.TokenPalindrome,
	lexer.TokenAlternating,
	lexer.TokenConsonantFollowedByVowel,
	lexer.TokenVowelFollowedByConsonant,
	lexer.TokenMoreVowelsThanConsonants,
	lexer.TokenMoreConsonantsThanVowels,
	lexer.TokenEqualVowelsConsonants,
}

// parseTargetDeclaration parses TARGET [item, ...] or TARGET item
func (p *Parser) parseTargetDeclaration() (*ast.Node, error) {
	node := ast.New(ast.KindTargetDeclaration, pos(p.previous()))

	if p.match(lexer.TokenLBracket) {
		list, err := p.parseTargetList()
		node.Add(list)
		return node, err
	}

	if p.atBlockEnd() {
		return node, p.expected("target item")
	}
	item, err := p.parseTargetItem()
	node.Add(item)
	return node, err
}

// parseTargetList parses the items after '['. An unclosed list ends at
// the end of input or at the next command keyword.
func (p *Parser) parseTargetList() (*ast.Node, error) {
	node := ast.New(ast.KindTargetList, pos(p.previous()))

	for !p.isAtEnd() && !p.check(lexer.TokenRBracket) && !p.isNextCommand() {
		if p.match(lexer.TokenComma) {
			continue
		}
		item, err := p.parseTargetItem()
		node.Add(item)
		if err != nil {
			return node, err
		}
	}
	return node, p.closeList("target list")
}

// parseTargetItem chooses the item grammar by lookahead
func (p *Parser) parseTargetItem() (*ast.Node, error) {
	switch {
	case p.isCardStart():
		return p.parseCard()
	case p.check(lexer.TokenCount) && p.checkNext(lexer.TokenLParen):
		return p.parseCountCondition()
	default:
		return p.parseSingleCondition()
	}
}

// isCardStart reports whether a rank is followed by a suit
func (p *Parser) isCardStart() bool {
	_, rankOK := cardRank(p.peek())
	_, suitOK := cardSuit(p.peekAt(1))
	return rankOK && suitOK && !p.isAtEnd()
}

func cardRank(tok lexer.Token) (string, bool) {
	switch tok.Type {
	case lexer.TokenAce, lexer.TokenKing, lexer.TokenQueen, lexer.TokenJack:
		return tok.Text(), true
	case lexer.TokenInteger:
		return tok.Value, true
	case lexer.TokenUnknown:
		r, ok := rankLetters[strings.ToUpper(tok.Value)]
		return r, ok
	}
	return "", false
}

func cardSuit(tok lexer.Token) (string, bool) {
	switch tok.Type {
	case lexer.TokenHearts, lexer.TokenDiamonds, lexer.TokenClubs, lexer.TokenSpades:
		return tok.Text(), true
	case lexer.TokenUnknown:
		s, ok := suitLetters[strings.ToUpper(tok.Value)]
		return s, ok
	}
	return "", false
}

// parseCard parses <rank> <suit>
func (p *Parser) parseCard() (*ast.Node, error) {
	node := ast.New(ast.KindCard, pos(p.peek()))

	rank, ok := cardRank(p.peek())
	if !ok {
		return node, p.expected("card rank")
	}
	tok := p.advance()
	node.Add(ast.NewValue(ast.KindRank, ast.StringValue(rank), pos(tok)))

	suit, ok := cardSuit(p.peek())
	if !ok {
		return node, p.expected("card suit")
	}
	tok = p.advance()
	node.Add(ast.NewValue(ast.KindSuit, ast.StringValue(suit), pos(tok)))
	return node, nil
}

// countValues lists the accepted value vocabulary per COUNT category
var countValues = map[lexer.TokenType][]lexer.TokenType{
	lexer.TokenSuit:  {lexer.TokenHearts, lexer.TokenDiamonds, lexer.TokenClubs, lexer.TokenSpades},
	lexer.TokenColor: {lexer.TokenRed, lexer.TokenBlack},
	lexer.TokenRankType: {
		lexer.TokenAce, lexer.TokenKing, lexer.TokenQueen, lexer.TokenJack,
		lexer.TokenNumber, lexer.TokenFace, lexer.TokenRoyal, lexer.TokenLow,
		lexer.TokenHigh, lexer.TokenEven, lexer.TokenOdd,
	},
	lexer.TokenRank: {lexer.TokenInteger, lexer.TokenAce, lexer.TokenKing, lexer.TokenQueen, lexer.TokenJack},
}

// parseCountCondition parses COUNT(<category> <value>) <op> <int>
func (p *Parser) parseCountCondition() (*ast.Node, error) {
	node := ast.New(ast.KindCountCondition, pos(p.peek()))
	p.match(lexer.TokenCount)
	p.match(lexer.TokenLParen)

	if !p.match(lexer.TokenSuit, lexer.TokenColor, lexer.TokenRankType, lexer.TokenRank, lexer.TokenRankRange) {
		return node, p.incomplete("count category (SUIT, COLOR, RANK_TYPE, RANK, RANK_RANGE)")
	}
	category := p.previous()
	node.Add(ast.NewValue(ast.KindCountType, ast.StringValue(category.Text()), pos(category)))

	value, err := p.parseCountValue(category)
	if err != nil {
		return node, err
	}
	node.Add(ast.NewValue(ast.KindCountValue, ast.StringValue(value), pos(category)))

	if !p.match(lexer.TokenRParen) {
		return node, p.incomplete("')' after count condition")
	}

	op, ok := p.matchComparison()
	if !ok {
		return node, p.incomplete("comparison operator")
	}
	node.Add(ast.NewValue(ast.KindOperator, ast.StringValue(op), pos(p.previous())))

	target, ok, err := p.matchInt()
	if err != nil {
		return node, err
	}
	if !ok {
		return node, p.incomplete("integer after operator")
	}
	node.Add(ast.NewValue(ast.KindTargetValue, ast.IntValue(target), pos(p.previous())))
	return node, nil
}

func (p *Parser) parseCountValue(category lexer.Token) (string, error) {
	if category.Type == lexer.TokenRankRange {
		if !p.match(lexer.TokenInteger) {
			return "", p.incomplete("range start after RANK_RANGE")
		}
		from := p.previous().Value
		p.match(lexer.TokenMinus)
		if !p.match(lexer.TokenInteger) {
			return "", p.incomplete("range end after RANK_RANGE")
		}
		return from + "-" + p.previous().Value, nil
	}

	if !p.match(countValues[category.Type]...) {
		return "", p.incomplete(fmt.Sprintf("value after %s", category.Text()))
	}
	return p.previous().Text(), nil
}

// incomplete builds an error for a malformed list item
func (p *Parser) incomplete(what string) *ParseError {
	err := p.expected(what)
	err.Code = diag.CodeIncompleteItem
	return err
}

// parseSingleCondition parses a word-condition keyword, a quoted string or
// any single token as a condition item
func (p *Parser) parseSingleCondition() (*ast.Node, error) {
	node := ast.New(ast.KindCondition, pos(p.peek()))

	switch {
	case p.match(wordConditions...):
		tok := p.previous()
		node.Add(ast.NewValue(ast.KindConditionType, ast.StringValue(tok.Text()), pos(tok)))
	case p.match(lexer.TokenString):
		tok := p.previous()
		node.Add(ast.NewValue(ast.KindConditionType, ast.StringValue(unquote(tok)), pos(tok)))
	case !p.isAtEnd() && !p.check(lexer.TokenRBracket) && !p.check(lexer.TokenComma):
		tok := p.advance()
		node.Add(ast.NewValue(ast.KindConditionType, ast.StringValue(tok.Text()), pos(tok)))
	default:
		return node, p.expected("target item")
	}
	return node, nil
}
