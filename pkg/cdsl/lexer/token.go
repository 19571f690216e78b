// File: token.go
// Title: CDSL Token Model
// Description: Token types and the immutable Token record produced by the
//              lexer. Keyword token types carry their matching phrases in
//              keywords.go.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial token model

package lexer

import "fmt"

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenUnknown

	// Literals
	TokenString
	TokenInteger
	TokenDigitPosition
	TokenVariable
	TokenBoolean

	// Delimiters
	TokenLBracket
	TokenRBracket
	TokenLParen
	TokenRParen
	TokenComma
	TokenColon
	TokenSemicolon

	// Operators
	TokenEquals
	TokenNotEquals
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual
	TokenPlus
	TokenMinus
	TokenMultiply
	TokenDivide
	TokenModulo

	// Commands
	TokenTask
	TokenDeck
	TokenTarget
	TokenDraw
	TokenCondition
	TokenCalculate
	TokenAlphabet
	TokenLength
	TokenUnique
	TokenAllowDuplicates
	TokenUnknowns
	TokenSum
	TokenDomain
	TokenConstraints
	TokenCoefficients
	TokenDividend
	TokenDivisor
	TokenRemainder
	TokenUrn
	TokenPieces
	TokenBoardHeight
	TokenBoardWidth

	// Task kinds
	TokenCards
	TokenWords
	TokenNumbers
	TokenEquations
	TokenBalls
	TokenDivisibility
	TokenRemainders
	TokenChess

	// Calculation kinds
	TokenProbability
	TokenCombinations
	TokenExpectation

	// Cards
	TokenStandard
	TokenFrench
	TokenSpanish
	TokenCustom
	TokenHearts
	TokenDiamonds
	TokenClubs
	TokenSpades
	TokenAce
	TokenKing
	TokenQueen
	TokenJack
	TokenRank
	TokenCount
	TokenSuit
	TokenColor
	TokenRankType
	TokenRankValue
	TokenRankRange
	TokenRed
	TokenBlack
	TokenNumber
	TokenFace
	TokenRoyal
	TokenLow
	TokenHigh
	TokenEven
	TokenOdd
	TokenReplacement
	TokenNoReplacement
	TokenDrawCount

	// Logic
	TokenAnd
	TokenOr
	TokenNot

	// Words
	TokenPalindrome
	TokenAlternating
	TokenConsonantFollowedByVowel
	TokenVowelFollowedByConsonant
	TokenMoreVowelsThanConsonants
	TokenMoreConsonantsThanVowels
	TokenEqualVowelsConsonants

	// Numbers
	TokenDigits
	TokenNumberLength
	TokenMaxDigit
	TokenFirstNotZero
	TokenDistinct
	TokenAdjacentDifferent
	TokenOrder
	TokenAscending
	TokenDescending
	TokenNonDecreasing
	TokenNonIncreasing
	TokenCompare
	TokenTotal
	TokenRangeStart
	TokenRangeEnd
	TokenCannotBeZero
	TokenSingleDigit
	TokenFormNumber

	// Divisibility
	TokenDividesBy
	TokenRule
	TokenFormationRule
	TokenChangeRule
	TokenTransformation
	TokenResultingNumber
	TokenFactor
	TokenResult
	TokenTimes
	TokenIncreasesByInteger
	TokenDecreasesByInteger
	TokenIncreasesByFactor
	TokenDecreasesByFactor
	TokenUnchanged
	TokenIncreasing
	TokenDecreasing

	// Balls
	TokenContents
	TokenBlue
	TokenGreen
	TokenWhite
	TokenSequential
	TokenSimultaneous

	// Chess
	TokenChessRook
	TokenChessKnight
	TokenChessBishop
	TokenChessQueen
	TokenChessKing
	TokenChessPawn
	TokenAttacking
	TokenNonAttacking

	tokenTypeCount
)

var tokenTypeNames = [tokenTypeCount]string{
	TokenEOF:                      "EOF",
	TokenUnknown:                  "UNKNOWN",
	TokenString:                   "STRING",
	TokenInteger:                  "INTEGER",
	TokenDigitPosition:            "DIGIT_POSITION",
	TokenVariable:                 "VARIABLE",
	TokenBoolean:                  "BOOLEAN",
	TokenLBracket:                 "LBRACKET",
	TokenRBracket:                 "RBRACKET",
	TokenLParen:                   "LPAREN",
	TokenRParen:                   "RPAREN",
	TokenComma:                    "COMMA",
	TokenColon:                    "COLON",
	TokenSemicolon:                "SEMICOLON",
	TokenEquals:                   "EQUALS",
	TokenNotEquals:                "NOT_EQUALS",
	TokenGreater:                  "GREATER",
	TokenGreaterEqual:             "GREATER_EQUAL",
	TokenLess:                     "LESS",
	TokenLessEqual:                "LESS_EQUAL",
	TokenPlus:                     "PLUS",
	TokenMinus:                    "MINUS",
	TokenMultiply:                 "MULTIPLY",
	TokenDivide:                   "DIVIDE",
	TokenModulo:                   "MODULO",
	TokenTask:                     "TASK",
	TokenDeck:                     "DECK",
	TokenTarget:                   "TARGET",
	TokenDraw:                     "DRAW",
	TokenCondition:                "CONDITION",
	TokenCalculate:                "CALCULATE",
	TokenAlphabet:                 "ALPHABET",
	TokenLength:                   "LENGTH",
	TokenUnique:                   "UNIQUE",
	TokenAllowDuplicates:          "ALLOW_DUPLICATES",
	TokenUnknowns:                 "UNKNOWNS",
	TokenSum:                      "SUM",
	TokenDomain:                   "DOMAIN",
	TokenConstraints:              "CONSTRAINTS",
	TokenCoefficients:             "COEFFICIENTS",
	TokenDividend:                 "DIVIDEND",
	TokenDivisor:                  "DIVISOR",
	TokenRemainder:                "REMAINDER",
	TokenUrn:                      "URN",
	TokenPieces:                   "PIECES",
	TokenBoardHeight:              "BOARD_HEIGHT",
	TokenBoardWidth:               "BOARD_WIDTH",
	TokenCards:                    "CARDS",
	TokenWords:                    "WORDS",
	TokenNumbers:                  "NUMBERS",
	TokenEquations:                "EQUATIONS",
	TokenBalls:                    "BALLS",
	TokenDivisibility:             "DIVISIBILITY",
	TokenRemainders:               "REMAINDERS",
	TokenChess:                    "CHESS",
	TokenProbability:              "PROBABILITY",
	TokenCombinations:             "COMBINATIONS",
	TokenExpectation:              "EXPECTATION",
	TokenStandard:                 "STANDARD",
	TokenFrench:                   "FRENCH",
	TokenSpanish:                  "SPANISH",
	TokenCustom:                   "CUSTOM",
	TokenHearts:                   "HEARTS",
	TokenDiamonds:                 "DIAMONDS",
	TokenClubs:                    "CLUBS",
	TokenSpades:                   "SPADES",
	TokenAce:                      "ACE",
	TokenKing:                     "KING",
	TokenQueen:                    "QUEEN",
	TokenJack:                     "JACK",
	TokenRank:                     "RANK",
	TokenCount:                    "COUNT",
	TokenSuit:                     "SUIT",
	TokenColor:                    "COLOR",
	TokenRankType:                 "RANK_TYPE",
	TokenRankValue:                "RANK_VALUE",
	TokenRankRange:                "RANK_RANGE",
	TokenRed:                      "RED",
	TokenBlack:                    "BLACK",
	TokenNumber:                   "NUMBER",
	TokenFace:                     "FACE",
	TokenRoyal:                    "ROYAL",
	TokenLow:                      "LOW",
	TokenHigh:                     "HIGH",
	TokenEven:                     "EVEN",
	TokenOdd:                      "ODD",
	TokenReplacement:              "REPLACEMENT",
	TokenNoReplacement:            "NO_REPLACEMENT",
	TokenDrawCount:                "DRAW_COUNT",
	TokenAnd:                      "AND",
	TokenOr:                       "OR",
	TokenNot:                      "NOT",
	TokenPalindrome:               "PALINDROME",
	TokenAlternating:              "ALTERNATING",
	TokenConsonantFollowedByVowel: "CONSONANT_FOLLOWED_BY_VOWEL",
	TokenVowelFollowedByConsonant: "VOWEL_FOLLOWED_BY_CONSONANT",
	TokenMoreVowelsThanConsonants: "MORE_VOWELS_THAN_CONSONANTS",
	TokenMoreConsonantsThanVowels: "MORE_CONSONANTS_THAN_VOWELS",
	TokenEqualVowelsConsonants:    "EQUAL_VOWELS_CONSONANTS",
	TokenDigits:                   "DIGITS",
	TokenNumberLength:             "NUMBER_LENGTH",
	TokenMaxDigit:                 "MAX_DIGIT",
	TokenFirstNotZero:             "FIRST_NOT_ZERO",
	TokenDistinct:                 "DISTINCT",
	TokenAdjacentDifferent:        "ADJACENT_DIFFERENT",
	TokenOrder:                    "ORDER",
	TokenAscending:                "ASCENDING",
	TokenDescending:               "DESCENDING",
	TokenNonDecreasing:            "NON_DECREASING",
	TokenNonIncreasing:            "NON_INCREASING",
	TokenCompare:                  "COMPARE",
	TokenTotal:                    "TOTAL",
	TokenRangeStart:               "RANGE_START",
	TokenRangeEnd:                 "RANGE_END",
	TokenCannotBeZero:             "CANNOT_BE_ZERO",
	TokenSingleDigit:              "SINGLE_DIGIT",
	TokenFormNumber:               "FORM_NUMBER",
	TokenDividesBy:                "DIVIDES_BY",
	TokenRule:                     "RULE",
	TokenFormationRule:            "FORMATION_RULE",
	TokenChangeRule:               "CHANGE_RULE",
	TokenTransformation:           "TRANSFORMATION",
	TokenResultingNumber:          "RESULTING_NUMBER",
	TokenFactor:                   "FACTOR",
	TokenResult:                   "RESULT",
	TokenTimes:                    "TIMES",
	TokenIncreasesByInteger:       "INCREASES_BY_INTEGER",
	TokenDecreasesByInteger:       "DECREASES_BY_INTEGER",
	TokenIncreasesByFactor:        "INCREASES_BY_FACTOR",
	TokenDecreasesByFactor:        "DECREASES_BY_FACTOR",
	TokenUnchanged:                "UNCHANGED",
	TokenIncreasing:               "INCREASING",
	TokenDecreasing:               "DECREASING",
	TokenContents:                 "CONTENTS",
	TokenBlue:                     "BLUE",
	TokenGreen:                    "GREEN",
	TokenWhite:                    "WHITE",
	TokenSequential:               "SEQUENTIAL",
	TokenSimultaneous:             "SIMULTANEOUS",
	TokenChessRook:                "CHESS_ROOK",
	TokenChessKnight:              "CHESS_KNIGHT",
	TokenChessBishop:              "CHESS_BISHOP",
	TokenChessQueen:               "CHESS_QUEEN",
	TokenChessKing:                "CHESS_KING",
	TokenChessPawn:                "CHESS_PAWN",
	TokenAttacking:                "ATTACKING",
	TokenNonAttacking:             "NON_ATTACKING",
}

// String returns the CDSL name of the token type
func (tt TokenType) String() string {
	if tt >= 0 && tt < tokenTypeCount {
		return tokenTypeNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsKeyword reports whether tokens of this type are matched from the
// keyword table
func (tt TokenType) IsKeyword() bool {
	_, ok := canonical[tt]
	return ok
}

// Canonical returns the canonical upper-case spelling of a keyword token
// type, or the empty string for non-keyword types
func (tt TokenType) Canonical() string {
	return canonical[tt]
}

// AllTokenTypes returns every token type in declaration order
func AllTokenTypes() []TokenType {
	out := make([]TokenType, tokenTypeCount)
	for i := range out {
		out[i] = TokenType(i)
	}
	return out
}

// Token represents a lexical token with position information.
// Value keeps the original case of the source text; string tokens keep
// their quotes.
type Token struct {
	Type   TokenType // Token type
	Value  string    // Token text
	Line   int       // Line number (1-based)
	Column int       // Column number in runes (1-based, per line)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenUnknown:
		return fmt.Sprintf("UNKNOWN(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// Is reports whether the token has one of the given types
func (t Token) Is(types ...TokenType) bool {
	for _, tt := range types {
		if t.Type == tt {
			return true
		}
	}
	return false
}

// Text returns the token's canonical keyword spelling when it has one and
// its source text otherwise
func (t Token) Text() string {
	if c := t.Type.Canonical(); c != "" {
		return c
	}
	return t.Value
}
