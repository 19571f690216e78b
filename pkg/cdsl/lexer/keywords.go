// File: keywords.go
// Title: CDSL Keyword Table
// Description: Matching phrases for every keyword token type and the
//              specificity-ordered phrase list the lexer walks. A phrase is
//              always tried before every shorter phrase, so a keyword that is
//              a textual prefix of another can never shadow it.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial keyword table

package lexer

import "sort"

// keyword binds a token type to its phrases. The first phrase is the
// canonical spelling. Literal keywords (booleans, variables) keep their
// own text as value and have no canonical spelling.
type keyword struct {
	tokenType TokenType
	phrases   []string
	literal   bool
}

var keywordTable = []keyword{
	{TokenIncreasesByInteger, []string{"INCREASES_BY_INTEGER"}, false},
	{TokenDecreasesByInteger, []string{"DECREASES_BY_INTEGER"}, false},
	{TokenIncreasesByFactor, []string{"INCREASES_BY_FACTOR"}, false},
	{TokenDecreasesByFactor, []string{"DECREASES_BY_FACTOR"}, false},
	{TokenFormationRule, []string{"FORMATION_RULE"}, false},
	{TokenResultingNumber, []string{"RESULTING_NUMBER"}, false},
	{TokenChangeRule, []string{"CHANGE_RULE"}, false},
	{TokenTransformation, []string{"TRANSFORMATION"}, false},
	{TokenNumberLength, []string{"NUMBER_LENGTH"}, false},
	{TokenCannotBeZero, []string{"CANNOT_BE_ZERO"}, false},
	{TokenSingleDigit, []string{"SINGLE_DIGIT"}, false},
	{TokenFormNumber, []string{"FORM_NUMBER"}, false},
	{TokenAllowDuplicates, []string{"ALLOW_DUPLICATES"}, false},

	{TokenMaxDigit, []string{"MAX_DIGIT"}, false},
	{TokenFirstNotZero, []string{"FIRST_NOT_ZERO"}, false},
	{TokenAdjacentDifferent, []string{"ADJACENT_DIFFERENT"}, false},
	{TokenNonDecreasing, []string{"NON_DECREASING"}, false},
	{TokenNonIncreasing, []string{"NON_INCREASING"}, false},
	{TokenCompare, []string{"COMPARE"}, false},
	{TokenRangeStart, []string{"RANGE_START"}, false},
	{TokenRangeEnd, []string{"RANGE_END"}, false},
	{TokenTotal, []string{"TOTAL"}, false},

	{TokenDivisibility, []string{"DIVISIBILITY"}, false},
	{TokenRemainders, []string{"REMAINDERS"}, false},
	{TokenEquations, []string{"EQUATIONS"}, false},
	{TokenCalculate, []string{"CALCULATE"}, false},
	{TokenBoardHeight, []string{"BOARD_HEIGHT"}, false},
	{TokenBoardWidth, []string{"BOARD_WIDTH"}, false},
	{TokenCoefficients, []string{"COEFFICIENTS"}, false},
	{TokenConstraints, []string{"CONSTRAINTS"}, false},
	{TokenReplacement, []string{"REPLACEMENT", "WITH_REPLACEMENT"}, false},
	{TokenNoReplacement, []string{"NO_REPLACEMENT", "WITHOUT_REPLACEMENT"}, false},
	{TokenDrawCount, []string{"DRAW_COUNT"}, false},
	{TokenDividesBy, []string{"DIVIDES_BY", "DIVISIBLE_BY", "DIVISIBLE BY", "DIVIDES BY", "ДЕЛИТСЯ НА"}, false},

	{TokenProbability, []string{"PROBABILITY"}, false},
	{TokenCombinations, []string{"COMBINATIONS"}, false},
	{TokenExpectation, []string{"EXPECTATION"}, false},

	{TokenTask, []string{"TASK"}, false},
	{TokenDeck, []string{"DECK"}, false},
	{TokenTarget, []string{"TARGET"}, false},
	{TokenDraw, []string{"DRAW"}, false},
	{TokenCondition, []string{"CONDITION"}, false},

	{TokenCards, []string{"CARDS"}, false},
	{TokenWords, []string{"WORDS"}, false},
	{TokenChess, []string{"CHESS"}, false},
	{TokenNumbers, []string{"NUMBERS"}, false},
	{TokenBalls, []string{"BALLS"}, false},

	{TokenChessRook, []string{"CHESS_ROOK", "ROOK"}, false},
	{TokenChessKnight, []string{"CHESS_KNIGHT", "KNIGHT"}, false},
	{TokenChessBishop, []string{"CHESS_BISHOP", "BISHOP"}, false},
	{TokenChessQueen, []string{"CHESS_QUEEN"}, false},
	{TokenChessKing, []string{"CHESS_KING"}, false},
	{TokenChessPawn, []string{"CHESS_PAWN", "PAWN"}, false},
	{TokenPieces, []string{"PIECES"}, false},
	{TokenAttacking, []string{"ATTACKING"}, false},
	{TokenNonAttacking, []string{"NON_ATTACKING"}, false},

	{TokenStandard, []string{"STANDARD"}, false},
	{TokenFrench, []string{"FRENCH"}, false},
	{TokenSpanish, []string{"SPANISH"}, false},
	{TokenCustom, []string{"CUSTOM"}, false},

	{TokenHearts, []string{"HEARTS"}, false},
	{TokenDiamonds, []string{"DIAMONDS"}, false},
	{TokenClubs, []string{"CLUBS"}, false},
	{TokenSpades, []string{"SPADES"}, false},

	{TokenAce, []string{"ACE"}, false},
	{TokenKing, []string{"KING"}, false},
	{TokenQueen, []string{"QUEEN"}, false},
	{TokenJack, []string{"JACK"}, false},
	{TokenRank, []string{"RANK"}, false},

	{TokenCount, []string{"COUNT"}, false},
	{TokenSuit, []string{"SUIT"}, false},
	{TokenColor, []string{"COLOR"}, false},
	{TokenRankType, []string{"RANK_TYPE"}, false},
	{TokenRankValue, []string{"RANK_VALUE"}, false},
	{TokenRankRange, []string{"RANK_RANGE"}, false},

	{TokenRed, []string{"RED"}, false},
	{TokenBlack, []string{"BLACK"}, false},
	{TokenNumber, []string{"NUMBER"}, false},
	{TokenFace, []string{"FACE"}, false},
	{TokenRoyal, []string{"ROYAL"}, false},
	{TokenLow, []string{"LOW"}, false},
	{TokenHigh, []string{"HIGH"}, false},
	{TokenEven, []string{"EVEN"}, false},
	{TokenOdd, []string{"ODD"}, false},

	{TokenAnd, []string{"AND"}, false},
	{TokenOr, []string{"OR"}, false},
	{TokenNot, []string{"NOT"}, false},

	{TokenAlphabet, []string{"ALPHABET"}, false},
	{TokenLength, []string{"LENGTH"}, false},
	{TokenUnique, []string{"UNIQUE"}, false},
	{TokenUnknowns, []string{"UNKNOWNS"}, false},
	{TokenSum, []string{"SUM"}, false},
	{TokenDomain, []string{"DOMAIN"}, false},
	{TokenDividend, []string{"DIVIDEND"}, false},
	{TokenDivisor, []string{"DIVISOR"}, false},
	{TokenRemainder, []string{"REMAINDER"}, false},
	{TokenUrn, []string{"URN"}, false},
	{TokenContents, []string{"CONTENTS"}, false},
	{TokenDistinct, []string{"DISTINCT"}, false},
	{TokenOrder, []string{"ORDER"}, false},
	{TokenAscending, []string{"ASCENDING", "ASC"}, false},
	{TokenDescending, []string{"DESCENDING", "DESC"}, false},
	{TokenDigits, []string{"DIGITS"}, false},
	{TokenRule, []string{"RULE"}, false},
	{TokenFactor, []string{"FACTOR"}, false},
	{TokenResult, []string{"RESULT"}, false},
	{TokenTimes, []string{"TIMES", "РАЗ"}, false},

	{TokenBlue, []string{"BLUE"}, false},
	{TokenGreen, []string{"GREEN"}, false},
	{TokenWhite, []string{"WHITE"}, false},

	{TokenSequential, []string{"SEQUENTIAL"}, false},
	{TokenSimultaneous, []string{"SIMULTANEOUS"}, false},

	{TokenUnchanged, []string{"UNCHANGED"}, false},
	{TokenIncreasing, []string{"INCREASING"}, false},
	{TokenDecreasing, []string{"DECREASING"}, false},

	{TokenPalindrome, []string{"PALINDROME", "ПАЛИНДРОМ"}, false},
	{TokenAlternating, []string{"ALTERNATING_VOWELS_CONSONANTS", "ALTERNATING", "ЧЕРЕДУЮТСЯ ГЛАСНЫЕ И СОГЛАСНЫЕ"}, false},
	{TokenConsonantFollowedByVowel, []string{"CONSONANT_FOLLOWED_BY_VOWEL", "СОГЛАСНАЯ ПЕРЕД ГЛАСНОЙ"}, false},
	{TokenVowelFollowedByConsonant, []string{"VOWEL_FOLLOWED_BY_CONSONANT", "ГЛАСНАЯ ПЕРЕД СОГЛАСНОЙ"}, false},
	{TokenMoreVowelsThanConsonants, []string{"MORE_VOWELS_THAN_CONSONANTS", "ГЛАСНЫХ БОЛЬШЕ ЧЕМ СОГЛАСНЫХ"}, false},
	{TokenMoreConsonantsThanVowels, []string{"MORE_CONSONANTS_THAN_VOWELS", "СОГЛАСНЫХ БОЛЬШЕ ЧЕМ ГЛАСНЫХ"}, false},
	{TokenEqualVowelsConsonants, []string{"EQUAL_VOWELS_CONSONANTS", "ГЛАСНЫХ СТОЛЬКО ЖЕ СКОЛЬКО СОГЛАСНЫХ"}, false},

	{TokenVariable, []string{"X1", "X2", "X3", "X4", "X5", "X6", "X7", "X8", "X9", "X10"}, true},
	{TokenBoolean, []string{"YES", "NO", "TRUE", "FALSE"}, true},
}

// phrase is one entry of the ordered match list
type phrase struct {
	text      []rune
	tokenType TokenType
}

var (
	phrases   []phrase
	canonical = make(map[TokenType]string)
)

func init() {
	for _, kw := range keywordTable {
		if !kw.literal {
			canonical[kw.tokenType] = kw.phrases[0]
		}
		for _, p := range kw.phrases {
			phrases = append(phrases, phrase{text: []rune(p), tokenType: kw.tokenType})
		}
	}
	// Longer phrases first; ties keep table order.
	sort.SliceStable(phrases, func(i, j int) bool {
		return len(phrases[i].text) > len(phrases[j].text)
	})
}

// Phrases returns the keyword phrases in the order the lexer tries them
func Phrases() []string {
	out := make([]string, len(phrases))
	for i, p := range phrases {
		out[i] = string(p.text)
	}
	return out
}

// PhraseType returns the token type a phrase maps to
func PhraseType(text string) (TokenType, bool) {
	for _, p := range phrases {
		if string(p.text) == text {
			return p.tokenType, true
		}
	}
	return TokenUnknown, false
}
