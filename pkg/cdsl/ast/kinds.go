// File: kinds.go
// Title: CDSL AST Node Kinds
// Description: Kind tags shared by the parser and the interpreter.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial node kind set

package ast

// Root
const KindProgram = "PROGRAM"

// Declarations
const (
	KindTaskDeclaration         = "TASK_DECLARATION"
	KindDeckDeclaration         = "DECK_DECLARATION"
	KindAlphabetDeclaration     = "ALPHABET_DECLARATION"
	KindLengthDeclaration       = "LENGTH_DECLARATION"
	KindUniqueDeclaration       = "UNIQUE_DECLARATION"
	KindTargetDeclaration       = "TARGET_DECLARATION"
	KindDrawDeclaration         = "DRAW_DECLARATION"
	KindCondition               = "CONDITION"
	KindCalculate               = "CALCULATE"
	KindUnknownsDeclaration     = "UNKNOWNS_DECLARATION"
	KindSumDeclaration          = "SUM_DECLARATION"
	KindDomainDeclaration       = "DOMAIN_DECLARATION"
	KindConstraintsDeclaration  = "CONSTRAINTS_DECLARATION"
	KindCoefficientsDeclaration = "COEFFICIENTS_DECLARATION"
	KindNumbersDeclaration      = "NUMBERS_DECLARATION"
	KindDivisibilityDeclaration = "DIVISIBILITY_DECLARATION"
	KindRemaindersDeclaration   = "REMAINDERS_DECLARATION"
	KindBallsDeclaration        = "BALLS_DECLARATION"
	KindChessDeclaration        = "CHESS_DECLARATION"
)

// Task, deck, draw and calculation attributes
const (
	KindTaskType        = "TASK_TYPE"
	KindTaskName        = "TASK_NAME"
	KindDeckType        = "DECK_TYPE"
	KindDeckSize        = "DECK_SIZE"
	KindDrawCount       = "DRAW_COUNT"
	KindReplacement     = "REPLACEMENT"
	KindCalculationType = "CALCULATION_TYPE"
)

// Target items
const (
	KindTargetList     = "TARGET_LIST"
	KindCard           = "CARD"
	KindRank           = "RANK"
	KindSuit           = "SUIT"
	KindCountCondition = "COUNT_CONDITION"
	KindCountType      = "COUNT_TYPE"
	KindCountValue     = "COUNT_VALUE"
	KindOperator       = "OPERATOR"
	KindTargetValue    = "TARGET_VALUE"
	KindConditionType  = "CONDITION_TYPE"
	KindConditionExpr  = "CONDITION_EXPR"
)

// Words and equations
const (
	KindAlphabet      = "ALPHABET"
	KindLength        = "LENGTH"
	KindUnique        = "UNIQUE"
	KindUnknownsCount = "UNKNOWNS_COUNT"
	KindSumValue      = "SUM_VALUE"
	KindDomain        = "DOMAIN"
	KindConstraint    = "CONSTRAINT"
	KindCoefficients  = "COEFFICIENTS"
)

// Numbers, divisibility and remainders
const (
	KindDigits            = "DIGITS"
	KindMaxDigit          = "MAX_DIGIT"
	KindFirstNotZero      = "FIRST_NOT_ZERO"
	KindDistinct          = "DISTINCT"
	KindAdjacentDifferent = "ADJACENT_DIFFERENT"
	KindOrder             = "ORDER"
	KindCompareLeft       = "COMPARE_LEFT"
	KindCompareOperator   = "COMPARE_OPERATOR"
	KindCompareRight      = "COMPARE_RIGHT"
	KindRule              = "RULE"
	KindDivisor           = "DIVISOR"
	KindFactor            = "FACTOR"
	KindOperationType     = "OPERATION_TYPE"
	KindTransformation    = "TRANSFORMATION"
	KindDigitPosition     = "DIGIT_POSITION"
	KindDividend          = "DIVIDEND"
	KindRemainder         = "REMAINDER"
)

// Balls and chess
const (
	KindUrnContents = "URN_CONTENTS"
	KindDrawBalls   = "DRAW_BALLS"
	KindDrawType    = "DRAW_TYPE"
	KindBoardHeight = "BOARD_HEIGHT"
	KindBoardWidth  = "BOARD_WIDTH"
	KindPieces      = "PIECES"
	KindAttacking   = "ATTACKING"
)
