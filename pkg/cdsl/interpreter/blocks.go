// File: blocks.go
// Title: CDSL Attribute Block Interpretation
// Description: Population routines for the numbers, divisibility,
//              remainders, balls and chess blocks. Each block selects its
//              problem kind regardless of any TASK declaration.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial block routines

package interpreter

import (
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/problem"
)

func (in *Interpreter) numbers(node *ast.Node) {
	var (
		left, right []string
		op          string
	)

	for _, child := range node.Children {
		v := child.Value
		switch child.Kind {
		case ast.KindDigits:
			if n, ok := v.AsInt(); ok {
				in.b.SetNumberDigits(n)
			}
		case ast.KindMaxDigit:
			if n, ok := v.AsInt(); ok {
				in.b.SetMaxDigit(n)
			}
		case ast.KindFirstNotZero:
			if flag, ok := v.AsBool(); ok {
				in.b.SetFirstNotZero(flag)
			}
		case ast.KindDistinct:
			if flag, ok := v.AsBool(); ok {
				in.b.SetDistinct(flag)
			}
		case ast.KindAdjacentDifferent:
			if flag, ok := v.AsBool(); ok {
				in.b.SetAdjacentDifferent(flag)
			}
		case ast.KindOrder:
			if order, ok := v.AsString(); ok {
				in.b.SetOrder(order)
			}
		case ast.KindCompareLeft:
			left, _ = v.AsList()
		case ast.KindCompareOperator:
			op, _ = v.AsString()
		case ast.KindCompareRight:
			right, _ = v.AsList()
		}
	}

	if len(left) > 0 || len(right) > 0 || op != "" {
		in.b.SetComparison(left, op, right)
	}
	in.b.SetKind(problem.KindNumbers)
}

func (in *Interpreter) divisibility(node *ast.Node) {
	for _, child := range node.Children {
		v := child.Value
		switch child.Kind {
		case ast.KindDigits:
			if n, ok := v.AsInt(); ok {
				in.b.SetDivisibilityDigits(n)
			}
		case ast.KindRule:
			if rule, ok := v.AsString(); ok {
				in.b.SetRule(rule)
			}
		case ast.KindTransformation:
			if seq, ok := v.AsString(); ok {
				in.b.SetTransformationSequence(seq)
			}
		case ast.KindFactor:
			if n, ok := v.AsInt(); ok {
				in.b.SetFactor(n)
			}
		case ast.KindOperationType:
			if op, ok := v.AsString(); ok {
				in.b.SetOperationType(op)
			}
		case ast.KindDivisor:
			if n, ok := v.AsInt(); ok {
				in.b.SetDivisibleBy(n)
			}
		case ast.KindDigitPosition:
			if position, ok := v.AsString(); ok {
				in.b.AddDigitPosition(position)
			}
		case ast.KindConditionExpr:
			if cond, ok := v.AsString(); ok {
				in.b.AddDivisibilityCondition(cond)
			}
		}
	}
	in.b.SetKind(problem.KindDivisibility)
}

func (in *Interpreter) remainders(node *ast.Node) {
	if dividend, ok := strChild(node, ast.KindDividend); ok {
		in.b.SetDividend(dividend)
	}
	if n, ok := intChild(node, ast.KindDivisor); ok {
		in.b.SetDivisor(n)
	}
	if n, ok := intChild(node, ast.KindRemainder); ok {
		in.b.SetRemainder(n)
	}
	in.b.SetKind(problem.KindRemainders)
}

// balls fills the urn and the drawn set. An explicit drawn set fixes the
// draw count at its total when the specification is built.
func (in *Interpreter) balls(node *ast.Node) {
	for _, child := range node.Children {
		v := child.Value
		switch child.Kind {
		case ast.KindUrnContents:
			if counts, ok := v.AsCounts(); ok {
				for _, c := range counts.Entries() {
					in.b.AddUrnBalls(c.Key, c.N)
				}
			}
		case ast.KindDrawBalls:
			if counts, ok := v.AsCounts(); ok {
				for _, c := range counts.Entries() {
					in.b.AddDrawnBalls(c.Key, c.N)
				}
			}
		case ast.KindDrawType:
			if sequential, ok := v.AsBool(); ok {
				in.b.SetSequential(sequential)
			}
		case ast.KindDrawCount:
			if n, ok := v.AsInt(); ok {
				in.b.SetBallDrawCount(n)
			}
		}
	}
	in.b.SetKind(problem.KindBalls)
}

func (in *Interpreter) chess(node *ast.Node) {
	for _, child := range node.Children {
		v := child.Value
		switch child.Kind {
		case ast.KindBoardHeight:
			if n, ok := v.AsInt(); ok {
				in.b.SetBoardHeight(n)
			}
		case ast.KindBoardWidth:
			if n, ok := v.AsInt(); ok {
				in.b.SetBoardWidth(n)
			}
		case ast.KindPieces:
			if counts, ok := v.AsCounts(); ok {
				for _, c := range counts.Entries() {
					in.b.AddPieces(c.Key, c.N)
				}
			}
		case ast.KindAttacking:
			if attacking, ok := v.AsBool(); ok {
				in.b.SetAttacking(attacking)
			}
		}
	}
	in.b.SetKind(problem.KindChess)
}
