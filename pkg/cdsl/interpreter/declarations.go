// File: declarations.go
// Title: CDSL Declaration Interpretation
// Description: Population routines for task, cards, words, condition,
//              calculation and equations declarations.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial declaration routines

package interpreter

import (
	"strconv"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/problem"
	cdsllog "github.com/Sw1zzi/cdsl-visual-tester/pkg/core/log"
)

// Replacement value of a DRAW declaration that enables replacement
const replacementOn = "REPLACEMENT"

// task resolves the TASK kind. Unknown kinds fall back to Cards.
func (in *Interpreter) task(node *ast.Node) {
	if name, ok := strChild(node, ast.KindTaskType); ok {
		kind, known := problem.ParseKind(name)
		if !known {
			kind = problem.KindCards
			in.logger.Warn("Unknown task kind, using CARDS", cdsllog.Fields{"kind": name})
			if !in.quietUnknownTask {
				in.report(node, diag.CodeUnknownTaskKind, "unknown task kind %s, using CARDS", name)
			}
		}
		in.b.SetKind(kind)
	}
	if name, ok := strChild(node, ast.KindTaskName); ok {
		in.b.SetTaskName(name)
	}
}

func (in *Interpreter) deck(node *ast.Node) {
	if deckType, ok := strChild(node, ast.KindDeckType); ok {
		in.b.SetDeckType(deckType)
	}
	if size, ok := intChild(node, ast.KindDeckSize); ok {
		in.b.SetDeckSize(size)
	}
}

// draw sets the card draw. Balls problems without their own draw count
// fall back to it when built.
func (in *Interpreter) draw(node *ast.Node) {
	if count, ok := intChild(node, ast.KindDrawCount); ok {
		in.b.SetDrawCount(count)
	}
	if replacement, ok := strChild(node, ast.KindReplacement); ok {
		in.b.SetWithReplacement(replacement == replacementOn)
	}
}

func (in *Interpreter) calculate(node *ast.Node) {
	if calc, ok := strChild(node, ast.KindCalculationType); ok {
		in.b.SetCalculationType(calc)
	}
}

// Words

func (in *Interpreter) alphabet(node *ast.Node) {
	if alphabet, ok := strChild(node, ast.KindAlphabet); ok {
		in.b.SetAlphabet(alphabet)
	}
}

func (in *Interpreter) length(node *ast.Node) {
	if n, ok := intChild(node, ast.KindLength); ok {
		in.b.SetWordLength(n)
	}
}

func (in *Interpreter) unique(node *ast.Node) {
	if unique, ok := boolChild(node, ast.KindUnique); ok {
		in.b.SetUniqueLetters(unique)
	}
}

// condition handles CONDITION declarations. Expressions are general
// conditions, and word conditions as well once the task is Words.
func (in *Interpreter) condition(node *ast.Node) {
	for _, child := range node.Children {
		text, ok := child.Value.AsString()
		if !ok {
			continue
		}
		switch child.Kind {
		case ast.KindConditionExpr:
			in.b.AddCondition(text)
			if in.b.Kind() == problem.KindWords {
				in.b.AddWordCondition(text)
			}
		case ast.KindConditionType:
			in.wordCondition(text)
		}
	}
}

func (in *Interpreter) wordCondition(text string) {
	in.b.AddWordCondition(text)
	in.b.AddCondition(text)
}

// Targets

func (in *Interpreter) target(node *ast.Node) {
	if len(node.Children) == 0 {
		in.logger.Debug("Empty target declaration")
		return
	}
	first := node.Children[0]
	if first.Kind != ast.KindTargetList {
		in.targetItem(first)
		return
	}
	for _, item := range first.Children {
		in.targetItem(item)
	}
}

func (in *Interpreter) targetItem(item *ast.Node) {
	switch item.Kind {
	case ast.KindCard:
		in.card(item)
	case ast.KindCountCondition:
		in.countCondition(item)
	case ast.KindCondition:
		for _, child := range item.ChildrenOf(ast.KindConditionType) {
			if text, ok := child.Value.AsString(); ok {
				in.wordCondition(text)
			}
		}
	default:
		in.logger.Info("Skipping unknown target item", cdsllog.Fields{"kind": item.Kind})
		in.report(item, diag.CodeUnknownNode, "target item %s is not interpreted", item.Kind)
	}
}

func (in *Interpreter) card(node *ast.Node) {
	rank, rankOK := strChild(node, ast.KindRank)
	suit, suitOK := strChild(node, ast.KindSuit)
	if !rankOK || !suitOK {
		in.logger.Warn("Skipping incomplete card", cdsllog.Fields{"rank": rank, "suit": suit})
		in.report(node, diag.CodeIncompleteItem, "card needs a rank and a suit")
		return
	}
	in.b.AddTargetCard(problem.NewCard(rank, suit))
}

func (in *Interpreter) countCondition(node *ast.Node) {
	category, ok1 := strChild(node, ast.KindCountType)
	value, ok2 := strChild(node, ast.KindCountValue)
	op, ok3 := strChild(node, ast.KindOperator)
	target, ok4 := intChild(node, ast.KindTargetValue)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		in.logger.Warn("Skipping incomplete count condition", cdsllog.Fields{"category": category})
		in.report(node, diag.CodeIncompleteItem, "count condition is incomplete")
		return
	}
	in.b.AddCountCondition(problem.CountCondition{
		Category:   category,
		Value:      value,
		Comparator: op,
		Target:     target,
	})
}

// Equations

func (in *Interpreter) unknowns(node *ast.Node) {
	if n, ok := intChild(node, ast.KindUnknownsCount); ok {
		in.b.SetUnknowns(n)
	}
}

func (in *Interpreter) sum(node *ast.Node) {
	if n, ok := intChild(node, ast.KindSumValue); ok {
		in.b.SetSum(n)
	}
}

func (in *Interpreter) domain(node *ast.Node) {
	if domain, ok := strChild(node, ast.KindDomain); ok {
		in.b.SetDomain(domain)
	}
}

func (in *Interpreter) constraints(node *ast.Node) {
	for _, child := range node.ChildrenOf(ast.KindConstraint) {
		if text, ok := child.Value.AsString(); ok {
			in.b.AddConstraint(text)
		}
	}
}

func (in *Interpreter) coefficients(node *ast.Node) {
	items, ok := valueOf(node, ast.KindCoefficients).AsList()
	if !ok {
		return
	}
	coefficients := make([]int, 0, len(items))
	for _, item := range items {
		n, err := strconv.Atoi(item)
		if err != nil {
			in.logger.Debug("Skipping non-integer coefficient", cdsllog.Fields{"item": item})
			continue
		}
		coefficients = append(coefficients, n)
	}
	in.b.SetCoefficients(coefficients)
}
