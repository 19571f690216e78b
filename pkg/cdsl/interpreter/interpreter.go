// File: interpreter.go
// Title: CDSL Interpreter
// Description: Walks the top-level declarations of a CDSL program and
//              populates a problem specification. Unknown node kinds are
//              logged and skipped; nothing here aborts interpretation.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial interpreter

package interpreter

import (
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/problem"
	cdsllog "github.com/Sw1zzi/cdsl-visual-tester/pkg/core/log"
)

// Options configures interpreter behavior
type Options struct {
	Logger *cdsllog.Logger

	// QuietUnknownTask suppresses the warning for an unknown TASK kind.
	// The kind falls back to Cards either way.
	QuietUnknownTask bool
}

// Interpreter turns an AST into a problem specification. An Interpreter
// may be reused for several trees but is not safe for concurrent use.
type Interpreter struct {
	logger           *cdsllog.Logger
	quietUnknownTask bool

	b     *problem.Builder
	diags diag.List
}

// New creates an interpreter
func New(opts Options) *Interpreter {
	if opts.Logger == nil {
		opts.Logger = cdsllog.GetDefault()
	}
	return &Interpreter{
		logger:           opts.Logger.WithField("component", "cdsl-interpreter"),
		quietUnknownTask: opts.QuietUnknownTask,
	}
}

// Interpret interprets root with the default logger
func Interpret(root *ast.Node) *problem.Specification {
	return New(Options{}).Interpret(root)
}

// Diagnostics returns the problems found by the last Interpret call
func (in *Interpreter) Diagnostics() diag.List {
	return append(diag.List{}, in.diags...)
}

// Interpret visits the direct children of root in order. A nil root
// yields a specification with no kind.
func (in *Interpreter) Interpret(root *ast.Node) *problem.Specification {
	in.b = problem.NewBuilder()
	in.diags = nil

	if root == nil {
		return in.b.Build()
	}

	in.logger.Debug("Starting CDSL interpretation", cdsllog.Fields{
		"declarations": root.Len(),
	})

	for _, node := range root.Children {
		in.logger.Trace("Interpreting node", cdsllog.Fields{"kind": node.Kind})
		in.dispatch(node)
	}

	spec := in.b.Build()
	in.logger.Debug("CDSL interpretation completed", cdsllog.Fields{
		"kind":        spec.Kind().String(),
		"diagnostics": len(in.diags),
	})
	return spec
}

func (in *Interpreter) dispatch(node *ast.Node) {
	switch node.Kind {
	case ast.KindTaskDeclaration:
		in.task(node)
	case ast.KindDeckDeclaration:
		in.deck(node)
	case ast.KindAlphabetDeclaration:
		in.alphabet(node)
	case ast.KindLengthDeclaration:
		in.length(node)
	case ast.KindUniqueDeclaration:
		in.unique(node)
	case ast.KindTargetDeclaration:
		in.target(node)
	case ast.KindDrawDeclaration:
		in.draw(node)
	case ast.KindCondition:
		in.condition(node)
	case ast.KindCalculate:
		in.calculate(node)
	case ast.KindUnknownsDeclaration:
		in.unknowns(node)
	case ast.KindSumDeclaration:
		in.sum(node)
	case ast.KindDomainDeclaration:
		in.domain(node)
	case ast.KindConstraintsDeclaration:
		in.constraints(node)
	case ast.KindCoefficientsDeclaration:
		in.coefficients(node)
	case ast.KindNumbersDeclaration:
		in.numbers(node)
	case ast.KindDivisibilityDeclaration:
		in.divisibility(node)
	case ast.KindRemaindersDeclaration:
		in.remainders(node)
	case ast.KindBallsDeclaration:
		in.balls(node)
	case ast.KindChessDeclaration:
		in.chess(node)
	default:
		in.logger.Info("Skipping unknown node", cdsllog.Fields{"kind": node.Kind})
		in.report(node, diag.CodeUnknownNode, "node %s is not interpreted", node.Kind)
	}
}

func (in *Interpreter) report(node *ast.Node, code diag.Code, format string, args ...interface{}) {
	in.diags = append(in.diags, diag.New(diag.StageInterpreter, code, node.Pos.Line, node.Pos.Column, format, args...))
}

// Value readers. A missing child or a value of another type reads as
// absent.

func valueOf(node *ast.Node, kind string) ast.Value {
	if c := node.Child(kind); c != nil {
		return c.Value
	}
	return ast.NoValue()
}

func intChild(node *ast.Node, kind string) (int, bool) {
	return valueOf(node, kind).AsInt()
}

func strChild(node *ast.Node, kind string) (string, bool) {
	return valueOf(node, kind).AsString()
}

func boolChild(node *ast.Node, kind string) (bool, bool) {
	return valueOf(node, kind).AsBool()
}
