// File: cdsl.go
// Title: CDSL Pipeline
// Description: High-level API running lexer, parser and interpreter over
//              one source text, with a run ID, timing, an optional result
//              cache and the diagnostics of every stage.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial pipeline facade

// Package cdsl turns CDSL problem descriptions into problem
// specifications.
//
//	p := cdsl.New(cdsl.Options{})
//	res := p.Run(`TASK CARDS "Two aces"`)
//	fmt.Println(res.Spec.Summary())
package cdsl

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/interpreter"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/lexer"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/parser"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/problem"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/core/cache"
	cdsllog "github.com/Sw1zzi/cdsl-visual-tester/pkg/core/log"
)

// DefaultMaxInputLength bounds the source length in runes
const DefaultMaxInputLength = 64 * 1024

// Options configures the pipeline
type Options struct {
	// Logger for pipeline operations (optional, defaults to default logger)
	Logger *cdsllog.Logger

	// MaxInputLength limits the source length in runes (default: 65536).
	// Longer sources are not processed.
	MaxInputLength int

	// QuietUnknownTask suppresses the unknown TASK kind warning
	QuietUnknownTask bool

	// Cache stores results by source text (optional)
	Cache *cache.Cache[*Result]
}

// Result carries the output of every stage of one run. The tree and the
// token slice may be shared with cached runs and must not be modified.
type Result struct {
	// RunID correlates the run's log entries
	RunID string

	// Source is the input text
	Source string

	Tokens      []lexer.Token
	AST         *ast.Node
	Spec        *problem.Specification
	Diagnostics diag.List

	// Duration is the time taken by the three stages
	Duration time.Duration

	// Cached reports whether the stages were skipped for a cached result
	Cached bool
}

// HasErrors reports whether any stage produced an error diagnostic
func (r *Result) HasErrors() bool {
	return r.Diagnostics.HasErrors()
}

// Pipeline runs the three stages. It holds no per-run state and is safe
// for concurrent use.
type Pipeline struct {
	logger  *cdsllog.Logger
	options Options
}

// New creates a pipeline, applying defaults for unset options
func New(opts Options) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = cdsllog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	return &Pipeline{
		logger:  opts.Logger.WithField("component", "cdsl-pipeline"),
		options: opts,
	}
}

// Run processes source. It never fails: problems are reported in the
// result's diagnostics.
func (p *Pipeline) Run(source string) *Result {
	runID := uuid.New().String()
	logger := p.logger.WithCorrelationID(runID)

	key := cache.Key("cdsl", source)
	if p.options.Cache != nil {
		if cached, ok := p.options.Cache.Get(key); ok {
			logger.Debug("Using cached result", cdsllog.Fields{"origin": cached.RunID})
			res := *cached
			res.RunID = runID
			res.Cached = true
			res.Diagnostics = append(diag.List{}, cached.Diagnostics...)
			return &res
		}
	}

	start := time.Now()
	res := &Result{RunID: runID, Source: source}

	if n := utf8.RuneCountInString(source); n > p.options.MaxInputLength {
		logger.Warn("Input too long", cdsllog.Fields{"length": n, "limit": p.options.MaxInputLength})
		res.Diagnostics = append(res.Diagnostics, diag.New(diag.StagePipeline, diag.CodeInputTooLong, 1, 1,
			"input has %d characters, limit is %d", n, p.options.MaxInputLength))
		res.AST = ast.New(ast.KindProgram, ast.Position{Line: 1, Column: 1})
		res.Spec = problem.NewBuilder().Build()
		res.Duration = time.Since(start)
		return res
	}

	res.Tokens = lexer.Tokenize(source)

	ps := parser.New(res.Tokens, parser.Options{Logger: logger})
	res.AST = ps.Parse()
	res.Diagnostics = append(res.Diagnostics, ps.Diagnostics()...)

	in := interpreter.New(interpreter.Options{
		Logger:           logger,
		QuietUnknownTask: p.options.QuietUnknownTask,
	})
	res.Spec = in.Interpret(res.AST)
	res.Diagnostics = append(res.Diagnostics, in.Diagnostics()...)

	res.Duration = time.Since(start)
	logger.Debug("CDSL run completed", cdsllog.Fields{
		"tokens":      len(res.Tokens),
		"kind":        res.Spec.Kind().String(),
		"diagnostics": len(res.Diagnostics),
		"duration":    res.Duration.String(),
	})

	if p.options.Cache != nil {
		p.options.Cache.Set(key, res)
	}
	return res
}

// Run processes source with a default pipeline
func Run(source string) *Result {
	return New(Options{}).Run(source)
}
