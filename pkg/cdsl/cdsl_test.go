// File: cdsl_test.go
// Title: CDSL Pipeline Tests
// Description: End-to-end runs through the pipeline facade covering the
//              documented input/output properties, limits and caching.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test suite

package cdsl

import (
	"strings"
	"sync"
	"testing"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/problem"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/core/cache"
	cdsllog "github.com/Sw1zzi/cdsl-visual-tester/pkg/core/log"
)

func quiet(opts Options) *Pipeline {
	opts.Logger = cdsllog.Nop()
	return New(opts)
}

func TestRun_Properties(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, r *Result)
	}{
		{
			name:  "Cards round trip",
			input: "TASK CARDS \"T\"\nDECK STANDARD 36\nDRAW 3\nCALCULATE PROBABILITY",
			check: func(t *testing.T, r *Result) {
				want := "Task: Cards 'T', Deck: STANDARD (36 cards), Draws: 3 (no replacement), Target: None, Calculate: PROBABILITY"
				if got := r.Spec.Summary(); got != want {
					t.Errorf("Summary() = %q, want %q", got, want)
				}
			},
		},
		{
			name:  "Count condition",
			input: "TASK CARDS \"T\"\nTARGET [COUNT(SUIT HEARTS) = 2]",
			check: func(t *testing.T, r *Result) {
				c, _ := r.Spec.Cards()
				if len(c.CountConditions) != 1 || c.CountConditions[0].String() != "COUNT(SUIT HEARTS) = 2" {
					t.Errorf("CountConditions = %v", c.CountConditions)
				}
			},
		},
		{
			name:  "Chess",
			input: "CHESS\nPIECES [ROOK 2, KNIGHT 3]\nNON_ATTACKING",
			check: func(t *testing.T, r *Result) {
				c, _ := r.Spec.Chess()
				if c.Pieces.Format(": ", ", ") != "ROOK: 2, KNIGHT: 3" || c.Attacking {
					t.Errorf("Chess() = %+v", c)
				}
			},
		},
		{
			name:  "Resynchronization",
			input: "TARGET [ % garbage\nCALCULATE COMBINATIONS",
			check: func(t *testing.T, r *Result) {
				if r.Spec.CalculationType() != "COMBINATIONS" {
					t.Errorf("CalculationType() = %q", r.Spec.CalculationType())
				}
				if !r.HasErrors() {
					t.Error("unclosed list should be reported as an error")
				}
			},
		},
		{
			name:  "Empty input",
			input: "",
			check: func(t *testing.T, r *Result) {
				if len(r.Tokens) != 0 || r.AST.Len() != 0 || r.Spec.Kind() != problem.KindUnset {
					t.Errorf("tokens = %d, children = %d, kind = %v", len(r.Tokens), r.AST.Len(), r.Spec.Kind())
				}
			},
		},
	}

	p := quiet(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := p.Run(tt.input)
			if r.RunID == "" || r.Source != tt.input || r.Cached {
				t.Errorf("RunID = %q, Source = %q, Cached = %v", r.RunID, r.Source, r.Cached)
			}
			tt.check(t, r)
		})
	}
}

func TestRun_CaseInsensitive(t *testing.T) {
	p := quiet(Options{})
	lower := p.Run(`task cards "x"`)
	upper := p.Run(`TASK CARDS "x"`)
	if ast.Sprint(lower.AST) != ast.Sprint(upper.AST) {
		t.Errorf("trees differ:\n%s\nvs\n%s", ast.Sprint(lower.AST), ast.Sprint(upper.AST))
	}
	if lower.Spec.Summary() != upper.Spec.Summary() {
		t.Errorf("summaries differ: %q vs %q", lower.Spec.Summary(), upper.Spec.Summary())
	}
}

func TestRun_CollectsAllStages(t *testing.T) {
	r := quiet(Options{}).Run("TASK DICE \"x\"\n@@@")

	stages := map[diag.Stage]bool{}
	for _, d := range r.Diagnostics {
		stages[d.Stage] = true
	}
	if !stages[diag.StageParser] || !stages[diag.StageInterpreter] {
		t.Errorf("diagnostics = %v, want parser and interpreter entries", r.Diagnostics)
	}

	r = quiet(Options{QuietUnknownTask: true}).Run(`TASK DICE "x"`)
	if len(r.Diagnostics) != 0 {
		t.Errorf("quiet run diagnostics = %v", r.Diagnostics)
	}
}

func TestRun_InputTooLong(t *testing.T) {
	p := quiet(Options{MaxInputLength: 10})
	r := p.Run(`TASK CARDS "a long name"`)

	if len(r.Diagnostics) != 1 || r.Diagnostics[0].Code != diag.CodeInputTooLong {
		t.Fatalf("diagnostics = %v", r.Diagnostics)
	}
	if r.Diagnostics[0].Stage != diag.StagePipeline || !r.HasErrors() {
		t.Errorf("diagnostic = %+v", r.Diagnostics[0])
	}
	if r.Spec == nil || r.Spec.Kind() != problem.KindUnset || r.AST == nil || r.AST.Len() != 0 {
		t.Errorf("rejected input should yield an empty result")
	}

	// Limits count runes, not bytes.
	if r := p.Run("ЖЖЖЖЖЖЖЖЖЖ"); len(r.Diagnostics.WithCode(diag.CodeInputTooLong)) != 0 {
		t.Errorf("ten runes should be accepted, diagnostics = %v", r.Diagnostics)
	}
}

func TestRun_Cache(t *testing.T) {
	c := cache.New[*Result](cache.Config{MaxItems: 8})
	defer c.Close()
	p := quiet(Options{Cache: c})

	src := "TASK CARDS \"T\"\nDRAW 2"
	first := p.Run(src)
	second := p.Run(src)

	if first.Cached || !second.Cached {
		t.Errorf("Cached = %v, %v, want false, true", first.Cached, second.Cached)
	}
	if first.RunID == second.RunID {
		t.Error("each run needs its own RunID")
	}
	if first.Spec != second.Spec || second.Spec.Summary() != first.Spec.Summary() {
		t.Error("cached run should reuse the specification")
	}
	if hits, _, _ := c.Stats(); hits != 1 {
		t.Errorf("cache hits = %d, want 1", hits)
	}

	if other := p.Run(strings.ToLower(src)); other.Cached {
		t.Error("different source text should not hit the cache")
	}
}

func TestRun_Concurrent(t *testing.T) {
	p := quiet(Options{})
	inputs := []string{
		"TASK CARDS \"a\"\nDECK 36",
		"CHESS PIECES [QUEEN 8]",
		"URN [RED 2, BLUE 1] DRAW 1",
		"DIGITS 3 DIVIDES_BY 7",
	}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		want[i] = p.Run(in).Spec.Summary()
	}

	var wg sync.WaitGroup
	errs := make(chan string, len(inputs)*8)
	for n := 0; n < 8; n++ {
		for i, in := range inputs {
			wg.Add(1)
			go func(i int, in string) {
				defer wg.Done()
				if got := p.Run(in).Spec.Summary(); got != want[i] {
					errs <- got
				}
			}(i, in)
		}
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Errorf("concurrent run produced %q", e)
	}
}
