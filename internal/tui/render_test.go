package tui

import (
	"strings"
	"testing"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/lexer"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/problem"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/core/i18n"
	cdsllog "github.com/Sw1zzi/cdsl-visual-tester/pkg/core/log"
)

func TestKindName(t *testing.T) {
	tests := []struct {
		locale   string
		kind     problem.Kind
		expected string
	}{
		{"en", problem.KindCards, "Cards"},
		{"en", problem.KindBalls, "Balls and Urns"},
		{"en", problem.KindUnset, "Unknown"},
		{"ru", problem.KindChess, "Шахматы"},
		{"ru", problem.KindUnset, "Неизвестно"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.kind.String(), func(t *testing.T) {
			if got := KindName(i18n.MustNew(tt.locale), tt.kind); got != tt.expected {
				t.Errorf("KindName(%v) = %q, want %q", tt.kind, got, tt.expected)
			}
		})
	}

	// Every kind has a catalog entry
	tr := i18n.MustNew("en")
	for _, k := range problem.Kinds() {
		if got := KindName(tr, k); strings.HasPrefix(got, "[") {
			t.Errorf("KindName(%v) = %q, missing catalog entry", k, got)
		}
	}
}

func TestTokenTable(t *testing.T) {
	out := TokenTable(lexer.Tokenize(`TASK CARDS "Two aces"`))

	for _, want := range []string{"LINE", "TYPE", "VALUE", "TASK", "CARDS", `"Two aces"`, "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("TokenTable() missing %q:\n%s", want, out)
		}
	}
}

func TestDiagnostics(t *testing.T) {
	tr := i18n.MustNew("en")

	if got := Diagnostics(tr, nil); !strings.Contains(got, "No diagnostics") {
		t.Errorf("Diagnostics(nil) = %q", got)
	}

	list := diag.List{
		diag.New(diag.StageParser, diag.CodeUnclosedList, 2, 7, "list is not closed"),
		diag.New(diag.StagePipeline, diag.CodeInputTooLong, 0, 0, "too long"),
	}
	out := Diagnostics(tr, list)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Diagnostics() = %q, want 2 lines", out)
	}
	for _, want := range []string{"error", "2:7", "list is not closed", "[CDSL_UNCLOSED_LIST]"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line 0 = %q, missing %q", lines[0], want)
		}
	}
	if strings.Contains(lines[1], "0:0") {
		t.Errorf("unknown position should be omitted: %q", lines[1])
	}

	ru := DiagnosticLine(i18n.MustNew("ru"), list[0])
	if !strings.Contains(ru, "ошибка") {
		t.Errorf("DiagnosticLine(ru) = %q", ru)
	}
}

func TestSpecYAML(t *testing.T) {
	p := cdsl.New(cdsl.Options{Logger: cdsllog.Nop()})
	res := p.Run("CHESS\nPIECES [ROOK 2]\nNON_ATTACKING")

	out, err := SpecYAML(res.Spec)
	if err != nil {
		t.Fatalf("SpecYAML() error = %v", err)
	}
	for _, want := range []string{"kind: CHESS", "summary:", "ROOK: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("SpecYAML() missing %q:\n%s", want, out)
		}
	}
}
