package diag

import "testing"

func TestDiagnosticError(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "with position",
			d:    New(StageParser, CodeUnclosedList, 2, 8, "expected %q", "]"),
			want: `parser 2:8: error: expected "]" [CDSL_UNCLOSED_LIST]`,
		},
		{
			name: "without position",
			d:    New(StageInterpreter, CodeUnknownTaskKind, 0, 0, "unknown task kind %s", "DICE"),
			want: "interpreter: warning: unknown task kind DICE [CDSL_UNKNOWN_TASK_KIND]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeUnknownToken, SeverityWarning},
		{CodeExpectedToken, SeverityError},
		{CodeUnclosedList, SeverityError},
		{CodeUnknownNode, SeverityInfo},
		{CodeUnknownTaskKind, SeverityWarning},
	}
	for _, tt := range tests {
		if got := DefaultSeverity(tt.code); got != tt.want {
			t.Errorf("DefaultSeverity(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestList(t *testing.T) {
	l := List{
		New(StageLexer, CodeUnknownToken, 1, 1, "x"),
		New(StageParser, CodeUnknownToken, 1, 3, "y"),
		New(StageInterpreter, CodeUnknownNode, 0, 0, "z"),
	}

	if l.HasErrors() {
		t.Error("HasErrors() = true, want false")
	}
	if got := len(l.WithCode(CodeUnknownToken)); got != 2 {
		t.Errorf("WithCode() len = %d, want 2", got)
	}
	if got := l.Count(SeverityWarning); got != 2 {
		t.Errorf("Count(warning) = %d, want 2", got)
	}
	if got := l.FromStages(StageParser, StageInterpreter); len(got) != 2 || got[0].Message != "y" {
		t.Errorf("FromStages() = %v", got)
	}
	if got := l.FromStages(); len(got) != 0 {
		t.Errorf("FromStages() with no stages = %v", got)
	}

	l = append(l, New(StageParser, CodeExpectedToken, 4, 1, "missing"))
	if !l.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}
