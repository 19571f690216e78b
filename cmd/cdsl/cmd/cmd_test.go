package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/core/version"
)

// isolate keeps the user's configuration files out of the test
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("CDSL_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

const cardsSource = "TASK CARDS \"T\"\nDECK STANDARD 36\nDRAW 3\nCALCULATE PROBABILITY"

const cardsSummary = "Task: Cards 'T', Deck: STANDARD (36 cards), Draws: 3 (no replacement), Target: None, Calculate: PROBABILITY"

func TestInterpret_Formats(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, out string)
	}{
		{
			name: "yaml default",
			args: []string{"interpret", "-e", cardsSource},
			check: func(t *testing.T, out string) {
				for _, want := range []string{"kind: CARDS", "summary:", "calculationType: PROBABILITY"} {
					if !strings.Contains(out, want) {
						t.Errorf("output missing %q:\n%s", want, out)
					}
				}
			},
		},
		{
			name: "json",
			args: []string{"interpret", "-o", "json", "-e", cardsSource},
			check: func(t *testing.T, out string) {
				var doc map[string]interface{}
				if err := json.Unmarshal([]byte(out), &doc); err != nil {
					t.Fatalf("output is not JSON: %v\n%s", err, out)
				}
				if doc["kind"] != "CARDS" || doc["summary"] != cardsSummary {
					t.Errorf("document = %v", doc)
				}
			},
		},
		{
			name: "text",
			args: []string{"interpret", "-o", "TEXT", "-e", cardsSource},
			check: func(t *testing.T, out string) {
				if out != cardsSummary+"\n" {
					t.Errorf("output = %q, want %q", out, cardsSummary)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			out, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			tt.check(t, out)
		})
	}
}

func TestInterpret_Inputs(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "task.cdsl")
	if err := os.WriteFile(path, []byte(cardsSource), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"file", "", []string{"interpret", "-o", "text", path}},
		{"stdin dash", cardsSource, []string{"interpret", "-o", "text", "-"}},
		{"stdin implicit", cardsSource, []string{"interpret", "-o", "text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if out != cardsSummary+"\n" {
				t.Errorf("output = %q", out)
			}
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"interpret", "/nonexistent/task.cdsl"}},
		{"expr and file", []string{"interpret", "-e", "DECK", "task.cdsl"}},
		{"unknown interpret format", []string{"interpret", "-o", "xml", "-e", "DECK"}},
		{"unknown tokens format", []string{"tokens", "-o", "csv", "-e", "DECK"}},
		{"too many arguments", []string{"parse", "a", "b"}},
		{"playground missing file", []string{"playground", "/nonexistent/task.cdsl"}},
		{"bad locale flag", []string{"--locale", "de", "interpret", "-e", "DECK"}},
		{"missing config flag", []string{"--config", "/nonexistent/cdsl.toml", "interpret", "-e", "DECK"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if _, _, err := run(t, "", tt.args...); err == nil {
				t.Errorf("Execute(%v) expected error", tt.args)
			}
		})
	}
}

func TestDiagnostics_DoNotFail(t *testing.T) {
	isolate(t)
	out, stderr, err := run(t, "", "interpret", "-o", "text", "-e", "TASK DICE \"x\"\nTARGET [ % garbage")
	if err != nil {
		t.Fatalf("Execute() error = %v, diagnostics must not fail the command", err)
	}
	if !strings.HasPrefix(out, "Task: Cards 'x'") {
		t.Errorf("output = %q", out)
	}
	for _, want := range []string{"CDSL_UNKNOWN_TASK_KIND", "CDSL_UNCLOSED_LIST", "warning", "error"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
	if strings.Contains(out, "CDSL_") {
		t.Errorf("diagnostics leaked to stdout: %q", out)
	}
}

func TestConfig_Applied(t *testing.T) {
	isolate(t)
	cfg := "[output]\nformat = \"text\"\n\n[general]\nlocale = \"ru\"\n\n[pipeline]\nmax_input_length = 100\n"
	if err := os.WriteFile("cdsl.toml", []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "", "interpret", "-e", cardsSource)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != cardsSummary+"\n" {
		t.Errorf("configured format not used, output = %q", out)
	}

	_, stderr, err := run(t, "", "interpret", "-e", "TASK DICE \"x\"")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stderr, "предупреждение") {
		t.Errorf("stderr not localized:\n%s", stderr)
	}

	_, stderr, err = run(t, "", "parse", "-e", strings.Repeat("DECK ", 30))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stderr, "CDSL_INPUT_TOO_LONG") {
		t.Errorf("input limit not applied:\n%s", stderr)
	}
}

func TestConfig_Invalid(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("cdsl.toml", []byte("[output]\nformat = \"xml\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := run(t, "", "interpret", "-e", "DECK"); err == nil {
		t.Error("Execute() expected configuration error")
	}

	// version needs no configuration
	out, _, err := run(t, "", "version", "--short")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if out != version.Toolkit+"\n" {
		t.Errorf("version --short = %q", out)
	}
}

func TestTokens(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "", "tokens", "-o", "plain", "-e", `task Cards "x"`)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := "1:1 TASK(task)\n1:6 CARDS(Cards)\n1:12 STRING(\"x\")\n2:1 EOF\n"
	if out != want {
		t.Errorf("tokens plain =\n%s\nwant\n%s", out, want)
	}

	out, _, err = run(t, "", "--no-color", "tokens", "-e", `TASK CARDS`)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"LINE", "COL", "TASK", "CARDS", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("tokens table missing %q:\n%s", want, out)
		}
	}
}

func TestParse(t *testing.T) {
	isolate(t)
	out, stderr, err := run(t, "", "parse", "-e", "DRAW 3 WITH_REPLACEMENT")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"PROGRAM\n", "  DRAW_DECLARATION\n", "    DRAW_COUNT: 3\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("parse output missing %q:\n%s", want, out)
		}
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"cdsl " + version.Toolkit, "Go Version", "OS/Arch"} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q:\n%s", want, out)
		}
	}
}
