// File: parser_test.go
// Title: CDSL Parser Unit Tests
// Description: Tree-shape tests for every declaration, attribute block
//              defaults, dispatch lookahead, error recovery and
//              diagnostics.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test suite

package parser

import (
	"strings"
	"testing"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/lexer"
	cdsllog "github.com/Sw1zzi/cdsl-visual-tester/pkg/core/log"
)

func parse(t *testing.T, src string) (*ast.Node, diag.List) {
	t.Helper()
	p := New(lexer.Tokenize(src), Options{Logger: cdsllog.Nop()})
	return p.Parse(), p.Diagnostics()
}

// tree renders the expected Sprint output of a PROGRAM whose children
// are given one line each, indented relative to PROGRAM
func tree(lines ...string) string {
	var b strings.Builder
	b.WriteString("PROGRAM\n")
	for _, l := range lines {
		b.WriteString(ast.Indent)
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

func TestParse_Declarations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "Task with name",
			input: `TASK CARDS "Two aces"`,
			expected: tree(
				"TASK_DECLARATION",
				`  TASK_TYPE: "CARDS"`,
				`  TASK_NAME: "Two aces"`,
			),
		},
		{
			name:  "Task without name",
			input: "TASK WORDS",
			expected: tree(
				"TASK_DECLARATION",
				`  TASK_TYPE: "WORDS"`,
				`  TASK_NAME: ""`,
			),
		},
		{
			name:  "Task with unknown kind",
			input: `TASK dice "x"`,
			expected: tree(
				"TASK_DECLARATION",
				`  TASK_TYPE: "DICE"`,
				`  TASK_NAME: "x"`,
			),
		},
		{
			name:  "Deck defaults",
			input: "DECK",
			expected: tree(
				"DECK_DECLARATION",
				`  DECK_TYPE: "STANDARD"`,
				"  DECK_SIZE: 52",
			),
		},
		{
			name:  "Deck with type and size",
			input: "DECK FRENCH 36",
			expected: tree(
				"DECK_DECLARATION",
				`  DECK_TYPE: "FRENCH"`,
				"  DECK_SIZE: 36",
			),
		},
		{
			name:  "Draw defaults",
			input: "DRAW",
			expected: tree(
				"DRAW_DECLARATION",
				"  DRAW_COUNT: 1",
				`  REPLACEMENT: "NO_REPLACEMENT"`,
			),
		},
		{
			name:  "Draw with replacement alias",
			input: "DRAW 3 WITH_REPLACEMENT",
			expected: tree(
				"DRAW_DECLARATION",
				"  DRAW_COUNT: 3",
				`  REPLACEMENT: "REPLACEMENT"`,
			),
		},
		{
			name:  "Calculate default",
			input: "CALCULATE",
			expected: tree(
				"CALCULATE",
				`  CALCULATION_TYPE: "PROBABILITY"`,
			),
		},
		{
			name:  "Words block",
			input: "ALPHABET \"ABC\"\nLENGTH 3\nUNIQUE YES\nCONDITION PALINDROME",
			expected: tree(
				"ALPHABET_DECLARATION",
				`  ALPHABET: "ABC"`,
				"LENGTH_DECLARATION",
				"  LENGTH: 3",
				"UNIQUE_DECLARATION",
				"  UNIQUE: true",
				"CONDITION",
				`  CONDITION_EXPR: "PALINDROME"`,
			),
		},
		{
			name:  "Allow duplicates",
			input: "ALLOW_DUPLICATES",
			expected: tree(
				"UNIQUE_DECLARATION",
				"  UNIQUE: false",
			),
		},
		{
			name:  "Quoted condition",
			input: `CONDITION "starts with A"`,
			expected: tree(
				"CONDITION",
				`  CONDITION_EXPR: "starts with A"`,
			),
		},
		{
			name:  "Equations",
			input: "UNKNOWNS 3\nSUM 10\nDOMAIN \"natural\"\nCONSTRAINTS [\"x1 > 0\", \"x2 > 0\"]\nCOEFFICIENTS [1, -2, +3]",
			expected: tree(
				"UNKNOWNS_DECLARATION",
				"  UNKNOWNS_COUNT: 3",
				"SUM_DECLARATION",
				"  SUM_VALUE: 10",
				"DOMAIN_DECLARATION",
				`  DOMAIN: "natural"`,
				"CONSTRAINTS_DECLARATION",
				`  CONSTRAINT: "x1 > 0"`,
				`  CONSTRAINT: "x2 > 0"`,
				"COEFFICIENTS_DECLARATION",
				"  COEFFICIENTS: [1, -2, 3]",
			),
		},
		{
			name:  "Single bracketed coefficient",
			input: "COEFFICIENTS [5]",
			expected: tree(
				"COEFFICIENTS_DECLARATION",
				"  COEFFICIENTS: [5]",
			),
		},
		{
			name:  "Target cards",
			input: "TARGET [ACE HEARTS, K S, 10 DIAMONDS]",
			expected: tree(
				"TARGET_DECLARATION",
				"  TARGET_LIST",
				"    CARD",
				`      RANK: "ACE"`,
				`      SUIT: "HEARTS"`,
				"    CARD",
				`      RANK: "KING"`,
				`      SUIT: "SPADES"`,
				"    CARD",
				`      RANK: "10"`,
				`      SUIT: "DIAMONDS"`,
			),
		},
		{
			name:  "Target single card",
			input: "TARGET ACE SPADES",
			expected: tree(
				"TARGET_DECLARATION",
				"  CARD",
				`    RANK: "ACE"`,
				`    SUIT: "SPADES"`,
			),
		},
		{
			name:  "Target conditions",
			input: `TARGET [PALINDROME, "custom"]`,
			expected: tree(
				"TARGET_DECLARATION",
				"  TARGET_LIST",
				"    CONDITION",
				`      CONDITION_TYPE: "PALINDROME"`,
				"    CONDITION",
				`      CONDITION_TYPE: "custom"`,
			),
		},
		{
			name:  "Rank range count",
			input: "TARGET [COUNT(RANK_RANGE 2-5) >= 1]",
			expected: tree(
				"TARGET_DECLARATION",
				"  TARGET_LIST",
				"    COUNT_CONDITION",
				`      COUNT_TYPE: "RANK_RANGE"`,
				`      COUNT_VALUE: "2-5"`,
				`      OPERATOR: ">="`,
				"      TARGET_VALUE: 1",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, diags := parse(t, tt.input)
			if got := ast.Sprint(program); got != tt.expected {
				t.Errorf("Parse(%q) =\n%s\nwant\n%s", tt.input, got, tt.expected)
			}
			if len(diags) != 0 {
				t.Errorf("Parse(%q) diagnostics = %v, want none", tt.input, diags)
			}
		})
	}
}

func TestParse_Blocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "Numbers block",
			input: "NUMBERS DIGITS 4 MAX_DIGIT 7 FIRST_NOT_ZERO DISTINCT NO ORDER ASC COMPARE [1] + [2] > [3]",
			expected: tree(
				"NUMBERS_DECLARATION",
				"  DIGITS: 4",
				"  MAX_DIGIT: 7",
				"  FIRST_NOT_ZERO: true",
				"  DISTINCT: false",
				`  ORDER: "ASCENDING"`,
				"  COMPARE_LEFT: [[1], [2]]",
				`  COMPARE_OPERATOR: ">"`,
				"  COMPARE_RIGHT: [[3]]",
			),
		},
		{
			name:  "Numbers total",
			input: "NUMBERS TOTAL [1][2] = [3]",
			expected: tree(
				"NUMBERS_DECLARATION",
				"  COMPARE_LEFT: [[1], [2]]",
				`  COMPARE_OPERATOR: "="`,
				"  COMPARE_RIGHT: [[3]]",
			),
		},
		{
			name:  "Digits lead without divisor is numbers",
			input: "DIGITS 3 MAX_DIGIT 5",
			expected: tree(
				"NUMBERS_DECLARATION",
				"  DIGITS: 3",
				"  MAX_DIGIT: 5",
			),
		},
		{
			name:  "Digits lead with divisor is divisibility",
			input: "DIGITS 4 DIVIDES_BY 9",
			expected: tree(
				"DIVISIBILITY_DECLARATION",
				"  DIGITS: 4",
				"  DIVISOR: 9",
			),
		},
		{
			name:  "Divisibility block",
			input: "DIVISIBILITY DIGITS 3 RULE swap ends INCREASES_BY_FACTOR 3 TRANSFORMATION [[1] [2]]",
			expected: tree(
				"DIVISIBILITY_DECLARATION",
				"  DIGITS: 3",
				`  RULE: "swap ends"`,
				`  OPERATION_TYPE: "INCREASE"`,
				"  FACTOR: 3",
				`  TRANSFORMATION: "[1] [2]"`,
			),
		},
		{
			name:  "Divisibility filler words",
			input: "DIVISIBILITY RESULTING_NUMBER DIVIDES_BY 11 [2] UNCHANGED",
			expected: tree(
				"DIVISIBILITY_DECLARATION",
				"  DIVISOR: 11",
				`  DIGIT_POSITION: "[2]"`,
				`  OPERATION_TYPE: "UNCHANGED"`,
			),
		},
		{
			name:  "Divisibility quoted condition",
			input: `DIVISIBILITY DIGITS 2 "sum of digits is even" DIVIDES_BY 3`,
			expected: tree(
				"DIVISIBILITY_DECLARATION",
				"  DIGITS: 2",
				`  CONDITION_EXPR: "sum of digits is even"`,
				"  DIVISOR: 3",
			),
		},
		{
			name:  "Remainders block",
			input: "REMAINDERS DIVIDEND x1 DIVISOR 7 REMAINDER",
			expected: tree(
				"REMAINDERS_DECLARATION",
				`  DIVIDEND: "X1"`,
				"  DIVISOR: 7",
				"  REMAINDER: 0",
			),
		},
		{
			name:  "Remainders without keyword",
			input: `DIVIDEND "2^100" DIVISOR`,
			expected: tree(
				"REMAINDERS_DECLARATION",
				`  DIVIDEND: "2^100"`,
				"  DIVISOR: 1",
			),
		},
		{
			name:  "Urn and drawn balls",
			input: "URN [RED 3, BLUE 2]\nDRAW [RED 1]\nSIMULTANEOUS",
			expected: tree(
				"BALLS_DECLARATION",
				"  URN_CONTENTS: {RED: 3, BLUE: 2}",
				"  DRAW_BALLS: {RED: 1}",
				"  DRAW_TYPE: false",
			),
		},
		{
			name:  "Simple ball lists",
			input: "BALLS RED 3 BLUE 2 DRAW 2 SEQUENTIAL",
			expected: tree(
				"BALLS_DECLARATION",
				"  URN_CONTENTS: {RED: 3, BLUE: 2}",
				"  DRAW_COUNT: 2",
				"  DRAW_TYPE: true",
			),
		},
		{
			name:  "Ball counts accumulate",
			input: "URN [RED 1, RED 2, WHITE]",
			expected: tree(
				"BALLS_DECLARATION",
				"  URN_CONTENTS: {RED: 3, WHITE: 1}",
			),
		},
		{
			name:  "Draw list without urn",
			input: "DRAW [GREEN 2]",
			expected: tree(
				"BALLS_DECLARATION",
				"  DRAW_BALLS: {GREEN: 2}",
			),
		},
		{
			name:  "Second bracketed list is drawn balls",
			input: "[RED 4] [RED 1]",
			expected: tree(
				"BALLS_DECLARATION",
				"  URN_CONTENTS: {RED: 4}",
				"  DRAW_BALLS: {RED: 1}",
			),
		},
		{
			name:  "Chess pieces",
			input: "CHESS\nPIECES [ROOK 2, KNIGHT 3]\nNON_ATTACKING",
			expected: tree(
				"CHESS_DECLARATION",
				"  PIECES: {ROOK: 2, KNIGHT: 3}",
				"  ATTACKING: false",
			),
		},
		{
			name:  "Chess board defaults",
			input: "BOARD_HEIGHT 5 BOARD_WIDTH PIECES [QUEEN 8, CHESS_KING] ATTACKING",
			expected: tree(
				"CHESS_DECLARATION",
				"  BOARD_HEIGHT: 5",
				"  BOARD_WIDTH: 8",
				"  PIECES: {QUEEN: 8, KING: 1}",
				"  ATTACKING: true",
			),
		},
		{
			name:  "Semicolon ends a block",
			input: "NUMBERS DIGITS 2; MAX_DIGIT 4",
			expected: tree(
				"NUMBERS_DECLARATION",
				"  DIGITS: 2",
			),
		},
		{
			name:  "Command ends a block",
			input: "CHESS BOARD_HEIGHT 4 CALCULATE COMBINATIONS",
			expected: tree(
				"CHESS_DECLARATION",
				"  BOARD_HEIGHT: 4",
				"CALCULATE",
				`  CALCULATION_TYPE: "COMBINATIONS"`,
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, _ := parse(t, tt.input)
			if got := ast.Sprint(program); got != tt.expected {
				t.Errorf("Parse(%q) =\n%s\nwant\n%s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParse_CountCondition(t *testing.T) {
	program, diags := parse(t, "TARGET [COUNT(SUIT HEARTS) = 2]")
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v", diags)
	}

	list := program.Child(ast.KindTargetDeclaration).Child(ast.KindTargetList)
	conds := list.ChildrenOf(ast.KindCountCondition)
	if len(conds) != 1 {
		t.Fatalf("count conditions = %d, want 1", len(conds))
	}

	c := conds[0]
	checks := []struct {
		kind string
		want string
	}{
		{ast.KindCountType, "SUIT"},
		{ast.KindCountValue, "HEARTS"},
		{ast.KindOperator, "="},
	}
	for _, ch := range checks {
		got, _ := c.Child(ch.kind).Value.AsString()
		if got != ch.want {
			t.Errorf("%s = %q, want %q", ch.kind, got, ch.want)
		}
	}
	if n, _ := c.Child(ast.KindTargetValue).Value.AsInt(); n != 2 {
		t.Errorf("TARGET_VALUE = %d, want 2", n)
	}
}

func TestParse_DoubleEqualsNormalized(t *testing.T) {
	program, _ := parse(t, "TARGET COUNT(COLOR RED) == 3")
	op := program.Child(ast.KindTargetDeclaration).Child(ast.KindCountCondition).Child(ast.KindOperator)
	if got, _ := op.Value.AsString(); got != "=" {
		t.Errorf("OPERATOR = %q, want %q", got, "=")
	}
}

func TestParse_Resynchronization(t *testing.T) {
	program, diags := parse(t, "TARGET [ % garbage\nCALCULATE COMBINATIONS")

	calc := program.Child(ast.KindCalculate)
	if calc == nil {
		t.Fatalf("CALCULATE missing after recovery:\n%s", ast.Sprint(program))
	}
	if got, _ := calc.Child(ast.KindCalculationType).Value.AsString(); got != "COMBINATIONS" {
		t.Errorf("CALCULATION_TYPE = %q, want COMBINATIONS", got)
	}
	if program.Child(ast.KindTargetDeclaration) == nil {
		t.Error("partial TARGET_DECLARATION should stay attached")
	}
	if len(diags.WithCode(diag.CodeUnclosedList)) != 1 {
		t.Errorf("diagnostics = %v, want one %s", diags, diag.CodeUnclosedList)
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	pairs := [][2]string{
		{`task cards "x"`, `TASK CARDS "x"`},
		{"chess pieces [rook 2] non_attacking", "CHESS PIECES [ROOK 2] NON_ATTACKING"},
		{"urn [red 2] draw 1 sequential", "URN [RED 2] DRAW 1 SEQUENTIAL"},
	}
	for _, pair := range pairs {
		lower, _ := parse(t, pair[0])
		upper, _ := parse(t, pair[1])
		if ast.Sprint(lower) != ast.Sprint(upper) {
			t.Errorf("%q and %q differ:\n%s\nvs\n%s", pair[0], pair[1], ast.Sprint(lower), ast.Sprint(upper))
		}
	}
}

func TestParse_Empty(t *testing.T) {
	for _, tokens := range [][]lexer.Token{nil, {}, lexer.Tokenize("// only a comment\n\n")} {
		p := New(tokens, Options{Logger: cdsllog.Nop()})
		program := p.Parse()
		if program == nil || program.Kind != ast.KindProgram {
			t.Fatalf("Parse() = %v, want PROGRAM", program)
		}
		if program.Len() != 0 {
			t.Errorf("Parse() children = %d, want 0", program.Len())
		}
		if len(p.Diagnostics()) != 0 {
			t.Errorf("Diagnostics() = %v, want none", p.Diagnostics())
		}
	}
}

func TestParse_Diagnostics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		codes []diag.Code
	}{
		{"Unknown token", "@@@", []diag.Code{diag.CodeUnknownToken}},
		{"Stray punctuation", `TASK CARDS "x" ; )`, []diag.Code{diag.CodeUnexpectedToken}},
		{"Missing task kind", "TASK", []diag.Code{diag.CodeExpectedToken}},
		{"Missing alphabet", "ALPHABET 3", []diag.Code{diag.CodeExpectedToken}},
		{"Block value and stray token", "NUMBERS DIGITS )", []diag.Code{diag.CodeExpectedToken, diag.CodeUnexpectedToken}},
		{"Unclosed pieces", "PIECES [ROOK 2", []diag.Code{diag.CodeUnclosedList}},
		{"Incomplete count", "TARGET [COUNT(SUIT) = 2]", []diag.Code{diag.CodeIncompleteItem}},
		{"Non-integer coefficient", `COEFFICIENTS [1, "a", 2]`, []diag.Code{diag.CodeIncompleteItem}},
		{"Not a chess piece", "PIECES [RED 2]", []diag.Code{diag.CodeIncompleteItem}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := parse(t, tt.input)
			if len(diags) != len(tt.codes) {
				t.Fatalf("diagnostics = %v, want codes %v", diags, tt.codes)
			}
			for i, code := range tt.codes {
				if diags[i].Code != code {
					t.Errorf("diagnostic[%d].Code = %s, want %s", i, diags[i].Code, code)
				}
				if diags[i].Stage != diag.StageParser {
					t.Errorf("diagnostic[%d].Stage = %v, want parser", i, diags[i].Stage)
				}
			}
		})
	}
}

func TestParse_DiagnosticPosition(t *testing.T) {
	_, diags := parse(t, "TASK CARDS \"x\"\n  @")
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want 1", diags)
	}
	if diags[0].Line != 2 || diags[0].Column != 3 {
		t.Errorf("position = %d:%d, want 2:3", diags[0].Line, diags[0].Column)
	}
}

func TestParse_PartialNodesAttached(t *testing.T) {
	program, _ := parse(t, "PIECES [ROOK 2")
	pieces := program.Child(ast.KindChessDeclaration).Child(ast.KindPieces)
	if pieces == nil {
		t.Fatal("PIECES should be attached despite the unclosed list")
	}
	c, _ := pieces.Value.AsCounts()
	if n, _ := c.Get("ROOK"); n != 2 {
		t.Errorf("ROOK = %d, want 2", n)
	}
}

func TestParse_Terminates(t *testing.T) {
	inputs := []string{
		"[[[[", "]]]]", "COUNT(", "DRAW [", "URN", ";;;", "TARGET", "TARGET [",
		"COMPARE [1] >", "NUMBERS COMPARE", "TRANSFORMATION [", "DIVISIBILITY TRANSFORMATION",
		"BALLS [RED", "CHESS PIECES", "RULE", "DIVISIBILITY RULE", "COEFFICIENTS [x",
		"99999999999999999999999", "DECK STANDARD 99999999999999999999999",
		"\"unterminated", "( ) , : ; = != < >",
	}
	for _, input := range inputs {
		tokens := lexer.Tokenize(input)
		p := New(tokens, Options{Logger: cdsllog.Nop()})
		if program := p.Parse(); program == nil {
			t.Errorf("Parse(%q) returned nil", input)
		}
	}

	// Streams without an EOF sentinel terminate as well.
	raw := []lexer.Token{{Type: lexer.TokenTask, Value: "TASK"}, {Type: lexer.TokenLBracket, Value: "["}}
	if program := Parse(raw); program == nil {
		t.Error("Parse(raw) returned nil")
	}
}

func TestParseError(t *testing.T) {
	err := &ParseError{
		Code:    diag.CodeExpectedToken,
		Message: "expected digit count",
		Token:   lexer.Token{Type: lexer.TokenRParen, Value: ")", Line: 3, Column: 9},
	}
	want := "parse error at line 3, column 9: expected digit count (near ')')"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	d := err.Diagnostic()
	if d.Code != diag.CodeExpectedToken || d.Line != 3 || d.Column != 9 {
		t.Errorf("Diagnostic() = %+v", d)
	}
}

func TestIsCommand(t *testing.T) {
	for _, tt := range []lexer.TokenType{lexer.TokenTask, lexer.TokenPieces, lexer.TokenUrn} {
		if !IsCommand(tt) {
			t.Errorf("IsCommand(%s) = false", tt)
		}
	}
	for _, tt := range []lexer.TokenType{lexer.TokenDigits, lexer.TokenRed, lexer.TokenInteger} {
		if IsCommand(tt) {
			t.Errorf("IsCommand(%s) = true", tt)
		}
	}
}
