// File: ast_test.go
// Title: CDSL AST Unit Tests
// Description: Tests for values, ordered counts, node helpers and the
//              tree printer.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test suite

package ast

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

func TestValue_Variants(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected ValueType
		str      string
	}{
		{"none", NoValue(), ValueTypeNone, ""},
		{"int", IntValue(42), ValueTypeInt, "42"},
		{"bool", BoolValue(true), ValueTypeBool, "true"},
		{"string", StringValue("a b"), ValueTypeString, `"a b"`},
		{"list", ListValue([]string{"[1]", "[2]"}), ValueTypeList, "[[1], [2]]"},
		{"counts", CountsValue(NewCounts(Count{"ROOK", 2}, Count{"KNIGHT", 3})), ValueTypeCounts, "{ROOK: 2, KNIGHT: 3}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Type(); got != tt.expected {
				t.Errorf("Type() = %v, want %v", got, tt.expected)
			}
			if got := tt.value.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	if n, ok := IntValue(7).AsInt(); !ok || n != 7 {
		t.Errorf("AsInt() = %d, %v", n, ok)
	}
	if _, ok := StringValue("7").AsInt(); ok {
		t.Error("AsInt() on string should fail")
	}
	if b, ok := BoolValue(true).AsBool(); !ok || !b {
		t.Errorf("AsBool() = %v, %v", b, ok)
	}
	if s, ok := StringValue("x").AsString(); !ok || s != "x" {
		t.Errorf("AsString() = %q, %v", s, ok)
	}
	if _, ok := NoValue().AsString(); ok {
		t.Error("AsString() on none should fail")
	}
	if !NoValue().IsNone() || NoValue().Interface() != nil {
		t.Error("NoValue() should be none with nil payload")
	}
}

func TestValue_Immutable(t *testing.T) {
	items := []string{"a", "b"}
	v := ListValue(items)
	items[0] = "changed"

	got, _ := v.AsList()
	if got[0] != "a" {
		t.Errorf("list payload aliased caller slice: %v", got)
	}
	got[1] = "changed"
	again, _ := v.AsList()
	if again[1] != "b" {
		t.Errorf("AsList() returned shared slice: %v", again)
	}

	c := NewCounts(Count{"RED", 1})
	cv := CountsValue(c)
	c.Add("RED", 5)
	if n, _ := cv.counts.Get("RED"); n != 1 {
		t.Errorf("counts payload aliased caller: RED = %d", n)
	}
}

func TestCounts(t *testing.T) {
	var c Counts
	c.Add("RED", 3)
	c.Add("BLUE", 2)
	c.Add("RED", 1)
	c.Set("GREEN", 4)
	c.Set("BLUE", 5)

	if got, want := c.Keys(), []string{"RED", "BLUE", "GREEN"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if n, ok := c.Get("RED"); !ok || n != 4 {
		t.Errorf("Get(RED) = %d, %v, want 4", n, ok)
	}
	if n, _ := c.Get("BLUE"); n != 5 {
		t.Errorf("Get(BLUE) = %d, want 5", n)
	}
	if _, ok := c.Get("WHITE"); ok {
		t.Error("Get(WHITE) should be missing")
	}
	if got := c.Total(); got != 13 {
		t.Errorf("Total() = %d, want 13", got)
	}
	if got := c.Format(" ", ", "); got != "RED 4, BLUE 5, GREEN 4" {
		t.Errorf("Format() = %q", got)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestNode_Helpers(t *testing.T) {
	root := New(KindProgram, Position{Line: 1, Column: 1})
	task := New(KindTaskDeclaration, Position{Line: 1, Column: 1}).Add(
		NewValue(KindTaskType, StringValue("CARDS"), Position{Line: 1, Column: 6}),
		nil,
		NewValue(KindTaskName, StringValue("T"), Position{Line: 1, Column: 12}),
	)
	root.Add(task)

	if task.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (nil skipped)", task.Len())
	}
	if got := root.Child(KindTaskDeclaration).Child(KindTaskName); got == nil || got.Value.String() != `"T"` {
		t.Errorf("Child lookup = %v", got)
	}
	if got := root.Child(KindDeckDeclaration); got != nil {
		t.Errorf("Child(DECK) = %v, want nil", got)
	}
	if got := len(task.ChildrenOf(KindTaskType)); got != 1 {
		t.Errorf("ChildrenOf(TASK_TYPE) = %d, want 1", got)
	}
	var missing *Node
	if missing.Child(KindTaskType) != nil || missing.Len() != 0 {
		t.Error("nil node helpers should be safe")
	}
	if got := CountNodes(root); got != 4 {
		t.Errorf("CountNodes() = %d, want 4", got)
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	root := New(KindProgram, Position{}).Add(
		New(KindChessDeclaration, Position{}).Add(NewValue(KindBoardHeight, IntValue(8), Position{})),
		New(KindCalculate, Position{}),
	)

	var visited []string
	Walk(root, func(n *Node, depth int) bool {
		visited = append(visited, n.Kind)
		return n.Kind != KindChessDeclaration
	})

	want := []string{KindProgram, KindChessDeclaration, KindCalculate}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("visited = %v, want %v", visited, want)
	}
}

func TestSprint(t *testing.T) {
	root := New(KindProgram, Position{}).Add(
		New(KindChessDeclaration, Position{}).Add(
			NewValue(KindBoardHeight, IntValue(8), Position{}),
			NewValue(KindPieces, CountsValue(NewCounts(Count{"ROOK", 2})), Position{}),
			NewValue(KindAttacking, BoolValue(false), Position{}),
		),
	)

	want := "PROGRAM\n" +
		"  CHESS_DECLARATION\n" +
		"    BOARD_HEIGHT: 8\n" +
		"    PIECES: {ROOK: 2}\n" +
		"    ATTACKING: false\n"
	if got := Sprint(root); got != want {
		t.Errorf("Sprint() =\n%s\nwant\n%s", got, want)
	}

	var buf bytes.Buffer
	if err := Fprint(&buf, root); err != nil {
		t.Fatalf("Fprint() error = %v", err)
	}
	if buf.String() != want {
		t.Errorf("Fprint() = %q", buf.String())
	}
}

func TestCounts_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		counts   Counts
		expected string
	}{
		{"Empty", Counts{}, `{}`},
		{"Insertion order", NewCounts(Count{"ROOK", 2}, Count{"BISHOP", 1}), `{"ROOK":2,"BISHOP":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.counts)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("Marshal() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestCounts_MarshalYAML(t *testing.T) {
	v, err := NewCounts(Count{"RED", 3}).MarshalYAML()
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}
	if !reflect.DeepEqual(v, map[string]int{"RED": 3}) {
		t.Errorf("MarshalYAML() = %v", v)
	}
}
