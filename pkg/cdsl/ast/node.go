// File: node.go
// Title: CDSL AST Nodes
// Description: Generic kind-tagged tree node with child lookup helpers
//              and a depth-first walker.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial node definition

package ast

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number in runes (1-based)
}

// Node is one element of the tree. Kind is one of the Kind* constants.
type Node struct {
	Kind     string
	Value    Value
	Children []*Node
	Pos      Position
}

// New creates a node without a value
func New(kind string, pos Position) *Node {
	return &Node{Kind: kind, Pos: pos}
}

// NewValue creates a leaf node carrying a value
func NewValue(kind string, value Value, pos Position) *Node {
	return &Node{Kind: kind, Value: value, Pos: pos}
}

// Add appends children, skipping nil, and returns the node
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Child returns the first child of the given kind or nil
func (n *Node) Child(kind string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// ChildrenOf returns all children of the given kind in order
func (n *Node) ChildrenOf(kind string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of children
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// String returns "KIND" or "KIND: value"
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Value.IsNone() {
		return n.Kind
	}
	return n.Kind + ": " + n.Value.String()
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of the visited node.
func Walk(n *Node, fn func(node *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// CountNodes returns the number of nodes in the tree rooted at n
func CountNodes(n *Node) int {
	total := 0
	Walk(n, func(*Node, int) bool {
		total++
		return true
	})
	return total
}
