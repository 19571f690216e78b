// File: print.go
// Title: CDSL AST Printer
// Description: Renders trees as indented text, one node per line.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial printer

package ast

import (
	"io"
	"strings"
)

// Indent is the per-level indentation used by Fprint
const Indent = "  "

// Fprint writes the tree rooted at n to w
func Fprint(w io.Writer, n *Node) error {
	_, err := io.WriteString(w, Sprint(n))
	return err
}

// Sprint renders the tree rooted at n. Each line ends with a newline.
func Sprint(n *Node) string {
	var b strings.Builder
	Walk(n, func(node *Node, depth int) bool {
		b.WriteString(strings.Repeat(Indent, depth))
		b.WriteString(node.String())
		b.WriteByte('\n')
		return true
	})
	return b.String()
}
