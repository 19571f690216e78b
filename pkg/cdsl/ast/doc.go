// File: doc.go
// Title: CDSL Abstract Syntax Tree Package Documentation
// Description: Declares the generic node tree produced by the CDSL parser
//              and consumed by the interpreter.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial AST package

/*
Package ast defines the abstract syntax tree of CDSL programs.

A tree is made of Node values tagged with a kind string. The root is a
PROGRAM node whose children are the top-level declarations in source
order. Leaf nodes carry a Value, an explicit tagged union over

  - none
  - int
  - bool
  - string
  - list of strings
  - ordered string to int counts

Trees are built once by the parser and treated as read-only afterwards.
Sprint renders a tree as indented text for debugging and golden tests.
*/
package ast
