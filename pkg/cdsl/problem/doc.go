// File: doc.go
// Title: CDSL Problem Specification Package Documentation
// Description: Declares the typed result of interpreting a CDSL program.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial problem package

/*
Package problem defines the Problem Specification produced by the CDSL
interpreter.

A Specification is a tagged union keyed by Kind. Exactly one variant
record (Cards, Words, Numbers, Equations, Balls, Divisibility,
Remainders or Chess) is active, matching Kind. Next to it lives a
generic Params map holding raw attribute values and free-form condition
strings.

Specifications are assembled by a Builder. Every typed setter also
writes the matching Params entry, and Build writes the final typed
values (defaults included) back into the map, so the two views never
disagree. Readers such as Int and Bool consult the typed record first.

A built Specification is read-only: accessors return copies.
*/
package problem
