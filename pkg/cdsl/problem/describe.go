// File: describe.go
// Title: Problem Descriptions
// Description: Deterministic one-line summaries of a specification and
//              statement sentences for numbers and divisibility problems.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial descriptions

package problem

import (
	"fmt"
	"strings"
)

// Summary renders the specification on one line, e.g.
// "Task: Cards 'T', Deck: STANDARD (36 cards), ..., Calculate: PROBABILITY"
func (s *Specification) Summary() string {
	var b strings.Builder

	name := s.taskName
	if name == "" {
		name = "Unnamed"
	}
	fmt.Fprintf(&b, "Task: %s '%s'", s.kind.DisplayName(), name)

	switch {
	case s.cards != nil:
		c := s.cards
		fmt.Fprintf(&b, ", Deck: %s (%d cards), Draws: %d (%s), Target: %s",
			c.DeckType, c.DeckSize, c.DrawCount, replacementText(c.WithReplacement), cardTargets(c))
	case s.words != nil:
		w := s.words
		fmt.Fprintf(&b, ", Alphabet: %s, Length: %d, Unique: %s, Conditions: %s",
			w.Alphabet, w.Length, yesNo(w.UniqueLetters), list(w.Conditions))
	case s.chess != nil:
		c := s.chess
		condition := "non-attacking"
		if c.Attacking {
			condition = "attacking"
		}
		fmt.Fprintf(&b, ", Board: %dx%d, Pieces: {%s}, Condition: %s",
			c.BoardHeight, c.BoardWidth, c.Pieces.Format(": ", ", "), condition)
	case s.remainders != nil:
		r := s.remainders
		fmt.Fprintf(&b, ", Dividend: %s, Divisor: %d, Remainder: %d", r.Dividend, r.Divisor, r.Remainder)
	case s.divisibility != nil:
		d := s.divisibility
		fmt.Fprintf(&b, ", Number Length: %d, Transformations: %s, Condition: %s",
			d.Digits, list(transformations(d)), noneIfEmpty(strings.Join(d.Conditions, "; ")))
	case s.balls != nil:
		bl := s.balls
		draw := "simultaneous"
		if bl.Sequential {
			draw = "sequential"
		}
		fmt.Fprintf(&b, ", Urn: {%s}, Draw: %s, Count: %d", bl.Urn.Format(": ", ", "), draw, bl.DrawCount)
	case s.equations != nil:
		e := s.equations
		fmt.Fprintf(&b, ", Unknowns: %d, Coefficients: %s, Sum: %d, Domain: %s, Constraints: %s",
			e.Unknowns, list(intStrings(e.Coefficients)), e.Sum, noneIfEmpty(e.Domain), list(e.Constraints))
	case s.numbers != nil:
		n := s.numbers
		fmt.Fprintf(&b, ", Digits: %d, Distinct: %s, Adjacent Different: %s, Order: %s",
			n.Digits, yesNo(n.Distinct), yesNo(n.AdjacentDifferent), noneIfEmpty(n.Order))
	}

	calc := s.calculationType
	if calc == "" {
		calc = "Unknown"
	}
	fmt.Fprintf(&b, ", Calculate: %s", calc)
	return b.String()
}

// String implements fmt.Stringer with Summary
func (s *Specification) String() string { return s.Summary() }

// describeNumbers states a numbers problem, e.g. "Find all sets of 3
// digits (digits 0 to 9), all digits distinct"
func describeNumbers(n Numbers) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Find all sets of %d digits (digits 0 to %d)", n.Digits, n.MaxDigit)
	if n.FirstNotZero {
		b.WriteString(", first digit ≠ 0")
	}
	if n.Distinct {
		b.WriteString(", all digits distinct")
	}
	if n.AdjacentDifferent {
		b.WriteString(", adjacent digits differ")
	}
	if n.Order != "" {
		fmt.Fprintf(&b, ", digits in %s order", orderText(n.Order))
	}
	if c := n.Comparison; c != nil && len(c.Left) > 0 && len(c.Right) > 0 && c.Operator != "" {
		fmt.Fprintf(&b, ", where sum %s %s sum %s",
			strings.Join(c.Left, ""), c.Operator, strings.Join(c.Right, ""))
	}
	return b.String()
}

func orderText(order string) string {
	switch strings.ToUpper(order) {
	case "ASCENDING", "ASC":
		return "ascending"
	case "DESCENDING", "DESC":
		return "descending"
	case "NON_DECREASING":
		return "non-decreasing"
	case "NON_INCREASING":
		return "non-increasing"
	}
	return strings.ToLower(order)
}

// describeDivisibility states a divisibility problem. The most specific
// form of the transformation wins: an explicit sequence, then digit
// positions, then the rule.
func describeDivisibility(d Divisibility, explicitFactor bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Find all %d-digit natural numbers that", d.Digits)

	effect := effectText(d.OperationType, d.Factor, explicitFactor)
	switch {
	case d.TransformationSequence != "":
		fmt.Fprintf(&b, " under the transformation %s %s", d.TransformationSequence, effect)
	case len(d.DigitPositions) > 0:
		fmt.Fprintf(&b, " after changing the digits at positions %s %s", strings.Join(d.DigitPositions, " "), effect)
	case d.Rule != "":
		fmt.Fprintf(&b, " under the rule %q %s", d.Rule, effect)
	default:
		fmt.Fprintf(&b, " %s", effect)
	}

	conds := append([]string(nil), d.Conditions...)
	if d.DivisibleBy != 0 {
		conds = append(conds, fmt.Sprintf("divisible by %d", d.DivisibleBy))
	}
	if len(conds) > 0 {
		fmt.Fprintf(&b, " (conditions: %s)", strings.Join(conds, ", "))
	}
	return b.String()
}

func effectText(op string, factor int, explicitFactor bool) string {
	verb := "increase"
	switch op {
	case "DECREASE":
		verb = "decrease"
	case "UNCHANGED":
		return "stay unchanged"
	}
	if explicitFactor {
		return fmt.Sprintf("%s by a factor of %d", verb, factor)
	}
	return verb + " by an integer factor"
}

func transformations(d *Divisibility) []string {
	if d.TransformationSequence != "" {
		return []string{d.TransformationSequence}
	}
	return d.DigitPositions
}

func cardTargets(c *Cards) string {
	var items []string
	for _, t := range c.Targets {
		items = append(items, t.String())
	}
	for _, cc := range c.CountConditions {
		items = append(items, cc.String())
	}
	if len(items) == 0 {
		return "None"
	}
	return list(items)
}

func replacementText(with bool) string {
	if with {
		return "with replacement"
	}
	return "no replacement"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func noneIfEmpty(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func list(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

func intStrings(ns []int) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = fmt.Sprint(n)
	}
	return out
}
