// File: spec.go
// Title: Problem Specification
// Description: The read-only interpretation result with typed variant
//              accessors and typed-first attribute readers.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial specification type

package problem

import "strings"

// Specification is the structured description of one CDSL problem.
// Only the variant matching Kind is present.
type Specification struct {
	kind            Kind
	taskName        string
	calculationType string
	conditions      []string
	params          Params
	fields          map[string]interface{}

	cards        *Cards
	words        *Words
	numbers      *Numbers
	equations    *Equations
	balls        *Balls
	divisibility *Divisibility
	remainders   *Remainders
	chess        *Chess
}

// Kind returns the active problem kind
func (s *Specification) Kind() Kind { return s.kind }

// TaskName returns the quoted name of the TASK declaration
func (s *Specification) TaskName() string { return s.taskName }

// CalculationType returns PROBABILITY, COMBINATIONS or EXPECTATION, or ""
// when no CALCULATE declaration was seen
func (s *Specification) CalculationType() string { return s.calculationType }

// Conditions returns the general free-form conditions in source order
func (s *Specification) Conditions() []string {
	return append([]string(nil), s.conditions...)
}

// Params returns a copy of the generic attribute map
func (s *Specification) Params() Params { return s.params.Clone() }

func (s *Specification) Cards() (Cards, bool) {
	if s.cards == nil {
		return Cards{}, false
	}
	return s.cards.clone(), true
}

func (s *Specification) Words() (Words, bool) {
	if s.words == nil {
		return Words{}, false
	}
	return s.words.clone(), true
}

func (s *Specification) Numbers() (Numbers, bool) {
	if s.numbers == nil {
		return Numbers{}, false
	}
	return s.numbers.clone(), true
}

func (s *Specification) Equations() (Equations, bool) {
	if s.equations == nil {
		return Equations{}, false
	}
	return s.equations.clone(), true
}

func (s *Specification) Balls() (Balls, bool) {
	if s.balls == nil {
		return Balls{}, false
	}
	return s.balls.clone(), true
}

func (s *Specification) Divisibility() (Divisibility, bool) {
	if s.divisibility == nil {
		return Divisibility{}, false
	}
	return s.divisibility.clone(), true
}

func (s *Specification) Remainders() (Remainders, bool) {
	if s.remainders == nil {
		return Remainders{}, false
	}
	return *s.remainders, true
}

func (s *Specification) Chess() (Chess, bool) {
	if s.chess == nil {
		return Chess{}, false
	}
	return s.chess.clone(), true
}

// Variant returns a copy of the active record, or nil when Kind is unset
func (s *Specification) Variant() interface{} {
	switch s.kind {
	case KindCards:
		v, _ := s.Cards()
		return v
	case KindWords:
		v, _ := s.Words()
		return v
	case KindNumbers:
		v, _ := s.Numbers()
		return v
	case KindEquations:
		v, _ := s.Equations()
		return v
	case KindBalls:
		v, _ := s.Balls()
		return v
	case KindDivisibility:
		v, _ := s.Divisibility()
		return v
	case KindRemainders:
		v, _ := s.Remainders()
		return v
	case KindChess:
		v, _ := s.Chess()
		return v
	}
	return nil
}

// Lookup returns the value of an attribute, preferring the typed field of
// the active variant over the generic map
func (s *Specification) Lookup(key string) (interface{}, bool) {
	if v, ok := s.fields[key]; ok {
		return copyValue(v), true
	}
	return s.params.Get(key)
}

// Int reads an attribute as an integer (see ToInt)
func (s *Specification) Int(key string) int {
	v, _ := s.Lookup(key)
	return ToInt(v)
}

// Bool reads an attribute as a boolean (see ToBool)
func (s *Specification) Bool(key string) bool {
	v, _ := s.Lookup(key)
	return ToBool(v)
}

// Str reads an attribute as text (see ToString)
func (s *Specification) Str(key string) string {
	v, _ := s.Lookup(key)
	return ToString(v)
}

type field struct {
	key   string
	value interface{}
}

// typedFields lists the generic-map view of the typed values
func (s *Specification) typedFields() []field {
	var fs []field
	add := func(key string, value interface{}) {
		fs = append(fs, field{key, value})
	}

	if s.taskName != "" {
		add("taskName", s.taskName)
	}
	if s.calculationType != "" {
		add("calculationType", s.calculationType)
	}

	switch {
	case s.cards != nil:
		c := s.cards
		add("deckType", c.DeckType)
		add("deckSize", c.DeckSize)
		add("drawCount", c.DrawCount)
		add("withReplacement", c.WithReplacement)
	case s.words != nil:
		w := s.words
		add("alphabet", w.Alphabet)
		add("wordLength", w.Length)
		add("uniqueLetters", w.UniqueLetters)
		if len(w.Conditions) > 0 {
			add("wordConditions", w.Conditions)
		}
	case s.numbers != nil:
		n := s.numbers
		add("digits", n.Digits)
		add("maxDigit", n.MaxDigit)
		add("firstNotZero", n.FirstNotZero)
		add("distinct", n.Distinct)
		add("adjacentDifferent", n.AdjacentDifferent)
		if n.Order != "" {
			add("order", n.Order)
		}
		if n.Comparison != nil {
			add("compareLeft", n.Comparison.Left)
			add("compareOperator", n.Comparison.Operator)
			add("compareRight", n.Comparison.Right)
		}
		add("description", n.Description)
	case s.equations != nil:
		e := s.equations
		add("unknowns", e.Unknowns)
		add("sum", e.Sum)
		if len(e.Coefficients) > 0 {
			add("coefficients", e.Coefficients)
		}
		if e.Domain != "" {
			add("domain", e.Domain)
		}
		if len(e.Constraints) > 0 {
			add("constraints", e.Constraints)
		}
	case s.balls != nil:
		b := s.balls
		for _, c := range b.Urn.Entries() {
			add("ball_"+strings.ToLower(c.Key), c.N)
		}
		add("contents", b.Urn.Format(" ", ", "))
		add("totalBalls", b.Urn.Total())
		for _, c := range b.Drawn.Entries() {
			add("draw_"+strings.ToLower(c.Key), c.N)
		}
		add("draw_balls", b.Drawn.Format(" ", ", "))
		add("drawCount", b.DrawCount)
		add("drawType", drawType(b.Sequential))
	case s.divisibility != nil:
		d := s.divisibility
		add("digits", d.Digits)
		add("rule", d.Rule)
		add("factor", d.Factor)
		add("operationType", d.OperationType)
		if d.DivisibleBy != 0 {
			add("divisibleBy", d.DivisibleBy)
		}
		if d.TransformationSequence != "" {
			add("transformationSequence", d.TransformationSequence)
		}
		if len(d.DigitPositions) > 0 {
			add("digitPositions", d.DigitPositions)
		}
		add("description", d.Description)
	case s.remainders != nil:
		r := s.remainders
		add("dividend", r.Dividend)
		add("divisor", r.Divisor)
		add("remainder", r.Remainder)
	case s.chess != nil:
		c := s.chess
		add("boardHeight", c.BoardHeight)
		add("boardWidth", c.BoardWidth)
		add("pieces", c.Pieces.Format(": ", ", "))
		add("totalPieces", c.Pieces.Total())
		add("attacking", c.Attacking)
	}
	return fs
}
