// File: records.go
// Title: Problem Variant Records
// Description: Typed attribute records, one per problem kind, plus the
//              card and count-condition items of card targets.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial variant records

package problem

import (
	"fmt"
	"strings"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
)

// Card is a single target card
type Card struct {
	Rank string `yaml:"rank" json:"rank"`
	Suit string `yaml:"suit" json:"suit"`
}

// NewCard builds a card with upper-cased rank and suit
func NewCard(rank, suit string) Card {
	return Card{Rank: strings.ToUpper(rank), Suit: strings.ToUpper(suit)}
}

func (c Card) String() string {
	return c.Rank + " of " + c.Suit
}

// CountCondition constrains how many drawn cards fall into a category,
// e.g. COUNT(SUIT HEARTS) >= 2
type CountCondition struct {
	Category   string `yaml:"category" json:"category"`
	Value      string `yaml:"value" json:"value"`
	Comparator string `yaml:"comparator" json:"comparator"`
	Target     int    `yaml:"target" json:"target"`
}

func (c CountCondition) String() string {
	return fmt.Sprintf("COUNT(%s %s) %s %d", c.Category, c.Value, c.Comparator, c.Target)
}

// Comparison relates the digit sums at two sets of positions
type Comparison struct {
	Left     []string `yaml:"left" json:"left"`
	Operator string   `yaml:"operator" json:"operator"`
	Right    []string `yaml:"right" json:"right"`
}

// Cards describes drawing from a deck
type Cards struct {
	DeckType        string           `yaml:"deckType" json:"deckType"`
	DeckSize        int              `yaml:"deckSize" json:"deckSize"`
	DrawCount       int              `yaml:"drawCount" json:"drawCount"`
	WithReplacement bool             `yaml:"withReplacement" json:"withReplacement"`
	Targets         []Card           `yaml:"targets,omitempty" json:"targets,omitempty"`
	CountConditions []CountCondition `yaml:"countConditions,omitempty" json:"countConditions,omitempty"`
}

// Words describes forming words over an alphabet
type Words struct {
	Alphabet      string   `yaml:"alphabet" json:"alphabet"`
	Length        int      `yaml:"length" json:"length"`
	UniqueLetters bool     `yaml:"uniqueLetters" json:"uniqueLetters"`
	Conditions    []string `yaml:"conditions,omitempty" json:"conditions,omitempty"`
}

// Numbers describes constrained digit sequences
type Numbers struct {
	Digits            int         `yaml:"digits" json:"digits"`
	MaxDigit          int         `yaml:"maxDigit" json:"maxDigit"`
	FirstNotZero      bool        `yaml:"firstNotZero" json:"firstNotZero"`
	Distinct          bool        `yaml:"distinct" json:"distinct"`
	AdjacentDifferent bool        `yaml:"adjacentDifferent" json:"adjacentDifferent"`
	Order             string      `yaml:"order,omitempty" json:"order,omitempty"`
	Comparison        *Comparison `yaml:"comparison,omitempty" json:"comparison,omitempty"`
	Description       string      `yaml:"description" json:"description"`
}

// Equations describes counting solutions of a linear equation
type Equations struct {
	Unknowns     int      `yaml:"unknowns" json:"unknowns"`
	Coefficients []int    `yaml:"coefficients,omitempty" json:"coefficients,omitempty"`
	Sum          int      `yaml:"sum" json:"sum"`
	Domain       string   `yaml:"domain,omitempty" json:"domain,omitempty"`
	Constraints  []string `yaml:"constraints,omitempty" json:"constraints,omitempty"`
}

// Balls describes drawing colored balls from an urn
type Balls struct {
	Urn        ast.Counts `yaml:"urn" json:"urn"`
	Drawn      ast.Counts `yaml:"drawn" json:"drawn"`
	DrawCount  int        `yaml:"drawCount" json:"drawCount"`
	Sequential bool       `yaml:"sequential" json:"sequential"`
}

// Divisibility describes numbers whose digit transformation changes
// them by an integer factor
type Divisibility struct {
	Digits                 int      `yaml:"digits" json:"digits"`
	Rule                   string   `yaml:"rule" json:"rule"`
	Factor                 int      `yaml:"factor" json:"factor"`
	OperationType          string   `yaml:"operationType" json:"operationType"`
	DivisibleBy            int      `yaml:"divisibleBy,omitempty" json:"divisibleBy,omitempty"`
	TransformationSequence string   `yaml:"transformationSequence,omitempty" json:"transformationSequence,omitempty"`
	DigitPositions         []string `yaml:"digitPositions,omitempty" json:"digitPositions,omitempty"`
	Conditions             []string `yaml:"conditions,omitempty" json:"conditions,omitempty"`
	Description            string   `yaml:"description" json:"description"`
}

// Remainders describes finding the remainder of a division
type Remainders struct {
	Dividend  string `yaml:"dividend" json:"dividend"`
	Divisor   int    `yaml:"divisor" json:"divisor"`
	Remainder int    `yaml:"remainder" json:"remainder"`
}

// Chess describes placing pieces on a board
type Chess struct {
	BoardHeight int        `yaml:"boardHeight" json:"boardHeight"`
	BoardWidth  int        `yaml:"boardWidth" json:"boardWidth"`
	Pieces      ast.Counts `yaml:"pieces" json:"pieces"`
	Attacking   bool       `yaml:"attacking" json:"attacking"`
}

// Copies detach slices and counts from the builder's drafts.

func (c Cards) clone() Cards {
	c.Targets = append([]Card(nil), c.Targets...)
	c.CountConditions = append([]CountCondition(nil), c.CountConditions...)
	return c
}

func (w Words) clone() Words {
	w.Conditions = append([]string(nil), w.Conditions...)
	return w
}

func (n Numbers) clone() Numbers {
	if n.Comparison != nil {
		cmp := Comparison{
			Left:     append([]string(nil), n.Comparison.Left...),
			Operator: n.Comparison.Operator,
			Right:    append([]string(nil), n.Comparison.Right...),
		}
		n.Comparison = &cmp
	}
	return n
}

func (e Equations) clone() Equations {
	e.Coefficients = append([]int(nil), e.Coefficients...)
	e.Constraints = append([]string(nil), e.Constraints...)
	return e
}

func (b Balls) clone() Balls {
	b.Urn = b.Urn.Clone()
	b.Drawn = b.Drawn.Clone()
	return b
}

func (d Divisibility) clone() Divisibility {
	d.DigitPositions = append([]string(nil), d.DigitPositions...)
	d.Conditions = append([]string(nil), d.Conditions...)
	return d
}

func (c Chess) clone() Chess {
	c.Pieces = c.Pieces.Clone()
	return c
}
