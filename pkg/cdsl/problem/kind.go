// File: kind.go
// Title: Problem Kinds
// Description: The eight CDSL problem categories with their CDSL names
//              and English display names.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial kind enumeration

package problem

import (
	"fmt"
	"strings"
)

// Kind identifies the active variant of a Specification
type Kind int

const (
	// KindUnset means no declaration determined the category
	KindUnset Kind = iota
	KindCards
	KindWords
	KindNumbers
	KindEquations
	KindBalls
	KindDivisibility
	KindRemainders
	KindChess
)

var kindNames = map[Kind]string{
	KindUnset:        "UNSET",
	KindCards:        "CARDS",
	KindWords:        "WORDS",
	KindNumbers:      "NUMBERS",
	KindEquations:    "EQUATIONS",
	KindBalls:        "BALLS",
	KindDivisibility: "DIVISIBILITY",
	KindRemainders:   "REMAINDERS",
	KindChess:        "CHESS",
}

var displayNames = map[Kind]string{
	KindCards:        "Cards",
	KindWords:        "Words",
	KindNumbers:      "Numbers",
	KindEquations:    "Equations",
	KindBalls:        "Balls and Urns",
	KindDivisibility: "Divisibility",
	KindRemainders:   "Remainders",
	KindChess:        "Chess",
}

// String returns the CDSL name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DisplayName returns the English display name, "Unknown" when unset
func (k Kind) DisplayName() string {
	if name, ok := displayNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsSet reports whether k is one of the eight categories
func (k Kind) IsSet() bool {
	return k > KindUnset && k <= KindChess
}

// MarshalText encodes the kind by its CDSL name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a CDSL name
func (k *Kind) UnmarshalText(text []byte) error {
	if strings.EqualFold(string(text), kindNames[KindUnset]) {
		*k = KindUnset
		return nil
	}
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown problem kind %q", text)
	}
	*k = parsed
	return nil
}

// ParseKind looks up a kind by CDSL name, case-insensitively.
// BALLS_AND_URNS is accepted as an alias of BALLS.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "BALLS_AND_URNS" {
		return KindBalls, true
	}
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindUnset, false
}

// Kinds returns the eight categories in declaration order
func Kinds() []Kind {
	return []Kind{
		KindCards, KindWords, KindNumbers, KindEquations,
		KindBalls, KindDivisibility, KindRemainders, KindChess,
	}
}
