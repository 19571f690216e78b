// File: value.go
// Title: CDSL AST Values
// Description: Tagged-union payload of AST nodes and the ordered counts
//              map used for urn contents, drawn balls and chess pieces.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial value model

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueType represents the active variant of a Value
type ValueType int

const (
	ValueTypeNone ValueType = iota
	ValueTypeInt
	ValueTypeBool
	ValueTypeString
	ValueTypeList
	ValueTypeCounts
)

// String returns string representation of ValueType
func (vt ValueType) String() string {
	switch vt {
	case ValueTypeNone:
		return "none"
	case ValueTypeInt:
		return "int"
	case ValueTypeBool:
		return "bool"
	case ValueTypeString:
		return "string"
	case ValueTypeList:
		return "list"
	case ValueTypeCounts:
		return "counts"
	default:
		return "unknown"
	}
}

// Value is the payload of a node. Only the field matching Type is set;
// the zero Value is the none variant.
type Value struct {
	typ    ValueType
	num    int
	flag   bool
	text   string
	list   []string
	counts Counts
}

// NoValue returns the none variant
func NoValue() Value { return Value{} }

// IntValue wraps an integer
func IntValue(n int) Value { return Value{typ: ValueTypeInt, num: n} }

// BoolValue wraps a boolean
func BoolValue(b bool) Value { return Value{typ: ValueTypeBool, flag: b} }

// StringValue wraps a string
func StringValue(s string) Value { return Value{typ: ValueTypeString, text: s} }

// ListValue wraps a copy of a string list
func ListValue(items []string) Value {
	return Value{typ: ValueTypeList, list: append([]string{}, items...)}
}

// CountsValue wraps a copy of an ordered counts map
func CountsValue(c Counts) Value {
	return Value{typ: ValueTypeCounts, counts: c.Clone()}
}

// Type returns the active variant
func (v Value) Type() ValueType { return v.typ }

// IsNone reports whether the value is the none variant
func (v Value) IsNone() bool { return v.typ == ValueTypeNone }

// AsInt returns the integer payload
func (v Value) AsInt() (int, bool) {
	return v.num, v.typ == ValueTypeInt
}

// AsBool returns the boolean payload
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.typ == ValueTypeBool
}

// AsString returns the string payload
func (v Value) AsString() (string, bool) {
	return v.text, v.typ == ValueTypeString
}

// AsList returns a copy of the list payload
func (v Value) AsList() ([]string, bool) {
	if v.typ != ValueTypeList {
		return nil, false
	}
	return append([]string{}, v.list...), true
}

// AsCounts returns a copy of the counts payload
func (v Value) AsCounts() (Counts, bool) {
	if v.typ != ValueTypeCounts {
		return Counts{}, false
	}
	return v.counts.Clone(), true
}

// Interface returns the payload as a plain Go value, nil for none
func (v Value) Interface() interface{} {
	switch v.typ {
	case ValueTypeInt:
		return v.num
	case ValueTypeBool:
		return v.flag
	case ValueTypeString:
		return v.text
	case ValueTypeList:
		return append([]string{}, v.list...)
	case ValueTypeCounts:
		return v.counts.Clone()
	default:
		return nil
	}
}

// String returns a readable representation of the payload
func (v Value) String() string {
	switch v.typ {
	case ValueTypeInt:
		return strconv.Itoa(v.num)
	case ValueTypeBool:
		return strconv.FormatBool(v.flag)
	case ValueTypeString:
		return strconv.Quote(v.text)
	case ValueTypeList:
		return "[" + strings.Join(v.list, ", ") + "]"
	case ValueTypeCounts:
		return "{" + v.counts.Format(": ", ", ") + "}"
	default:
		return ""
	}
}

// Count is one entry of a Counts map
type Count struct {
	Key string
	N   int
}

// Counts is a string to int map that remembers first-insertion order
type Counts struct {
	entries []Count
}

// NewCounts builds counts from key/value pairs in order
func NewCounts(entries ...Count) Counts {
	var c Counts
	for _, e := range entries {
		c.Add(e.Key, e.N)
	}
	return c
}

// Add increments the count of key, appending it when new
func (c *Counts) Add(key string, n int) {
	for i := range c.entries {
		if c.entries[i].Key == key {
			c.entries[i].N += n
			return
		}
	}
	c.entries = append(c.entries, Count{Key: key, N: n})
}

// Set replaces the count of key, appending it when new
func (c *Counts) Set(key string, n int) {
	for i := range c.entries {
		if c.entries[i].Key == key {
			c.entries[i].N = n
			return
		}
	}
	c.entries = append(c.entries, Count{Key: key, N: n})
}

// Get returns the count of key
func (c Counts) Get(key string) (int, bool) {
	for _, e := range c.entries {
		if e.Key == key {
			return e.N, true
		}
	}
	return 0, false
}

// Len returns the number of keys
func (c Counts) Len() int { return len(c.entries) }

// Keys returns the keys in insertion order
func (c Counts) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order
func (c Counts) Entries() []Count {
	return append([]Count{}, c.entries...)
}

// Total returns the sum of all counts
func (c Counts) Total() int {
	total := 0
	for _, e := range c.entries {
		total += e.N
	}
	return total
}

// Clone returns an independent copy
func (c Counts) Clone() Counts {
	if len(c.entries) == 0 {
		return Counts{}
	}
	return Counts{entries: append([]Count{}, c.entries...)}
}

// Format joins "key<kv>count" pairs with sep, e.g. Format(": ", ", ")
func (c Counts) Format(kv, sep string) string {
	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		parts[i] = fmt.Sprintf("%s%s%d", e.Key, kv, e.N)
	}
	return strings.Join(parts, sep)
}
