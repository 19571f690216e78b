// File: params.go
// Title: Generic Attribute Map
// Description: Insertion-ordered string-keyed attribute map with lenient
//              bool/int/string coercion.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial parameter map

package problem

import (
	"fmt"
	"strconv"
	"strings"
)

// Params keeps raw attribute values in first-set order. The zero value
// is ready to use.
type Params struct {
	keys   []string
	values map[string]interface{}
}

// Set stores value under key, keeping the key's original position when
// it is overwritten. Slices are copied.
func (p *Params) Set(key string, value interface{}) {
	if p.values == nil {
		p.values = make(map[string]interface{})
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = copyValue(value)
}

// Get returns the raw value of key
func (p Params) Get(key string) (interface{}, bool) {
	v, ok := p.values[key]
	if !ok {
		return nil, false
	}
	return copyValue(v), true
}

// Has reports whether key is present
func (p Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns the keys in first-set order
func (p Params) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Len returns the number of entries
func (p Params) Len() int { return len(p.keys) }

// Int coerces the value of key; absent or unparsable values yield 0
func (p Params) Int(key string) int {
	v, _ := p.Get(key)
	return ToInt(v)
}

// Bool coerces the value of key; absent values yield false
func (p Params) Bool(key string) bool {
	v, _ := p.Get(key)
	return ToBool(v)
}

// Str renders the value of key; absent values yield ""
func (p Params) Str(key string) string {
	v, ok := p.Get(key)
	if !ok {
		return ""
	}
	return ToString(v)
}

// Map returns a plain copy for encoding
func (p Params) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(p.keys))
	for k, v := range p.values {
		out[k] = copyValue(v)
	}
	return out
}

// Clone returns an independent copy
func (p Params) Clone() Params {
	var out Params
	for _, k := range p.keys {
		out.Set(k, p.values[k])
	}
	return out
}

// ToInt accepts native integers, booleans (1/0) and numeric strings.
// Anything else yields 0.
func ToInt(v interface{}) int {
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case int32:
		return int(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// ToBool accepts native booleans, integers (non-zero is true) and the
// strings YES and TRUE in any case. Anything else yields false.
func ToBool(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x != 0
	case int64:
		return x != 0
	case string:
		s := strings.ToUpper(strings.TrimSpace(x))
		return s == "YES" || s == "TRUE"
	}
	return false
}

// ToString renders a value; lists are joined with ", "
func ToString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []string:
		return strings.Join(x, ", ")
	case []int:
		parts := make([]string, len(x))
		for i, n := range x {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}

func copyValue(v interface{}) interface{} {
	switch x := v.(type) {
	case []string:
		return append([]string(nil), x...)
	case []int:
		return append([]int(nil), x...)
	}
	return v
}
