// File: encode.go
// Title: Counts Encoding
// Description: JSON and YAML encodings of Counts. JSON keeps insertion
//              order; YAML emits a plain mapping.
// Author: Mike Stoffels
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial encoders

package ast

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MarshalJSON encodes counts as an object in insertion order
func (c Counts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(e.N))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes counts as a mapping
func (c Counts) MarshalYAML() (interface{}, error) {
	m := make(map[string]int, len(c.entries))
	for _, e := range c.entries {
		m[e.Key] = e.N
	}
	return m, nil
}
