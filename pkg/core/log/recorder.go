// ============================================================================
// CDSL Visual Tester - Combinatorics Problem Front-End
// ============================================================================
//
// Package:     log
// Description: In-memory entry sink for tests and interactive views
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package log

import (
	"io"
	"sync"
)

// Recorder captures formatted entries in memory instead of writing them
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder returns a logger at the given level whose entries are kept
// by the returned Recorder
func NewRecorder(level Level) (*Logger, *Recorder) {
	rec := &Recorder{}
	logger := NewWithConfig(Config{Level: level, Output: io.Discard}).WithFormatter(rec)
	return logger, rec
}

// Format implements Formatter by storing a copy of the entry
func (r *Recorder) Format(entry *Entry) ([]byte, error) {
	cp := *entry
	cp.Fields = entry.Fields.Clone()
	r.mu.Lock()
	r.entries = append(r.entries, cp)
	r.mu.Unlock()
	return nil, nil
}

// Entries returns a snapshot of the captured entries
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the captured messages at or above level
func (r *Recorder) Messages(level Level) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Level >= level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Reset drops all captured entries
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}
