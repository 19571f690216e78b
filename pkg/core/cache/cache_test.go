// ============================================================================
// CDSL Visual Tester - Combinatorics Problem Front-End
// ============================================================================
//
// Package:     cache
// Description: Tests for the TTL cache
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cache

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c := New[int](Config{MaxItems: 4})
	defer c.Close()

	if _, ok := c.Get("a"); ok {
		t.Fatal("Get() on empty cache should miss")
	}
	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v, want 1, true", v, ok)
	}

	hits, misses, rate := c.Stats()
	if hits != 1 || misses != 1 || rate != 50 {
		t.Errorf("Stats() = %d, %d, %v, want 1, 1, 50", hits, misses, rate)
	}

	c.Delete("a")
	if c.Size() != 0 {
		t.Errorf("Size() after Delete = %d, want 0", c.Size())
	}
}

func TestCache_Expiry(t *testing.T) {
	c := New[string](Config{MaxItems: 4})
	defer c.Close()

	c.SetWithTTL("short", "x", time.Nanosecond)
	c.SetWithTTL("forever", "y", 0)
	time.Sleep(time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expired entry should miss")
	}
	if v, ok := c.Get("forever"); !ok || v != "y" {
		t.Errorf("Get(forever) = %q, %v", v, ok)
	}
}

func TestCache_EvictsOldest(t *testing.T) {
	c := New[int](Config{MaxItems: 2})
	defer c.Close()

	c.Set("first", 1)
	time.Sleep(time.Millisecond)
	c.Set("second", 2)
	time.Sleep(time.Millisecond)
	c.Set("third", 3)

	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", c.Size())
	}
	if _, ok := c.Get("first"); ok {
		t.Error("oldest entry should be evicted")
	}

	// Overwriting an existing key does not evict.
	c.Set("third", 4)
	if _, ok := c.Get("second"); !ok {
		t.Error("overwrite should keep other entries")
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c := New[int](Config{})
	defer c.Close()

	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}
	for i := 0; i < 3; i++ {
		if v, err := c.GetOrSet("k", compute); err != nil || v != 42 {
			t.Fatalf("GetOrSet() = %v, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("compute calls = %d, want 1", calls)
	}

	boom := errors.New("boom")
	if _, err := c.GetOrSet("bad", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("GetOrSet() error = %v, want boom", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed computation should not be cached")
	}
}

func TestCache_CloseTwice(t *testing.T) {
	c := New[int](DefaultConfig())
	c.Close()
	c.Close()
}

func TestKey(t *testing.T) {
	a := Key("cdsl", "TASK CARDS")
	b := Key("cdsl", "TASK CARDS")
	if a != b {
		t.Errorf("Key() not stable: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a, "cdsl:") || len(a) != len("cdsl:")+32 {
		t.Errorf("Key() = %q", a)
	}
	if Key("cdsl", "a", "b") == Key("cdsl", "ab") {
		t.Error("parts should be separated")
	}
}
