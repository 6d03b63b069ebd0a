package cache

import (
	"fmt"
	"testing"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](0)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache succeeded")
	}

	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v; want 2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.HitRate != 0.5 {
		t.Errorf("stats = %+v", s)
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, string](8)
	for i := 0; i < 8; i++ {
		c.Set(i, fmt.Sprint(i))
	}

	// Touch the two oldest so they survive the eviction batch.
	c.Get(0)
	c.Get(1)

	c.Set(8, "8")

	if got := c.Len(); got != 6 {
		t.Fatalf("Len() = %d after eviction, want 6", got)
	}
	for _, k := range []int{0, 1, 8} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("recently used key %d was evicted", k)
		}
	}
	for _, k := range []int{2, 3, 4} {
		if _, ok := c.Get(k); ok {
			t.Errorf("stale key %d survived", k)
		}
	}
	if s := c.Stats(); s.Evictions != 3 {
		t.Errorf("Evictions = %d, want 3", s.Evictions)
	}
}

func TestCache_GetOrCreate(t *testing.T) {
	c := New[string, int](4)
	calls := 0
	create := func() int {
		calls++
		return 7
	}

	if v := c.GetOrCreate("k", create); v != 7 {
		t.Errorf("GetOrCreate = %d", v)
	}
	if v := c.GetOrCreate("k", create); v != 7 {
		t.Errorf("GetOrCreate (cached) = %d", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New[int, int](0)
	c.Set(1, 1)
	c.Set(2, 2)

	if !c.Delete(1) {
		t.Error("Delete(1) = false")
	}
	if c.Delete(1) {
		t.Error("second Delete(1) = true")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear", c.Len())
	}
	// The list must still be usable after Clear.
	c.Set(3, 3)
	if v, ok := c.Get(3); !ok || v != 3 {
		t.Error("cache unusable after Clear")
	}
}
