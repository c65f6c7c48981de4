package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_SetGet(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	if _, ok := s.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for missing key")
	}

	s.Set(ctx, "k", "v1", time.Minute)
	got, ok := s.Get(ctx, "k")
	if !ok || got != "v1" {
		t.Fatalf("expected hit with 'v1', got %q ok=%v", got, ok)
	}

	// Overwrite replaces value and TTL.
	s.Set(ctx, "k", "v2", time.Minute)
	got, _ = s.Get(ctx, "k")
	if got != "v2" {
		t.Fatalf("expected overwritten value 'v2', got %q", got)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	now := time.Now()
	s.SetClock(func() time.Time { return now })

	s.Set(ctx, "k", "v", time.Minute)
	if _, ok := s.Get(ctx, "k"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	// Advance past the TTL; the read must be indistinguishable from a miss.
	now = now.Add(61 * time.Second)
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after TTL elapsed")
	}
}

func TestMemoryStore_SetIfAbsent(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	if !s.SetIfAbsent(ctx, "token", "1", time.Minute) {
		t.Fatalf("first SetIfAbsent should create the key")
	}
	if s.SetIfAbsent(ctx, "token", "1", time.Minute) {
		t.Fatalf("second SetIfAbsent should report the key exists")
	}

	// An expired token no longer blocks creation.
	now := time.Now()
	s.SetClock(func() time.Time { return now.Add(2 * time.Minute) })
	if !s.SetIfAbsent(ctx, "token", "1", time.Minute) {
		t.Fatalf("SetIfAbsent should succeed after the old token expired")
	}
}

func TestMemoryStore_KeysAndDelete(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	s.Set(ctx, "summary:c1:aaa", "x", time.Minute)
	s.Set(ctx, "summary:c1:bbb", "x", time.Minute)
	s.Set(ctx, "summary:c2:ccc", "x", time.Minute)

	keys, ok := s.Keys(ctx, "summary:c1:*")
	if !ok {
		t.Fatalf("memory store should support enumeration")
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys for channel c1, got %d", len(keys))
	}

	s.Delete(ctx, "summary:c1:aaa")
	if _, ok := s.Get(ctx, "summary:c1:aaa"); ok {
		t.Fatalf("expected miss after delete")
	}

	s.Clear(ctx)
	keys, _ = s.Keys(ctx, "*")
	if len(keys) != 0 {
		t.Fatalf("expected empty store after clear, got %d keys", len(keys))
	}
}

func TestNoopStore(t *testing.T) {
	s := NewNoop()
	ctx := context.Background()

	s.Set(ctx, "k", "v", time.Minute)
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatalf("noop store must never report a hit")
	}
	if !s.SetIfAbsent(ctx, "k", "v", time.Minute) {
		t.Fatalf("noop SetIfAbsent must always succeed (fail open)")
	}
	if _, ok := s.Keys(ctx, "*"); ok {
		t.Fatalf("noop store must not claim enumeration support")
	}
}
