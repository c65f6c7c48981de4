// Package cache provides the key-value store behind summary caching and
// rate limiting, with a Redis backend and graceful degradation when Redis
// is unreachable.
package cache

import (
	"context"
	"time"
)

// Store is a string key-value store with per-key expiry.
//
// Implementations never surface backend failures to callers: a failed read
// behaves as a miss and a failed write is silently dropped. Losing cache or
// rate-limit fidelity is acceptable; refusing service is not.
type Store interface {
	// Get returns the value for key, or ok=false if the key is absent or
	// expired.
	Get(ctx context.Context, key string) (value string, ok bool)

	// Set stores value under key with the given TTL, replacing any existing
	// entry and its TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration)

	// SetIfAbsent atomically creates key only if it does not already exist.
	// It reports whether the key was created. This is the primitive the rate
	// limiter depends on; it must hold under concurrent callers.
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) bool

	// Delete removes a single key.
	Delete(ctx context.Context, key string)

	// Clear removes all entries.
	Clear(ctx context.Context)

	// Keys returns the keys matching a glob-style pattern. ok=false means
	// the backend cannot enumerate keys, in which case callers must treat
	// enumeration-based maintenance as best-effort and skip it.
	Keys(ctx context.Context, pattern string) (keys []string, ok bool)

	// Mode names the active backend ("redis", "memory" or "noop").
	Mode() string
}

// NoopStore is the degraded backend used when Redis is unreachable. Every
// read is a miss and every write is accepted and dropped. SetIfAbsent always
// succeeds, so rate limiting fails open.
type NoopStore struct{}

func NewNoop() *NoopStore { return &NoopStore{} }

func (*NoopStore) Get(context.Context, string) (string, bool) { return "", false }

func (*NoopStore) Set(context.Context, string, string, time.Duration) {}

func (*NoopStore) SetIfAbsent(context.Context, string, string, time.Duration) bool { return true }

func (*NoopStore) Delete(context.Context, string) {}

func (*NoopStore) Clear(context.Context) {}

func (*NoopStore) Keys(context.Context, string) ([]string, bool) { return nil, false }

func (*NoopStore) Mode() string { return "noop" }
