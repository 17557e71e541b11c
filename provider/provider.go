// Package provider defines the storage abstraction regions write through.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Set for a key (no
// prepended/appended metadata, no re-encoding, no mutation). If a store
// performs internal transforms (e.g. compression), they MUST be fully
// reversed before Get returns.
//
// Storage keys under a region's prefix, including the "#generation" token
// key, are owned by regioncache. External code MUST NOT write values there;
// foreign writes are treated as corruption by wire-format validation and
// deleted.
package provider

import (
	"context"
	"time"
)

// NoTTL stores an entry with no expiration. Regions use it for generation
// tokens, which must outlive every entry bound to them.
const NoTTL time.Duration = 0

// Provider is a minimal byte store with per-entry TTLs. Must be safe for
// concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL (NoTTL => no expiration). May
	// ignore cost if unsupported. Returns ok=false when the store rejected
	// the write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}

// RemovalNotifier is an optional capability: providers that can observe
// their own evictions report them so a region learns when its generation
// token fell out of the store. Callbacks must be registered before writes
// begin and may be invoked from internal store goroutines.
//
// Providers without eviction visibility (e.g. Redis) simply do not implement
// it; correctness is preserved by the token embedded in every record, at the
// cost of the region noticing a lost token only through misses.
//
// Eviction notices do not invalidate entries by themselves: records bound
// to an evicted token keep reading as hits until the next Put supersedes
// the epoch. A store with native dependency propagation would have dropped
// those records together with the token.
type RemovalNotifier interface {
	OnRemove(fn func(storageKey string))
}
