package regioncache

import (
	"context"

	c "github.com/jlpedrosa/regioncache/codec"
	pr "github.com/jlpedrosa/regioncache/provider"
)

// Region is a named invalidation and TTL domain in front of a Provider.
// V is the caller's value type. Serialization is handled by a pluggable Codec[V].
// Logical keys may be of any type, including non-comparable ones; the KeyCodec
// derives canonical bytes for hashing and collision-safe equality.
type Region[V any] interface {
	// Name returns the immutable region name.
	Name() string

	// Get returns (value, true, nil) on a hit. A nil key, a missing or
	// expired entry, a derived-key collision, and an entry orphaned by
	// Clear all return (zero, false, nil).
	Get(ctx context.Context, key any) (v V, ok bool, err error)

	// Put stores value under key, bound to the current generation token.
	// Nil keys and nil values fail with ErrNilKey/ErrNilValue; nils are
	// never cached.
	Put(ctx context.Context, key any, value V) error

	// Remove deletes the single entry for key, if present.
	Remove(ctx context.Context, key any) error

	// Clear invalidates every entry in the region by replacing the
	// generation token. Cost is O(1) in the number of entries; orphaned
	// entries are rejected on read and cleaned up lazily.
	Clear(ctx context.Context) error

	// Destroy clears the region and drops its generation token. The
	// region holds no other resources.
	Destroy(ctx context.Context) error

	// Lock and Unlock are deliberate no-ops: this layer provides no
	// cross-process (or cross-goroutine) mutual exclusion. Callers that
	// need real locking must compose it separately.
	Lock(key any)
	Unlock(key any)

	// NextTimestamp returns a strictly increasing value from the shared
	// monotonic source, for optimistic-concurrency version stamps.
	NextTimestamp() int64

	// Timeout is the fixed lock-wait allowance in NextTimestamp units.
	// Informational only, since Lock/Unlock do not block.
	Timeout() int64
}

// Options configure a Region. Name, Provider and Codec are required;
// everything else has defaults.
type Options[V any] struct {
	// Required
	Name     string // region identity; part of every storage key
	Provider pr.Provider
	Codec    c.Codec[V]

	// Properties is the string-keyed configuration bag (expiration,
	// sliding mode, region prefix). See the Prop* constants. Malformed
	// values fail construction with a *ConfigError.
	Properties Properties

	// KeyPrefix namespaces all storage keys ahead of the region prefix.
	// Useful when several cache systems share one provider.
	KeyPrefix string

	// KeyCodec canonically encodes logical keys. nil => deterministic CBOR,
	// so structurally equal keys always produce identical bytes.
	KeyCodec KeyCodec

	Logger Logger          // nil => NopLogger
	Hooks  Hooks           // nil => NopHooks
	Source TimestampSource // nil => the process-wide Timestamper
}

// KeyCodec derives the canonical byte representation of a logical key.
// The bytes feed the storage-key hash and the stored-original-key equality
// check, so encoding must be deterministic for equal keys.
type KeyCodec interface {
	Encode(key any) ([]byte, error)
}

// New constructs a Region, parses its Properties, and installs a fresh
// generation token in the provider.
func New[V any](opts Options[V]) (Region[V], error) {
	return newRegion[V](opts)
}
