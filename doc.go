// Package regioncache implements a region-scoped, TTL-expiring cache layer
// with O(1) bulk invalidation in front of a pluggable byte store.
//
// A Region is a named invalidation domain. Every entry written through a
// Region is bound to the Region's current generation token, an opaque value
// regenerated on every Clear. Clearing a region is a single write (replace
// the token), never a scan-and-delete: entries bound to a superseded token
// are rejected on read and self-healed.
//
// Components:
//   - Provider: byte store with per-entry TTL (e.g. Ristretto, BigCache, Redis).
//   - Codec[V]: (de)serializes V <-> []byte.
//   - KeyCodec: canonical key bytes for hashing and collision-safe equality.
//
// Keys:
//
//	<keyPrefix><regionPrefix><region>:<display>@<hash>  - entries
//	<keyPrefix><regionPrefix><region>#generation        - generation token
//
// The hash suffix disambiguates keys whose display strings collide; the
// original key bytes stored inside each record are the final authority on a
// hit, so a derived-key collision can never return the wrong value.
//
// Regions provide no cross-process mutual exclusion: Lock and Unlock are
// deliberate no-ops. A Put racing a Clear may bind to the token being
// replaced and escape that Clear; this weak-consistency window is part of
// the contract, not a bug. Similarly, when a provider evicts the stored
// token on its own, entries bound to it keep serving hits until the next
// Put installs a fresh epoch; only a Clear invalidates immediately.
package regioncache
