// Package keys composes collision-resistant storage keys. Pure functions,
// no I/O.
package keys

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Entry derives the storage key for a logical key within a region prefix:
//
//	<prefix>:<display>@<xxhash64 of canonical key bytes>
//
// The hash suffix disambiguates keys whose display strings collide. Residual
// 64-bit hash collisions are resolved by the caller comparing the original
// key bytes stored inside the record.
func Entry(prefix, display string, keyBytes []byte) string {
	return prefix + ":" + display + "@" + strconv.FormatUint(xxhash.Sum64(keyBytes), 16)
}

// Token derives the reserved storage key of a region's generation token.
// The "#" separator keeps it out of the entry keyspace: entry keys always
// contain ":" before any "#" a display string could carry.
func Token(prefix string) string {
	return prefix + "#generation"
}
