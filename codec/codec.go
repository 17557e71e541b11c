// Package codec serializes cached values (and canonical key bytes) to and
// from the byte payloads stored in a provider.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
