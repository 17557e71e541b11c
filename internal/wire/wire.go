// Package wire frames region cache records for storage in a provider.
//
// Every entry record carries the generation token it was written under and
// the canonical bytes of its original logical key, so reads can reject
// orphaned epochs and derived-key collisions without trusting the storage
// key alone. Token records hold the bare token.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version   byte = 1
	kindEntry byte = 1
	kindToken byte = 2
)

// TokenSize is the width of a generation token in bytes.
const TokenSize = 16

// MaxKeySize is the largest canonical key encoding an entry record can
// carry (klen is a u16). Callers must bound key bytes before encoding.
const MaxKeySize = 0xFFFF

// Token is an opaque generation marker. Comparable; the zero value never
// matches an installed token.
type Token [TokenSize]byte

var (
	ErrCorrupt = errors.New("regioncache: corrupt record")
	magic4     = [...]byte{'R', 'G', 'N', 'C'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry: magic(4) | ver(1) | kind(1=entry) | token(16) | klen(u16 be) | key(klen) | vlen(u32 be) | payload(vlen)
func EncodeEntry(tok Token, key, payload []byte) []byte {
	if l := len(key); l == 0 || l > MaxKeySize {
		panic("regioncache: invalid key length in entry")
	}

	var buf bytes.Buffer
	buf.Grow(4 + 1 + 1 + TokenSize + 2 + len(key) + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindEntry)
	buf.Write(tok[:])

	var u4 [4]byte
	var u2 [2]byte

	binary.BigEndian.PutUint16(u2[:], uint16(len(key)))
	buf.Write(u2[:])
	buf.Write(key)

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])
	buf.Write(payload)

	return buf.Bytes()
}

func DecodeEntry(b []byte) (tok Token, key, payload []byte, err error) {
	const hdr = 4 + 1 + 1 + TokenSize + 2
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindEntry {
		return Token{}, nil, nil, ErrCorrupt
	}

	off := 6
	copy(tok[:], b[off:off+TokenSize])
	off += TokenSize

	klen := int(binary.BigEndian.Uint16(b[off : off+2]))
	off += 2
	if klen <= 0 || klen > len(b)-off {
		return Token{}, nil, nil, ErrCorrupt
	}
	key = b[off : off+klen]
	off += klen

	if off+4 > len(b) {
		return Token{}, nil, nil, ErrCorrupt
	}
	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off { // no trailing bytes
		return Token{}, nil, nil, ErrCorrupt
	}

	return tok, key, b[off : off+vlen], nil
}

// Token record: magic(4) | ver(1) | kind(2=token) | token(16)
func EncodeToken(tok Token) []byte {
	out := make([]byte, 0, 4+1+1+TokenSize)
	out = append(out, magic4[:]...)
	out = append(out, version, kindToken)
	out = append(out, tok[:]...)
	return out
}

func DecodeToken(b []byte) (Token, error) {
	const size = 4 + 1 + 1 + TokenSize
	if len(b) != size || !hasMagic(b) || b[4] != version || b[5] != kindToken {
		return Token{}, ErrCorrupt
	}
	var tok Token
	copy(tok[:], b[6:])
	return tok, nil
}
