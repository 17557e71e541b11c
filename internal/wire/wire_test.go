package wire

import (
	"bytes"
	"testing"
)

func tok(b byte) Token {
	var t Token
	for i := range t {
		t[i] = b
	}
	return t
}

func TestEntryRoundTrip(t *testing.T) {
	cases := []struct {
		tok     Token
		key     []byte
		payload []byte
	}{
		{Token{}, []byte("k"), nil},
		{tok(0xAB), []byte("user:1"), []byte("hello")},
		{tok(0xFF), bytes.Repeat([]byte{7}, 300), []byte{0, 1, 2, 3, 4}},
	}
	for _, tc := range cases {
		enc := EncodeEntry(tc.tok, tc.key, tc.payload)
		gotTok, gotKey, gotPayload, err := DecodeEntry(enc)
		if err != nil {
			t.Fatalf("DecodeEntry: %v", err)
		}
		if gotTok != tc.tok {
			t.Fatalf("token mismatch: got %x want %x", gotTok, tc.tok)
		}
		if !bytes.Equal(gotKey, tc.key) {
			t.Fatalf("key mismatch: got %x want %x", gotKey, tc.key)
		}
		if !bytes.Equal(gotPayload, tc.payload) {
			t.Fatalf("payload mismatch: got %x want %x", gotPayload, tc.payload)
		}
	}
}

func TestEntryRejectsTrailingBytes(t *testing.T) {
	enc := EncodeEntry(tok(1), []byte("k"), []byte("v"))
	enc = append(enc, 0xDE, 0xAD)
	if _, _, _, err := DecodeEntry(enc); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
}

func TestEntryCorruptHeadersAndLengths(t *testing.T) {
	enc := EncodeEntry(tok(1), []byte("abc"), []byte("xyz"))

	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, _, _, err := DecodeEntry(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, _, _, err := DecodeEntry(badVer); err == nil {
		t.Fatalf("expected error on bad version")
	}

	badKind := append([]byte(nil), enc...)
	badKind[5] = kindToken
	if _, _, _, err := DecodeEntry(badKind); err == nil {
		t.Fatalf("expected error on bad kind")
	}

	// Truncation anywhere must fail, never panic.
	for i := 0; i < len(enc); i++ {
		if _, _, _, err := DecodeEntry(enc[:i]); err == nil {
			t.Fatalf("expected error on truncation at %d", i)
		}
	}
}

func TestEncodeEntryPanicsOnBadKey(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty key")
		}
	}()
	EncodeEntry(tok(1), nil, []byte("v"))
}

func TestTokenRoundTrip(t *testing.T) {
	want := tok(0x5A)
	got, err := DecodeToken(EncodeToken(want))
	if err != nil {
		t.Fatalf("DecodeToken: %v", err)
	}
	if got != want {
		t.Fatalf("token mismatch: got %x want %x", got, want)
	}
}

func TestTokenRejectsWrongKindAndSize(t *testing.T) {
	enc := EncodeToken(tok(2))

	badKind := append([]byte(nil), enc...)
	badKind[5] = kindEntry
	if _, err := DecodeToken(badKind); err == nil {
		t.Fatalf("expected error on entry kind")
	}
	if _, err := DecodeToken(enc[:len(enc)-1]); err == nil {
		t.Fatalf("expected error on truncated token")
	}
	if _, err := DecodeToken(append(enc, 0)); err == nil {
		t.Fatalf("expected error on oversized token")
	}
}
