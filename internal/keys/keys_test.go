package keys

import (
	"strings"
	"testing"
)

func TestEntryDeterministic(t *testing.T) {
	a := Entry("app.users", "42", []byte{1, 2, 3})
	b := Entry("app.users", "42", []byte{1, 2, 3})
	if a != b {
		t.Fatalf("same inputs produced different keys: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "app.users:42@") {
		t.Fatalf("unexpected key shape: %q", a)
	}
}

func TestEntryHashDisambiguatesDisplayCollisions(t *testing.T) {
	// "42" as a string and as an int render the same display but have
	// different canonical bytes, so the hash suffix must differ.
	a := Entry("r", "42", []byte("str:42"))
	b := Entry("r", "42", []byte("int:42"))
	if a == b {
		t.Fatalf("display collision not disambiguated: %q", a)
	}
}

func TestEntryPrefixesSeparateRegions(t *testing.T) {
	a := Entry("r1", "k", []byte("k"))
	b := Entry("r2", "k", []byte("k"))
	if a == b {
		t.Fatalf("regions share a key: %q", a)
	}
}

func TestTokenOutsideEntryKeyspace(t *testing.T) {
	tokKey := Token("r")
	// Entry keys always start "<prefix>:"; token keys never do.
	if strings.HasPrefix(tokKey, "r:") {
		t.Fatalf("token key %q lives in the entry keyspace", tokKey)
	}
	if Token("r1") == Token("r2") {
		t.Fatalf("token keys must be region-scoped")
	}
}
