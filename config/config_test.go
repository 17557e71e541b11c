package config

import (
	"testing"

	"github.com/jlpedrosa/regioncache"
)

const sample = `
default_expiration: 300
regions:
  users:
    expiration: 600
    use_sliding_expiration: true
    prefix: "app1."
  catalog: {}
`

func TestParseAndProperties(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := f.RegionNames(); len(got) != 2 || got[0] != "catalog" || got[1] != "users" {
		t.Fatalf("RegionNames: %v", got)
	}

	users := f.Properties("users")
	want := regioncache.Properties{
		regioncache.PropDefaultExpiration: "300",
		regioncache.PropExpiration:        "600",
		regioncache.PropSlidingExpiration: "true",
		regioncache.PropRegionPrefix:      "app1.",
	}
	if len(users) != len(want) {
		t.Fatalf("users properties: got %v want %v", users, want)
	}
	for k, v := range want {
		if users[k] != v {
			t.Fatalf("users[%q] = %q, want %q", k, users[k], v)
		}
	}

	// A region with no overrides only inherits the document default.
	catalog := f.Properties("catalog")
	if len(catalog) != 1 || catalog[regioncache.PropDefaultExpiration] != "300" {
		t.Fatalf("catalog properties: %v", catalog)
	}

	// Unconfigured regions still get the default.
	other := f.Properties("not-configured")
	if len(other) != 1 || other[regioncache.PropDefaultExpiration] != "300" {
		t.Fatalf("unconfigured properties: %v", other)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := Parse([]byte("defautl_expiration: 300\n")); err == nil {
		t.Fatalf("typoed field must be rejected")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse empty: %v", err)
	}
	if p := f.Properties("anything"); len(p) != 0 {
		t.Fatalf("empty document should yield empty properties, got %v", p)
	}
}

func TestPropertiesFeedRegionConstruction(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// The bag must parse cleanly through the region's own validation.
	if err := regioncache.ValidateProperties(f.Properties("users")); err != nil {
		t.Fatalf("region rejected generated properties: %v", err)
	}
}
