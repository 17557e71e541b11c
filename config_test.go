package regioncache

import (
	"errors"
	"testing"
	"time"
)

func TestParseSettings(t *testing.T) {
	cases := []struct {
		name  string
		props Properties
		want  regionSettings
	}{
		{
			name:  "empty bag uses defaults",
			props: nil,
			want:  regionSettings{expiration: DefaultExpiration},
		},
		{
			name:  "expiration in seconds",
			props: Properties{PropExpiration: "90"},
			want:  regionSettings{expiration: 90 * time.Second},
		},
		{
			name:  "zero disables expiration",
			props: Properties{PropExpiration: "0"},
			want:  regionSettings{expiration: 0},
		},
		{
			name:  "default expiration fallback",
			props: Properties{PropDefaultExpiration: "120"},
			want:  regionSettings{expiration: 120 * time.Second},
		},
		{
			name: "explicit beats fallback",
			props: Properties{
				PropDefaultExpiration: "120",
				PropExpiration:        "30",
			},
			want: regionSettings{expiration: 30 * time.Second},
		},
		{
			name: "sliding and prefix",
			props: Properties{
				PropSlidingExpiration: "true",
				PropRegionPrefix:      "app1.",
			},
			want: regionSettings{
				expiration:   DefaultExpiration,
				sliding:      true,
				regionPrefix: "app1.",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseSettings(tc.props)
			if err != nil {
				t.Fatalf("parseSettings: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestParseSettingsErrors(t *testing.T) {
	cases := []struct {
		props    Properties
		property string
	}{
		{Properties{PropExpiration: "notanumber"}, PropExpiration},
		{Properties{PropExpiration: "-1"}, PropExpiration},
		{Properties{PropDefaultExpiration: "oops"}, PropDefaultExpiration},
		{Properties{PropSlidingExpiration: "maybe"}, PropSlidingExpiration},
	}
	for _, tc := range cases {
		_, err := parseSettings(tc.props)
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Fatalf("props %v: expected *ConfigError, got %v", tc.props, err)
		}
		if ce.Property != tc.property {
			t.Fatalf("props %v: wrong property %q", tc.props, ce.Property)
		}
	}
}
