package regioncache

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// Properties is the string-keyed configuration bag consumed at region
// construction. All properties are optional; see the Prop* constants.
type Properties map[string]string

// Recognized property names.
const (
	// PropExpiration is the TTL base in integer seconds (>= 0).
	// Zero stores entries with no expiration.
	PropExpiration = "expiration"

	// PropDefaultExpiration is consulted only when PropExpiration is
	// absent. It lets one bag carry a system-wide default past several
	// regions.
	PropDefaultExpiration = "cache.default_expiration"

	// PropSlidingExpiration switches the region from absolute to sliding
	// TTL mode.
	PropSlidingExpiration = "cache.use_sliding_expiration"

	// PropRegionPrefix namespaces the region's storage keys.
	PropRegionPrefix = "regionPrefix"
)

// DefaultExpiration applies when neither PropExpiration nor
// PropDefaultExpiration is present.
const DefaultExpiration = 300 * time.Second

// ValidateProperties parses a property bag without building a region, so
// configuration can be vetted at load time rather than first use.
func ValidateProperties(p Properties) error {
	_, err := parseSettings(p)
	return err
}

type regionSettings struct {
	expiration   time.Duration
	sliding      bool
	regionPrefix string
}

func parseSettings(p Properties) (regionSettings, error) {
	s := regionSettings{expiration: DefaultExpiration}

	if v, ok := p[PropDefaultExpiration]; ok {
		d, err := parseSeconds(PropDefaultExpiration, v)
		if err != nil {
			return regionSettings{}, err
		}
		s.expiration = d
	}
	if v, ok := p[PropExpiration]; ok {
		d, err := parseSeconds(PropExpiration, v)
		if err != nil {
			return regionSettings{}, err
		}
		s.expiration = d
	}
	if v, ok := p[PropSlidingExpiration]; ok {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return regionSettings{}, &ConfigError{Property: PropSlidingExpiration, Value: v, Err: err}
		}
		s.sliding = b
	}
	s.regionPrefix = p[PropRegionPrefix]
	return s, nil
}

func parseSeconds(prop, v string) (time.Duration, error) {
	secs, err := cast.ToIntE(v)
	if err != nil {
		return 0, &ConfigError{Property: prop, Value: v, Err: err}
	}
	if secs < 0 {
		return 0, &ConfigError{Property: prop, Value: v, Err: fmt.Errorf("must be >= 0")}
	}
	return time.Duration(secs) * time.Second, nil
}
