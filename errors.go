package regioncache

import (
	"errors"
	"fmt"
)

var (
	// ErrNilKey is returned by Put and Remove when the logical key is nil.
	// Get treats a nil key as a miss instead.
	ErrNilKey = errors.New("regioncache: nil key")

	// ErrNilValue is returned by Put when the value is nil; nils are never
	// cached.
	ErrNilValue = errors.New("regioncache: nil value")

	// ErrKeyTooLarge is returned by Put when the canonical key encoding
	// exceeds the record format's key capacity (64 KiB). Get and Remove
	// treat such keys as absent instead, since nothing can be stored
	// under them.
	ErrKeyTooLarge = errors.New("regioncache: key encoding too large")
)

// ConfigError reports a malformed configuration property at region
// construction. Construction fails fast; malformed values are never
// silently defaulted.
type ConfigError struct {
	Property string
	Value    string
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("regioncache: invalid property %q = %q: %v", e.Property, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ClearError reports a failed Clear: detaching the old token and installing
// its replacement are two provider writes, and either can fail.
type ClearError struct {
	Region   string
	DelErr   error
	StoreErr error
}

func (e *ClearError) Error() string {
	switch {
	case e.DelErr != nil && e.StoreErr != nil:
		return fmt.Sprintf("clear region %q: token delete and re-store failed: delete=%v; store=%v",
			e.Region, e.DelErr, e.StoreErr)
	case e.DelErr != nil:
		return fmt.Sprintf("clear region %q: token delete failed: %v", e.Region, e.DelErr)
	case e.StoreErr != nil:
		return fmt.Sprintf("clear region %q: token re-store failed: %v", e.Region, e.StoreErr)
	default:
		return fmt.Sprintf("clear region %q: unknown error", e.Region)
	}
}

func (e *ClearError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.DelErr != nil {
		errs = append(errs, e.DelErr)
	}
	if e.StoreErr != nil {
		errs = append(errs, e.StoreErr)
	}
	return errs
}
