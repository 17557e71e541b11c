package regioncache

import (
	"sync/atomic"
	"time"
)

// timestampSlots is the number of distinct values per millisecond. Values
// are wall-clock milliseconds shifted into the high bits, with the low bits
// absorbing same-millisecond calls.
const timestampSlots = 1 << 12

// LockTimeout is the fixed lock-wait allowance, 60 seconds expressed in
// NextTimestamp units. Informational only: Lock/Unlock are no-ops, so
// nothing in this layer ever waits on it.
const LockTimeout int64 = 60_000 * timestampSlots

// TimestampSource yields strictly increasing values for optimistic-lock
// version stamps. Implementations must be safe for concurrent use.
type TimestampSource interface {
	Next() int64
}

// Timestamper is the default TimestampSource: wall-clock driven, strictly
// monotonic even when the clock stalls or steps backwards. The zero value
// is ready to use.
type Timestamper struct {
	last atomic.Int64
}

var _ TimestampSource = (*Timestamper)(nil)

func (t *Timestamper) Next() int64 {
	for {
		prev := t.last.Load()
		next := time.Now().UnixMilli() * timestampSlots
		if next <= prev {
			next = prev + 1
		}
		if t.last.CompareAndSwap(prev, next) {
			return next
		}
	}
}

var shared Timestamper

// SharedTimestamper returns the process-wide source. Regions default to it
// so version stamps stay comparable across regions.
func SharedTimestamper() *Timestamper { return &shared }
