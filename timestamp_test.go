package regioncache

import (
	"sort"
	"sync"
	"testing"
)

func TestTimestamperStrictlyIncreasing(t *testing.T) {
	var ts Timestamper
	prev := ts.Next()
	for i := 0; i < 10_000; i++ {
		next := ts.Next()
		if next <= prev {
			t.Fatalf("not strictly increasing: %d then %d", prev, next)
		}
		prev = next
	}
}

func TestTimestamperConcurrentUnique(t *testing.T) {
	var ts Timestamper
	const goroutines = 8
	const perG = 2_000

	out := make([][]int64, goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			vals := make([]int64, perG)
			for i := range vals {
				vals[i] = ts.Next()
			}
			out[g] = vals
		}(g)
	}
	wg.Wait()

	all := make([]int64, 0, goroutines*perG)
	for g := range out {
		// per-goroutine order must be strictly increasing
		for i := 1; i < len(out[g]); i++ {
			if out[g][i] <= out[g][i-1] {
				t.Fatalf("goroutine %d: not increasing at %d", g, i)
			}
		}
		all = append(all, out[g]...)
	}

	// global uniqueness
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	for i := 1; i < len(all); i++ {
		if all[i] == all[i-1] {
			t.Fatalf("duplicate timestamp %d", all[i])
		}
	}
}

func TestSharedTimestamperIsSingleton(t *testing.T) {
	if SharedTimestamper() != SharedTimestamper() {
		t.Fatalf("SharedTimestamper must return one instance")
	}
}

func TestLockTimeoutCoversSixtySeconds(t *testing.T) {
	if LockTimeout != 60_000*timestampSlots {
		t.Fatalf("LockTimeout = %d, want 60s in timestamp units", LockTimeout)
	}
}
