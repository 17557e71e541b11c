package regioncache

// Hooks are lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; the region calls them on
// hot paths. Wrap with hooks/async when the sink can stall.
type Hooks interface {
	// An entry was deleted by the region on read.
	// reason ∈ {"corrupt", "stale_generation", "value_decode"}
	SelfHeal(storageKey, reason string)

	// Two distinct logical keys derived the same storage key. The record
	// was left in place and the read returned a miss.
	KeyCollision(region, storageKey string)

	// The provider evicted the region's generation token on its own.
	TokenEvicted(region string)

	// A fresh generation token became current (construction, Clear, or a
	// lazy re-install before a Put).
	TokenInstalled(region string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string, isToken bool)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)          {}
func (NopHooks) KeyCollision(string, string)      {}
func (NopHooks) TokenEvicted(string)              {}
func (NopHooks) TokenInstalled(string)            {}
func (NopHooks) ProviderSetRejected(string, bool) {}
