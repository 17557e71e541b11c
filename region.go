package regioncache

import (
	"bytes"
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"

	c "github.com/jlpedrosa/regioncache/codec"
	"github.com/jlpedrosa/regioncache/internal/keys"
	"github.com/jlpedrosa/regioncache/internal/wire"
	pr "github.com/jlpedrosa/regioncache/provider"
)

type region[V any] struct {
	name     string
	provider pr.Provider
	codec    c.Codec[V]
	keyCodec KeyCodec
	log      Logger
	hooks    Hooks
	source   TimestampSource

	settings regionSettings

	prefix   string // keyPrefix + regionPrefix + name
	tokenKey string

	epoch tokenState
}

func newRegion[V any](opts Options[V]) (*region[V], error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("regioncache: region name is required")
	}
	if opts.Provider == nil {
		return nil, fmt.Errorf("regioncache: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("regioncache: codec is required")
	}

	settings, err := parseSettings(opts.Properties)
	if err != nil {
		return nil, err
	}

	r := &region[V]{
		name:     opts.Name,
		provider: opts.Provider,
		codec:    opts.Codec,
		keyCodec: opts.KeyCodec,
		log:      opts.Logger,
		hooks:    opts.Hooks,
		source:   opts.Source,
		settings: settings,
	}

	// defaults
	if r.keyCodec == nil {
		kc, err := c.NewCBOR[any](true) // deterministic => stable key bytes
		if err != nil {
			return nil, err
		}
		r.keyCodec = kc
	}
	if r.log == nil {
		r.log = NopLogger{}
	}
	if r.hooks == nil {
		r.hooks = NopHooks{}
	}
	if r.source == nil {
		r.source = SharedTimestamper()
	}

	r.prefix = opts.KeyPrefix + settings.regionPrefix + opts.Name
	r.tokenKey = keys.Token(r.prefix)

	if _, err := r.installToken(context.Background()); err != nil {
		return nil, fmt.Errorf("regioncache: storing generation token for %q: %w", opts.Name, err)
	}

	// Track independent eviction of the token when the provider can report it.
	if rn, ok := opts.Provider.(pr.RemovalNotifier); ok {
		rn.OnRemove(r.handleRemoval)
	}

	r.log.Info("region created", Fields{
		"region":     r.name,
		"expiration": settings.expiration,
		"sliding":    settings.sliding,
		"prefix":     r.prefix,
	})
	return r, nil
}

func (r *region[V]) Name() string { return r.name }

func (r *region[V]) Get(ctx context.Context, key any) (V, bool, error) {
	var zero V
	if isNil(key) {
		return zero, false, nil // absent, never an error
	}
	kb, err := r.keyCodec.Encode(key)
	if err != nil {
		return zero, false, err
	}
	if !storableKey(kb) {
		return zero, false, nil // nothing can live under this key
	}
	sk := r.entryKey(key, kb)
	raw, ok, err := r.provider.Get(ctx, sk)
	if err != nil || !ok {
		return zero, false, err
	}

	tok, storedKey, payload, err := wire.DecodeEntry(raw)
	if err != nil {
		_ = r.provider.Del(ctx, sk) // self-heal corrupt
		r.hooks.SelfHeal(sk, "corrupt")
		return zero, false, nil
	}
	if tok != r.epoch.Current() {
		// orphaned by a Clear (or a token regeneration)
		_ = r.provider.Del(ctx, sk)
		r.hooks.SelfHeal(sk, "stale_generation")
		return zero, false, nil
	}
	if !bytes.Equal(storedKey, kb) {
		// derived-key collision: another logical key owns this slot.
		// Leave the record in place; it is not ours to evict.
		r.hooks.KeyCollision(r.name, sk)
		r.log.Debug("derived-key collision", Fields{"region": r.name, "storageKey": sk})
		return zero, false, nil
	}

	v, err := r.codec.Decode(payload)
	if err != nil {
		_ = r.provider.Del(ctx, sk) // self-heal
		r.hooks.SelfHeal(sk, "value_decode")
		return zero, false, nil
	}

	if r.settings.sliding {
		// refresh the window; best-effort, a lost touch only shortens the window
		if ok, err := r.provider.Set(ctx, sk, raw, int64(len(raw)), r.settings.expiration); err == nil && !ok {
			r.hooks.ProviderSetRejected(sk, false)
		}
	}
	return v, true, nil
}

func (r *region[V]) Put(ctx context.Context, key any, value V) error {
	if isNil(key) {
		return ErrNilKey
	}
	if isNil(any(value)) {
		return ErrNilValue
	}
	kb, err := r.keyCodec.Encode(key)
	if err != nil {
		return err
	}
	if len(kb) == 0 {
		return fmt.Errorf("regioncache: key codec produced no bytes")
	}
	if len(kb) > wire.MaxKeySize {
		return ErrKeyTooLarge
	}
	tok, err := r.liveToken(ctx)
	if err != nil {
		return err
	}
	payload, err := r.codec.Encode(value)
	if err != nil {
		return err
	}

	sk := r.entryKey(key, kb)
	frame := wire.EncodeEntry(tok, kb, payload)
	ok, err := r.provider.Set(ctx, sk, frame, int64(len(frame)), r.settings.expiration)
	if err != nil {
		return err
	}
	if !ok {
		r.hooks.ProviderSetRejected(sk, false)
		r.log.Debug("put rejected by provider (pressure)", Fields{"region": r.name, "storageKey": sk})
	}
	return nil
}

func (r *region[V]) Remove(ctx context.Context, key any) error {
	if isNil(key) {
		return ErrNilKey
	}
	kb, err := r.keyCodec.Encode(key)
	if err != nil {
		return err
	}
	if !storableKey(kb) {
		return nil // nothing can live under this key
	}
	return r.provider.Del(ctx, r.entryKey(key, kb))
}

// Clear detaches the current epoch and installs a fresh one. Entries are not
// touched: whatever was bound to the old token fails generation validation on
// its next read. Cost is two provider writes regardless of region size.
func (r *region[V]) Clear(ctx context.Context) error {
	delErr := r.provider.Del(ctx, r.tokenKey)
	_, installErr := r.installToken(ctx)
	if delErr != nil || installErr != nil {
		return &ClearError{Region: r.name, DelErr: delErr, StoreErr: installErr}
	}
	r.log.Info("region cleared", Fields{"region": r.name})
	return nil
}

func (r *region[V]) Destroy(ctx context.Context) error {
	if err := r.Clear(ctx); err != nil {
		return err
	}
	// The region is going away; nothing should keep resolving against it.
	_ = r.provider.Del(ctx, r.tokenKey)
	r.epoch.MarkAbsent()
	return nil
}

// Lock is a no-op. See the Region interface for the non-guarantee.
func (r *region[V]) Lock(any) {}

// Unlock is a no-op. See the Region interface for the non-guarantee.
func (r *region[V]) Unlock(any) {}

func (r *region[V]) NextTimestamp() int64 { return r.source.Next() }

func (r *region[V]) Timeout() int64 { return LockTimeout }

// liveToken returns the token a Put must bind to, re-installing a fresh one
// when the provider evicted the stored copy. Binding to a dead token would
// either invalidate the entry immediately or let it dodge a future Clear.
func (r *region[V]) liveToken(ctx context.Context) (wire.Token, error) {
	if tok, present := r.epoch.Load(); present {
		return tok, nil
	}
	return r.installToken(ctx)
}

// installToken generates a fresh token, stores it with no expiration, and
// makes it current. The stored copy always gets a fresh value rather than the
// previous one: re-storing an evicted token could resurrect entries whose
// epoch binding was already lost.
func (r *region[V]) installToken(ctx context.Context) (wire.Token, error) {
	tok := wire.Token(uuid.New())
	ok, err := r.provider.Set(ctx, r.tokenKey, wire.EncodeToken(tok), 1, pr.NoTTL)
	if err != nil {
		return wire.Token{}, err
	}
	if !ok {
		r.hooks.ProviderSetRejected(r.tokenKey, true)
		r.log.Warn("generation token rejected by provider", Fields{"region": r.name})
	}
	r.epoch.Store(tok)
	r.hooks.TokenInstalled(r.name)
	return tok, nil
}

// handleRemoval runs when the provider reports an eviction. Only the token
// matters here, and only if the store genuinely no longer holds it: a late
// notification for a token Clear already replaced must not unseat its
// successor.
func (r *region[V]) handleRemoval(storageKey string) {
	if storageKey != r.tokenKey {
		return
	}
	if _, ok, err := r.provider.Get(context.Background(), r.tokenKey); err == nil && ok {
		return
	}
	r.epoch.MarkAbsent()
	r.hooks.TokenEvicted(r.name)
	r.log.Warn("generation token evicted by provider", Fields{"region": r.name})
}

func (r *region[V]) entryKey(key any, keyBytes []byte) string {
	return keys.Entry(r.prefix, displayKey(key), keyBytes)
}

// displayKey renders a logical key for the human-readable part of the storage
// key. Collisions here are expected and resolved by the hash suffix plus the
// stored-original-key check.
func displayKey(key any) string {
	return fmt.Sprint(key)
}

// storableKey reports whether canonical key bytes fit an entry record.
// Put rejects unstorable keys with an error; Get and Remove treat them as
// absent, since no record can exist under them.
func storableKey(kb []byte) bool {
	return len(kb) > 0 && len(kb) <= wire.MaxKeySize
}

// isNil reports whether a caller-supplied key or value is nil, including
// typed nils hiding inside a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
