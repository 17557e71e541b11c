// Package ristretto adapts dgraph-io/ristretto to the provider contract.
package ristretto

import (
	"context"
	"errors"
	"sync"
	"time"

	rc "github.com/dgraph-io/ristretto"

	pr "github.com/jlpedrosa/regioncache/provider"
)

// entry wraps stored bytes with their string key. Ristretto's eviction
// callback only exposes the hashed key, so the original is carried in the
// value to make removal notification possible.
type entry struct {
	key   string
	value []byte
}

type Provider struct {
	c *rc.Cache

	mu       sync.RWMutex
	onRemove []func(string)
}

var (
	_ pr.Provider        = (*Provider)(nil)
	_ pr.RemovalNotifier = (*Provider)(nil)
)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
	// Cost is provided by the caller (regioncache passes cost per Set).
}

func New(cfg Config) (*Provider, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	p := &Provider{}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
		OnEvict:     p.evicted,
	})
	if err != nil {
		return nil, err
	}
	p.c = c
	return p, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	e, ok := v.(entry)
	if !ok {
		// self-heal: drop unexpected entry shape
		p.c.Del(key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (p *Provider) Set(_ context.Context, key string, value []byte, cost int64, ttl time.Duration) (bool, error) {
	return p.c.SetWithTTL(key, entry{key: key, value: value}, cost, ttl), nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.c.Del(key)
	return nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

func (p *Provider) OnRemove(fn func(string)) {
	p.mu.Lock()
	p.onRemove = append(p.onRemove, fn)
	p.mu.Unlock()
}

func (p *Provider) evicted(item *rc.Item) {
	e, ok := item.Value.(entry)
	if !ok {
		return
	}
	p.mu.RLock()
	fns := p.onRemove
	p.mu.RUnlock()
	for _, fn := range fns {
		fn(e.key)
	}
}

// Metrics exposes the underlying Ristretto metrics when enabled. Not part of
// the provider contract.
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }
