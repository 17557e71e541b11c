// Package bigcache adapts allegro/bigcache to the provider contract.
//
// BigCache has no per-entry TTL: every entry, generation tokens included,
// lives for the configured LifeWindow. An evicted token is reported through
// OnRemove and lazily re-installed by the owning region on its next Put.
package bigcache

import (
	"context"
	"sync"
	"time"

	bc "github.com/allegro/bigcache/v3"

	pr "github.com/jlpedrosa/regioncache/provider"
)

type Provider struct {
	c *bc.BigCache

	mu       sync.RWMutex
	onRemove []func(string)
}

var (
	_ pr.Provider        = (*Provider)(nil)
	_ pr.RemovalNotifier = (*Provider)(nil)
)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Provider, error) {
	p := &Provider{}
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	conf.OnRemoveWithReason = p.removed
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	p.c = c
	return p, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := p.c.Get(key)
	if err == bc.ErrEntryNotFound {
		return nil, false, nil
	}
	return b, err == nil, err
}

func (p *Provider) Set(_ context.Context, key string, value []byte, _ int64, _ time.Duration) (bool, error) {
	// Per-entry TTL unsupported; the global LifeWindow applies.
	return true, p.c.Set(key, value)
}

func (p *Provider) Del(_ context.Context, key string) error {
	return p.c.Delete(key)
}

func (p *Provider) Close(_ context.Context) error {
	return p.c.Close()
}

func (p *Provider) OnRemove(fn func(string)) {
	p.mu.Lock()
	p.onRemove = append(p.onRemove, fn)
	p.mu.Unlock()
}

func (p *Provider) removed(key string, _ []byte, reason bc.RemoveReason) {
	if reason == bc.Deleted {
		// explicit Del; the caller already knows
		return
	}
	p.mu.RLock()
	fns := p.onRemove
	p.mu.RUnlock()
	for _, fn := range fns {
		fn(key)
	}
}
