// Package asynchook decouples hook sinks from the cache hot path with a
// bounded queue. Events are dropped, never blocked on, when the queue is
// full.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    SelfHealEvery: 10, // sample: ~every 10th self-heal
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	region, _ := regioncache.New[User](regioncache.Options[User]{
//	    Name:     "user",
//	    Provider: provider,
//	    Codec:    codec.JSON[User]{},
//	    Hooks:    hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/jlpedrosa/regioncache"
)

type Hooks struct {
	inner regioncache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ regioncache.Hooks = (*Hooks)(nil)

func New(inner regioncache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) SelfHeal(k, r string)      { h.try(func() { h.inner.SelfHeal(k, r) }) }
func (h *Hooks) KeyCollision(rg, k string) { h.try(func() { h.inner.KeyCollision(rg, k) }) }
func (h *Hooks) TokenEvicted(rg string)    { h.try(func() { h.inner.TokenEvicted(rg) }) }
func (h *Hooks) TokenInstalled(rg string)  { h.try(func() { h.inner.TokenInstalled(rg) }) }
func (h *Hooks) ProviderSetRejected(k string, tok bool) {
	h.try(func() { h.inner.ProviderSetRejected(k, tok) })
}
