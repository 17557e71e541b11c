// Package sloghooks logs regioncache hook events through log/slog, with
// sampling for the events that can flood (self-heals).
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/jlpedrosa/regioncache"
)

type Options struct {
	// SelfHealEvery samples self-heal logs; 0/1 = log all.
	SelfHealEvery uint64
	// Redact rewrites storage keys before logging. Defaults to a SHA-256
	// prefix so raw keys never reach the logs.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
}

var _ regioncache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("regioncache.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) KeyCollision(region, storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Info("regioncache.key_collision",
		"region", region,
		"key", h.redact(storageKey))
}

func (h *Hooks) TokenEvicted(region string) {
	if h.l == nil {
		return
	}
	h.l.Warn("regioncache.token_evicted", "region", region)
}

func (h *Hooks) TokenInstalled(region string) {
	if h.l == nil {
		return
	}
	h.l.Debug("regioncache.token_installed", "region", region)
}

func (h *Hooks) ProviderSetRejected(storageKey string, isToken bool) {
	if h.l == nil {
		return
	}
	h.l.Warn("regioncache.provider_set_rejected",
		"key", h.redact(storageKey),
		"is_token", isToken)
}
