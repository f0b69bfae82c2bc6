package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/ttlcache"
)

type Options struct {
	// Sampling to avoid floods on churny caches; 0/1 = log all.
	// Expirations and stale-firing drops are the two hot events.
	ExpiredEvery      uint64
	StaleDroppedEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

// Hooks logs cache events through slog, sampled where the event rate tracks
// cache churn.
type Hooks struct {
	l    *slog.Logger
	opts Options

	expiredCtr atomic.Uint64
	staleCtr   atomic.Uint64
}

var _ ttlcache.Hooks = (*Hooks)(nil)

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

func (h *Hooks) EntryExpired(key string) {
	if h.l == nil || !sample(h.opts.ExpiredEvery, &h.expiredCtr) {
		return
	}
	h.l.Debug("ttlcache.entry_expired",
		"key", h.redact(key))
}

func (h *Hooks) StaleFiringDropped(key string, watermark uint64) {
	if h.l == nil || !sample(h.opts.StaleDroppedEvery, &h.staleCtr) {
		return
	}
	h.l.Debug("ttlcache.stale_firing_dropped",
		"key", h.redact(key),
		"watermark", watermark)
}

func (h *Hooks) ExpirePanic(key string, recovered any) {
	if h.l == nil {
		return
	}
	h.l.Error("ttlcache.on_expire_panic",
		"key", h.redact(key),
		"panic", recovered)
}

func (h *Hooks) TransformPanic(key string, recovered any) {
	if h.l == nil {
		return
	}
	h.l.Error("ttlcache.transform_panic",
		"key", h.redact(key),
		"panic", recovered)
}

func (h *Hooks) CopyError(key string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("ttlcache.copy_error",
		"key", h.redact(key),
		"err", err)
}
