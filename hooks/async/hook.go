// Package asynchook moves hook work off the actor's turn.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    ExpiredEvery:      10, // sample logs: ~every 10th expiry
//	    StaleDroppedEvery: 10,
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := ttlcache.New[Session](ttlcache.Options[Session]{
//	    TTL:      30 * time.Minute,
//	    Strategy: ttlcache.OnReadWrite,
//	    Hooks:    hooks, // or `raw` if you don't want async
//	})
//
// Events are dropped, not queued unboundedly, when the workers fall behind.
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/ttlcache"
)

type Hooks struct {
	inner ttlcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ ttlcache.Hooks = (*Hooks)(nil)

func New(inner ttlcache.Hooks, workers, qlen int) *Hooks {
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

func (h *Hooks) EntryExpired(k string) { h.try(func() { h.inner.EntryExpired(k) }) }
func (h *Hooks) StaleFiringDropped(k string, w uint64) {
	h.try(func() { h.inner.StaleFiringDropped(k, w) })
}
func (h *Hooks) ExpirePanic(k string, r any)    { h.try(func() { h.inner.ExpirePanic(k, r) }) }
func (h *Hooks) TransformPanic(k string, r any) { h.try(func() { h.inner.TransformPanic(k, r) }) }
func (h *Hooks) CopyError(k string, err error)  { h.try(func() { h.inner.CopyError(k, err) }) }
