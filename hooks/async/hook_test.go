package asynchook

import (
	"sync"
	"testing"

	"github.com/unkn0wn-root/ttlcache"
)

type countingHooks struct {
	mu      sync.Mutex
	expired int
	stale   int
}

var _ ttlcache.Hooks = (*countingHooks)(nil)

func (h *countingHooks) EntryExpired(string) {
	h.mu.Lock()
	h.expired++
	h.mu.Unlock()
}
func (h *countingHooks) StaleFiringDropped(string, uint64) {
	h.mu.Lock()
	h.stale++
	h.mu.Unlock()
}
func (h *countingHooks) ExpirePanic(string, any)    {}
func (h *countingHooks) TransformPanic(string, any) {}
func (h *countingHooks) CopyError(string, error)    {}

func TestEventsReachInnerBeforeClose(t *testing.T) {
	inner := &countingHooks{}
	h := New(inner, 2, 100)

	for i := 0; i < 10; i++ {
		h.EntryExpired("k")
		h.StaleFiringDropped("k", uint64(i))
	}
	h.Close() // drains the queue
	h.Close() // idempotent

	inner.mu.Lock()
	defer inner.mu.Unlock()
	if inner.expired != 10 || inner.stale != 10 {
		t.Fatalf("delivered expired=%d stale=%d, want 10/10", inner.expired, inner.stale)
	}
}

func TestFullQueueDropsInsteadOfBlocking(t *testing.T) {
	release := make(chan struct{})
	blocking := blockingHooks{release: release}
	h := New(&blocking, 1, 1)

	// First event occupies the worker, second fills the queue, the rest must
	// drop without blocking the caller.
	for i := 0; i < 50; i++ {
		h.EntryExpired("k")
	}
	close(release)
	h.Close()
}

type blockingHooks struct {
	ttlcache.NopHooks
	release chan struct{}
}

func (b *blockingHooks) EntryExpired(string) { <-b.release }
