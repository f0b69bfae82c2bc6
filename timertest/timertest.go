// Package timertest provides a manually driven ttlcache.Timers for
// deterministic tests: virtual time only moves when Advance is called.
package timertest

import (
	"sort"
	"sync"
	"time"
)

type scheduled struct {
	due  time.Duration // virtual deadline
	seq  int           // tie-break: schedule order
	fire func()
}

// Manual satisfies ttlcache.Timers (not asserted: ttlcache's own tests use
// Manual, and importing ttlcache here would cycle). The clock starts at zero
// and advances only via Advance. Safe for concurrent use.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []scheduled
}

func New() *Manual { return &Manual{} }

func (m *Manual) Schedule(d time.Duration, fire func()) {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	m.seq++
	m.pending = append(m.pending, scheduled{due: m.now + d, seq: m.seq, fire: fire})
	m.mu.Unlock()
}

// Advance moves virtual time by d and runs every firing that came due, in
// deadline order (schedule order on ties). Firings run synchronously on the
// caller's goroutine, so by the time Advance returns each one has been
// delivered to its destination.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	var due []scheduled
	rest := m.pending[:0]
	for _, s := range m.pending {
		if s.due <= m.now {
			due = append(due, s)
		} else {
			rest = append(rest, s)
		}
	}
	m.pending = rest
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, s := range due {
		s.fire()
	}
}

// Pending reports how many firings are still scheduled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
