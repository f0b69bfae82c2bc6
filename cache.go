package ttlcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	c "github.com/unkn0wn-root/ttlcache/codec"
	"github.com/unkn0wn-root/ttlcache/internal/watermark"
)

const defaultMailbox = 64

// cache is the actor. All fields below the plumbing block are owned by the
// run goroutine and are only ever touched from inside an inbox thunk.
type cache[V any] struct {
	ttl      time.Duration
	strategy Strategy
	onExpire OnExpireFunc[V]

	log    Logger
	hooks  Hooks
	timers Timers
	copyc  c.Codec[V]

	inbox    chan func()
	stopCh   chan struct{}
	stopMu   sync.RWMutex
	stopped  bool
	stopOnce sync.Once
	wg       sync.WaitGroup

	// actor-owned state
	entries map[string]V
	marks   *watermark.Ledger
}

var _ Cache[struct{}] = (*cache[struct{}])(nil)

func newCache[V any](opts Options[V]) (*cache[V], error) {
	if opts.TTL <= 0 {
		return nil, fmt.Errorf("ttlcache: ttl is required")
	}
	if !opts.Strategy.valid() {
		return nil, &InvalidStrategyError{Strategy: opts.Strategy}
	}

	cc := &cache[V]{
		ttl:      opts.TTL,
		strategy: opts.Strategy,
		onExpire: opts.OnExpire,
		copyc:    opts.Copy,
		stopCh:   make(chan struct{}),
		entries:  make(map[string]V),
		marks:    watermark.NewLedger(),
	}

	// defaults
	cc.log = coalesce[Logger](opts.Logger, NopLogger{})
	cc.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	cc.timers = coalesce[Timers](opts.Timers, SystemTimers{})
	depth := opts.Mailbox
	if depth <= 0 {
		depth = defaultMailbox
	}
	cc.inbox = make(chan func(), depth)

	cc.wg.Add(1)
	go cc.run()
	return cc, nil
}

// run is the actor loop: one thunk at a time, commands and timer firings
// alike. On stop it drains what the gate already let in, so every accepted
// thunk runs exactly once and no caller is left waiting.
func (cc *cache[V]) run() {
	defer cc.wg.Done()
	for {
		select {
		case fn := <-cc.inbox:
			fn()
		case <-cc.stopCh:
			for {
				select {
				case fn := <-cc.inbox:
					fn()
				default:
					return
				}
			}
		}
	}
}

// post enqueues a thunk; false once the cache is stopped. The read lock
// pins the stop flag across the send: a thunk that passes the gate is in
// the inbox before Stop can close stopCh, so run's drain will reach it.
func (cc *cache[V]) post(fn func()) bool {
	cc.stopMu.RLock()
	defer cc.stopMu.RUnlock()
	if cc.stopped {
		return false
	}
	cc.inbox <- fn
	return true
}

// call is the synchronous round trip behind every command: enqueue, wait for
// the actor to finish the turn. False (outputs untouched) once stopped.
func (cc *cache[V]) call(fn func()) bool {
	done := make(chan struct{})
	if !cc.post(func() { defer close(done); fn() }) {
		return false
	}
	<-done
	return true
}

func (cc *cache[V]) Put(key string, value V) {
	cc.call(func() {
		_, live := cc.entries[key]
		cc.apply(key, live, Keep(value))
	})
}

func (cc *cache[V]) Get(key string) (V, bool) {
	var (
		v  V
		ok bool
	)
	cc.call(func() {
		v, ok = cc.entries[key]
		if !ok {
			return
		}
		if cc.strategy.refreshOnRead() {
			cc.arm(key)
		}
		v = cc.isolate(key, v)
	})
	return v, ok
}

func (cc *cache[V]) Update(key string, fn UpdateFunc[V]) {
	var rethrow any
	cc.call(func() {
		cur, live := cc.entries[key]
		res, recovered := guard1(fn, cur, live)
		if recovered != nil {
			rethrow = recovered
			cc.hooks.TransformPanic(key, recovered)
			cc.log.Error("update transform panicked; state unchanged", Fields{"key": key, "panic": recovered})
			return
		}
		cc.apply(key, live, res)
	})
	if rethrow != nil {
		panic(rethrow)
	}
}

func (cc *cache[V]) GetAndUpdate(key string, fn GetUpdateFunc[V]) V {
	var (
		ret     V
		rethrow any
	)
	cc.call(func() {
		cur, live := cc.entries[key]
		r, res, recovered := guard2(fn, cur, live)
		if recovered != nil {
			rethrow = recovered
			cc.hooks.TransformPanic(key, recovered)
			cc.log.Error("get-and-update transform panicked; state unchanged", Fields{"key": key, "panic": recovered})
			return
		}
		ret = r
		cc.apply(key, live, res)
	})
	if rethrow != nil {
		panic(rethrow)
	}
	return ret
}

func (cc *cache[V]) Delete(key string) {
	cc.call(func() { cc.remove(key) })
}

func (cc *cache[V]) Entries() map[string]V {
	out := map[string]V{}
	cc.call(func() {
		for k, v := range cc.entries {
			out[k] = cc.isolate(k, v)
		}
	})
	return out
}

func (cc *cache[V]) Keys() []string {
	var out []string
	cc.call(func() {
		out = make([]string, 0, len(cc.entries))
		for k := range cc.entries {
			out = append(out, k)
		}
	})
	return out
}

func (cc *cache[V]) Values() []V {
	var out []V
	cc.call(func() {
		out = make([]V, 0, len(cc.entries))
		for k, v := range cc.entries {
			out = append(out, cc.isolate(k, v))
		}
	})
	return out
}

func (cc *cache[V]) Has(key string) bool {
	var ok bool
	cc.call(func() { _, ok = cc.entries[key] })
	return ok
}

func (cc *cache[V]) Len() int {
	var n int
	cc.call(func() { n = len(cc.entries) })
	return n
}

func (cc *cache[V]) Stop(reason string) {
	cc.stopOnce.Do(func() {
		cc.log.Info("cache stopping", Fields{"reason": reason})
		cc.stopMu.Lock()
		cc.stopped = true
		cc.stopMu.Unlock()
		close(cc.stopCh)
	})
}

func (cc *cache[V]) Close(ctx context.Context) error {
	cc.Stop("close")
	done := make(chan struct{})
	go func() {
		cc.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// guard1/guard2 run a caller transform with panic capture so a misbehaving
// fn cannot kill the actor. On panic the Result is discarded unapplied.
func guard1[V any](fn UpdateFunc[V], cur V, live bool) (res Result[V], recovered any) {
	defer func() { recovered = recover() }()
	res = fn(cur, live)
	return res, nil
}

func guard2[V any](fn GetUpdateFunc[V], cur V, live bool) (ret V, res Result[V], recovered any) {
	defer func() { recovered = recover() }()
	ret, res = fn(cur, live)
	return ret, res, nil
}
