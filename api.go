package ttlcache

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/ttlcache/codec"
)

// Cache is the public surface of a single expiring map. Every method is a
// synchronous round trip through the owning actor, so per key all callers
// observe one total order of operations.
//
// Transform functions passed to Update/GetAndUpdate run inside the actor's
// turn. They must not block and must not call back into the same cache, else
// the cache deadlocks.
type Cache[V any] interface {
	// Put stores value under key, overwriting any previous value.
	Put(key string, value V)
	// Get returns the current value, or ok=false if the key is absent.
	Get(key string) (v V, ok bool)
	// Update passes the current value (zero, ok=false when absent) to fn and
	// applies the returned Result: Keep writes, Remove deletes.
	Update(key string, fn UpdateFunc[V])
	// GetAndUpdate is Update with a caller-chosen return value.
	GetAndUpdate(key string, fn GetUpdateFunc[V]) V
	// Delete removes key. Idempotent; never fires OnExpire.
	Delete(key string)

	// Bulk reads. None of these re-arm any key's clock.
	Entries() map[string]V
	Keys() []string
	Values() []V
	Has(key string) bool
	Len() int

	// Stop terminates the actor. Commands issued after Stop are no-ops that
	// report every key as absent. Outstanding timer firings are discarded.
	Stop(reason string)
	// Close stops the actor and waits for it to exit, bounded by ctx.
	Close(ctx context.Context) error
}

// UpdateFunc receives the current value for a key (ok=false and the zero V
// when absent) and decides what happens to the key.
type UpdateFunc[V any] func(cur V, ok bool) Result[V]

// GetUpdateFunc additionally chooses the value returned to the caller.
type GetUpdateFunc[V any] func(cur V, ok bool) (ret V, res Result[V])

// Result is the outcome of a transform: keep a (possibly new) value, or
// remove the key. The zero Result keeps the zero V; use the constructors.
type Result[V any] struct {
	remove bool
	value  V
}

// Keep writes v as the key's new value.
func Keep[V any](v V) Result[V] { return Result[V]{value: v} }

// Remove deletes the key instead of writing. The deletion behaves exactly
// like Delete: no expiry callback, no re-arm.
func Remove[V any]() Result[V] { return Result[V]{remove: true} }

// OnExpireFunc is invoked with the removed pair when an entry genuinely
// expires. It runs inside the actor's turn: keep it cheap, never call back
// into the cache. A panic is recovered and logged; the actor continues.
type OnExpireFunc[V any] func(key string, value V)

// Options tune a cache instance. Only TTL is required.
type Options[V any] struct {
	// Required. Uniform lifetime applied to every key. Expiry is "no earlier
	// than TTL", not "exactly at TTL".
	TTL time.Duration

	Strategy Strategy        // default Never
	OnExpire OnExpireFunc[V] // optional; nil => entries vanish silently

	Logger Logger     // if nil, NopLogger is used
	Hooks  Hooks      // if nil, NopHooks is used
	Timers Timers     // nil => SystemTimers (time.AfterFunc)
	Copy   c.Codec[V] // optional copy isolation for returned values

	Mailbox int // inbox depth; 0 => 64
}

// New constructs and starts a cache actor. Construction fails loudly on a
// missing TTL or an unknown Strategy; no command is accepted before
// validation passes.
func New[V any](opts Options[V]) (Cache[V], error) {
	return newCache[V](opts)
}
