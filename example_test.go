package ttlcache_test

import (
	"fmt"
	"time"

	"github.com/unkn0wn-root/ttlcache"
	"github.com/unkn0wn-root/ttlcache/timertest"
)

// Example drives a cache on virtual time so expiry is deterministic. With
// real timers, drop the Timers option and the same code runs on the wall
// clock.
func Example() {
	tm := timertest.New()
	cc, _ := ttlcache.New[int](ttlcache.Options[int]{
		TTL:      500 * time.Millisecond,
		Strategy: ttlcache.OnWrite,
		Timers:   tm,
		OnExpire: func(key string, value int) { fmt.Printf("expired %s=%d\n", key, value) },
	})
	defer cc.Stop("example done")

	cc.Put("a", 1)
	tm.Advance(250 * time.Millisecond)
	cc.Put("a", 2) // write resets the clock under OnWrite

	tm.Advance(350 * time.Millisecond) // t=600ms: still alive
	v, ok := cc.Get("a")
	fmt.Println(v, ok)

	tm.Advance(200 * time.Millisecond) // t=800ms: clock lapsed at 750ms
	_, ok = cc.Get("a")
	fmt.Println(ok)

	// Output:
	// 2 true
	// expired a=2
	// false
}

func Example_counter() {
	cc, _ := ttlcache.New[int](ttlcache.Options[int]{TTL: time.Minute})
	defer cc.Stop("example done")

	cc.Update("hits", func(cur int, ok bool) ttlcache.Result[int] {
		return ttlcache.Keep(cur + 1) // cur is 0 when absent
	})
	cc.Update("hits", func(cur int, ok bool) ttlcache.Result[int] {
		return ttlcache.Keep(cur + 1)
	})
	fmt.Println(cc.Get("hits"))

	cc.Update("hits", func(int, bool) ttlcache.Result[int] {
		return ttlcache.Remove[int]()
	})
	fmt.Println(cc.Has("hits"))

	// Output:
	// 2 true
	// false
}
