// Package ttlcache implements an in-process key/value cache where every entry
// carries a uniform time-to-live and is removed asynchronously once it lapses.
// A single goroutine (the actor) owns all state; commands and timer firings are
// serialized through one inbox, so there is no locking and no torn state.
//
// Expiry never cancels timers. Each time a key's clock is (re)armed the cache
// records a fresh watermark for that key and schedules a deferred firing tagged
// with it; when a firing arrives, it only takes effect if its tag still matches
// the key's current watermark. Superseded, late, or duplicate firings are
// dropped. Watermarks are drawn from a cache-wide monotone counter, so a firing
// scheduled for a deleted-then-recreated key can never match the new entry.
//
// Components:
//   - Strategy: which operations re-arm a key's clock (Never, OnWrite, OnRead,
//     OnReadWrite). Creation always arms; bulk reads (Entries/Keys/Values)
//     never do.
//   - Timers: schedules deferred firings (time.AfterFunc by default; swap in
//     timertest.Manual for deterministic tests).
//   - Codec[V]: optional copy isolation. Values handed back to callers are
//     deep-copied by an encode/decode round trip.
//
// Clock pattern (Strategy OnWrite):
//
//	c, _ := ttlcache.New[int](ttlcache.Options[int]{TTL: time.Minute, Strategy: ttlcache.OnWrite})
//	c.Put("rate:10.0.0.1", 1)                 // expires a minute from now
//	c.Update("rate:10.0.0.1", func(n int, ok bool) ttlcache.Result[int] {
//	    return ttlcache.Keep(n + 1)           // write re-arms the clock
//	})
package ttlcache
