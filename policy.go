package ttlcache

// Everything in this file runs inside an actor turn.

// apply commits a write-class outcome for key. live reports whether the key
// existed when the transform/command started its turn.
//
// Creating a key always arms its clock, under every strategy; a live key is
// re-armed only when the strategy refreshes on writes. Under Never this is
// what pins expiry to the first insertion: overwrites keep the original
// watermark, so the original firing stays valid.
func (cc *cache[V]) apply(key string, live bool, res Result[V]) {
	if res.remove {
		cc.remove(key)
		return
	}
	cc.entries[key] = res.value
	if !live || cc.strategy.refreshOnWrite() {
		cc.arm(key)
	}
}

// arm records a fresh watermark for key and schedules a firing tagged with
// it. Any earlier firing for the key is left outstanding; the tag mismatch
// neutralizes it on arrival.
func (cc *cache[V]) arm(key string) {
	w := cc.marks.Arm(key)
	cc.timers.Schedule(cc.ttl, func() {
		cc.post(func() { cc.expire(key, w) })
	})
	cc.log.Debug("armed expiry", Fields{"key": key, "watermark": w})
}

// remove clears the entry and its watermark together. Used by Delete and by
// transforms returning Remove; never fires OnExpire.
func (cc *cache[V]) remove(key string) {
	delete(cc.entries, key)
	cc.marks.Clear(key)
}

// expire handles a delivered firing. The watermark check subsumes presence:
// remove clears the ledger with the entry, and recreation issues a token the
// firing cannot carry.
func (cc *cache[V]) expire(key string, w uint64) {
	if !cc.marks.Matches(key, w) {
		cc.hooks.StaleFiringDropped(key, w)
		cc.log.Debug("stale firing dropped", Fields{"key": key, "watermark": w})
		return
	}
	v, ok := cc.entries[key]
	if !ok {
		// current token without an entry would mean remove skipped the
		// ledger; repair and drop.
		cc.marks.Clear(key)
		cc.hooks.StaleFiringDropped(key, w)
		cc.log.Warn("watermark without entry; cleared", Fields{"key": key, "watermark": w})
		return
	}
	cc.remove(key)
	if cc.onExpire != nil {
		cc.fireExpire(key, v)
	}
	cc.hooks.EntryExpired(key)
	cc.log.Debug("entry expired", Fields{"key": key, "watermark": w})
}

// fireExpire isolates the user callback: a panic is recovered and reported,
// the actor keeps serving.
func (cc *cache[V]) fireExpire(key string, v V) {
	defer func() {
		if r := recover(); r != nil {
			cc.hooks.ExpirePanic(key, r)
			cc.log.Error("OnExpire panicked", Fields{"key": key, "panic": r})
		}
	}()
	cc.onExpire(key, v)
}

// isolate deep-copies v through the configured codec so the caller never
// aliases actor-owned memory. Best effort: on codec failure the shared value
// is returned and the failure reported.
func (cc *cache[V]) isolate(key string, v V) V {
	if cc.copyc == nil {
		return v
	}
	b, err := cc.copyc.Encode(v)
	if err == nil {
		out, derr := cc.copyc.Decode(b)
		if derr == nil {
			return out
		}
		err = derr
	}
	cc.hooks.CopyError(key, err)
	cc.log.Warn("copy isolation failed; returning shared value", Fields{"key": key, "err": err})
	return v
}
