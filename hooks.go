package ttlcache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; the actor calls them
// inside its serialized turn. Wrap with hooks/async to offload.
type Hooks interface {
	// A validated firing removed an entry (OnExpire, if set, already ran).
	EntryExpired(key string)

	// A firing no longer matched the key's current watermark: the key was
	// overwritten, refreshed, deleted, or recreated since it was scheduled.
	StaleFiringDropped(key string, watermark uint64)

	// The OnExpire callback panicked. Recovered; the actor continues.
	ExpirePanic(key string, recovered any)

	// An Update/GetAndUpdate transform panicked. Recovered with state
	// unmutated and re-thrown in the caller's goroutine.
	TransformPanic(key string, recovered any)

	// The copy-isolation codec failed; the caller got the uncopied value.
	CopyError(key string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) EntryExpired(string)               {}
func (NopHooks) StaleFiringDropped(string, uint64) {}
func (NopHooks) ExpirePanic(string, any)           {}
func (NopHooks) TransformPanic(string, any)        {}
func (NopHooks) CopyError(string, error)           {}
