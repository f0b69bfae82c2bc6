// Package watermark implements the per-key generation ledger that makes
// timer cancellation unnecessary: every arm records a fresh token for the
// key, and a deferred firing is honored only while its token is still the
// key's current one.
package watermark

// Ledger maps live keys to the token of their most recent arm. Tokens come
// from a single monotone counter shared by all keys, so a token is never
// reused, not even when a key is deleted and recreated. A firing tagged for
// an earlier incarnation therefore can never match the new one.
//
// Ledger is not safe for concurrent use; it is owned by exactly one
// goroutine (the cache actor).
type Ledger struct {
	seq   uint64
	marks map[string]uint64
}

func NewLedger() *Ledger {
	return &Ledger{marks: make(map[string]uint64)}
}

// Arm issues the next token and records it as current for key.
func (l *Ledger) Arm(key string) uint64 {
	l.seq++
	l.marks[key] = l.seq
	return l.seq
}

// Current returns the key's token; ok=false when the key holds none.
func (l *Ledger) Current(key string) (uint64, bool) {
	w, ok := l.marks[key]
	return w, ok
}

// Matches reports whether w is still the key's current token.
func (l *Ledger) Matches(key string, w uint64) bool {
	cur, ok := l.marks[key]
	return ok && cur == w
}

// Clear drops the key's token. Idempotent.
func (l *Ledger) Clear(key string) {
	delete(l.marks, key)
}

// Len reports how many keys currently hold a token.
func (l *Ledger) Len() int { return len(l.marks) }
