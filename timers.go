package ttlcache

import "time"

// Timers schedules deferred expiry firings. Schedule must run fire in its
// own goroutine no earlier than d from now; there is no cancellation.
// "Canceling" a firing is done by watermark invalidation, never here.
type Timers interface {
	Schedule(d time.Duration, fire func())
}

// SystemTimers is the default Timers backed by time.AfterFunc.
type SystemTimers struct{}

var _ Timers = SystemTimers{}

func (SystemTimers) Schedule(d time.Duration, fire func()) {
	time.AfterFunc(d, fire)
}
