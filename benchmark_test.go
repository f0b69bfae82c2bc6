package ttlcache_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/unkn0wn-root/ttlcache"
)

// dropTimers keeps the timer heap out of the measurement; re-arm-heavy
// benchmarks would otherwise accumulate b.N pending AfterFuncs.
type dropTimers struct{}

func (dropTimers) Schedule(time.Duration, func()) {}

func benchCache(b *testing.B, s ttlcache.Strategy) ttlcache.Cache[int] {
	b.Helper()
	cc, err := ttlcache.New[int](ttlcache.Options[int]{TTL: time.Hour, Strategy: s, Timers: dropTimers{}})
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	b.Cleanup(func() { cc.Stop("bench done") })
	return cc
}

func BenchmarkPut(b *testing.B) {
	cc := benchCache(b, ttlcache.Never)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cc.Put("k", i)
	}
}

func BenchmarkGetHit(b *testing.B) {
	cc := benchCache(b, ttlcache.Never)
	cc.Put("k", 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cc.Get("k")
	}
}

// Every Get re-arms here, so this measures the watermark/schedule path.
func BenchmarkGetHitOnRead(b *testing.B) {
	cc := benchCache(b, ttlcache.OnRead)
	cc.Put("k", 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cc.Get("k")
	}
}

func BenchmarkUpdate(b *testing.B) {
	cc := benchCache(b, ttlcache.OnWrite)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cc.Update("k", func(cur int, ok bool) ttlcache.Result[int] {
			return ttlcache.Keep(cur + 1)
		})
	}
}

func BenchmarkPutDistinctKeys(b *testing.B) {
	cc := benchCache(b, ttlcache.Never)
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = "k" + strconv.Itoa(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cc.Put(keys[i%len(keys)], i)
	}
}
