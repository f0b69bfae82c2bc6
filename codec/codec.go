// Package codec provides Codec[V] implementations for ttlcache's copy
// isolation. The cache round-trips a value through Encode then Decode to
// hand callers an independent deep copy; pick whichever serialization your
// value type already supports.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
