package codec

import "encoding/json"

// JSON round-trips values through encoding/json. The zero value is ready to
// use. Unexported fields are lost in the copy; use Msgpack or CBOR with
// explicit tags if that matters.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
