package codec

// Bytes copies []byte values. Encode is the identity; Decode clones, so the
// round trip yields a slice the caller can scribble on freely.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) {
	if b == nil {
		return nil, nil
	}
	return append([]byte(nil), b...), nil
}

// String is a trivial codec for Go string values. Strings are immutable, so
// this exists mostly for symmetry and tests.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
