package ttlcache

// Strategy selects which operations re-arm a key's expiry clock. Creating a
// key always arms it once; the strategy only governs what happens afterwards.
//
//	            Get   Put/Update/GetAndUpdate   Entries/Keys/Values
//	Never        -              -                        -
//	OnWrite      -             re-arm                    -
//	OnRead     re-arm           -                        -
//	OnReadWrite re-arm         re-arm                    -
//
// Under Never an entry expires TTL after its first insertion regardless of
// later overwrites, unless it is deleted and recreated in between.
type Strategy uint8

const (
	Never Strategy = iota
	OnWrite
	OnRead
	OnReadWrite
)

func (s Strategy) valid() bool { return s <= OnReadWrite }

func (s Strategy) String() string {
	switch s {
	case Never:
		return "never"
	case OnWrite:
		return "on_write"
	case OnRead:
		return "on_read"
	case OnReadWrite:
		return "on_read_write"
	default:
		return "unknown"
	}
}

// refreshOnRead reports whether a Get should re-arm the clock.
func (s Strategy) refreshOnRead() bool { return s == OnRead || s == OnReadWrite }

// refreshOnWrite reports whether a write-class operation on a live key
// should re-arm the clock.
func (s Strategy) refreshOnWrite() bool { return s == OnWrite || s == OnReadWrite }

// ParseStrategy maps the string spellings used in host configuration.
// Unknown input is a construction-time error, never a silent default.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "never":
		return Never, nil
	case "on_write":
		return OnWrite, nil
	case "on_read":
		return OnRead, nil
	case "on_read_write":
		return OnReadWrite, nil
	default:
		return 0, &InvalidStrategyError{Name: s}
	}
}
