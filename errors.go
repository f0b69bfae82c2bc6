package ttlcache

import (
	"fmt"
)

// InvalidStrategyError reports a refresh strategy outside the known set,
// either a bad Strategy value in Options or an unrecognized string passed to
// ParseStrategy. Construction fails with it rather than defaulting.
type InvalidStrategyError struct {
	Strategy Strategy
	Name     string // set when the input was a string
}

func (e *InvalidStrategyError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("ttlcache: unknown refresh strategy %q", e.Name)
	}
	return fmt.Sprintf("ttlcache: unknown refresh strategy %d", uint8(e.Strategy))
}
