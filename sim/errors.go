package sim

import "fmt"

// UnknownKeyError reports an access to a key the shared store was never
// initialized with. It is never silently defaulted: the failing operation
// propagates it and the unit's sequence stops.
type UnknownKeyError struct {
	Key Key
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("shared store: unknown key %q", string(e.Key))
}
