package sim

// LineState is the coherence state of one cached line. The zero value is
// LineInvalid: a line that was never populated, or was evicted, is INVALID.
type LineState int

const (
	LineInvalid  LineState = iota // absent or unusable; a read must fetch
	LineShared                    // valid, read-only; peers may hold the same line SHARED
	LineModified                  // valid, exclusively owned by the caching unit
)

func (s LineState) String() string {
	switch s {
	case LineShared:
		return "SHARED"
	case LineModified:
		return "MODIFIED"
	default:
		return "INVALID"
	}
}

// cacheLine is one unit's private copy of a key. A SHARED or MODIFIED line
// always reflects a value that was authoritative in the shared store at the
// moment of the last transition into that state.
type cacheLine struct {
	value Value
	state LineState
}
