package sim

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultLineCapacity bounds a coherent unit's line table when the caller
// does not choose a capacity. The reference scenarios use a single key, so
// eviction never fires at this size.
const DefaultLineCapacity = 1024

// Unit is the driver-facing surface shared by both unit kinds. A unit is not
// safe for concurrent use: the driver gives each unit its own goroutine and
// reads Counters only after that goroutine is joined. Units interact only
// indirectly, through the shared store.
type Unit interface {
	ID() int
	Read(key Key) (Value, error)
	Write(key Key, value Value) error
	Counters() Counters
}

// CoherentUnit is an execution unit running the simplified MSI protocol.
// SHARED and MODIFIED lines are served locally; INVALID (absent) lines force
// a fetch through the shared store. The protocol is non-broadcast: a write
// never invalidates peer copies, it only pays the message cost of asserting
// ownership and propagating the value. A stale hit on a peer's line after a
// local write is the modeled behavior.
type CoherentUnit struct {
	id    int
	store *SharedStore
	lines *lru.Cache[Key, cacheLine]

	hits     uint64
	misses   uint64
	messages uint64
}

// NewCoherentUnit creates a unit with an empty line table and zeroed
// counters. capacity bounds the line table (0 selects DefaultLineCapacity);
// eviction of a line is the same as it transitioning to INVALID.
func NewCoherentUnit(id int, store *SharedStore, capacity int) (*CoherentUnit, error) {
	if capacity == 0 {
		capacity = DefaultLineCapacity
	}
	lines, err := lru.New[Key, cacheLine](capacity)
	if err != nil {
		return nil, err
	}
	return &CoherentUnit{id: id, store: store, lines: lines}, nil
}

func (u *CoherentUnit) ID() int { return u.id }

// Read returns the value of key. A present line is always SHARED or
// MODIFIED (absence is the only INVALID encoding), so presence alone makes
// the read a hit, served without touching the store. Otherwise the read is a
// miss: fetch the authoritative value under the store guard, install it
// SHARED, count one coherence message.
func (u *CoherentUnit) Read(key Key) (Value, error) {
	if line, ok := u.lines.Get(key); ok {
		u.hits++
		return line.value, nil
	}
	u.misses++
	value, err := u.store.Get(key)
	if err != nil {
		return 0, err
	}
	u.messages++
	u.lines.Add(key, cacheLine{value: value, state: LineShared})
	return value, nil
}

// Write commits value under the store guard and takes the local line to
// MODIFIED, independent of its prior state. It costs two coherence messages:
// one to assert exclusive ownership, one to propagate the committed value.
func (u *CoherentUnit) Write(key Key, value Value) error {
	u.messages++
	if err := u.store.Set(key, value); err != nil {
		return err
	}
	u.messages++
	u.lines.Add(key, cacheLine{value: value, state: LineModified})
	return nil
}

// State reports the coherence state of key's line without disturbing LRU
// recency; absent lines are INVALID.
func (u *CoherentUnit) State(key Key) LineState {
	if line, ok := u.lines.Peek(key); ok {
		return line.state
	}
	return LineInvalid
}

// Counters returns a snapshot of this unit's accounting.
func (u *CoherentUnit) Counters() Counters {
	return Counters{
		Hits:               u.hits,
		Misses:             u.misses,
		CoherenceMessages:  u.messages,
		MessagesApplicable: true,
	}
}
