package sim

// IncoherentUnit has the same surface as CoherentUnit but no state machine:
// once a value is fetched it is reused indefinitely, no matter what peers
// commit to the shared store afterwards. Unbounded reads of arbitrarily
// stale values are the point of this unit.
type IncoherentUnit struct {
	id     int
	store  *SharedStore
	values map[Key]Value

	hits   uint64
	misses uint64
}

// NewIncoherentUnit creates a unit with an empty cache and zeroed counters.
func NewIncoherentUnit(id int, store *SharedStore) *IncoherentUnit {
	return &IncoherentUnit{id: id, store: store, values: make(map[Key]Value)}
}

func (u *IncoherentUnit) ID() int { return u.id }

// Read returns the cached value when one exists, regardless of its age.
// Otherwise it fetches under the store guard and caches unconditionally.
func (u *IncoherentUnit) Read(key Key) (Value, error) {
	if v, ok := u.values[key]; ok {
		u.hits++
		return v, nil
	}
	u.misses++
	v, err := u.store.Get(key)
	if err != nil {
		return 0, err
	}
	u.values[key] = v
	return v, nil
}

// Write commits value under the store guard and refreshes the local copy.
// No message is counted: there is no protocol to pay for.
func (u *IncoherentUnit) Write(key Key, value Value) error {
	if err := u.store.Set(key, value); err != nil {
		return err
	}
	u.values[key] = value
	return nil
}

// Counters returns a snapshot of this unit's accounting. CoherenceMessages
// stays zero and is flagged not applicable.
func (u *IncoherentUnit) Counters() Counters {
	return Counters{Hits: u.hits, Misses: u.misses}
}
