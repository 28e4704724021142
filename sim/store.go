package sim

import (
	"slices"
	"sync"
)

// Key identifies one independently coherent location in the shared namespace.
type Key string

// Value is the scalar held at a key.
type Value int64

// SharedStore is the single source of truth for every key. All coherence-miss
// fetches and all committed writes pass through Get and Set, which serialize
// on one mutex per store instance; the backing map is unexported, so there is
// no way to reach a value outside the guard.
type SharedStore struct {
	mu     sync.Mutex
	values map[Key]Value
}

// NewSharedStore creates a store whose key namespace is fixed to the keys of
// initial. The namespace never grows after construction.
func NewSharedStore(initial map[Key]Value) *SharedStore {
	values := make(map[Key]Value, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &SharedStore{values: values}
}

// Get returns the authoritative value for key, holding the store guard for
// the duration of the read.
func (s *SharedStore) Get(key Key) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return 0, &UnknownKeyError{Key: key}
	}
	return v, nil
}

// Set commits value as the authoritative value for key, holding the store
// guard for the duration of the write. Writing a key the store was not
// initialized with is an error, not an insert.
func (s *SharedStore) Set(key Key, value Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return &UnknownKeyError{Key: key}
	}
	s.values[key] = value
	return nil
}

// Keys returns the store's key namespace in sorted order.
func (s *SharedStore) Keys() []Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]Key, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
