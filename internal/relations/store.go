package relations

// Store is an ordered multimap from a string key to opaque values.
//
// Multimap semantics are intentional: a relation may legitimately hold
// the same value more than once (e.g., repeated references), and Remove
// eliminates every matching occurrence so the sequence stays consistent
// after arbitrary Add/Remove interleavings.
//
// The value type must be comparable; removal matches by Go's structural
// value equality, not identity.
type Store[V comparable] struct {
	relations map[string][]V
}

// NewStore creates an empty relation store.
func NewStore[V comparable]() *Store[V] {
	return &Store[V]{relations: make(map[string][]V)}
}

// Add appends value to the sequence at key, creating the sequence if
// absent. Duplicates are kept.
func (s *Store[V]) Add(key string, value V) {
	s.relations[key] = append(s.relations[key], value)
}

// Get returns the values recorded for key in insertion order.
// Unknown keys yield an empty sequence, never an error.
//
// The returned slice is a copy; the store retains exclusive ownership of
// its backing storage.
func (s *Store[V]) Get(key string) []V {
	vals := s.relations[key]
	if len(vals) == 0 {
		return nil
	}
	out := make([]V, len(vals))
	copy(out, vals)
	return out
}

// Remove deletes every occurrence of value from the sequence at key.
// Unknown keys and absent values are no-ops.
func (s *Store[V]) Remove(key string, value V) {
	vals, ok := s.relations[key]
	if !ok {
		return
	}
	kept := make([]V, 0, len(vals))
	for _, v := range vals {
		if v != value {
			kept = append(kept, v)
		}
	}
	s.relations[key] = kept
}

// Len returns the number of values currently recorded for key.
func (s *Store[V]) Len(key string) int {
	return len(s.relations[key])
}
