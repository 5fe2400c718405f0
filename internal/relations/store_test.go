package relations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStore_GetUnknownKey tests that unknown keys yield an empty sequence.
func TestStore_GetUnknownKey(t *testing.T) {
	s := NewStore[string]()
	assert.Empty(t, s.Get("never-inserted"), "unknown key should yield empty sequence")
}

// TestStore_InsertionOrder tests that Get returns values in insertion order.
func TestStore_InsertionOrder(t *testing.T) {
	s := NewStore[string]()
	s.Add("ast:calls", "main")
	s.Add("ast:calls", "fetch")
	s.Add("ast:calls", "parse")

	assert.Equal(t, []string{"main", "fetch", "parse"}, s.Get("ast:calls"))
}

// TestStore_DuplicatesAllowed tests multimap semantics - the same value
// may be recorded more than once.
func TestStore_DuplicatesAllowed(t *testing.T) {
	s := NewStore[string]()
	s.Add("refs", "x")
	s.Add("refs", "x")
	s.Add("refs", "y")
	s.Add("refs", "x")

	assert.Equal(t, []string{"x", "x", "y", "x"}, s.Get("refs"))
	assert.Equal(t, 4, s.Len("refs"))
}

// TestStore_RemoveAllOccurrences tests that Remove eliminates every
// matching occurrence, not just the first.
func TestStore_RemoveAllOccurrences(t *testing.T) {
	s := NewStore[string]()
	s.Add("refs", "x")
	s.Add("refs", "y")
	s.Add("refs", "x")
	s.Add("refs", "x")

	s.Remove("refs", "x")

	got := s.Get("refs")
	assert.Equal(t, []string{"y"}, got)
	assert.NotContains(t, got, "x")
}

// TestStore_RemoveUnknownKey tests that removal on an unknown key is a
// no-op, not an error.
func TestStore_RemoveUnknownKey(t *testing.T) {
	s := NewStore[string]()
	assert.NotPanics(t, func() {
		s.Remove("missing", "v")
	})
	assert.Empty(t, s.Get("missing"))
}

// TestStore_RemoveAbsentValue tests that removing a value that was never
// added leaves the sequence untouched.
func TestStore_RemoveAbsentValue(t *testing.T) {
	s := NewStore[string]()
	s.Add("k", "a")
	s.Add("k", "b")

	s.Remove("k", "z")

	assert.Equal(t, []string{"a", "b"}, s.Get("k"))
}

// TestStore_EmptyAfterRemoveIndistinguishable tests that a fully drained
// key behaves exactly like a key that was never inserted.
func TestStore_EmptyAfterRemoveIndistinguishable(t *testing.T) {
	s := NewStore[string]()
	s.Add("k", "only")
	s.Remove("k", "only")

	assert.Empty(t, s.Get("k"))
	assert.Equal(t, 0, s.Len("k"))

	// Re-adding starts a fresh ordered sequence.
	s.Add("k", "again")
	assert.Equal(t, []string{"again"}, s.Get("k"))
}

// TestStore_GetReturnsCopy tests that mutating the returned slice does
// not leak into the store.
func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore[string]()
	s.Add("k", "a")
	s.Add("k", "b")

	got := s.Get("k")
	got[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, s.Get("k"))
}

// TestStore_ReadIdempotence tests that repeated reads with no
// intervening mutation return identical results.
func TestStore_ReadIdempotence(t *testing.T) {
	s := NewStore[string]()
	s.Add("k", "a")
	s.Add("k", "b")

	first := s.Get("k")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Get("k"))
	}
}

// TestStore_StructValues tests value equality removal with a composite
// comparable payload type.
func TestStore_StructValues(t *testing.T) {
	type ref struct {
		File string
		Line int
	}

	s := NewStore[ref]()
	s.Add("uses:x", ref{File: "main.lat", Line: 3})
	s.Add("uses:x", ref{File: "main.lat", Line: 9})
	s.Add("uses:x", ref{File: "main.lat", Line: 3})

	s.Remove("uses:x", ref{File: "main.lat", Line: 3})

	got := s.Get("uses:x")
	require.Len(t, got, 1)
	assert.Equal(t, ref{File: "main.lat", Line: 9}, got[0])
}

// TestStore_IndependentKeys tests that keys do not interfere.
func TestStore_IndependentKeys(t *testing.T) {
	s := NewStore[string]()
	s.Add("a", "1")
	s.Add("b", "2")

	s.Remove("a", "1")

	assert.Empty(t, s.Get("a"))
	assert.Equal(t, []string{"2"}, s.Get("b"))
}
