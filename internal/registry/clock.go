package registry

import "sync/atomic"

// Clock is a monotonic logical clock for load ordering.
//
// Every registration is stamped with a strictly increasing seq number
// from this clock, so "which module loaded first" never depends on wall
// time. Replayed load sequences produce identical ordering.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// although the registry itself expects a single owning goroutine.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock starting at a specific sequence number.
// Used to resume numbering from a known position.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and increments the clock.
// Each call returns a unique, increasing value.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
