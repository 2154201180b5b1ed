package testutil

import "sync/atomic"

// DeterministicClock is an audit.Clock whose sequence can be rewound, so
// two runs of one scenario record identical seq values.
type DeterministicClock struct {
	seq atomic.Int64
}

// NewDeterministicClock returns a clock whose first Next is 1.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{}
}

// Next advances the clock and returns the new sequence number.
func (c *DeterministicClock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the last number Next returned, or 0.
func (c *DeterministicClock) Current() int64 {
	return c.seq.Load()
}

// Reset rewinds the clock so the next call to Next returns 1.
func (c *DeterministicClock) Reset() {
	c.seq.Store(0)
}
