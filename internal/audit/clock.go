package audit

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock issues logical sequence numbers for records.
type Clock interface {
	Next() int64
}

// LogicalClock is a monotonic logical clock.
//
// Thread-safety: LogicalClock is safe for concurrent use (atomic operations).
type LogicalClock struct {
	seq atomic.Int64
}

// NewLogicalClock creates a clock starting at 0. The first Next returns 1.
func NewLogicalClock() *LogicalClock {
	return &LogicalClock{}
}

// Next returns the next sequence number.
func (c *LogicalClock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the last issued sequence number without incrementing.
func (c *LogicalClock) Current() int64 {
	return c.seq.Load()
}

// RunIDGenerator issues identifiers for audit runs.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run IDs.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
