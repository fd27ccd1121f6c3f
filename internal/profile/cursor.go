package profile

import (
	"math/rand"
	"time"

	"github.com/mateusz-blaszkowski/log-tuner/internal/config"
)

// Cursor is the monotonic synthetic-timestamp state threaded through a
// batch refill. It advances by a uniform random delta per non-blank line
// and never moves backwards, which keeps the generated log's timestamp
// column non-decreasing.
//
// The cursor is owned by a single goroutine for the duration of one batch;
// it is deliberately passed in rather than kept as package state so the
// refill step stays testable in isolation.
type Cursor struct {
	now     time.Time
	maxStep int
	rng     *rand.Rand
}

// NewCursor creates a cursor starting at seed. maxStepMS is the inclusive
// upper bound of the per-line advance in milliseconds; non-positive values
// fall back to the default.
func NewCursor(seed time.Time, maxStepMS int, rng *rand.Rand) *Cursor {
	if maxStepMS <= 0 {
		maxStepMS = config.DefaultMaxStepMS
	}
	return &Cursor{now: seed, maxStep: maxStepMS, rng: rng}
}

// Advance moves the cursor forward by a uniform random delta in
// [0, maxStep] milliseconds and returns the new time.
func (c *Cursor) Advance() time.Time {
	c.now = c.now.Add(time.Duration(c.rng.Intn(c.maxStep+1)) * time.Millisecond)
	return c.now
}

// Time returns the current cursor position without advancing.
func (c *Cursor) Time() time.Time {
	return c.now
}
