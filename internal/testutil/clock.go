package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/roach88/padron/internal/clock"
)

// FixedClock is a settable clock.Clock for tests.
//
// Unlike clock.Fixed, FixedClock can be advanced and reset, so one test can
// walk a person through several reference dates.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu    sync.Mutex
	start time.Time
	now   time.Time
}

// NewFixedClock creates a clock reporting at until it is advanced.
func NewFixedClock(at time.Time) *FixedClock {
	return &FixedClock{start: at, now: at}
}

// Now returns the current reference time.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AdvanceDays moves the clock forward by n calendar days (backwards if n < 0).
func (c *FixedClock) AdvanceDays(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.AddDate(0, 0, n)
}

// Reset returns the clock to the time it was created with.
func (c *FixedClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.start
}

// Date parses a dd/mm/yyyy date in UTC, failing the test on error.
func Date(t testing.TB, s string) time.Time {
	t.Helper()
	d, err := clock.ParseDate(s, time.UTC)
	if err != nil {
		t.Fatalf("testutil.Date: %v", err)
	}
	return d
}

var _ clock.Clock = (*FixedClock)(nil)
