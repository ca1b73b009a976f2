package testutil

import (
	"time"

	"github.com/goalmesh/goalmesh/core"
)

// FakeClock is a controllable core.Clock. Each Now call returns the current
// setting and then advances it by Step, so successive readings are strictly
// ordered without real sleeping.
type FakeClock struct {
	Current time.Time
	Step    time.Duration
	Err     error
	Reads   int
}

var _ core.Clock = (*FakeClock)(nil)

// NewFakeClock starts at the given instant advancing one nanosecond per read.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{Current: start, Step: time.Nanosecond}
}

// Now returns the scripted instant or failure.
func (c *FakeClock) Now() (time.Time, error) {
	c.Reads++
	if c.Err != nil {
		return time.Time{}, c.Err
	}
	now := c.Current
	c.Current = c.Current.Add(c.Step)
	return now, nil
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) { c.Current = c.Current.Add(d) }
