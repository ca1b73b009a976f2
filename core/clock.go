package core

import "time"

// Clock is the injected time source. Reading it is the only fallible non-local
// call the tracking core makes; it is synchronous and non-blocking by
// contract.
type Clock interface {
	Now() (time.Time, error)
}

// SystemClock reads the process wall clock. It never fails.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() (time.Time, error) { return time.Now(), nil }
